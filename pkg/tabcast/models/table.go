// Package models defines data structures shared by table sources and the converter.
package models

// Row represents a single table row as an ordered sequence of cell texts.
type Row struct {
	// Cells holds the plain-text content of each cell, in document order.
	Cells []string
}

// Table represents one table discovered in a document.
// Header and data rows are carried alike, in document order.
// Rows are not normalized: cell counts may differ between rows.
type Table struct {
	// Label identifies where the table came from (e.g. a sheet name).
	// May be empty for sources without a natural label.
	Label string
	// Rows contains all rows of the table.
	Rows []Row
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// Size returns the row count and the widest cell count across rows.
func (t Table) Size() (rows, cols int) {
	rows = len(t.Rows)
	for _, r := range t.Rows {
		if len(r.Cells) > cols {
			cols = len(r.Cells)
		}
	}
	return rows, cols
}
