package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

// DetectParams controls how contiguous row blocks are promoted to tables.
type DetectParams struct {
	// MinRows is the minimum number of rows a block needs.
	MinRows int
	// MinCells is the minimum number of non-empty cells a block needs.
	MinCells int
}

// DefaultDetectParams returns the default detection thresholds.
func DefaultDetectParams() DetectParams {
	return DetectParams{
		MinRows:  1,
		MinCells: 1,
	}
}

// XLSXSource discovers tables in an Excel workbook. Each contiguous
// block of non-empty rows on a sheet becomes one table.
type XLSXSource struct {
	path   string
	params DetectParams
}

// OpenXLSX opens an Excel workbook as a table source.
func OpenXLSX(path string) (*XLSXSource, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	f.Close()
	return &XLSXSource{path: path, params: DefaultDetectParams()}, nil
}

// Mode always reports reading mode; the workbook is opened read-only.
func (s *XLSXSource) Mode() ViewMode {
	return ModeReading
}

// Tables returns all detected tables across sheets, in sheet order.
func (s *XLSXSource) Tables() ([]models.Table, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var tables []models.Table
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		blocks := splitBlocks(rows)
		for i, block := range blocks {
			if !s.params.accept(block) {
				continue
			}
			label := sheetName
			if len(blocks) > 1 {
				label = fmt.Sprintf("%s #%d", sheetName, i+1)
			}
			tables = append(tables, models.Table{Label: label, Rows: block})
		}
	}
	return tables, nil
}

// splitBlocks groups consecutive non-empty rows into table candidates.
func splitBlocks(rows [][]string) [][]models.Row {
	var blocks [][]models.Row
	var cur []models.Row
	for _, row := range rows {
		if rowEmpty(row) {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, models.Row{Cells: row})
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

func rowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func (p DetectParams) accept(block []models.Row) bool {
	if len(block) < p.MinRows {
		return false
	}
	cells := 0
	for _, r := range block {
		for _, c := range r.Cells {
			if c != "" {
				cells++
			}
		}
	}
	return cells >= p.MinCells
}
