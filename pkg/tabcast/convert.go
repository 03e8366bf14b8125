package tabcast

import (
	"regexp"
	"strings"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

// lineBreak matches one line break: CRLF first so a CRLF pair counts as a
// single occurrence, then lone CR or lone LF.
var lineBreak = regexp.MustCompile("\r\n|\r|\n")

// Convert renders one table as delimited text.
// Cells are joined with the configured separator, rows with a single
// newline; there is no trailing newline. An empty table yields "".
//
// Quote characters already present in cell text are left as-is; no
// escaping or doubling is performed.
func Convert(t models.Table, cfg Config) string {
	if len(t.Rows) == 0 {
		return ""
	}

	rows := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = convertCell(cell, cfg)
		}
		rows[i] = strings.Join(cells, string(cfg.Separator))
	}
	return strings.Join(rows, "\n")
}

// convertCell normalizes line breaks, then applies the quote style.
func convertCell(text string, cfg Config) string {
	switch cfg.LineBreaks {
	case LineBreakStrip:
		text = lineBreak.ReplaceAllString(text, "")
	case LineBreakToken:
		text = lineBreak.ReplaceAllString(text, LineBreakTokenText)
	default:
		text = lineBreak.ReplaceAllString(text, " ")
	}

	switch cfg.Quote {
	case QuoteDouble:
		return `"` + text + `"`
	case QuoteSingle:
		return `'` + text + `'`
	default:
		return text
	}
}
