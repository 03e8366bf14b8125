package source

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

// brTag matches a literal <br> element inside a cell. Rendered views
// show it as a line break, so it is carried into the cell text as "\n"
// for the line-break policy to handle.
var brTag = regexp.MustCompile(`(?i)^<br\s*/?>$`)

// MarkdownSource discovers pipe tables in a rendered Markdown document.
type MarkdownSource struct {
	data []byte
}

// OpenMarkdown reads a Markdown document from disk.
func OpenMarkdown(path string) (*MarkdownSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	return NewMarkdown(data), nil
}

// NewMarkdown wraps raw Markdown content.
func NewMarkdown(data []byte) *MarkdownSource {
	return &MarkdownSource{data: data}
}

// Mode always reports reading mode: tables are taken from the parsed
// (rendered) document, never from an edit buffer.
func (s *MarkdownSource) Mode() ViewMode {
	return ModeReading
}

// Tables parses the document and returns its tables in document order.
// Header and data rows are carried alike; inline markup inside cells is
// flattened to its text content.
func (s *MarkdownSource) Tables() ([]models.Table, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(s.data))

	var tables []models.Table
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if tbl, ok := n.(*east.Table); ok {
			tables = append(tables, s.tableFromNode(tbl))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk document: %w", err)
	}
	return tables, nil
}

func (s *MarkdownSource) tableFromNode(tbl *east.Table) models.Table {
	var t models.Table
	for row := tbl.FirstChild(); row != nil; row = row.NextSibling() {
		switch row.(type) {
		case *east.TableHeader, *east.TableRow:
		default:
			continue
		}
		var r models.Row
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			r.Cells = append(r.Cells, s.cellText(cell))
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}

// cellText flattens a cell's inline nodes to plain text.
func (s *MarkdownSource) cellText(cell ast.Node) string {
	var b strings.Builder
	_ = ast.Walk(cell, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(s.data))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.RawHTML:
			for i := 0; i < t.Segments.Len(); i++ {
				seg := t.Segments.At(i)
				if brTag.Match(seg.Value(s.data)) {
					b.WriteByte('\n')
				}
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
