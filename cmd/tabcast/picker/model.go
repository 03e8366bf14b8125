// Package picker implements the interactive selection surface: one
// preview line per discovered table, checkbox toggles, and a single
// confirm action that closes the surface.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/tabcast-go/pkg/tabcast"
	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

const defaultWidth = 80

// Model is the bubbletea model for the selection surface.
type Model struct {
	tables    []models.Table
	sel       *tabcast.Selection
	keys      KeyMap
	cursor    int
	width     int
	confirmed bool
}

// New creates a selection surface over the discovered tables.
func New(tables []models.Table) Model {
	return Model{
		tables: tables,
		sel:    tabcast.NewSelection(),
		keys:   DefaultKeyMap(),
		width:  defaultWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.tables)-1 {
				m.cursor++
			}

		case key.Matches(msg, m.keys.Toggle):
			m.sel.Toggle(m.cursor, !m.sel.Included(m.cursor))

		case key.Matches(msg, m.keys.All):
			for i := range m.tables {
				m.sel.Toggle(i, true)
			}

		case key.Matches(msg, m.keys.None):
			for i := range m.tables {
				m.sel.Toggle(i, false)
			}

		case key.Matches(msg, m.keys.Confirm):
			// The surface closes on confirm even when nothing is
			// selected; the coordinator reports the empty selection.
			m.confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the table list with checkboxes and previews.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Select tables to export (%d found)", len(m.tables))))
	b.WriteByte('\n')

	for i, t := range m.tables {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		check := "[ ]"
		if m.sel.Included(i) {
			check = checkedStyle.Render("[x]")
		}

		line := fmt.Sprintf("%s%s %s", cursor, check, Preview(t, i, m.width-8))
		b.WriteString(line)
		b.WriteByte('\n')
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf(
		"%d selected · space toggle · a all · n none · enter export · q cancel",
		m.sel.Count(),
	)))
	b.WriteByte('\n')
	return b.String()
}

// Confirmed reports whether the user confirmed the export.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Selection returns the accumulated selection.
func (m Model) Selection() *tabcast.Selection {
	return m.sel
}

// Preview renders one descriptive line for a table: number, label,
// dimensions, and an excerpt of the first row, truncated to maxWidth
// display cells.
func Preview(t models.Table, index, maxWidth int) string {
	rows, cols := t.Size()
	head := fmt.Sprintf("Table %d", index+1)
	if t.Label != "" {
		head += " · " + t.Label
	}
	head += fmt.Sprintf(" · %d×%d", rows, cols)

	if rows > 0 {
		excerpt := strings.Join(t.Rows[0].Cells, " | ")
		head += "  " + dimStyle.Render(runewidth.Truncate(excerpt, max(maxWidth-runewidth.StringWidth(head), 8), "…"))
	}
	return head
}

// Run opens the selection surface and blocks until it closes. It
// returns the selection and whether the export was confirmed.
func Run(tables []models.Table) (*tabcast.Selection, bool, error) {
	p := tea.NewProgram(New(tables))
	final, err := p.Run()
	if err != nil {
		return nil, false, fmt.Errorf("selection surface failed: %w", err)
	}
	m := final.(Model)
	return m.Selection(), m.Confirmed(), nil
}
