package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
)

func testTables(n int) []models.Table {
	tables := make([]models.Table, n)
	for i := range tables {
		tables[i] = models.Table{Rows: []models.Row{{Cells: []string{"h1", "h2"}}, {Cells: []string{"a", "b"}}}}
	}
	return tables
}

func sendRune(m Model, r rune) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func sendKey(m Model, k tea.KeyType) Model {
	next, _ := m.Update(tea.KeyMsg{Type: k})
	return next.(Model)
}

func TestToggleAndCursor(t *testing.T) {
	m := New(testTables(3))

	m = sendRune(m, 'x')
	if !m.Selection().Included(0) {
		t.Fatal("Expected table 0 selected after toggle")
	}

	m = sendKey(m, tea.KeyDown)
	m = sendRune(m, 'x')
	if !m.Selection().Included(1) {
		t.Fatal("Expected table 1 selected after cursor move and toggle")
	}

	// Toggling again deselects.
	m = sendRune(m, 'x')
	if m.Selection().Included(1) {
		t.Fatal("Expected table 1 deselected after second toggle")
	}
	if m.Selection().Count() != 1 {
		t.Errorf("Expected 1 selected, got %d", m.Selection().Count())
	}
}

func TestCursorBounds(t *testing.T) {
	m := New(testTables(2))

	m = sendKey(m, tea.KeyUp)
	if m.cursor != 0 {
		t.Errorf("Cursor must not move above 0, got %d", m.cursor)
	}

	m = sendKey(m, tea.KeyDown)
	m = sendKey(m, tea.KeyDown)
	m = sendKey(m, tea.KeyDown)
	if m.cursor != 1 {
		t.Errorf("Cursor must not move past the last table, got %d", m.cursor)
	}
}

func TestSelectAllAndNone(t *testing.T) {
	m := New(testTables(3))

	m = sendRune(m, 'a')
	if m.Selection().Count() != 3 {
		t.Errorf("Expected all 3 selected, got %d", m.Selection().Count())
	}

	m = sendRune(m, 'n')
	if m.Selection().Count() != 0 {
		t.Errorf("Expected none selected, got %d", m.Selection().Count())
	}
}

func TestConfirmClosesEvenWithEmptySelection(t *testing.T) {
	m := New(testTables(2))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if !m.Confirmed() {
		t.Error("Enter must confirm")
	}
	if cmd == nil {
		t.Error("Enter must quit the program")
	}
	if m.Selection().Count() != 0 {
		t.Error("Selection must stay empty; the coordinator reports it")
	}
}

func TestCancelDoesNotConfirm(t *testing.T) {
	m := New(testTables(2))
	m = sendRune(m, 'x')

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	if m.Confirmed() {
		t.Error("Esc must not confirm")
	}
	if cmd == nil {
		t.Error("Esc must quit the program")
	}
}

func TestViewShowsCheckboxesAndCount(t *testing.T) {
	m := New(testTables(2))
	m = sendRune(m, 'x')

	view := m.View()
	if !strings.Contains(view, "[x]") {
		t.Error("View must render a checked box for the selected table")
	}
	if !strings.Contains(view, "[ ]") {
		t.Error("View must render an unchecked box for the other table")
	}
	if !strings.Contains(view, "1 selected") {
		t.Error("View must render the selection count")
	}
	if !strings.Contains(view, "Table 1") || !strings.Contains(view, "Table 2") {
		t.Error("View must list every table")
	}
}

func TestPreview(t *testing.T) {
	tbl := models.Table{
		Label: "Sheet1",
		Rows:  []models.Row{{Cells: []string{"Name", "Age"}}, {Cells: []string{"Alice", "30"}}},
	}

	got := Preview(tbl, 0, 80)
	if !strings.Contains(got, "Table 1") {
		t.Errorf("Preview must number the table: %q", got)
	}
	if !strings.Contains(got, "Sheet1") {
		t.Errorf("Preview must include the label: %q", got)
	}
	if !strings.Contains(got, "2×2") {
		t.Errorf("Preview must include dimensions: %q", got)
	}
	if !strings.Contains(got, "Name") {
		t.Errorf("Preview must excerpt the first row: %q", got)
	}
}
