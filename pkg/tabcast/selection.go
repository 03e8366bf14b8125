package tabcast

import "sort"

// Selection tracks which discovered tables are included in an export.
// Indices are unique while accumulating; Confirm returns them sorted
// ascending so tables are always emitted in document order regardless
// of toggle order.
type Selection struct {
	included map[int]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{included: make(map[int]bool)}
}

// Toggle adds or removes a table index.
func (s *Selection) Toggle(index int, included bool) {
	if included {
		s.included[index] = true
	} else {
		delete(s.included, index)
	}
}

// Included reports whether a table index is currently selected.
func (s *Selection) Included(index int) bool {
	return s.included[index]
}

// Count returns the number of selected tables.
func (s *Selection) Count() int {
	return len(s.included)
}

// Confirm returns the selected indices sorted ascending.
func (s *Selection) Confirm() []int {
	out := make([]int, 0, len(s.included))
	for i := range s.included {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
