package model

import "github.com/pagekit/pagekit/internal/model1"

// Selection tracks selected rows, keyed by row id, along with the highlight
// color each row was selected with.
type Selection map[string]string

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return make(Selection)
}

// Has returns true if the row is selected.
func (s Selection) Has(rowID string) bool {
	_, ok := s[rowID]
	return ok
}

// Color returns the row highlight color and whether the row is selected.
func (s Selection) Color(rowID string) (string, bool) {
	c, ok := s[rowID]
	return c, ok
}

// Toggle returns a new selection with rowID flipped. A selected row is
// dropped regardless of color.
func (s Selection) Toggle(rowID, color string) Selection {
	out := s.Clone()
	if out.Has(rowID) {
		delete(out, rowID)
		return out
	}
	out[rowID] = color

	return out
}

// Clone returns a copy of the selection.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// IDs returns the selected row ids in natural order.
func (s Selection) IDs() []string {
	return model1.SortedIDs(s)
}

// Len returns the number of selected rows.
func (s Selection) Len() int {
	return len(s)
}
