package model

// ViewState is the explicit page state the helpers used to smuggle through
// element styles: the selected rows and each table's sort state.
type ViewState struct {
	Selection Selection            `json:"selection" msgpack:"sel"`
	Sorts     map[string]SortState `json:"sorts" msgpack:"srt"`
}

// NewViewState returns an empty view state.
func NewViewState() *ViewState {
	return &ViewState{
		Selection: NewSelection(),
		Sorts:     make(map[string]SortState),
	}
}

// Sort returns a table's sort state.
func (v *ViewState) Sort(tableID string) SortState {
	if st, ok := v.Sorts[tableID]; ok {
		return st
	}
	return NewSortState()
}

// SetSort records a table's sort state.
func (v *ViewState) SetSort(tableID string, st SortState) {
	if v.Sorts == nil {
		v.Sorts = make(map[string]SortState)
	}
	v.Sorts[tableID] = st
}

// Clone returns a deep copy.
func (v *ViewState) Clone() *ViewState {
	out := ViewState{
		Selection: v.Selection.Clone(),
		Sorts:     make(map[string]SortState, len(v.Sorts)),
	}
	for id, st := range v.Sorts {
		cp := make(SortState, len(st))
		for c, d := range st {
			cp[c] = d
		}
		out.Sorts[id] = cp
	}
	return &out
}
