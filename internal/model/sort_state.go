package model

import (
	"github.com/pagekit/pagekit/internal/model1"
)

// SortState tracks the sort direction of table columns. Only the column last
// sorted carries a direction.
type SortState map[int]model1.Direction

// NewSortState returns an empty sort state.
func NewSortState() SortState {
	return make(SortState)
}

// Direction returns the recorded direction of a column.
func (s SortState) Direction(col int) model1.Direction {
	return s[col]
}

// Next returns the direction the next sort on col should use: descending
// after an ascending sort, ascending otherwise.
func (s SortState) Next(col int) model1.Direction {
	return s[col].Flip()
}

// Column returns the sorted column, if any.
func (s SortState) Column() (int, model1.Direction, bool) {
	for col, dir := range s {
		if dir != model1.Unsorted {
			return col, dir, true
		}
	}
	return -1, model1.Unsorted, false
}

// Sort orders seq on col in the direction after the one recorded in st and
// returns the new state. On error st is returned unchanged.
func Sort(seq model1.Sequence, col int, c model1.Comparer, st SortState) (SortState, int, error) {
	dir := st.Next(col)
	swaps, err := model1.Order(seq, col, c, dir)
	if err != nil {
		return st, swaps, err
	}

	return SortState{col: dir}, swaps, nil
}
