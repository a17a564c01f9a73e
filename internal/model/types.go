package model

import (
	"github.com/pagekit/pagekit/internal/model1"
)

// TableListener represents a table model listener.
type TableListener interface {
	// TableDataChanged notifies the table rows or state changed.
	TableDataChanged(data *model1.TableData, sel Selection, sort SortState)

	// TableSortFailed notifies a sort request was rejected.
	TableSortFailed(error)
}

// TableModel defines the interface for a page table with selection and sort
// state.
type TableModel interface {
	// Peek returns the current table data.
	Peek() *model1.TableData

	// Selection returns the current row selection.
	Selection() Selection

	// SortState returns the current sort state.
	SortState() SortState

	// ToggleMark flips the selection of a row.
	ToggleMark(rowID, color string)

	// SortColumn sorts by a column, alternating direction on repeats.
	SortColumn(col int)

	// AddListener registers a table listener.
	AddListener(TableListener)

	// RemoveListener unregisters a table listener.
	RemoveListener(TableListener)
}
