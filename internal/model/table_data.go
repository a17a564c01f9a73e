package model

import (
	"fmt"
	"sync"

	"github.com/pagekit/pagekit/internal/model1"
	"go.uber.org/zap"
)

// TableData holds a page table with its explicit selection and sort state
// and notifies listeners when either changes.
type TableData struct {
	data      *model1.TableData
	policy    string
	sel       Selection
	sort      SortState
	listeners []TableListener
	log       *zap.SugaredLogger
	mx        sync.RWMutex
}

// NewTableData creates a new table model. policy picks the text comparer for
// non-numeric columns.
func NewTableData(data *model1.TableData, policy string, log *zap.SugaredLogger) *TableData {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &TableData{
		data:      data,
		policy:    policy,
		sel:       NewSelection(),
		sort:      NewSortState(),
		listeners: make([]TableListener, 0, 2),
		log:       log,
	}
}

// Restore seeds the model with previously saved state.
func (t *TableData) Restore(sel Selection, st SortState) {
	t.mx.Lock()
	if sel != nil {
		t.sel = sel.Clone()
	}
	if st != nil {
		t.sort = st
	}
	t.mx.Unlock()

	t.notifyDataChanged()
}

// Peek returns the current table data.
func (t *TableData) Peek() *model1.TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data
}

// Selection returns a copy of the current selection.
func (t *TableData) Selection() Selection {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.sel.Clone()
}

// SortState returns the current sort state.
func (t *TableData) SortState() SortState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.sort
}

// ToggleMark flips the selection of a row.
func (t *TableData) ToggleMark(rowID, color string) {
	t.mx.Lock()
	t.sel = t.sel.Toggle(rowID, color)
	t.mx.Unlock()

	t.log.Debugw("row toggled", "table", t.data.ID(), "row", rowID)
	t.notifyDataChanged()
}

// SortColumn sorts by a column, alternating direction on repeats.
func (t *TableData) SortColumn(col int) {
	t.mx.Lock()
	numeric := t.data.Header().IsNumericCol(col)
	rows := t.data.Rows()
	st, swaps, err := Sort(rows, col, model1.ComparerFor(numeric, t.policy), t.sort)
	if err == nil {
		t.data.SetRows(rows)
		t.sort = st
	}
	t.mx.Unlock()

	if err != nil {
		t.notifySortFailed(fmt.Errorf("sort %q on column %d: %w", t.data.ID(), col, err))
		return
	}
	t.log.Debugw("table sorted", "table", t.data.ID(), "column", col, "direction", st[col], "swaps", swaps)
	t.notifyDataChanged()
}

// AddListener registers a table listener.
func (t *TableData) AddListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a table listener.
func (t *TableData) RemoveListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()

	victim := -1
	for i, lis := range t.listeners {
		if lis == l {
			victim = i
			break
		}
	}
	if victim >= 0 {
		t.listeners = append(t.listeners[:victim], t.listeners[victim+1:]...)
	}
}

// notifyDataChanged notifies listeners that data has changed.
func (t *TableData) notifyDataChanged() {
	t.mx.RLock()
	listeners := make([]TableListener, len(t.listeners))
	copy(listeners, t.listeners)
	data, sel, st := t.data, t.sel.Clone(), t.sort
	t.mx.RUnlock()

	for _, l := range listeners {
		l.TableDataChanged(data, sel, st)
	}
}

// notifySortFailed notifies listeners that a sort was rejected.
func (t *TableData) notifySortFailed(err error) {
	t.mx.RLock()
	listeners := make([]TableListener, len(t.listeners))
	copy(listeners, t.listeners)
	t.mx.RUnlock()

	for _, l := range listeners {
		l.TableSortFailed(err)
	}
}
