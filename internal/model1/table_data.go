package model1

import "sync"

// TableData tracks a page table for tabular display.
type TableData struct {
	id     string
	header Header
	rows   Rows
	mx     sync.RWMutex
}

// NewTableData returns a new table.
func NewTableData(id string) *TableData {
	return &TableData{
		id:   id,
		rows: make(Rows, 0, 10),
	}
}

// ID returns the table id.
func (t *TableData) ID() string {
	return t.id
}

// Header returns the table header.
func (t *TableData) Header() Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// SetHeader sets the table header.
func (t *TableData) SetHeader(h Header) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.header = h
}

// Rows returns a copy of the body rows.
func (t *TableData) Rows() Rows {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rows.Clone()
}

// SetRows replaces the body rows.
func (t *TableData) SetRows(rr Rows) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.rows = rr
}

// Empty returns true if no rows are available.
func (t *TableData) Empty() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.rows) == 0
}

// RowCount returns the number of body rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return len(t.rows)
}
