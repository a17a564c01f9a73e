// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagekit

package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
)

const (
	// TitleFmt formats the table title with table id, mark count and row count.
	TitleFmt = " <%s>[%d/%d] "

	markPrefix = "✓ "
)

// SelectTable represents a page table with markable rows and sortable
// columns.
type SelectTable struct {
	*tview.Table

	actions   *KeyActions
	model     Tabular
	header    model1.Header
	highlight string
	baseline  string
	sortCol   int
	lastErr   error
	mx        sync.RWMutex
}

// NewSelectTable returns a new table instance.
func NewSelectTable(highlight, baseline string) *SelectTable {
	return &SelectTable{
		Table:     tview.NewTable(),
		actions:   NewKeyActions(),
		highlight: highlight,
		baseline:  baseline,
		sortCol:   -1,
	}
}

// Init initializes the table component.
func (t *SelectTable) Init() {
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetBorderColor(tcell.ColorWhite)
	t.Select(1, 0)

	t.showNoData("Loading...")
	t.SetInputCapture(t.keyboard)
	t.bindKeys()
}

// SetModel sets the table data model.
func (t *SelectTable) SetModel(m Tabular) {
	t.mx.Lock()
	if t.model != nil {
		t.model.RemoveListener(t)
	}
	t.model = m
	t.mx.Unlock()

	if m != nil {
		m.AddListener(t)
		t.TableDataChanged(m.Peek(), m.Selection(), m.SortState())
	}
}

// GetModel returns the current table model.
func (t *SelectTable) GetModel() Tabular {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.model
}

// Actions returns the key actions.
func (t *SelectTable) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *SelectTable) Hints() MenuHints {
	return t.actions.Hints()
}

// GetSelectedRowID returns the id of the row under the cursor.
func (t *SelectTable) GetSelectedRowID() string {
	row, _ := t.GetSelection()
	if row <= 0 {
		return ""
	}
	c := t.GetCell(row, 0)
	if c == nil {
		return ""
	}
	id, _ := c.GetReference().(string)
	return id
}

// keyboard handles table keyboard input.
func (t *SelectTable) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	key := evt.Key()
	row, col := t.GetSelection()
	rowCount := t.GetRowCount()

	if key == tcell.KeyRune {
		switch r := evt.Rune(); {
		case r == 'j':
			if row < rowCount-1 {
				t.Select(row+1, col)
			}
			return nil
		case r == 'k':
			if row > 1 {
				t.Select(row-1, col)
			}
			return nil
		case r >= '1' && r <= '9':
			t.sortBy(int(r - '1'))
			return nil
		}
		key = tcell.Key(evt.Rune())
	}

	if action, ok := t.actions.Get(key); ok {
		return action.Action(evt)
	}

	return evt
}

// bindKeys sets up the table key bindings.
func (t *SelectTable) bindKeys() {
	t.actions.Bulk(KeyMap{
		KeySpace:       NewKeyAction("Mark", t.markHandler, true),
		KeyS:           NewKeyAction("Sort Again", t.resortHandler, true),
		tcell.KeyCtrlS: NewKeyAction("Sort Next Column", t.sortNextHandler, true),
	})
}

// markHandler toggles the row under the cursor.
func (t *SelectTable) markHandler(evt *tcell.EventKey) *tcell.EventKey {
	m, id := t.GetModel(), t.GetSelectedRowID()
	if m == nil || id == "" {
		return nil
	}
	m.ToggleMark(id, t.highlight)

	return nil
}

// resortHandler sorts the current sort column again, flipping direction.
func (t *SelectTable) resortHandler(evt *tcell.EventKey) *tcell.EventKey {
	t.mx.RLock()
	col := t.sortCol
	t.mx.RUnlock()

	if col < 0 {
		col = 0
	}
	t.sortBy(col)

	return nil
}

// sortNextHandler cycles the sort through the columns.
func (t *SelectTable) sortNextHandler(evt *tcell.EventKey) *tcell.EventKey {
	t.mx.RLock()
	n, col := len(t.header), t.sortCol
	t.mx.RUnlock()

	if n == 0 {
		return nil
	}
	t.sortBy((col + 1) % n)

	return nil
}

func (t *SelectTable) sortBy(col int) {
	m := t.GetModel()
	if m == nil {
		return
	}
	t.mx.Lock()
	t.lastErr = nil
	t.mx.Unlock()
	m.SortColumn(col)
}

// TableDataChanged implements model.TableListener.
func (t *SelectTable) TableDataChanged(data *model1.TableData, sel model.Selection, st model.SortState) {
	if data == nil || data.Empty() {
		t.showNoData("No rows found")
		return
	}

	row, _ := t.GetSelection()
	t.Clear()

	col, dir, ok := st.Column()
	if !ok {
		col = -1
	}
	t.mx.Lock()
	t.sortCol = col
	t.mx.Unlock()

	header := data.Header()
	t.mx.RLock()
	reset := t.header.Diff(header)
	t.mx.RUnlock()
	if reset {
		row = 1
	}
	t.buildHeader(header, col, dir)
	for i, r := range data.Rows() {
		t.buildRow(r, header, i+1, sel)
	}
	t.updateTitle(data, sel)

	if row < 1 {
		row = 1
	}
	if row >= t.GetRowCount() {
		row = t.GetRowCount() - 1
	}
	t.Select(row, 0)
}

// TableSortFailed implements model.TableListener.
func (t *SelectTable) TableSortFailed(err error) {
	t.mx.Lock()
	t.lastErr = err
	t.mx.Unlock()

	t.SetTitle(fmt.Sprintf(" [red::b]%s ", tview.Escape(err.Error())))
}

// LastError returns the last sort error, if any.
func (t *SelectTable) LastError() error {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.lastErr
}

// showNoData displays a message when there's no data.
func (t *SelectTable) showNoData(msg string) {
	t.Clear()
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(tcell.ColorGray)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	t.SetCell(0, 0, cell)
}

// buildHeader builds the table header row.
func (t *SelectTable) buildHeader(header model1.Header, sortCol int, dir model1.Direction) {
	t.mx.Lock()
	t.header = header.Clone()
	t.mx.Unlock()

	for col, h := range header {
		cell := tview.NewTableCell(h.Name)
		cell.SetTextColor(tcell.ColorYellow)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(columnAlign(h))
		cell.SetExpansion(1)
		cell.SetSelectable(false)

		if col == sortCol {
			cell.SetText(h.Name + " " + dir.Indicator())
			cell.SetAttributes(tcell.AttrBold)
		}

		t.SetCell(0, col, cell)
	}
}

// buildRow builds a single data row, colored from the selection.
func (t *SelectTable) buildRow(row model1.Row, header model1.Header, rowIdx int, sel model.Selection) {
	color, marked := sel.Color(row.ID)
	fg := rowColor(color, marked, t.baseline)

	for col := range header {
		field := model1.NAValue
		if col < len(row.Fields) {
			field = row.Fields[col]
		}
		if col == 0 && marked {
			field = markPrefix + field
		}

		cell := tview.NewTableCell(field)
		cell.SetTextColor(fg)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(columnAlign(header[col]))
		cell.SetExpansion(1)

		// Store row ID in first column
		if col == 0 {
			cell.SetReference(row.ID)
		}

		t.SetCell(rowIdx, col, cell)
	}
}

// updateTitle updates the table title with mark and row counts.
func (t *SelectTable) updateTitle(data *model1.TableData, sel model.Selection) {
	t.SetTitle(fmt.Sprintf(TitleFmt, data.ID(), sel.Len(), data.RowCount()))
}

func columnAlign(h model1.HeaderColumn) int {
	if h.Align != 0 {
		return h.Align
	}
	if h.Numeric {
		return tview.AlignRight
	}
	return tview.AlignLeft
}

func rowColor(color string, marked bool, baseline string) tcell.Color {
	name := baseline
	if marked {
		name = color
	}
	c := tcell.GetColor(strings.ToLower(name))
	if c == tcell.ColorDefault {
		return tcell.ColorWhite
	}
	return c
}
