package page

import (
	"fmt"

	"github.com/pagekit/pagekit/internal/dom"
	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"go.uber.org/zap"
)

// Helper runs the page helpers against a document.
type Helper struct {
	doc    dom.Document
	layout Layout
	log    *zap.SugaredLogger
}

// NewHelper returns a helper for doc. A nil logger discards output.
func NewHelper(doc dom.Document, layout Layout, log *zap.SugaredLogger) *Helper {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Helper{doc: doc, layout: layout, log: log}
}

// Layout returns the helper layout.
func (h *Helper) Layout() Layout {
	return h.layout
}

// NewEmployee shows the assignment field unless the selected user type is
// the admin one.
func (h *Helper) NewEmployee(value string) error {
	e, err := h.doc.ElementByID(h.layout.AssignField)
	if err != nil {
		return fmt.Errorf("assignment field: %w", err)
	}
	display := h.layout.ShownDisplay
	if h.layout.IsAdmin(value) {
		display = dom.DisplayNone
	}
	e.SetStyle(dom.StyleDisplay, display)
	h.log.Debugw("assignment field", "value", value, "display", display)

	return nil
}

// DisplaySubmit shows the submit control iff the checkbox is checked.
func (h *Helper) DisplaySubmit(checkboxID, submitID string) error {
	cb, err := h.doc.ElementByID(checkboxID)
	if err != nil {
		return fmt.Errorf("checkbox: %w", err)
	}
	submit, err := h.doc.ElementByID(submitID)
	if err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	display := dom.DisplayNone
	if cb.Checked() {
		display = h.layout.SubmitDisplay
	}
	submit.SetStyle(dom.StyleDisplay, display)

	return nil
}

// SelectRow flips a row's companion checkbox and swaps the row color between
// color and the baseline. The current selection is read back from the row
// color; use ToggleRow to track it explicitly instead.
func (h *Helper) SelectRow(rowID, color string) error {
	row, cb, err := h.rowPair(rowID)
	if err != nil {
		return err
	}
	color = h.layout.highlight(color)
	cb.SetChecked(!cb.Checked())
	if model1.SameColor(row.Style(dom.StyleColor), color) {
		row.SetStyle(dom.StyleColor, h.layout.baseline())
	} else {
		row.SetStyle(dom.StyleColor, color)
	}

	return nil
}

// ToggleRow flips rowID in sel, renders the row and returns the new
// selection.
func (h *Helper) ToggleRow(sel model.Selection, rowID, color string) (model.Selection, error) {
	if _, _, err := h.rowPair(rowID); err != nil {
		return sel, err
	}
	next := sel.Toggle(rowID, h.layout.highlight(color))
	if err := h.renderRow(next, rowID); err != nil {
		return sel, err
	}
	h.log.Debugw("row toggled", "row", rowID, "selected", next.Has(rowID), "count", next.Len())

	return next, nil
}

// ApplySelection renders the given rows from sel: selected rows are checked
// and highlighted, the others unchecked with the baseline color.
func (h *Helper) ApplySelection(sel model.Selection, rowIDs ...string) error {
	for _, id := range rowIDs {
		if err := h.renderRow(sel, id); err != nil {
			return err
		}
	}
	return nil
}

// SortTable sorts a table on col, ascending unless the rows already are,
// in which case descending. It returns the resulting direction.
func (h *Helper) SortTable(tableID string, col int, numeric bool) (model1.Direction, error) {
	t, err := h.doc.TableByID(tableID)
	if err != nil {
		return model1.Unsorted, err
	}
	dir, swaps, err := model1.Toggle(newTableRows(t), col, h.comparer(numeric))
	if err != nil {
		return model1.Unsorted, fmt.Errorf("sort table %q: %w", tableID, err)
	}
	h.log.Debugw("table sorted", "table", tableID, "column", col, "direction", dir, "swaps", swaps)

	return dir, nil
}

// SortBy sorts a table on col in the direction following st and returns the
// new sort state.
func (h *Helper) SortBy(st model.SortState, tableID string, col int, numeric bool) (model.SortState, error) {
	t, err := h.doc.TableByID(tableID)
	if err != nil {
		return st, err
	}
	next, swaps, err := model.Sort(newTableRows(t), col, h.comparer(numeric), st)
	if err != nil {
		return st, fmt.Errorf("sort table %q: %w", tableID, err)
	}
	h.log.Debugw("table sorted", "table", tableID, "column", col, "direction", next.Direction(col), "swaps", swaps)

	return next, nil
}

// ReadTable snapshots a table. Numeric columns are inferred from content.
func (h *Helper) ReadTable(tableID string) (*model1.TableData, error) {
	t, err := h.doc.TableByID(tableID)
	if err != nil {
		return nil, err
	}
	return readTable(t), nil
}

// Reorder arranges a table's body rows to follow ids.
func (h *Helper) Reorder(tableID string, ids []string) error {
	t, err := h.doc.TableByID(tableID)
	if err != nil {
		return err
	}
	return reorder(t, ids)
}

func (h *Helper) comparer(numeric bool) model1.Comparer {
	return model1.ComparerFor(numeric, h.layout.Compare)
}

func (h *Helper) renderRow(sel model.Selection, rowID string) error {
	row, cb, err := h.rowPair(rowID)
	if err != nil {
		return err
	}
	color, ok := sel.Color(rowID)
	cb.SetChecked(ok)
	if !ok {
		color = h.layout.baseline()
	}
	row.SetStyle(dom.StyleColor, color)

	return nil
}

func (h *Helper) rowPair(rowID string) (dom.Element, dom.Element, error) {
	row, err := h.doc.ElementByID(rowID)
	if err != nil {
		return nil, nil, fmt.Errorf("row: %w", err)
	}
	cb, err := h.doc.ElementByID(h.layout.companion(rowID))
	if err != nil {
		return nil, nil, fmt.Errorf("row %q companion: %w", rowID, err)
	}
	return row, cb, nil
}
