package page

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pagekit/pagekit/internal/dom"
	"github.com/pagekit/pagekit/internal/model1"
)

// tableRows adapts the body rows of a document table to a model1.Sequence.
// The first table row is the header and never moves.
type tableRows struct {
	table dom.Table
	body  []dom.Row
}

func newTableRows(t dom.Table) *tableRows {
	rr := t.Rows()
	if len(rr) > 0 {
		rr = rr[1:]
	}
	return &tableRows{table: t, body: rr}
}

func (s *tableRows) Len() int {
	return len(s.body)
}

func (s *tableRows) Field(row, col int) (string, bool) {
	if row < 0 || row >= len(s.body) || col < 0 {
		return "", false
	}
	cells := s.body[row].Cells()
	if col >= len(cells) {
		return "", false
	}
	return cells[col].Text(), true
}

func (s *tableRows) MoveBefore(i, j int) error {
	if i < 0 || j <= i || j >= len(s.body) {
		return fmt.Errorf("unable to move row %d before %d", j, i)
	}
	row := s.body[j]
	if err := s.table.InsertBefore(row, s.body[i]); err != nil {
		return err
	}
	copy(s.body[i+1:j+1], s.body[i:j])
	s.body[i] = row

	return nil
}

// rowKey names a body row: its id, or its position when it has none.
func rowKey(r dom.Row, idx int) string {
	if id := r.ID(); id != "" {
		return id
	}
	return "#" + strconv.Itoa(idx)
}

// IsPositional reports whether a row key names a row by position because
// the row has no id.
func IsPositional(key string) bool {
	return strings.HasPrefix(key, "#")
}

// readTable snapshots a document table into table data.
func readTable(t dom.Table) *model1.TableData {
	data := model1.NewTableData(t.ID())
	rr := t.Rows()
	if len(rr) == 0 {
		return data
	}

	var names []string
	for _, c := range rr[0].Cells() {
		names = append(names, strings.TrimSpace(c.Text()))
	}
	rows := make(model1.Rows, 0, len(rr)-1)
	for i, r := range rr[1:] {
		cells := r.Cells()
		row := model1.NewRow(len(cells))
		row.ID = rowKey(r, i)
		for j, c := range cells {
			row.Fields[j] = c.Text()
		}
		rows = append(rows, row)
	}
	data.SetHeader(model1.InferHeader(names, rows))
	data.SetRows(rows)

	return data
}

// reorder moves the body rows so their keys follow ids. Rows not listed keep
// their relative order after the listed ones.
func reorder(t dom.Table, ids []string) error {
	seq := newTableRows(t)
	keys := make([]string, len(seq.body))
	for i, r := range seq.body {
		keys[i] = rowKey(r, i)
	}

	if len(ids) > len(keys) {
		return fmt.Errorf("table %q has %d rows, got %d ids", t.ID(), len(keys), len(ids))
	}
	for pos, id := range ids {
		at := -1
		for k := pos; k < len(keys); k++ {
			if keys[k] == id {
				at = k
				break
			}
		}
		if at < 0 {
			return fmt.Errorf("%w: row %q in table %q", dom.ErrNotFound, id, t.ID())
		}
		if at == pos {
			continue
		}
		if err := seq.MoveBefore(pos, at); err != nil {
			return err
		}
		key := keys[at]
		copy(keys[pos+1:at+1], keys[pos:at])
		keys[pos] = key
	}

	return nil
}
