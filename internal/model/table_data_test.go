package model_test

import (
	"testing"

	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableDataSortColumn(t *testing.T) {
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	l := newListener()
	m.AddListener(l)

	m.SortColumn(1)
	require.Equal(t, 1, l.changed)
	assert.Equal(t, []string{"10", "20", "30"}, m.Peek().Rows().Column(1))
	assert.Equal(t, model1.Ascending, m.SortState().Direction(1))

	m.SortColumn(1)
	assert.Equal(t, 2, l.changed)
	assert.Equal(t, []string{"30", "20", "10"}, m.Peek().Rows().Column(1))
	assert.Equal(t, model1.Descending, l.sort.Direction(1))
}

func TestTableDataSortFailed(t *testing.T) {
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	l := newListener()
	m.AddListener(l)

	m.SortColumn(5)
	assert.Equal(t, 0, l.changed)
	assert.ErrorIs(t, l.err, model1.ErrColumnRange)
	assert.Equal(t, []string{"30", "10", "20"}, m.Peek().Rows().Column(1))
}

func TestTableDataToggleMark(t *testing.T) {
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	l := newListener()
	m.AddListener(l)

	m.ToggleMark("e2", "red")
	assert.True(t, m.Selection().Has("e2"))
	assert.True(t, l.sel.Has("e2"))

	m.ToggleMark("e2", "red")
	assert.False(t, m.Selection().Has("e2"))
	assert.Equal(t, 2, l.changed)

	m.RemoveListener(l)
	m.ToggleMark("e1", "red")
	assert.Equal(t, 2, l.changed)
}

func TestTableDataRestore(t *testing.T) {
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	sel := model.NewSelection().Toggle("e1", "blue")

	m.Restore(sel, model.SortState{1: model1.Ascending})
	assert.True(t, m.Selection().Has("e1"))

	m.SortColumn(1)
	assert.Equal(t, model1.Descending, m.SortState().Direction(1))
	assert.Equal(t, []string{"30", "20", "10"}, m.Peek().Rows().Column(1))
}

// Helpers...

func makeTable() *model1.TableData {
	data := model1.NewTableData("emps")
	rows := model1.Rows{
		{ID: "e1", Fields: model1.Fields{"fred", "30"}},
		{ID: "e2", Fields: model1.Fields{"blee", "10"}},
		{ID: "e3", Fields: model1.Fields{"zorg", "20"}},
	}
	data.SetHeader(model1.InferHeader([]string{"Name", "Age"}, rows))
	data.SetRows(rows)

	return data
}

type testListener struct {
	changed int
	sel     model.Selection
	sort    model.SortState
	err     error
}

func newListener() *testListener {
	return &testListener{}
}

func (l *testListener) TableDataChanged(_ *model1.TableData, sel model.Selection, st model.SortState) {
	l.changed++
	l.sel, l.sort = sel, st
}

func (l *testListener) TableSortFailed(err error) {
	l.err = err
}
