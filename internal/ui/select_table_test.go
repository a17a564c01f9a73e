// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagekit

package ui_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/derailed/tcell/v2"
	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/pagekit/pagekit/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectTableModel(t *testing.T) {
	tb := ui.NewSelectTable("red", "white")
	tb.Init()
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	tb.SetModel(m)

	assert.Equal(t, 4, tb.GetRowCount())
	assert.Equal(t, "Name", tb.GetCell(0, 0).Text)
	assert.Equal(t, "e1", tb.GetSelectedRowID())
}

func TestSelectTableMark(t *testing.T) {
	tb := ui.NewSelectTable("red", "white")
	tb.Init()
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	tb.SetModel(m)

	m.ToggleMark("e1", "red")
	assert.True(t, strings.HasPrefix(tb.GetCell(1, 0).Text, "✓ "))
	assert.Equal(t, tcell.ColorRed, tb.GetCell(1, 0).Color)
	assert.Equal(t, tcell.ColorWhite, tb.GetCell(2, 0).Color)
}

func TestSelectTableSort(t *testing.T) {
	tb := ui.NewSelectTable("red", "white")
	tb.Init()
	m := model.NewTableData(makeTable(), model1.PolicyText, nil)
	tb.SetModel(m)

	m.SortColumn(1)
	assert.Equal(t, "Age ▲", tb.GetCell(0, 1).Text)
	assert.Equal(t, "10", tb.GetCell(1, 1).Text)
	assert.Equal(t, "e2", tb.GetCell(1, 0).GetReference())

	m.SortColumn(1)
	assert.Equal(t, "Age ▼", tb.GetCell(0, 1).Text)
	assert.Equal(t, "30", tb.GetCell(1, 1).Text)
}

func TestSelectTableSortFailed(t *testing.T) {
	tb := ui.NewSelectTable("red", "white")
	tb.Init()

	err := errors.New("boom")
	tb.TableSortFailed(err)
	assert.Equal(t, err, tb.LastError())
}

func TestSelectTableNoData(t *testing.T) {
	tb := ui.NewSelectTable("red", "white")
	tb.Init()
	tb.SetModel(model.NewTableData(model1.NewTableData("empty"), model1.PolicyText, nil))

	assert.Equal(t, "No rows found", tb.GetCell(0, 0).Text)
}

func TestSelectTableHints(t *testing.T) {
	tb := ui.NewSelectTable("red", "white")
	tb.Init()

	hh := tb.Hints()
	require.Len(t, hh, 3)
	names := make([]string, 0, len(hh))
	for _, h := range hh {
		names = append(names, h.Mnemonic)
	}
	assert.Equal(t, []string{"Ctrl-S", "space", "s"}, names)
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
