package model_test

import (
	"testing"

	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/stretchr/testify/assert"
)

func TestViewStateClone(t *testing.T) {
	vs := model.NewViewState()
	vs.Selection = vs.Selection.Toggle("e1", "red")
	vs.SetSort("emps", model.SortState{1: model1.Ascending})

	cp := vs.Clone()
	cp.Selection = cp.Selection.Toggle("e2", "red")
	cp.Sort("emps")[1] = model1.Descending

	assert.False(t, vs.Selection.Has("e2"))
	assert.Equal(t, model1.Ascending, vs.Sort("emps").Direction(1))
	assert.Empty(t, vs.Sort("zorg"))
}

func TestViewStateSetSortNil(t *testing.T) {
	var vs model.ViewState
	vs.SetSort("emps", model.SortState{0: model1.Descending})

	assert.Equal(t, model1.Descending, vs.Sort("emps").Direction(0))
}
