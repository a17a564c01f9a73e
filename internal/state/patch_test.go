package state_test

import (
	"testing"

	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/pagekit/pagekit/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch(t *testing.T) {
	before := model.NewViewState()
	after := before.Clone()
	after.Selection = after.Selection.Toggle("e1", "red")
	after.SetSort("emps", model.SortState{1: model1.Ascending})

	patch, err := state.Patch(before, after)
	require.NoError(t, err)
	assert.Contains(t, patch, `"op":"add"`)
	assert.Contains(t, patch, `/selection/e1`)
	assert.Contains(t, patch, `/sorts/emps`)
}

func TestPatchNoChanges(t *testing.T) {
	vs := model.NewViewState()

	_, err := state.Patch(vs, vs.Clone())
	assert.ErrorIs(t, err, state.ErrNoChanges)
}
