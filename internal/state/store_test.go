package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagekit/pagekit/internal/model"
	"github.com/pagekit/pagekit/internal/model1"
	"github.com/pagekit/pagekit/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.msgpack")

	s := state.NewStore(path)
	require.NoError(t, s.Load())

	vs := s.Get("emp.html")
	assert.Equal(t, 0, vs.Selection.Len())

	vs.Selection = vs.Selection.Toggle("e1", "red")
	vs.SetSort("emps", model.SortState{1: model1.Descending})
	s.Put("emp.html", vs)
	require.NoError(t, s.Save())

	got := state.NewStore(path)
	require.NoError(t, got.Load())
	loaded := got.Get("emp.html")
	c, ok := loaded.Selection.Color("e1")
	assert.True(t, ok)
	assert.Equal(t, "red", c)
	assert.Equal(t, model1.Descending, loaded.Sort("emps").Direction(1))

	got.Forget("emp.html")
	assert.Equal(t, 0, got.Get("emp.html").Selection.Len())
}

func TestStoreGetIsCopy(t *testing.T) {
	s := state.NewStore(filepath.Join(t.TempDir(), "state.msgpack"))
	s.Put("emp.html", model.NewViewState())

	vs := s.Get("emp.html")
	vs.Selection = vs.Selection.Toggle("e1", "red")

	assert.False(t, s.Get("emp.html").Selection.Has("e1"))
}

func TestStoreLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.msgpack")
	require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0600))

	assert.Error(t, state.NewStore(path).Load())
}

func TestKey(t *testing.T) {
	abs, err := filepath.Abs("emp.html")
	require.NoError(t, err)

	assert.Equal(t, abs, state.Key("./emp.html"))
}
