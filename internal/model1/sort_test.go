package model1_test

import (
	"testing"

	"github.com/pagekit/pagekit/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRows(vals ...string) model1.Rows {
	rr := make(model1.Rows, 0, len(vals))
	for i, v := range vals {
		rr = append(rr, model1.Row{ID: string(rune('a' + i)), Fields: model1.Fields{v}})
	}
	return rr
}

func TestOrder(t *testing.T) {
	uu := map[string]struct {
		vals  []string
		c     model1.Comparer
		dir   model1.Direction
		e     []string
		swaps int
	}{
		"numeric-asc": {
			vals:  []string{"30", "10", "20"},
			c:     model1.NumberCompare,
			dir:   model1.Ascending,
			e:     []string{"10", "20", "30"},
			swaps: 2,
		},
		"numeric-desc": {
			vals:  []string{"10", "20", "30"},
			c:     model1.NumberCompare,
			dir:   model1.Descending,
			e:     []string{"30", "20", "10"},
			swaps: 3,
		},
		"numeric-not-text": {
			vals:  []string{"9", "100", "20"},
			c:     model1.NumberCompare,
			dir:   model1.Ascending,
			e:     []string{"9", "20", "100"},
			swaps: 1,
		},
		"text-case": {
			vals:  []string{"b", "A", "c"},
			c:     model1.TextCompare,
			dir:   model1.Ascending,
			e:     []string{"A", "b", "c"},
			swaps: 1,
		},
		"text-lexical": {
			vals:  []string{"row2", "row10"},
			c:     model1.TextCompare,
			dir:   model1.Ascending,
			e:     []string{"row10", "row2"},
			swaps: 1,
		},
		"natural": {
			vals:  []string{"row10", "row2"},
			c:     model1.NaturalCompare,
			dir:   model1.Ascending,
			e:     []string{"row2", "row10"},
			swaps: 1,
		},
		"sorted": {
			vals: []string{"1", "2", "3"},
			c:    model1.NumberCompare,
			dir:  model1.Ascending,
			e:    []string{"1", "2", "3"},
		},
		"equal": {
			vals: []string{"x", "X", "x"},
			c:    model1.TextCompare,
			dir:  model1.Descending,
			e:    []string{"x", "X", "x"},
		},
		"nan-stays": {
			vals: []string{"abc", "5"},
			c:    model1.NumberCompare,
			dir:  model1.Ascending,
			e:    []string{"abc", "5"},
		},
		"single": {
			vals: []string{"5"},
			c:    model1.NumberCompare,
			dir:  model1.Ascending,
			e:    []string{"5"},
		},
		"empty": {
			c:   model1.NumberCompare,
			dir: model1.Ascending,
			e:   []string{},
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			rr := makeRows(u.vals...)
			swaps, err := model1.Order(rr, 0, u.c, u.dir)
			require.NoError(t, err)
			assert.Equal(t, u.swaps, swaps)
			assert.Equal(t, u.e, rr.Column(0))
			assert.True(t, model1.IsOrdered(rr, 0, u.c, u.dir))
		})
	}
}

func TestOrderStable(t *testing.T) {
	rr := model1.Rows{
		{ID: "a", Fields: model1.Fields{"2"}},
		{ID: "b", Fields: model1.Fields{"1"}},
		{ID: "c", Fields: model1.Fields{"2"}},
		{ID: "d", Fields: model1.Fields{"1"}},
	}

	_, err := model1.Order(rr, 0, model1.NumberCompare, model1.Ascending)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a", "c"}, rr.IDs())
}

func TestOrderColumnRange(t *testing.T) {
	rr := model1.Rows{
		{ID: "a", Fields: model1.Fields{"2", "x"}},
		{ID: "b", Fields: model1.Fields{"1"}},
	}

	_, err := model1.Order(rr, 1, model1.TextCompare, model1.Ascending)
	assert.ErrorIs(t, err, model1.ErrColumnRange)
	assert.Equal(t, []string{"a", "b"}, rr.IDs())

	_, err = model1.Order(rr, -1, model1.TextCompare, model1.Ascending)
	assert.ErrorIs(t, err, model1.ErrColumnRange)

	_, err = model1.Order(rr[:1], 5, model1.TextCompare, model1.Ascending)
	assert.NoError(t, err)
}

func TestToggle(t *testing.T) {
	rr := makeRows("30", "10", "20")

	dir, swaps, err := model1.Toggle(rr, 0, model1.NumberCompare)
	require.NoError(t, err)
	assert.Equal(t, model1.Ascending, dir)
	assert.Equal(t, 2, swaps)
	assert.Equal(t, []string{"10", "20", "30"}, rr.Column(0))

	dir, _, err = model1.Toggle(rr, 0, model1.NumberCompare)
	require.NoError(t, err)
	assert.Equal(t, model1.Descending, dir)
	assert.Equal(t, []string{"30", "20", "10"}, rr.Column(0))

	dir, _, err = model1.Toggle(rr, 0, model1.NumberCompare)
	require.NoError(t, err)
	assert.Equal(t, model1.Ascending, dir)
	assert.Equal(t, []string{"10", "20", "30"}, rr.Column(0))
}

func TestToggleAllEqual(t *testing.T) {
	rr := makeRows("1", "1")

	dir, swaps, err := model1.Toggle(rr, 0, model1.NumberCompare)
	require.NoError(t, err)
	assert.Equal(t, model1.Descending, dir)
	assert.Equal(t, 0, swaps)
	assert.Equal(t, []string{"a", "b"}, rr.IDs())
}

func TestRowsMoveBefore(t *testing.T) {
	rr := makeRows("1", "2", "3", "4")

	require.NoError(t, rr.MoveBefore(0, 3))
	assert.Equal(t, []string{"4", "1", "2", "3"}, rr.Column(0))

	assert.Error(t, rr.MoveBefore(2, 1))
	assert.Error(t, rr.MoveBefore(0, 4))
}

func TestDirection(t *testing.T) {
	assert.Equal(t, model1.Ascending, model1.Unsorted.Flip())
	assert.Equal(t, model1.Descending, model1.Ascending.Flip())
	assert.Equal(t, model1.Ascending, model1.Descending.Flip())
	assert.Equal(t, "asc", model1.Ascending.String())
	assert.Equal(t, "desc", model1.Descending.String())
	assert.Equal(t, "none", model1.Unsorted.String())
	assert.Equal(t, "▲", model1.Ascending.Indicator())
	assert.Equal(t, "", model1.Unsorted.Indicator())
}
