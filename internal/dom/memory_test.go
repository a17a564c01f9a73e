package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode(t *testing.T) {
	n := NewNode("fred").WithStyle(StyleDisplay, DisplayNone).WithChecked(true).WithText("blee")

	assert.Equal(t, "fred", n.ID())
	assert.Equal(t, DisplayNone, n.Style(StyleDisplay))
	assert.True(t, n.Checked())
	assert.Equal(t, "blee", n.Text())

	n.SetStyle(StyleDisplay, DisplayBlock)
	n.SetChecked(false)
	n.SetText("zorg")
	assert.Equal(t, DisplayBlock, n.Style(StyleDisplay))
	assert.False(t, n.Checked())
	assert.Equal(t, "zorg", n.Text())
	assert.Equal(t, "", n.Style(StyleColor))
}

func TestMemTableInsertBefore(t *testing.T) {
	r1, r2, r3 := NewMemRow("r1", "a"), NewMemRow("r2", "b"), NewMemRow("r3", "c")
	uu := map[string]struct {
		row, ref *MemRow
		e        []string
	}{
		"up": {
			row: r3,
			ref: r1,
			e:   []string{"c", "a", "b"},
		},
		"down": {
			row: r1,
			ref: r3,
			e:   []string{"b", "a", "c"},
		},
		"self": {
			row: r2,
			ref: r2,
			e:   []string{"a", "b", "c"},
		},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			tb := NewMemTable("t", "name").Append(r1, r2, r3)
			require.NoError(t, tb.InsertBefore(u.row, u.ref))
			assert.Equal(t, u.e, tb.Column(0))
			assert.Len(t, tb.Rows(), 4)
		})
	}
}

func TestMemTableInsertBeforeMissing(t *testing.T) {
	tb := NewMemTable("t", "name").Append(NewMemRow("r1", "a"))

	err := tb.InsertBefore(NewMemRow("x", "x"), tb.Rows()[1])
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryLookups(t *testing.T) {
	tb := NewMemTable("emps", "name").Append(NewMemRow("e1", "fred"), NewMemRow("", "blee"))
	doc := NewMemory(NewNode("assignedto"), tb)

	e, err := doc.ElementByID("assignedto")
	require.NoError(t, err)
	assert.Equal(t, "assignedto", e.ID())

	r, err := doc.ElementByID("e1")
	require.NoError(t, err)
	assert.Equal(t, "fred", r.(Row).Cells()[0].Text())

	_, err = doc.ElementByID("zorg")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := doc.TableByID("emps")
	require.NoError(t, err)
	assert.Len(t, got.Rows(), 3)

	_, err = doc.TableByID("assignedto")
	assert.ErrorIs(t, err, ErrNotTable)

	_, err = doc.TableByID("zorg")
	assert.ErrorIs(t, err, ErrNotFound)
}
