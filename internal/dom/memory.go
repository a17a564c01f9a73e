package dom

import "fmt"

// Node is an in-memory element.
type Node struct {
	id      string
	style   InlineStyle
	checked bool
	text    string
}

// NewNode returns a new element with the given id.
func NewNode(id string) *Node {
	return &Node{id: id}
}

// WithStyle sets an initial style property.
func (n *Node) WithStyle(prop, value string) *Node {
	n.SetStyle(prop, value)
	return n
}

// WithChecked sets the initial checked state.
func (n *Node) WithChecked(b bool) *Node {
	n.checked = b
	return n
}

// WithText sets the initial text.
func (n *Node) WithText(s string) *Node {
	n.text = s
	return n
}

func (n *Node) ID() string                  { return n.id }
func (n *Node) Style(prop string) string    { return n.style.Get(prop) }
func (n *Node) SetStyle(prop, value string) { n.style = n.style.Set(prop, value) }
func (n *Node) Checked() bool               { return n.checked }
func (n *Node) SetChecked(b bool)           { n.checked = b }
func (n *Node) Text() string                { return n.text }
func (n *Node) SetText(s string)            { n.text = s }

// MemRow is an in-memory table row.
type MemRow struct {
	*Node
	cells []Element
}

// NewMemRow returns a row holding one text cell per field.
func NewMemRow(id string, fields ...string) *MemRow {
	r := MemRow{Node: NewNode(id), cells: make([]Element, 0, len(fields))}
	for _, f := range fields {
		r.cells = append(r.cells, NewNode("").WithText(f))
	}
	return &r
}

// Cells returns the row cells.
func (r *MemRow) Cells() []Element {
	return r.cells
}

// MemTable is an in-memory table.
type MemTable struct {
	*Node
	rows []Row
}

// NewMemTable returns a table with a header row built from columns.
func NewMemTable(id string, columns ...string) *MemTable {
	return &MemTable{
		Node: NewNode(id),
		rows: []Row{NewMemRow("", columns...)},
	}
}

// Append adds rows at the end of the table.
func (t *MemTable) Append(rows ...*MemRow) *MemTable {
	for _, r := range rows {
		t.rows = append(t.rows, r)
	}
	return t
}

// Rows returns the table rows, header first.
func (t *MemTable) Rows() []Row {
	rr := make([]Row, len(t.rows))
	copy(rr, t.rows)
	return rr
}

// Column returns the text of the given column for every body row.
func (t *MemTable) Column(col int) []string {
	if len(t.rows) == 0 {
		return nil
	}
	out := make([]string, 0, len(t.rows)-1)
	for _, r := range t.rows[1:] {
		cells := r.Cells()
		if col < len(cells) {
			out = append(out, cells[col].Text())
		}
	}
	return out
}

// InsertBefore moves row right before ref.
func (t *MemTable) InsertBefore(row, ref Row) error {
	from, to := t.indexOf(row), t.indexOf(ref)
	if from < 0 || to < 0 {
		return fmt.Errorf("%w: row not in table %q", ErrNotFound, t.id)
	}
	if from == to {
		return nil
	}
	rows := append(t.rows[:from:from], t.rows[from+1:]...)
	if from < to {
		to--
	}
	rows = append(rows[:to], append([]Row{row}, rows[to:]...)...)
	t.rows = rows

	return nil
}

func (t *MemTable) indexOf(r Row) int {
	for i, row := range t.rows {
		if row == r {
			return i
		}
	}
	return -1
}

// Memory is an in-memory Document.
type Memory struct {
	elements map[string]Element
}

// NewMemory returns a document holding the given elements.
func NewMemory(ee ...Element) *Memory {
	m := Memory{elements: make(map[string]Element, len(ee))}
	m.Add(ee...)
	return &m
}

// Add registers elements by id. Rows of added tables with an id are
// registered too.
func (m *Memory) Add(ee ...Element) {
	for _, e := range ee {
		m.elements[e.ID()] = e
		t, ok := e.(Table)
		if !ok {
			continue
		}
		for _, r := range t.Rows() {
			if r.ID() != "" {
				m.elements[r.ID()] = r
			}
		}
	}
}

// ElementByID returns the element with the given id.
func (m *Memory) ElementByID(id string) (Element, error) {
	e, ok := m.elements[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return e, nil
}

// TableByID returns the table with the given id.
func (m *Memory) TableByID(id string) (Table, error) {
	e, err := m.ElementByID(id)
	if err != nil {
		return nil, err
	}
	t, ok := e.(Table)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotTable, id)
	}
	return t, nil
}
