package model1

import (
	"fmt"
	"strings"
)

// Fields represents a row's cell values
type Fields []string

func (f Fields) Clone() Fields {
	out := make(Fields, len(f))
	copy(out, f)
	return out
}

// IsBlank returns true if the value holds only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Row represents a collection of columns
type Row struct {
	ID     string
	Fields Fields
}

func NewRow(size int) Row {
	return Row{Fields: make([]string, size)}
}

func (r Row) Clone() Row {
	return Row{
		ID:     r.ID,
		Fields: r.Fields.Clone(),
	}
}

func (r Row) Len() int {
	return len(r.Fields)
}

// Rows represents a collection of rows. Rows is a Sequence.
type Rows []Row

func (r Rows) Clone() Rows {
	out := make(Rows, len(r))
	for i, row := range r {
		out[i] = row.Clone()
	}
	return out
}

func (r Rows) Len() int {
	return len(r)
}

func (r Rows) Field(row, col int) (string, bool) {
	if row < 0 || row >= len(r) || col < 0 || col >= len(r[row].Fields) {
		return "", false
	}
	return r[row].Fields[col], true
}

// MoveBefore moves row j right before row i, shifting rows i..j-1 down.
func (r Rows) MoveBefore(i, j int) error {
	if i < 0 || j < 0 || i >= len(r) || j >= len(r) {
		return fmt.Errorf("row index out of range: move %d before %d", j, i)
	}
	if j < i {
		return fmt.Errorf("unable to move row %d forward to %d", j, i)
	}
	row := r[j]
	copy(r[i+1:j+1], r[i:j])
	r[i] = row

	return nil
}

// IDs returns the row ids in order.
func (r Rows) IDs() []string {
	ids := make([]string, len(r))
	for i, row := range r {
		ids[i] = row.ID
	}
	return ids
}

// Column returns a column's values in row order.
func (r Rows) Column(col int) []string {
	out := make([]string, 0, len(r))
	for _, row := range r {
		if col < len(row.Fields) {
			out = append(out, row.Fields[col])
		}
	}
	return out
}
