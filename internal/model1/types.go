package model1

import "errors"

const NAValue = "n/a"

// ErrColumnRange is returned when a sort column does not exist on every row.
var ErrColumnRange = errors.New("column out of range")

// Direction represents a column sort direction
type Direction int

const (
	Unsorted Direction = iota
	Ascending
	Descending
)

func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return "none"
	}
}

// Flip returns the opposite direction. Unsorted flips to Ascending.
func (d Direction) Flip() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Indicator returns the header marker for the direction.
func (d Direction) Indicator() string {
	switch d {
	case Ascending:
		return "▲"
	case Descending:
		return "▼"
	default:
		return ""
	}
}

// Sequence represents an ordered collection of rows that can be compared by
// column and reordered.
type Sequence interface {
	// Len returns the number of rows.
	Len() int

	// Field returns the text of a row column.
	Field(row, col int) (string, bool)

	// MoveBefore moves row j right before row i.
	MoveBefore(i, j int) error
}

// Comparer orders two cell values. Unordered values return false both ways.
type Comparer interface {
	Less(a, b string) bool
}

// ComparerFunc adapts a function to a Comparer.
type ComparerFunc func(a, b string) bool

// Less calls f(a, b).
func (f ComparerFunc) Less(a, b string) bool {
	return f(a, b)
}
