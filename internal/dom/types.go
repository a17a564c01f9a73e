// Package dom describes the narrow slice of a rendered page the page helpers
// touch: elements looked up by id, their inline style, checked state and text,
// and the rows of a table.
package dom

import "errors"

// Document errors.
var (
	ErrNotFound = errors.New("element not found")
	ErrNotTable = errors.New("element is not a table")
)

// Style properties and values used by the helpers.
const (
	StyleDisplay = "display"
	StyleColor   = "color"

	DisplayNone    = "none"
	DisplayBlock   = "block"
	DisplayInitial = "initial"
)

// Element represents a single addressable page element.
type Element interface {
	// ID returns the element identifier.
	ID() string

	// Style returns an inline style property or "" if unset.
	Style(prop string) string

	// SetStyle sets an inline style property.
	SetStyle(prop, value string)

	// Checked returns the element checked state.
	Checked() bool

	// SetChecked sets the element checked state.
	SetChecked(bool)

	// Text returns the element text content.
	Text() string

	// SetText replaces the element text content.
	SetText(string)
}

// Row represents a table row.
type Row interface {
	Element

	// Cells returns the row cells in column order.
	Cells() []Element
}

// Table represents a table element. Rows include the header row.
type Table interface {
	Element

	// Rows returns the table rows in document order.
	Rows() []Row

	// InsertBefore moves row so it sits right before ref.
	InsertBefore(row, ref Row) error
}

// Document looks up page elements.
type Document interface {
	// ElementByID returns the element with the given id.
	ElementByID(id string) (Element, error)

	// TableByID returns the table with the given id.
	TableByID(id string) (Table, error)
}
