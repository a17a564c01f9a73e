package model1

import "reflect"

// Attrs represents column attributes
type Attrs struct {
	Align   int  // tview alignment
	Numeric bool // Compare as numbers (right-align)
	Hide    bool // Always hidden
}

// HeaderColumn represents a table header column
type HeaderColumn struct {
	Name string
	Attrs
}

// Header represents a table header (slice of columns)
type Header []HeaderColumn

func (h Header) Clone() Header {
	he := make(Header, len(h))
	copy(he, h)
	return he
}

func (h Header) Diff(header Header) bool {
	if len(h) != len(header) {
		return true
	}
	return !reflect.DeepEqual(h, header)
}

func (h Header) IndexOf(colName string) (int, bool) {
	for i, c := range h {
		if c.Name == colName {
			return i, true
		}
	}
	return -1, false
}

func (h Header) IsNumericCol(col int) bool {
	if col < 0 || col >= len(h) {
		return false
	}
	return h[col].Numeric
}

func (h Header) ColumnNames() []string {
	if len(h) == 0 {
		return nil
	}
	cc := make([]string, 0, len(h))
	for _, c := range h {
		if c.Hide {
			continue
		}
		cc = append(cc, c.Name)
	}
	return cc
}

// InferHeader builds a header from column names, flagging a column numeric
// when every non-blank body field parses as a number.
func InferHeader(names []string, rows Rows) Header {
	h := make(Header, len(names))
	for i, n := range names {
		h[i].Name = n
		h[i].Numeric = numericColumn(rows, i)
	}
	return h
}

func numericColumn(rows Rows, col int) bool {
	var seen bool
	for _, r := range rows {
		if col >= len(r.Fields) {
			return false
		}
		if IsBlank(r.Fields[col]) {
			continue
		}
		if !IsNumber(r.Fields[col]) {
			return false
		}
		seen = true
	}
	return seen
}
