// Package page implements the page helpers bound to the admin templates:
// the assignment field toggle, the conditional submit reveal, row selection
// and column sorting.
package page

import (
	"strconv"
	"strings"

	"github.com/pagekit/pagekit/internal/dom"
	"github.com/pagekit/pagekit/internal/model1"
)

// Layout defaults.
const (
	DefaultAssignField     = "assignedto"
	DefaultAdminValue      = "1"
	DefaultCompanionSuffix = "U"
)

// CompanionFunc maps a row id to the id of its selection checkbox.
type CompanionFunc func(rowID string) string

// SuffixCompanion names companions by appending a suffix to the row id.
func SuffixCompanion(suffix string) CompanionFunc {
	return func(rowID string) string {
		return rowID + suffix
	}
}

// TableCompanion looks companions up in a table, falling back to fallback
// for rows it does not list.
func TableCompanion(table map[string]string, fallback CompanionFunc) CompanionFunc {
	return func(rowID string) string {
		if id, ok := table[rowID]; ok {
			return id
		}
		return fallback(rowID)
	}
}

// Layout describes the element ids and style values the templates render.
type Layout struct {
	AssignField    string
	AdminValue     string
	ShownDisplay   string
	SubmitDisplay  string
	HighlightColor string
	BaselineColor  string
	Compare        string
	Companion      CompanionFunc
}

// NewLayout returns the layout used by the stock templates.
func NewLayout() Layout {
	return Layout{
		AssignField:    DefaultAssignField,
		AdminValue:     DefaultAdminValue,
		ShownDisplay:   dom.DisplayBlock,
		SubmitDisplay:  dom.DisplayInitial,
		HighlightColor: model1.HighlightColor,
		BaselineColor:  model1.StdColor,
		Compare:        model1.PolicyText,
		Companion:      SuffixCompanion(DefaultCompanionSuffix),
	}
}

// IsAdmin checks a discriminator value against the admin sentinel. Values
// that both read as numbers compare numerically, so "01" matches "1".
func (l Layout) IsAdmin(value string) bool {
	v, s := strings.TrimSpace(value), strings.TrimSpace(l.AdminValue)
	if v == s {
		return true
	}
	fv, err1 := strconv.ParseFloat(v, 64)
	fs, err2 := strconv.ParseFloat(s, 64)

	return err1 == nil && err2 == nil && fv == fs
}

func (l Layout) companion(rowID string) string {
	if l.Companion == nil {
		return rowID + DefaultCompanionSuffix
	}
	return l.Companion(rowID)
}

func (l Layout) highlight(color string) string {
	if strings.TrimSpace(color) != "" {
		return color
	}
	if l.HighlightColor != "" {
		return l.HighlightColor
	}
	return model1.HighlightColor
}

func (l Layout) baseline() string {
	if l.BaselineColor != "" {
		return l.BaselineColor
	}
	return model1.StdColor
}
