package model1

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/fvbommel/sortorder"
)

// Compare policy names.
const (
	PolicyText    = "text"
	PolicyNumeric = "numeric"
	PolicyNatural = "natural"
)

var (
	// TextCompare compares lower-cased text byte-wise.
	TextCompare Comparer = ComparerFunc(lessText)

	// NumberCompare compares cells parsed as numbers.
	NumberCompare Comparer = ComparerFunc(lessNumber)

	// NaturalCompare compares lower-cased text in natural order, so that
	// "row2" sorts before "row10".
	NaturalCompare Comparer = ComparerFunc(lessNatural)
)

// ComparerFor returns the comparer for a numeric flag and a text policy.
func ComparerFor(numeric bool, policy string) Comparer {
	if numeric {
		return NumberCompare
	}
	if policy == PolicyNatural {
		return NaturalCompare
	}
	return TextCompare
}

// IsPolicy checks a text compare policy name.
func IsPolicy(s string) bool {
	return s == PolicyText || s == PolicyNatural
}

func lessText(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

func lessNatural(a, b string) bool {
	return sortorder.NaturalLess(strings.ToLower(a), strings.ToLower(b))
}

// NaN never orders, so rows holding garbage stay where they are relative to
// their neighbours.
func lessNumber(a, b string) bool {
	return ParseNumber(a) < ParseNumber(b)
}

// ParseNumber converts cell text to a number. Blank text is zero and
// anything unparseable is NaN.
func ParseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// IsNumber returns true if s parses to a number.
func IsNumber(s string) bool {
	return !math.IsNaN(ParseNumber(s))
}

// SortedIDs returns map keys in natural order.
func SortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Sort(sortorder.Natural(ids))
	return ids
}
