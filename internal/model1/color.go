package model1

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	// StdColor row default color
	StdColor = "white"

	// HighlightColor row selected color
	HighlightColor = "red"
)

// NormalizeColor lower-cases a CSS color and checks it against the named
// color table. Hex colors (#rgb, #rrggbb) pass through.
func NormalizeColor(s string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(s))
	if c == "" {
		return "", fmt.Errorf("empty color")
	}
	if strings.HasPrefix(c, "#") {
		if len(c) != 4 && len(c) != 7 {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		if tcell.GetColor(expandHex(c)) == tcell.ColorDefault {
			return "", fmt.Errorf("invalid hex color %q", s)
		}
		return c, nil
	}
	if _, ok := tcell.ColorNames[c]; !ok {
		return "", fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}

// SameColor compares two CSS colors ignoring case and padding.
func SameColor(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func expandHex(c string) string {
	if len(c) != 4 {
		return c
	}
	return "#" + strings.Repeat(c[1:2], 2) + strings.Repeat(c[2:3], 2) + strings.Repeat(c[3:4], 2)
}

// ColorHex returns a CSS color as #rrggbb.
func ColorHex(s string) (string, bool) {
	c, err := NormalizeColor(s)
	if err != nil {
		return "", false
	}
	hex := tcell.GetColor(expandHex(c)).Hex()
	if hex < 0 {
		return "", false
	}
	return fmt.Sprintf("#%06x", hex), true
}
