package dom

import "strings"

// Declaration is a single inline style property.
type Declaration struct {
	Prop  string
	Value string
}

// InlineStyle is an ordered inline style attribute.
type InlineStyle []Declaration

// ParseStyle parses a style attribute such as "display: none; color: red".
// Malformed declarations are dropped.
func ParseStyle(s string) InlineStyle {
	var st InlineStyle
	for _, decl := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		st = st.Set(prop, strings.TrimSpace(val))
	}
	return st
}

// Get returns a property value or "".
func (s InlineStyle) Get(prop string) string {
	prop = strings.ToLower(prop)
	for _, d := range s {
		if d.Prop == prop {
			return d.Value
		}
	}
	return ""
}

// Set updates a property in place or appends it. An empty value removes it.
func (s InlineStyle) Set(prop, value string) InlineStyle {
	prop = strings.ToLower(prop)
	for i, d := range s {
		if d.Prop != prop {
			continue
		}
		if value == "" {
			return append(s[:i], s[i+1:]...)
		}
		s[i].Value = value
		return s
	}
	if value == "" {
		return s
	}
	return append(s, Declaration{Prop: prop, Value: value})
}

// String formats the style back into attribute form.
func (s InlineStyle) String() string {
	parts := make([]string, 0, len(s))
	for _, d := range s {
		parts = append(parts, d.Prop+": "+d.Value)
	}
	return strings.Join(parts, "; ")
}
