package htmldoc

import (
	"fmt"
	"strings"

	"github.com/pagekit/pagekit/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element wraps an HTML element node.
type Element struct {
	node *html.Node
}

// ID returns the element id attribute.
func (e *Element) ID() string {
	return attr(e.node, "id")
}

// Style returns an inline style property.
func (e *Element) Style(prop string) string {
	return dom.ParseStyle(attr(e.node, "style")).Get(prop)
}

// SetStyle sets an inline style property, rewriting the style attribute.
func (e *Element) SetStyle(prop, value string) {
	st := dom.ParseStyle(attr(e.node, "style")).Set(prop, value)
	if len(st) == 0 {
		removeAttr(e.node, "style")
		return
	}
	setAttr(e.node, "style", st.String())
}

// Checked returns true when the checked attribute is present.
func (e *Element) Checked() bool {
	return hasAttr(e.node, "checked")
}

// SetChecked adds or removes the checked attribute.
func (e *Element) SetChecked(b bool) {
	if b {
		setAttr(e.node, "checked", "")
		return
	}
	removeAttr(e.node, "checked")
}

// Text returns the concatenated text content.
func (e *Element) Text() string {
	var sb strings.Builder
	collectText(e.node, &sb)
	return sb.String()
}

// SetText replaces all children with a single text node.
func (e *Element) SetText(s string) {
	for c := e.node.FirstChild; c != nil; c = e.node.FirstChild {
		e.node.RemoveChild(c)
	}
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Row wraps a tr node.
type Row struct {
	Element
}

// Cells returns the td and th children.
func (r *Row) Cells() []dom.Element {
	var cc []dom.Element
	for c := r.node.FirstChild; c != nil; c = c.NextSibling {
		if c.DataAtom == atom.Td || c.DataAtom == atom.Th {
			cc = append(cc, &Element{c})
		}
	}
	return cc
}

// Table wraps a table node.
type Table struct {
	Element
}

// Rows returns every tr of the table in document order, header sections
// included. Rows of nested tables are skipped.
func (t *Table) Rows() []dom.Row {
	var rr []dom.Row
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.DataAtom {
			case atom.Tr:
				rr = append(rr, &Row{Element{c}})
			case atom.Thead, atom.Tbody, atom.Tfoot:
				walk(c)
			}
		}
	}
	walk(t.node)

	return rr
}

// InsertBefore detaches row and reinserts it right before ref, in ref's
// parent section.
func (t *Table) InsertBefore(row, ref dom.Row) error {
	r, ok1 := row.(*Row)
	f, ok2 := ref.(*Row)
	if !ok1 || !ok2 {
		return fmt.Errorf("%w: foreign row in table %q", dom.ErrNotFound, t.ID())
	}
	if r.node == f.node {
		return nil
	}
	if r.node.Parent == nil || f.node.Parent == nil {
		return fmt.Errorf("%w: detached row in table %q", dom.ErrNotFound, t.ID())
	}
	r.node.Parent.RemoveChild(r.node)
	f.node.Parent.InsertBefore(r.node, f.node)

	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	aa := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		aa = append(aa, a)
	}
	n.Attr = aa
}
