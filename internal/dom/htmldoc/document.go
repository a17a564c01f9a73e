// Package htmldoc implements dom.Document over a parsed HTML page.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pagekit/pagekit/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an HTML page.
type Document struct {
	root *html.Node
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML page held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Load reads an HTML page from disk.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page %q: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Render writes the page back out.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the rendered page.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Save writes the page to disk.
func (d *Document) Save(path string) error {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write page %q: %w", path, err)
	}
	return nil
}

// ElementByID returns the first element carrying the given id attribute.
func (d *Document) ElementByID(id string) (dom.Element, error) {
	n := findByID(d.root, id)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", dom.ErrNotFound, id)
	}
	if n.DataAtom == atom.Tr {
		return &Row{Element: Element{n}}, nil
	}
	if n.DataAtom == atom.Table {
		return &Table{Element: Element{n}}, nil
	}
	return &Element{n}, nil
}

// TableByID returns the table carrying the given id attribute.
func (d *Document) TableByID(id string) (dom.Table, error) {
	n := findByID(d.root, id)
	if n == nil {
		return nil, fmt.Errorf("%w: %q", dom.ErrNotFound, id)
	}
	if n.DataAtom != atom.Table {
		return nil, fmt.Errorf("%w: %q is <%s>", dom.ErrNotTable, id, n.Data)
	}
	return &Table{Element: Element{n}}, nil
}

func findByID(n *html.Node, id string) *html.Node {
	if id == "" {
		return nil
	}
	if n.Type == html.ElementNode && attr(n, "id") == id {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if f := findByID(c, id); f != nil {
			return f
		}
	}
	return nil
}
