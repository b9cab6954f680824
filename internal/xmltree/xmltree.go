// Package xmltree parses an XML document into an immutable, namespace-resolved
// element tree that can be queried by qualified tag name.
package xmltree

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Record is the read-only view of a source element that the mapping layer
// depends on. Any tree-like input can satisfy it.
type Record interface {
	// Name is the namespace-qualified tag of the element.
	Name() xml.Name
	// Text is the element's own character data. Text inside child elements is
	// not included, text following a child element is.
	Text() string
	// Attr looks up an attribute by qualified name.
	Attr(name xml.Name) (string, bool)
	// Children returns the direct child elements matching name, in document
	// order. A zero Local matches every child.
	Children(name xml.Name) []Record
}

// Node is an element of a parsed document.
type Node struct {
	name     xml.Name
	attrs    []xml.Attr
	text     string
	children []*Node
}

var _ Record = (*Node)(nil)

// Any matches every child in Children.
var Any = xml.Name{}

func (n *Node) Name() xml.Name { return n.name }

func (n *Node) Text() string { return n.text }

func (n *Node) Attr(name xml.Name) (string, bool) {
	for _, a := range n.attrs {
		if a.Name.Local == name.Local && a.Name.Space == name.Space {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) Children(name xml.Name) []Record {
	var out []Record
	for _, c := range n.children {
		if Matches(c.name, name) {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether tag satisfies the query. An empty query Local
// matches anything; an empty query Space matches only unqualified tags.
func Matches(tag, query xml.Name) bool {
	if query.Local == "" {
		return true
	}
	return tag.Local == query.Local && tag.Space == query.Space
}

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("xmltree: document has no root element")

// Parse reads a whole document and returns its root element. Declared
// encodings other than UTF-8 are transcoded.
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *Node
		stack []*Node
		text  []*strings.Builder
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("xmltree: parse: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{name: t.Name, attrs: append([]xml.Attr(nil), t.Attr...)}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xmltree: parse: multiple root elements")
				}
				root = n
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
			text = append(text, &strings.Builder{})
		case xml.EndElement:
			n := stack[len(stack)-1]
			n.text = text[len(text)-1].String()
			stack = stack[:len(stack)-1]
			text = text[:len(text)-1]
		case xml.CharData:
			if len(text) > 0 {
				text[len(text)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, ErrEmptyDocument
	}
	return root, nil
}

// ParseString is a convenience wrapper over Parse.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}

// Walk visits r and every descendant in document order.
func Walk(r Record, fn func(Record)) {
	fn(r)
	for _, c := range r.Children(Any) {
		Walk(c, fn)
	}
}
