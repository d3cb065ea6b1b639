// Package save implements the save-file extraction pipeline: reading a
// game save (an XML document) and converting it into the sorted system
// list consumed by the viewer.
package save

import (
	"encoding/xml"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"
)

// Attr is a single attribute on a Node.
type Attr struct {
	Name  string
	Value string
}

// Node is one element of a parsed save document. Text accumulates the
// character data directly inside the element.
type Node struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Node
}

// Document is the parsed tree for one save file.
type Document struct {
	root *Node
}

// Root returns the document element.
func (d *Document) Root() *Node { return d.root }

// Descendants yields every node in the document in document order.
func (d *Document) Descendants() iter.Seq[*Node] {
	return d.root.Descendants()
}

// Attr returns the value of the named attribute and whether it exists.
func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Descendants yields n and every node below it, pre-order depth first.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// DescendantsByTag yields the descendants of n (including n itself) with
// the given tag name, in document order.
func (n *Node) DescendantsByTag(tag string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for d := range n.Descendants() {
			if d.Tag == tag {
				if !yield(d) {
					return
				}
			}
		}
	}
}

// FirstByTag returns the first descendant of n with the given tag name.
func (n *Node) FirstByTag(tag string) (*Node, bool) {
	for d := range n.DescendantsByTag(tag) {
		return d, true
	}
	return nil, false
}

// HasDescendant reports whether any descendant of n carries the given tag
// name. Presence-only check; values are not inspected.
func (n *Node) HasDescendant(tag string) bool {
	_, ok := n.FirstByTag(tag)
	return ok
}

// LoadDocument reads the file at path and parses it into a Document.
// Unreadable or non-UTF-8 content yields an *IOError; content that is not
// well-formed XML yields a *ParseError.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &IOError{Path: path, Err: fmt.Errorf("content is not valid UTF-8")}
	}

	doc, err := ParseDocument(strings.NewReader(string(data)))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return doc, nil
}

// ParseDocument builds the node tree from XML input. Callers that need
// the loader's error taxonomy should go through LoadDocument.
func ParseDocument(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)

	var stack []*Node
	var root *Node
	rootClosed := false

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if rootClosed {
				return nil, fmt.Errorf("unexpected element %s after document end", t.Name.Local)
			}
			node := &Node{
				Tag:   t.Name.Local,
				Attrs: convertAttrs(t.Attr),
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			} else {
				root = node
			}
			stack = append(stack, node)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 && root != nil {
					rootClosed = true
				}
			}

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, io.ErrUnexpectedEOF
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed element %s", stack[len(stack)-1].Tag)
	}

	return &Document{root: root}, nil
}

func convertAttrs(attrs []xml.Attr) []Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(attrs))
	for i, a := range attrs {
		out[i] = Attr{Name: a.Name.Local, Value: a.Value}
	}
	return out
}
