// Package doc defines the rich-text document model shared by the markup
// parser, the markup serializer and the editor widgets.
//
// A Document is an ordered sequence of blocks. Blocks carry a kind, an
// optional alignment and children; leaves carry text and boolean marks.
// All values are plain immutable trees: operations return new values and
// never modify their receivers.
package doc

import "strings"

// Node is either a Block or a Leaf.
type Node interface {
	node()
}

// PlainText returns the text of a node and all of its descendants.
func PlainText(n Node) string {
	switch x := n.(type) {
	case Leaf:
		return x.Text
	case Block:
		return x.Text()
	}
	return ""
}

// Document is the ordered sequence of top-level blocks of one editable document.
type Document []Block

// Len returns the number of top-level blocks.
func (d Document) Len() int {
	return len(d)
}

// IsEmpty reports whether the document has no blocks.
func (d Document) IsEmpty() bool {
	return len(d) == 0
}

// Text returns the plain text of the document, one line per top-level block.
func (d Document) Text() string {
	lines := make([]string, 0, len(d))
	for _, b := range d {
		lines = append(lines, b.Text())
	}
	return strings.Join(lines, "\n")
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	if d == nil {
		return nil
	}
	out := make(Document, len(d))
	for i, b := range d {
		out[i] = b.clone()
	}
	return out
}

// Equal reports whether two documents are structurally equal.
func (d Document) Equal(other Document) bool {
	if len(d) != len(other) {
		return false
	}
	for i := range d {
		if !Equal(d[i], other[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether two nodes are structurally equal: same kind, align and
// children for blocks, same text and marks for leaves.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case Leaf:
		y, ok := b.(Leaf)
		return ok && x == y
	case Block:
		y, ok := b.(Block)
		if !ok || x.Kind != y.Kind || x.Align != y.Align || len(x.Children) != len(y.Children) {
			return false
		}
		for i := range x.Children {
			if !Equal(x.Children[i], y.Children[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

// Walk calls fn for every node of the document in depth-first order.
// Returning false from fn skips the children of that node.
func (d Document) Walk(fn func(n Node, depth int) bool) {
	for _, b := range d {
		walk(b, 0, fn)
	}
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	if !fn(n, depth) {
		return
	}
	if b, ok := n.(Block); ok {
		for _, c := range b.Children {
			walk(c, depth+1, fn)
		}
	}
}
