package tiptap

import (
	"encoding/json"

	"github.com/roboco-io/richmark/internal/doc"
)

// Serialize encodes a document as TipTap JSON.
func Serialize(d doc.Document) ([]byte, error) {
	return json.Marshal(FromDocument(d))
}

// SerializeIndent is like Serialize but indents the output.
func SerializeIndent(d doc.Document, indent string) ([]byte, error) {
	return json.MarshalIndent(FromDocument(d), "", indent)
}

// FromDocument converts a document into a TipTap tree. List items and quotes
// hold their text in paragraphs, as TipTap requires.
func FromDocument(d doc.Document) Doc {
	td := Doc{
		Type:    typeDoc,
		Content: make([]Node, 0, len(d)),
	}
	for _, b := range d {
		td.Content = append(td.Content, serializeBlock(b))
	}
	return td
}

func serializeBlock(b doc.Block) Node {
	node := Node{Type: nodeType(b.Kind)}

	switch b.Kind {
	case doc.KindHeadingOne:
		node.setAttr(attrLevel, 1)
	case doc.KindHeadingTwo:
		node.setAttr(attrLevel, 2)
	}
	if b.Align != doc.AlignNone {
		node.setAttr(attrTextAlign, string(b.Align))
	}

	switch b.Kind {
	case doc.KindBlockQuote, doc.KindListItem:
		node.Content = serializeContainer(b.Children, typeParagraph)
	case doc.KindBulletedList, doc.KindNumberedList:
		node.Content = serializeContainer(b.Children, typeListItem)
	case doc.KindCodeBlock:
		node.Content = serializeText(b.Leaves(), false)
	default:
		node.Content = serializeText(b.Leaves(), true)
	}
	return node
}

func nodeType(k doc.Kind) string {
	switch k {
	case doc.KindHeadingOne, doc.KindHeadingTwo:
		return typeHeading
	case doc.KindBlockQuote:
		return typeBlockquote
	case doc.KindBulletedList:
		return typeBulletList
	case doc.KindNumberedList:
		return typeOrderedList
	case doc.KindListItem:
		return typeListItem
	case doc.KindCodeBlock:
		return typeCodeBlock
	default:
		return typeParagraph
	}
}

// serializeContainer converts the children of a block that may only hold
// blocks. Runs of leaves are wrapped into a paragraph; with wrap set to
// listItem every child block that is not already an item is wrapped too.
func serializeContainer(children []doc.Node, wrap string) []Node {
	var (
		out []Node
		run []doc.Leaf
	)
	flush := func() {
		if len(run) == 0 {
			return
		}
		p := Node{Type: typeParagraph, Content: serializeText(run, true)}
		if wrap == typeListItem {
			p = Node{Type: typeListItem, Content: []Node{p}}
		}
		out = append(out, p)
		run = nil
	}

	for _, c := range children {
		switch n := c.(type) {
		case doc.Leaf:
			run = append(run, n)
		case doc.Block:
			flush()
			node := serializeBlock(n)
			if wrap == typeListItem && node.Type != typeListItem {
				node = Node{Type: typeListItem, Content: []Node{node}}
			}
			out = append(out, node)
		}
	}
	flush()
	return out
}

// serializeText converts leaves into text nodes. Empty leaves are omitted
// because TipTap rejects empty text nodes.
func serializeText(leaves []doc.Leaf, withMarks bool) []Node {
	var out []Node
	for _, l := range leaves {
		if l.Text == "" {
			continue
		}
		n := Node{Type: typeText, Text: l.Text}
		if withMarks {
			n.Marks = serializeMarks(l.Marks)
		}
		out = append(out, n)
	}
	return out
}

func (n *Node) setAttr(key string, v any) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	n.Attrs[key] = v
}
