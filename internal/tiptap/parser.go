package tiptap

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roboco-io/richmark/internal/doc"
)

// ErrNotDocument is returned when the root node is not of type "doc".
var ErrNotDocument = errors.New("tiptap: root node is not a document")

// Option configures conversion into a document.
type Option func(*converter)

// WithLogger sets the logger used for skipped node and mark types. The
// default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *converter) {
		if l != nil {
			c.logger = l
		}
	}
}

type converter struct {
	logger *slog.Logger
}

// ParseJSON decodes TipTap JSON from r.
func ParseJSON(r io.Reader) (Doc, error) {
	var td Doc
	if err := json.NewDecoder(r).Decode(&td); err != nil {
		return Doc{}, fmt.Errorf("decode tiptap json: %w", err)
	}
	if td.Type != typeDoc {
		return Doc{}, fmt.Errorf("%w: got %q", ErrNotDocument, td.Type)
	}
	return td, nil
}

// ToDocument converts a TipTap tree into a document. A list item or quote
// whose only child is a paragraph takes the paragraph's text directly.
// Unknown node types are skipped; if nothing is left, fallback is returned.
func ToDocument(td Doc, fallback doc.Document, opts ...Option) (doc.Document, error) {
	if td.Type != typeDoc {
		return nil, fmt.Errorf("%w: got %q", ErrNotDocument, td.Type)
	}

	c := &converter{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}

	out := make(doc.Document, 0, len(td.Content))
	for _, n := range td.Content {
		if b, ok := c.parseNode(n); ok {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return fallback, nil
	}
	return out, nil
}

func (c *converter) parseNode(n Node) (doc.Block, bool) {
	var b doc.Block
	switch n.Type {
	case typeParagraph:
		b = doc.NewBlock(doc.KindParagraph, c.parseInline(n.Content, true)...)
	case typeHeading:
		b = doc.NewBlock(headingKind(getAttrInt(n.Attrs, attrLevel)), c.parseInline(n.Content, true)...)
	case typeCodeBlock:
		b = doc.NewBlock(doc.KindCodeBlock, c.parseInline(n.Content, false)...)
	case typeBlockquote:
		b = c.parseContainer(doc.KindBlockQuote, n.Content)
	case typeListItem:
		b = c.parseContainer(doc.KindListItem, n.Content)
	case typeBulletList, typeOrderedList:
		b = c.parseList(n)
	default:
		c.logger.Warn("Unknown node type", "type", n.Type)
		return doc.Block{}, false
	}

	if align, ok := doc.ParseAlign(getAttrString(n.Attrs, attrTextAlign)); ok && align != doc.AlignNone {
		b = b.WithAlign(align)
	}
	return b, true
}

// headingKind maps heading levels onto the two heading kinds. Levels below
// the second collapse into heading-two.
func headingKind(level int) doc.Kind {
	if level <= 1 {
		return doc.KindHeadingOne
	}
	return doc.KindHeadingTwo
}

func (c *converter) parseContainer(kind doc.Kind, content []Node) doc.Block {
	var children []doc.Node
	for _, n := range content {
		if b, ok := c.parseNode(n); ok {
			children = append(children, b)
		}
	}

	var align doc.Align
	if len(children) == 1 {
		if p := children[0].(doc.Block); p.Kind == doc.KindParagraph {
			children, align = p.Children, p.Align
		}
	}
	if len(children) == 0 {
		children = []doc.Node{doc.Leaf{}}
	}
	return doc.NewBlock(kind, children...).WithAlign(align)
}

func (c *converter) parseList(n Node) doc.Block {
	kind := doc.KindBulletedList
	if n.Type == typeOrderedList {
		kind = doc.KindNumberedList
	}

	var items []doc.Node
	for _, child := range n.Content {
		b, ok := c.parseNode(child)
		if !ok {
			continue
		}
		if b.Kind != doc.KindListItem {
			b = doc.NewBlock(doc.KindListItem, b)
		}
		items = append(items, b)
	}
	if len(items) == 0 {
		items = []doc.Node{doc.NewBlock(doc.KindListItem, doc.Leaf{})}
	}
	return doc.NewBlock(kind, items...)
}

// parseInline converts text and hard-break nodes into leaves. A block
// without text gets a single empty leaf.
func (c *converter) parseInline(content []Node, withMarks bool) []doc.Node {
	var out []doc.Node
	for _, n := range content {
		switch n.Type {
		case typeText:
			l := doc.NewLeaf(n.Text)
			if withMarks {
				l = applyMarks(l, n.Marks, c.logger)
			}
			out = append(out, l)
		case typeHardBreak:
			out = append(out, doc.NewLeaf("\n"))
		default:
			c.logger.Warn("Unknown inline node type", "type", n.Type)
		}
	}
	if len(out) == 0 {
		out = []doc.Node{doc.Leaf{}}
	}
	return out
}
