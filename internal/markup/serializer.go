package markup

import (
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/roboco-io/richmark/internal/doc"
)

// Serializer converts documents into markup. A Serializer is immutable after
// construction.
type Serializer struct {
	opts options
}

// NewSerializer creates a serializer with the given options.
func NewSerializer(opts ...Option) *Serializer {
	return &Serializer{opts: buildOptions(opts)}
}

var defaultSerializer = NewSerializer()

// Serialize converts a document into markup.
func Serialize(d doc.Document, opts ...Option) string {
	if len(opts) == 0 {
		return defaultSerializer.Serialize(d)
	}
	return NewSerializer(opts...).Serialize(d)
}

// Serialize converts a document into markup. Blocks are concatenated with no
// separator.
func (s *Serializer) Serialize(d doc.Document) string {
	var sb strings.Builder
	for _, b := range d {
		s.writeBlock(&sb, b)
	}
	return sb.String()
}

// Write serializes d into w.
func (s *Serializer) Write(w io.Writer, d doc.Document) error {
	_, err := io.WriteString(w, s.Serialize(d))
	return err
}

func (s *Serializer) writeNodes(sb *strings.Builder, nodes []doc.Node) {
	for _, n := range nodes {
		switch x := n.(type) {
		case doc.Block:
			s.writeBlock(sb, x)
		case doc.Leaf:
			writeLeaf(sb, x)
		}
	}
}

func (s *Serializer) writeBlock(sb *strings.Builder, b doc.Block) {
	tag := TagFor(b.Kind)

	sb.WriteString("<" + tag)
	if s.opts.alignStyle && b.Align != doc.AlignNone {
		sb.WriteString(` style="` + styleForAlign(b.Align) + `"`)
	}
	sb.WriteString(">")

	// The tree parser drops one newline right after <pre>.
	if b.Kind == doc.KindCodeBlock && strings.HasPrefix(b.Text(), "\n") {
		sb.WriteString("\n")
	}
	s.writeNodes(sb, b.Children)

	sb.WriteString("</" + tag + ">")
}

// writeLeaf wraps the escaped text in the mark tags, code innermost and bold
// outermost, whatever order the marks were set in.
func writeLeaf(sb *strings.Builder, l doc.Leaf) {
	text := html.EscapeString(l.Text)
	for _, m := range []doc.Mark{doc.MarkCode, doc.MarkUnderline, doc.MarkItalic, doc.MarkBold} {
		if l.Has(m) {
			tag := markTags[m]
			text = "<" + tag + ">" + text + "</" + tag + ">"
		}
	}
	sb.WriteString(text)
}
