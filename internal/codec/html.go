package codec

import (
	"github.com/roboco-io/richmark/internal/doc"
	"github.com/roboco-io/richmark/internal/markup"
)

// HTML reads and writes the markup subset understood by package markup.
type HTML struct {
	parser     *markup.Parser
	serializer *markup.Serializer
}

// NewHTML creates the markup codec.
func NewHTML(opts Options) *HTML {
	mo := []markup.Option{markup.WithLogger(opts.logger())}
	if opts.Sanitize {
		mo = append(mo, markup.WithSanitize())
	}
	if opts.CollapseWhitespace {
		mo = append(mo, markup.WithCollapseWhitespace())
	}
	if opts.AlignStyle {
		mo = append(mo, markup.WithAlignStyle())
	}
	return &HTML{
		parser:     markup.NewParser(mo...),
		serializer: markup.NewSerializer(mo...),
	}
}

// Name returns "html".
func (*HTML) Name() string { return FormatHTML }

// Extensions returns the markup file extensions.
func (*HTML) Extensions() []string { return []string{".html", ".htm", ".xhtml"} }

// Decode never fails: markup that yields nothing decodes to fallback.
func (h *HTML) Decode(data []byte, fallback doc.Document) (doc.Document, error) {
	return h.parser.Parse(string(data), fallback), nil
}

// Encode serializes d into markup. It never fails.
func (h *HTML) Encode(d doc.Document) ([]byte, error) {
	return []byte(h.serializer.Serialize(d)), nil
}
