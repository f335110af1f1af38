package codec

import (
	"errors"
	"fmt"

	"github.com/roboco-io/richmark/internal/doc"
)

// Slate reads and writes the editor's native JSON value.
type Slate struct {
	pretty bool
}

// NewSlate creates the Slate JSON codec.
func NewSlate(opts Options) *Slate {
	return &Slate{pretty: opts.Pretty}
}

// Name returns "slate".
func (*Slate) Name() string { return FormatSlate }

// Extensions returns the Slate file extensions.
func (*Slate) Extensions() []string { return []string{".json", ".slate"} }

// Decode parses and validates a Slate value. An empty array decodes to
// fallback.
func (*Slate) Decode(data []byte, fallback doc.Document) (doc.Document, error) {
	d, err := doc.DecodeJSON(data)
	if errors.Is(err, doc.ErrEmptyDocument) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode slate: %w", err)
	}
	if err := doc.Validate(d); err != nil {
		return nil, fmt.Errorf("decode slate: %w", err)
	}
	return d, nil
}

// Encode writes d as a Slate JSON array, indented when pretty output is on.
func (s *Slate) Encode(d doc.Document) ([]byte, error) {
	if s.pretty {
		return doc.EncodeJSONIndent(d, "  ")
	}
	return doc.EncodeJSON(d)
}
