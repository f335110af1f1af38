package codec

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/roboco-io/richmark/internal/doc"
	"github.com/roboco-io/richmark/internal/tiptap"
)

// TipTap reads and writes TipTap editor JSON.
type TipTap struct {
	pretty bool
	logger *slog.Logger
}

// NewTipTap creates the TipTap JSON codec.
func NewTipTap(opts Options) *TipTap {
	return &TipTap{pretty: opts.Pretty, logger: opts.logger()}
}

// Name returns "tiptap".
func (*TipTap) Name() string { return FormatTipTap }

// Extensions returns the TipTap file extensions.
func (*TipTap) Extensions() []string { return []string{".tiptap"} }

// Decode reads a TipTap doc. A doc with no usable content decodes to
// fallback.
func (t *TipTap) Decode(data []byte, fallback doc.Document) (doc.Document, error) {
	td, err := tiptap.ParseJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	d, err := tiptap.ToDocument(td, fallback, tiptap.WithLogger(t.logger))
	if err != nil {
		return nil, fmt.Errorf("decode tiptap: %w", err)
	}
	return d, nil
}

// Encode writes d as a TipTap doc.
func (t *TipTap) Encode(d doc.Document) ([]byte, error) {
	if t.pretty {
		return tiptap.SerializeIndent(d, "  ")
	}
	return tiptap.Serialize(d)
}
