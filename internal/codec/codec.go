// Package codec provides the document formats the command line reads and
// writes, and a registry to look them up by name.
package codec

import (
	"log/slog"

	"github.com/roboco-io/richmark/internal/doc"
)

// Codec converts between a serialized format and doc.Document.
type Codec interface {
	// Name returns the format identifier (e.g., "html", "slate").
	Name() string

	// Extensions returns the file extensions of the format, with the dot.
	Extensions() []string

	// Decode reads a document. Formats that can yield nothing return
	// fallback in that case.
	Decode(data []byte, fallback doc.Document) (doc.Document, error)

	// Encode writes a document.
	Encode(d doc.Document) ([]byte, error)
}

// Options contains codec configuration options.
type Options struct {
	Sanitize           bool // strip markup outside the known vocabulary before parsing
	CollapseWhitespace bool // collapse insignificant whitespace before parsing
	AlignStyle         bool // read and write text-align styles in markup
	Pretty             bool // indent JSON output
	Logger             *slog.Logger
}

// DefaultOptions returns default codec options.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}

// Standard returns a registry holding the html, slate and tiptap codecs
// configured with opts.
func Standard(opts Options) *Registry {
	r := NewRegistry()
	for _, c := range []Codec{NewHTML(opts), NewSlate(opts), NewTipTap(opts)} {
		// names are distinct, registration cannot fail
		_ = r.Register(c)
	}
	return r
}
