package codec

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
)

// Format names of the standard codecs.
const (
	FormatHTML   = "html"
	FormatSlate  = "slate"
	FormatTipTap = "tiptap"
)

// DetectFormat detects the format from the file path. It returns "" when the
// extension is not known.
func DetectFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return FormatHTML
	case ".json", ".slate":
		return FormatSlate
	case ".tiptap":
		return FormatTipTap
	default:
		return ""
	}
}

// Sniff detects the format from the content: a JSON object whose type is
// "doc" is TipTap, a JSON array is Slate, anything else is markup.
func Sniff(data []byte) string {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return FormatHTML
	}

	switch trimmed[0] {
	case '[':
		return FormatSlate
	case '{':
		var probe struct {
			Type string `json:"type"`
		}
		if json.Unmarshal(trimmed, &probe) == nil && probe.Type == "doc" {
			return FormatTipTap
		}
	}
	return FormatHTML
}

// Resolve picks the format for an input: the explicit name if given, then
// the file extension, then the content.
func Resolve(explicit, path string, data []byte) string {
	if explicit != "" {
		return explicit
	}
	if f := DetectFormat(path); f != "" {
		return f
	}
	return Sniff(data)
}
