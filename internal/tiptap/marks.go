package tiptap

import (
	"log/slog"

	"github.com/roboco-io/richmark/internal/doc"
)

var markTypes = map[doc.Mark]string{
	doc.MarkBold:      "bold",
	doc.MarkItalic:    "italic",
	doc.MarkUnderline: "underline",
	doc.MarkCode:      "code",
}

var marksByType = map[string]doc.Mark{
	"bold":      doc.MarkBold,
	"italic":    doc.MarkItalic,
	"underline": doc.MarkUnderline,
	"code":      doc.MarkCode,
}

// applyMarks sets the TipTap marks on a leaf. Marks with no counterpart
// (links, colors, strike) are skipped.
func applyMarks(l doc.Leaf, marks []Mark, logger *slog.Logger) doc.Leaf {
	for _, m := range marks {
		dm, ok := marksByType[m.Type]
		if !ok {
			logger.Debug("Unknown mark type", "type", m.Type)
			continue
		}
		l = l.WithMark(dm)
	}
	return l
}

func serializeMarks(ms doc.Marks) []Mark {
	set := ms.Set()
	if len(set) == 0 {
		return nil
	}
	out := make([]Mark, 0, len(set))
	for _, m := range set {
		out = append(out, Mark{Type: markTypes[m]})
	}
	return out
}
