package markup

import (
	"log/slog"
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/roboco-io/richmark/internal/doc"
)

const textAlignProperty = "text-align"

// alignFromStyle reads text-align out of an inline style attribute. The last
// declaration wins, as in a browser.
func alignFromStyle(style string, logger *slog.Logger) (doc.Align, bool) {
	if strings.TrimSpace(style) == "" {
		return doc.AlignNone, false
	}

	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		logger.Debug("Ignoring malformed style attribute", "style", style, "err", err)
		return doc.AlignNone, false
	}

	align, found := doc.AlignNone, false
	for _, d := range decls {
		if !strings.EqualFold(d.Property, textAlignProperty) {
			continue
		}
		a, ok := doc.ParseAlign(d.Value)
		if !ok || a == doc.AlignNone {
			logger.Debug("Ignoring unknown text-align", "value", d.Value)
			continue
		}
		align, found = a, true
	}
	return align, found
}

func styleForAlign(a doc.Align) string {
	return textAlignProperty + ":" + string(a)
}
