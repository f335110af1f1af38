package markup

import (
	"log/slog"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const mimeHTML = "text/html"

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.Add(mimeHTML, &html.Minifier{
		KeepDocumentTags: true,
		KeepEndTags:      true,
		KeepQuotes:       true,
	})
	return m
}

// collapseWhitespace drops whitespace between tags and folds runs of spaces
// inside text. Content of pre elements is left alone. On failure the input is
// returned unchanged.
func collapseWhitespace(src string, logger *slog.Logger) string {
	out, err := minifier.String(mimeHTML, src)
	if err != nil {
		logger.Warn("Error collapsing whitespace", "err", err)
		return src
	}
	return out
}
