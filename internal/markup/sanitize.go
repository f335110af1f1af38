package markup

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var textAlignRegexp = regexp.MustCompile(`(?i)^(left|center|right|justify)$`)

// newPolicy builds a sanitizer that keeps the tags named in rules plus the
// generic containers the parser turns into paragraphs. Everything else is
// unwrapped to its text; script and style bodies are removed.
func newPolicy(rules Rules, alignStyle bool) *bluemonday.Policy {
	tags := append(rules.Tags(), "p", "div")

	p := bluemonday.NewPolicy()
	p.AllowElements(tags...)
	if alignStyle {
		p.AllowStyles("text-align").Matching(textAlignRegexp).OnElements(tags...)
	}
	return p
}
