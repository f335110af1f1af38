package markup

import (
	"sort"
	"strings"

	"github.com/roboco-io/richmark/internal/doc"
)

// Rule tells the parser what to do with an element. Exactly one of Mark and
// Kind is set: a mark rule flags every leaf below the element, a structural
// rule wraps everything below the element into one block of Kind.
type Rule struct {
	Mark doc.Mark
	Kind doc.Kind
}

// MarkRule returns an inline-formatting rule.
func MarkRule(m doc.Mark) Rule {
	return Rule{Mark: m}
}

// BlockRule returns a structural rule.
func BlockRule(k doc.Kind) Rule {
	return Rule{Kind: k}
}

// IsMark reports whether the rule is an inline-formatting rule.
func (r Rule) IsMark() bool {
	return r.Mark != ""
}

// Rules maps lower-case tag names to rules. Tags without a rule become
// paragraphs.
type Rules map[string]Rule

// DefaultRules returns a fresh copy of the recognized tag vocabulary.
func DefaultRules() Rules {
	return Rules{
		"strong":     MarkRule(doc.MarkBold),
		"em":         MarkRule(doc.MarkItalic),
		"u":          MarkRule(doc.MarkUnderline),
		"code":       MarkRule(doc.MarkCode),
		"blockquote": BlockRule(doc.KindBlockQuote),
		"h1":         BlockRule(doc.KindHeadingOne),
		"h2":         BlockRule(doc.KindHeadingTwo),
		"ul":         BlockRule(doc.KindBulletedList),
		"ol":         BlockRule(doc.KindNumberedList),
		"li":         BlockRule(doc.KindListItem),
		"pre":        BlockRule(doc.KindCodeBlock),
	}
}

// Lookup returns the rule for a tag name, case-insensitively.
func (r Rules) Lookup(tag string) (Rule, bool) {
	rule, ok := r[strings.ToLower(tag)]
	return rule, ok
}

// Tags returns the tag names with a rule, sorted.
func (r Rules) Tags() []string {
	tags := make([]string, 0, len(r))
	for tag := range r {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// clone copies the table so callers cannot change a parser after construction.
func (r Rules) clone() Rules {
	out := make(Rules, len(r))
	for k, v := range r {
		out[strings.ToLower(k)] = v
	}
	return out
}

// blockTags is the serializer's kind -> tag table. Kinds not listed are
// written as paragraphs.
var blockTags = map[doc.Kind]string{
	doc.KindBlockQuote:   "blockquote",
	doc.KindHeadingOne:   "h1",
	doc.KindHeadingTwo:   "h2",
	doc.KindNumberedList: "ol",
	doc.KindBulletedList: "ul",
	doc.KindListItem:     "li",
	doc.KindCodeBlock:    "pre",
	doc.KindParagraph:    "p",
}

// TagFor returns the tag the serializer writes for a block kind.
func TagFor(k doc.Kind) string {
	if tag, ok := blockTags[k]; ok {
		return tag
	}
	return "p"
}

// markTags is the serializer's mark -> tag table.
var markTags = map[doc.Mark]string{
	doc.MarkBold:      "strong",
	doc.MarkItalic:    "em",
	doc.MarkUnderline: "u",
	doc.MarkCode:      "code",
}
