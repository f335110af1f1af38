// Package markup converts between a small HTML subset and doc.Document.
//
// The parser accepts strong, em, u and code as marks and blockquote, h1, h2,
// ul, ol, li and pre as blocks; every other element becomes a paragraph.
// The serializer writes the same vocabulary back, so that
// Parse(Serialize(d)) keeps every block kind, leaf text and mark set.
//
// Both directions are pure functions and safe for concurrent use.
package markup

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"github.com/roboco-io/richmark/internal/doc"
)

// Parser converts markup into a document. A Parser is immutable after
// construction.
type Parser struct {
	opts   options
	policy *bluemonday.Policy
}

// NewParser creates a parser with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{opts: buildOptions(opts)}
	if p.opts.sanitize {
		p.policy = newPolicy(p.opts.rules, p.opts.alignStyle)
	}
	return p
}

var defaultParser = NewParser()

// Parse converts markup into a document using the default vocabulary.
// If nothing survives parsing, fallback is returned unchanged.
func Parse(markup string, fallback doc.Document, opts ...Option) doc.Document {
	if len(opts) == 0 {
		return defaultParser.Parse(markup, fallback)
	}
	return NewParser(opts...).Parse(markup, fallback)
}

// Parse converts markup into a document. If the markup yields no top-level
// block, fallback itself is returned.
func (p *Parser) Parse(markup string, fallback doc.Document) doc.Document {
	src := p.prepare(markup)

	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		p.opts.logger.Debug("markup tree parse failed", "err", err)
		return fallback
	}
	body := findElement(root, "body")
	if body == nil {
		return fallback
	}

	var nodes []doc.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, p.walk(c)...)
	}

	out := topLevel(nodes)
	if len(out) == 0 {
		p.opts.logger.Debug("markup yielded no blocks, using fallback", "fallback_blocks", len(fallback))
		return fallback
	}
	p.opts.logger.Debug("markup parsed", "blocks", len(out))
	return out
}

func (p *Parser) prepare(markup string) string {
	src := markup
	if p.policy != nil {
		src = p.policy.Sanitize(src)
	}
	if p.opts.collapseWhitespace {
		src = collapseWhitespace(src, p.opts.logger)
	}
	return src
}

// walk returns the flattened nodes produced by n and its descendants.
func (p *Parser) walk(n *html.Node) []doc.Node {
	switch n.Type {
	case html.TextNode:
		return []doc.Node{doc.Leaf{Text: n.Data}}
	case html.ElementNode:
	default:
		// comments and doctypes carry no content
		return nil
	}

	var children []doc.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		children = append(children, p.walk(c)...)
	}

	rule, ok := p.opts.rules.Lookup(n.Data)
	if ok && rule.IsMark() {
		return applyMark(children, rule.Mark)
	}

	kind := doc.KindParagraph
	switch {
	case ok:
		kind = rule.Kind
	case len(children) == 0:
		return nil
	}
	if !kind.HoldsBlocks() && hasBlock(children) {
		return p.lift(kind, n, children)
	}
	return []doc.Node{p.wrap(kind, n, children)}
}

// lift handles an element of a leaf-only kind that ended up around blocks,
// such as a div holding paragraphs. The nested blocks move up a level and
// each run of leaves between them becomes a block of kind.
func (p *Parser) lift(kind doc.Kind, n *html.Node, children []doc.Node) []doc.Node {
	var (
		out []doc.Node
		run []doc.Node
	)
	flush := func() {
		if !isBlankRun(run) {
			out = append(out, p.wrap(kind, n, run))
		}
		run = nil
	}
	for _, c := range children {
		if _, isLeaf := c.(doc.Leaf); isLeaf {
			run = append(run, c)
			continue
		}
		flush()
		out = append(out, c)
	}
	flush()
	return out
}

// applyMark sets m on every leaf. Blocks nested inside a mark tag pass
// through untouched and their leaves keep their own marks.
func applyMark(nodes []doc.Node, m doc.Mark) []doc.Node {
	out := make([]doc.Node, len(nodes))
	for i, n := range nodes {
		if l, ok := n.(doc.Leaf); ok {
			out[i] = l.WithMark(m)
		} else {
			out[i] = n
		}
	}
	return out
}

func (p *Parser) wrap(kind doc.Kind, n *html.Node, children []doc.Node) doc.Block {
	switch {
	case kind.IsList():
		children = listChildren(children)
	case hasBlock(children):
		children = groupLeaves(children, doc.KindParagraph)
	}
	if len(children) == 0 {
		children = []doc.Node{doc.Leaf{}}
		if kind.IsList() {
			children = []doc.Node{doc.NewBlock(doc.KindListItem, doc.Leaf{})}
		}
	}

	b := doc.NewBlock(kind, children...)
	if p.opts.alignStyle {
		if a, ok := alignFromStyle(attr(n, "style"), p.opts.logger); ok {
			b = b.WithAlign(a)
		}
	}
	return b
}

// listChildren keeps a list container made of list items only: blank text
// between items is dropped, stray text and other blocks are wrapped into
// items of their own.
func listChildren(nodes []doc.Node) []doc.Node {
	grouped := groupLeaves(nodes, doc.KindListItem)
	out := make([]doc.Node, 0, len(grouped))
	for _, n := range grouped {
		b := n.(doc.Block)
		if b.Kind != doc.KindListItem {
			b = doc.NewBlock(doc.KindListItem, b)
		}
		out = append(out, b)
	}
	return out
}

// groupLeaves wraps every run of consecutive leaves into a block of kind.
// Runs of blank leaves are dropped.
func groupLeaves(nodes []doc.Node, kind doc.Kind) []doc.Node {
	var (
		out []doc.Node
		run []doc.Node
	)
	flush := func() {
		if !isBlankRun(run) {
			out = append(out, doc.NewBlock(kind, run...))
		}
		run = nil
	}
	for _, n := range nodes {
		if _, ok := n.(doc.Leaf); ok {
			run = append(run, n)
			continue
		}
		flush()
		out = append(out, n)
	}
	flush()
	return out
}

// topLevel turns the body's nodes into a document: blocks are kept, runs of
// text become paragraphs.
func topLevel(nodes []doc.Node) doc.Document {
	grouped := groupLeaves(nodes, doc.KindParagraph)
	out := make(doc.Document, 0, len(grouped))
	for _, n := range grouped {
		out = append(out, n.(doc.Block))
	}
	return out
}

func isBlankRun(run []doc.Node) bool {
	for _, n := range run {
		if l, ok := n.(doc.Leaf); ok && !l.IsBlank() {
			return false
		}
	}
	return true
}

func hasBlock(nodes []doc.Node) bool {
	for _, n := range nodes {
		if _, ok := n.(doc.Block); ok {
			return true
		}
	}
	return false
}

func findElement(root *html.Node, tag string) *html.Node {
	var el *html.Node
	iterNodes(root, func(n *html.Node) bool {
		if el != nil {
			return true
		}
		if n.Type == html.ElementNode && n.Data == tag {
			el = n
			return true
		}
		return false
	})
	return el
}

// iterNodes visits the tree depth-first. Returning true from f skips the
// children of that node.
func iterNodes(node *html.Node, f func(n *html.Node) bool) {
	if f(node) {
		return
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		iterNodes(c, f)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
