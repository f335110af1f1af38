// Package tiptap converts documents to and from the JSON produced by the
// TipTap (ProseMirror) editor.
package tiptap

// Doc is the root node of a TipTap document.
type Doc struct {
	Type    string `json:"type"`
	Content []Node `json:"content,omitempty"`
}

// Node is a block or text node. Attributes are kept in a map because every
// node type carries a different set.
type Node struct {
	Type    string         `json:"type"`
	Attrs   map[string]any `json:"attrs,omitempty"`
	Content []Node         `json:"content,omitempty"`
	Marks   []Mark         `json:"marks,omitempty"`
	Text    string         `json:"text,omitempty"`
}

// Mark is inline formatting on a text node.
type Mark struct {
	Type  string         `json:"type"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

const (
	typeDoc         = "doc"
	typeParagraph   = "paragraph"
	typeHeading     = "heading"
	typeBlockquote  = "blockquote"
	typeBulletList  = "bulletList"
	typeOrderedList = "orderedList"
	typeListItem    = "listItem"
	typeCodeBlock   = "codeBlock"
	typeText        = "text"
	typeHardBreak   = "hardBreak"

	attrLevel     = "level"
	attrTextAlign = "textAlign"
)
