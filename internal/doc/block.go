package doc

import "strings"

// Kind is the structural type of a block.
type Kind string

const (
	KindParagraph    Kind = "paragraph"
	KindHeadingOne   Kind = "heading-one"
	KindHeadingTwo   Kind = "heading-two"
	KindBlockQuote   Kind = "block-quote"
	KindBulletedList Kind = "bulleted-list"
	KindNumberedList Kind = "numbered-list"
	KindListItem     Kind = "list-item"
	KindCodeBlock    Kind = "code-block"
)

// Kinds lists every supported block kind.
func Kinds() []Kind {
	return []Kind{
		KindParagraph,
		KindHeadingOne,
		KindHeadingTwo,
		KindBlockQuote,
		KindBulletedList,
		KindNumberedList,
		KindListItem,
		KindCodeBlock,
	}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindParagraph, KindHeadingOne, KindHeadingTwo, KindBlockQuote,
		KindBulletedList, KindNumberedList, KindListItem, KindCodeBlock:
		return true
	}
	return false
}

// IsList reports whether k is a list container.
func (k Kind) IsList() bool {
	return k == KindBulletedList || k == KindNumberedList
}

// HoldsBlocks reports whether blocks of kind k may contain other blocks.
// Every other kind holds leaves only.
func (k Kind) HoldsBlocks() bool {
	switch k {
	case KindBlockQuote, KindBulletedList, KindNumberedList, KindListItem:
		return true
	}
	return false
}

// Align is the optional horizontal alignment of a block.
type Align string

const (
	AlignNone    Align = ""
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// ParseAlign converts a string such as "Center" into an Align.
// The empty string yields AlignNone.
func ParseAlign(s string) (Align, bool) {
	switch a := Align(strings.ToLower(strings.TrimSpace(s))); a {
	case AlignNone, AlignLeft, AlignCenter, AlignRight, AlignJustify:
		return a, true
	}
	return AlignNone, false
}

// Block is a structural document unit.
type Block struct {
	Kind     Kind
	Align    Align
	Children []Node
}

func (Block) node() {}

// NewBlock creates a block of the given kind.
func NewBlock(kind Kind, children ...Node) Block {
	return Block{
		Kind:     kind,
		Children: children,
	}
}

// Paragraph creates a paragraph holding the given leaves.
func Paragraph(leaves ...Leaf) Block {
	children := make([]Node, len(leaves))
	for i, l := range leaves {
		children[i] = l
	}
	return NewBlock(KindParagraph, children...)
}

// WithAlign returns a copy of the block with the alignment replaced.
func (b Block) WithAlign(a Align) Block {
	b.Align = a
	return b
}

// WithChildren returns a copy of the block with the children replaced.
func (b Block) WithChildren(children ...Node) Block {
	b.Children = children
	return b
}

// Text returns the concatenated text of all leaves below the block.
func (b Block) Text() string {
	var sb strings.Builder
	for _, c := range b.Children {
		sb.WriteString(PlainText(c))
	}
	return sb.String()
}

// Leaves returns all leaves below the block in reading order.
func (b Block) Leaves() []Leaf {
	var out []Leaf
	for _, c := range b.Children {
		switch n := c.(type) {
		case Leaf:
			out = append(out, n)
		case Block:
			out = append(out, n.Leaves()...)
		}
	}
	return out
}

// IsEmpty reports whether the block has no children or only empty leaves.
func (b Block) IsEmpty() bool {
	for _, c := range b.Children {
		switch n := c.(type) {
		case Leaf:
			if n.Text != "" {
				return false
			}
		case Block:
			if !n.IsEmpty() {
				return false
			}
		}
	}
	return true
}

func (b Block) clone() Block {
	if b.Children == nil {
		return b
	}
	children := make([]Node, len(b.Children))
	for i, c := range b.Children {
		if cb, ok := c.(Block); ok {
			children[i] = cb.clone()
		} else {
			children[i] = c
		}
	}
	b.Children = children
	return b
}
