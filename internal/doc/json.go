package doc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrInvalidNode is returned for a JSON node that is neither a leaf nor a block.
	ErrInvalidNode = errors.New("invalid node")
	// ErrUnknownKind is returned for a block type outside the supported kinds.
	ErrUnknownKind = errors.New("unknown block type")
	// ErrUnknownAlign is returned for an align value outside left/center/right/justify.
	ErrUnknownAlign = errors.New("unknown align")
	// ErrEmptyDocument is returned when a document has no blocks.
	ErrEmptyDocument = errors.New("empty document")
)

// blockJSON is the Slate element wire shape.
type blockJSON struct {
	Type     Kind   `json:"type"`
	Align    Align  `json:"align,omitempty"`
	Children []Node `json:"children"`
}

// nodeProbe captures enough of a JSON node to tell leaves from blocks.
type nodeProbe struct {
	Text     *string           `json:"text"`
	Type     *string           `json:"type"`
	Align    string            `json:"align"`
	Children []json.RawMessage `json:"children"`
	Marks
}

// MarshalJSON encodes the block as a Slate element.
func (b Block) MarshalJSON() ([]byte, error) {
	children := b.Children
	if children == nil {
		children = []Node{}
	}
	return json.Marshal(blockJSON{
		Type:     b.Kind,
		Align:    b.Align,
		Children: children,
	})
}

// UnmarshalJSON decodes a Slate element.
func (b *Block) UnmarshalJSON(data []byte) error {
	n, err := decodeNode(data, "")
	if err != nil {
		return err
	}
	blk, ok := n.(Block)
	if !ok {
		return fmt.Errorf("%w: expected block, got leaf", ErrInvalidNode)
	}
	*b = blk
	return nil
}

// UnmarshalJSON decodes a Slate value: an array of top-level elements.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	out := make(Document, 0, len(raw))
	for i, r := range raw {
		path := fmt.Sprintf("[%d]", i)
		n, err := decodeNode(r, path)
		if err != nil {
			return err
		}
		blk, ok := n.(Block)
		if !ok {
			return fmt.Errorf("%s: %w: leaf at top level", path, ErrInvalidNode)
		}
		out = append(out, blk)
	}
	*d = out
	return nil
}

// EncodeJSON encodes a document as Slate JSON. Nil documents encode as [].
func EncodeJSON(d Document) ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	return json.Marshal(d)
}

// EncodeJSONIndent is EncodeJSON with indentation.
func EncodeJSONIndent(d Document, indent string) ([]byte, error) {
	if d == nil {
		d = Document{}
	}
	return json.MarshalIndent(d, "", indent)
}

// DecodeJSON decodes Slate JSON into a document. An empty array yields
// ErrEmptyDocument.
func DecodeJSON(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if len(d) == 0 {
		return nil, ErrEmptyDocument
	}
	return d, nil
}

func decodeNode(data []byte, path string) (Node, error) {
	var p nodeProbe
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", pathOrRoot(path), ErrInvalidNode, err)
	}

	if p.Text != nil && p.Children == nil && p.Type == nil {
		return Leaf{Text: *p.Text, Marks: p.Marks}, nil
	}
	if p.Type == nil && p.Children == nil {
		return nil, fmt.Errorf("%s: %w: neither text nor children", pathOrRoot(path), ErrInvalidNode)
	}

	kind := KindParagraph
	if p.Type != nil && *p.Type != "" {
		kind = Kind(*p.Type)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w: %q", pathOrRoot(path), ErrUnknownKind, kind)
	}
	align, ok := ParseAlign(p.Align)
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", pathOrRoot(path), ErrUnknownAlign, p.Align)
	}

	blk := Block{Kind: kind, Align: align, Children: make([]Node, 0, len(p.Children))}
	for i, raw := range p.Children {
		child, err := decodeNode(raw, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		blk.Children = append(blk.Children, child)
	}
	return blk, nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}
