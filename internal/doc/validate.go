package doc

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument wraps every violation reported by Validate.
var ErrInvalidDocument = errors.New("invalid document")

// Validate checks the structural invariants a widget relies on: known kinds
// and alignments, no childless block, and list containers holding list items
// only.
func Validate(d Document) error {
	if len(d) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyDocument)
	}
	for i, b := range d {
		if err := validateBlock(b, fmt.Sprintf("[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(b Block, path string) error {
	if !b.Kind.Valid() {
		return fmt.Errorf("%w: %s: %w: %q", ErrInvalidDocument, path, ErrUnknownKind, b.Kind)
	}
	if _, ok := ParseAlign(string(b.Align)); !ok {
		return fmt.Errorf("%w: %s: %w: %q", ErrInvalidDocument, path, ErrUnknownAlign, b.Align)
	}
	if len(b.Children) == 0 {
		return fmt.Errorf("%w: %s: block has no children", ErrInvalidDocument, path)
	}
	for i, c := range b.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		switch n := c.(type) {
		case Leaf:
			if b.Kind.IsList() {
				return fmt.Errorf("%w: %s: leaf directly inside %s", ErrInvalidDocument, childPath, b.Kind)
			}
		case Block:
			if !b.Kind.HoldsBlocks() {
				return fmt.Errorf("%w: %s: %s inside %s", ErrInvalidDocument, childPath, n.Kind, b.Kind)
			}
			if b.Kind.IsList() && n.Kind != KindListItem {
				return fmt.Errorf("%w: %s: %s inside %s", ErrInvalidDocument, childPath, n.Kind, b.Kind)
			}
			if err := validateBlock(n, childPath); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s: %w", ErrInvalidDocument, childPath, ErrInvalidNode)
		}
	}
	return nil
}
