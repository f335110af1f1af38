package doc

import "strings"

// Mark is a boolean formatting attribute of a leaf.
type Mark string

const (
	MarkBold      Mark = "bold"
	MarkItalic    Mark = "italic"
	MarkUnderline Mark = "underline"
	MarkCode      Mark = "code"
)

// ParseMark converts a mark name such as "bold" into a Mark.
func ParseMark(s string) (Mark, bool) {
	switch m := Mark(strings.ToLower(strings.TrimSpace(s))); m {
	case MarkBold, MarkItalic, MarkUnderline, MarkCode:
		return m, true
	}
	return "", false
}

// Marks is the set of marks active on a leaf. Unset is false.
// The field tags give the Slate leaf wire shape.
type Marks struct {
	Bold      bool `json:"bold,omitempty"`
	Italic    bool `json:"italic,omitempty"`
	Underline bool `json:"underline,omitempty"`
	Code      bool `json:"code,omitempty"`
}

// Has reports whether m is set.
func (ms Marks) Has(m Mark) bool {
	switch m {
	case MarkBold:
		return ms.Bold
	case MarkItalic:
		return ms.Italic
	case MarkUnderline:
		return ms.Underline
	case MarkCode:
		return ms.Code
	}
	return false
}

// With returns a copy with m set.
func (ms Marks) With(m Mark) Marks {
	return ms.set(m, true)
}

// Without returns a copy with m cleared.
func (ms Marks) Without(m Mark) Marks {
	return ms.set(m, false)
}

func (ms Marks) set(m Mark, v bool) Marks {
	switch m {
	case MarkBold:
		ms.Bold = v
	case MarkItalic:
		ms.Italic = v
	case MarkUnderline:
		ms.Underline = v
	case MarkCode:
		ms.Code = v
	}
	return ms
}

// Set returns the active marks ordered outermost first: bold, italic,
// underline, code.
func (ms Marks) Set() []Mark {
	var out []Mark
	for _, m := range []Mark{MarkBold, MarkItalic, MarkUnderline, MarkCode} {
		if ms.Has(m) {
			out = append(out, m)
		}
	}
	return out
}

// IsZero reports whether no mark is set.
func (ms Marks) IsZero() bool {
	return ms == Marks{}
}

// Leaf is a run of text with formatting. Leaves never nest.
type Leaf struct {
	Text string `json:"text"`
	Marks
}

func (Leaf) node() {}

// NewLeaf creates a leaf with the given text and marks.
func NewLeaf(text string, marks ...Mark) Leaf {
	l := Leaf{Text: text}
	for _, m := range marks {
		l.Marks = l.Marks.With(m)
	}
	return l
}

// WithMark returns a copy of the leaf with m set. Other marks are preserved.
func (l Leaf) WithMark(m Mark) Leaf {
	l.Marks = l.Marks.With(m)
	return l
}

// ToggleMark returns a copy of the leaf with m flipped.
func (l Leaf) ToggleMark(m Mark) Leaf {
	l.Marks = l.Marks.set(m, !l.Marks.Has(m))
	return l
}

// IsBlank reports whether the text is empty or whitespace only.
func (l Leaf) IsBlank() bool {
	return strings.TrimSpace(l.Text) == ""
}

// HotkeyMark returns the mark bound to an editor key combination such as
// "mod+b".
func HotkeyMark(combo string) (Mark, bool) {
	switch strings.ToLower(combo) {
	case "mod+b":
		return MarkBold, true
	case "mod+i":
		return MarkItalic, true
	case "mod+u":
		return MarkUnderline, true
	case "mod+`":
		return MarkCode, true
	}
	return "", false
}
