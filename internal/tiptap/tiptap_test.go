package tiptap

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboco-io/richmark/internal/doc"
)

var quiet = WithLogger(slog.New(slog.DiscardHandler))

func roundTrip(t *testing.T, d doc.Document) doc.Document {
	t.Helper()
	data, err := Serialize(d)
	require.NoError(t, err)

	td, err := ParseJSON(bytes.NewReader(data))
	require.NoError(t, err)

	got, err := ToDocument(td, nil, quiet)
	require.NoError(t, err)
	return got
}

func TestSerialize_Shape(t *testing.T) {
	d := doc.Document{
		doc.NewBlock(doc.KindHeadingTwo, doc.NewLeaf("T")).WithAlign(doc.AlignRight),
		doc.NewBlock(doc.KindBulletedList,
			doc.NewBlock(doc.KindListItem, doc.NewLeaf("a", doc.MarkBold, doc.MarkCode)),
		),
	}

	data, err := Serialize(d)
	require.NoError(t, err)

	assert.JSONEq(t, `{"type":"doc","content":[
		{"type":"heading","attrs":{"level":2,"textAlign":"right"},"content":[{"type":"text","text":"T"}]},
		{"type":"bulletList","content":[
			{"type":"listItem","content":[
				{"type":"paragraph","content":[
					{"type":"text","text":"a","marks":[{"type":"bold"},{"type":"code"}]}
				]}
			]}
		]}
	]}`, string(data))
}

func TestSerialize_EmptyLeavesOmitted(t *testing.T) {
	data, err := Serialize(doc.Document{doc.Paragraph(doc.NewLeaf(""))})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"doc","content":[{"type":"paragraph"}]}`, string(data))
}

func TestRoundTrip_Welcome(t *testing.T) {
	w := doc.Welcome()
	got := roundTrip(t, w)
	assert.True(t, w.Equal(got), "welcome changed after tiptap round-trip")
}

func TestRoundTrip_Kinds(t *testing.T) {
	d := doc.Document{
		doc.NewBlock(doc.KindHeadingOne, doc.NewLeaf("One")),
		doc.NewBlock(doc.KindHeadingTwo, doc.NewLeaf("Two", doc.MarkItalic)),
		doc.NewBlock(doc.KindNumberedList,
			doc.NewBlock(doc.KindListItem, doc.NewLeaf("x"), doc.NewLeaf("y", doc.MarkUnderline)),
			doc.NewBlock(doc.KindListItem, doc.NewLeaf("z")),
		),
		doc.NewBlock(doc.KindCodeBlock, doc.NewLeaf("fmt.Println(1)")),
		doc.Paragraph(doc.NewLeaf("end")).WithAlign(doc.AlignJustify),
	}

	got := roundTrip(t, d)
	assert.True(t, d.Equal(got), "document changed after tiptap round-trip")
}

func TestToDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  doc.Document
	}{
		{
			name: "unknown nodes are skipped",
			input: `{"type":"doc","content":[
				{"type":"table"},
				{"type":"paragraph","content":[{"type":"text","text":"x"},{"type":"mention"}]}
			]}`,
			want: doc.Document{doc.Paragraph(doc.NewLeaf("x"))},
		},
		{
			name: "unknown marks are skipped",
			input: `{"type":"doc","content":[{"type":"paragraph","content":[
				{"type":"text","text":"x","marks":[{"type":"link","attrs":{"href":"/"}},{"type":"bold"}]}
			]}]}`,
			want: doc.Document{doc.Paragraph(doc.NewLeaf("x", doc.MarkBold))},
		},
		{
			name:  "deep headings become heading-two",
			input: `{"type":"doc","content":[{"type":"heading","attrs":{"level":4},"content":[{"type":"text","text":"h"}]}]}`,
			want:  doc.Document{doc.NewBlock(doc.KindHeadingTwo, doc.NewLeaf("h"))},
		},
		{
			name:  "hard break",
			input: `{"type":"doc","content":[{"type":"paragraph","content":[{"type":"text","text":"a"},{"type":"hardBreak"},{"type":"text","text":"b"}]}]}`,
			want:  doc.Document{doc.Paragraph(doc.NewLeaf("a"), doc.NewLeaf("\n"), doc.NewLeaf("b"))},
		},
		{
			name: "quote keeps several paragraphs",
			input: `{"type":"doc","content":[{"type":"blockquote","content":[
				{"type":"paragraph","content":[{"type":"text","text":"a"}]},
				{"type":"paragraph","content":[{"type":"text","text":"b"}]}
			]}]}`,
			want: doc.Document{doc.NewBlock(doc.KindBlockQuote,
				doc.Paragraph(doc.NewLeaf("a")),
				doc.Paragraph(doc.NewLeaf("b")),
			)},
		},
		{
			name:  "empty list",
			input: `{"type":"doc","content":[{"type":"orderedList"}]}`,
			want: doc.Document{doc.NewBlock(doc.KindNumberedList,
				doc.NewBlock(doc.KindListItem, doc.NewLeaf("")))},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			td, err := ParseJSON(strings.NewReader(tc.input))
			require.NoError(t, err)

			got, err := ToDocument(td, nil, quiet)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %#v", got)
			assert.NoError(t, doc.Validate(got))
		})
	}
}

func TestToDocument_Fallback(t *testing.T) {
	fallback := doc.Welcome()

	got, err := ToDocument(Doc{Type: "doc", Content: []Node{{Type: "horizontalRule"}}}, fallback, quiet)
	require.NoError(t, err)
	assert.Same(t, &fallback[0], &got[0])
}

func TestToDocument_LogsUnknownTypes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	_, err := ToDocument(Doc{Type: "doc", Content: []Node{{Type: "spoiler"}}}, doc.Welcome(), WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "spoiler")
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := ParseJSON(strings.NewReader(`{"type":"paragraph"}`))
	assert.ErrorIs(t, err, ErrNotDocument)

	_, err = ParseJSON(strings.NewReader(`[`))
	assert.Error(t, err)

	_, err = ToDocument(Doc{}, nil)
	assert.ErrorIs(t, err, ErrNotDocument)
}
