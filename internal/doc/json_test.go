package doc

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON_SlateShape(t *testing.T) {
	d := Document{
		Paragraph(NewLeaf("plain"), NewLeaf("strong", MarkBold, MarkCode)).WithAlign(AlignCenter),
	}

	data, err := EncodeJSON(d)
	require.NoError(t, err)

	assert.JSONEq(t, `[{"type":"paragraph","align":"center","children":[
		{"text":"plain"},
		{"text":"strong","bold":true,"code":true}
	]}]`, string(data))
}

func TestEncodeJSON_Nil(t *testing.T) {
	data, err := EncodeJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestEncodeJSON_EmptyChildren(t *testing.T) {
	data, err := json.Marshal(Block{Kind: KindParagraph})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"paragraph","children":[]}`, string(data))
}

func TestDecodeJSON(t *testing.T) {
	input := `[
		{"type":"bulleted-list","children":[
			{"type":"list-item","children":[{"text":"a","italic":true}]},
			{"type":"list-item","children":[{"text":"b"}]}
		]},
		{"children":[{"text":""}]}
	]`

	d, err := DecodeJSON([]byte(input))
	require.NoError(t, err)
	require.Len(t, d, 2)

	assert.Equal(t, KindBulletedList, d[0].Kind)
	require.Len(t, d[0].Children, 2)
	item := d[0].Children[0].(Block)
	assert.Equal(t, KindListItem, item.Kind)
	assert.Equal(t, NewLeaf("a", MarkItalic), item.Children[0])

	// A missing type falls back to paragraph.
	assert.Equal(t, KindParagraph, d[1].Kind)
	assert.Equal(t, NewLeaf(""), d[1].Children[0])
}

func TestDecodeJSON_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
		path  string
	}{
		{
			name:  "empty document",
			input: `[]`,
			want:  ErrEmptyDocument,
		},
		{
			name:  "unknown kind",
			input: `[{"type":"table","children":[]}]`,
			want:  ErrUnknownKind,
			path:  "[0]",
		},
		{
			name:  "unknown align",
			input: `[{"type":"paragraph","align":"middle","children":[]}]`,
			want:  ErrUnknownAlign,
			path:  "[0]",
		},
		{
			name:  "leaf at top level",
			input: `[{"text":"x"}]`,
			want:  ErrInvalidNode,
			path:  "[0]",
		},
		{
			name:  "nested invalid node",
			input: `[{"type":"paragraph","children":[{"text":"ok"},{"bold":true}]}]`,
			want:  ErrInvalidNode,
			path:  "[0].children[1]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			if tc.path != "" {
				assert.Contains(t, err.Error(), tc.path)
			}
		})
	}
}

func TestDecodeJSON_NotJSON(t *testing.T) {
	_, err := DecodeJSON([]byte("<p>x</p>"))
	assert.Error(t, err)
}

func TestJSON_RoundTripWelcome(t *testing.T) {
	w := Welcome()

	data, err := EncodeJSONIndent(w, "  ")
	require.NoError(t, err)

	restored, err := DecodeJSON(data)
	require.NoError(t, err)
	assert.True(t, w.Equal(restored), "welcome document changed after JSON round-trip")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{
			name: "valid list",
			doc: Document{NewBlock(KindNumberedList,
				NewBlock(KindListItem, NewLeaf("a")))},
		},
		{
			name: "quote with nested paragraph",
			doc:  Document{NewBlock(KindBlockQuote, Paragraph(NewLeaf("q")))},
		},
		{
			name:    "empty",
			doc:     Document{},
			wantErr: true,
		},
		{
			name:    "childless block",
			doc:     Document{NewBlock(KindParagraph)},
			wantErr: true,
		},
		{
			name:    "leaf in list",
			doc:     Document{NewBlock(KindBulletedList, NewLeaf("x"))},
			wantErr: true,
		},
		{
			name:    "paragraph in list",
			doc:     Document{NewBlock(KindBulletedList, Paragraph(NewLeaf("x")))},
			wantErr: true,
		},
		{
			name:    "paragraph in paragraph",
			doc:     Document{Paragraph().WithChildren(Paragraph(NewLeaf("x")))},
			wantErr: true,
		},
		{
			name:    "list in heading",
			doc:     Document{NewBlock(KindHeadingOne, NewBlock(KindBulletedList, NewBlock(KindListItem, NewLeaf("x"))))},
			wantErr: true,
		},
		{
			name: "heading in list item",
			doc:  Document{NewBlock(KindBulletedList, NewBlock(KindListItem, NewBlock(KindHeadingOne, NewLeaf("x"))))},
		},
		{
			name:    "unknown kind",
			doc:     Document{NewBlock(Kind("table"), NewLeaf("x"))},
			wantErr: true,
		},
		{
			name:    "unknown align",
			doc:     Document{Paragraph(NewLeaf("x")).WithAlign(Align("middle"))},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.doc)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
