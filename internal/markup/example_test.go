package markup_test

import (
	"fmt"

	"github.com/roboco-io/richmark/internal/doc"
	"github.com/roboco-io/richmark/internal/markup"
)

func ExampleSerialize() {
	d := doc.Document{
		doc.Paragraph(doc.NewLeaf("Hello "), doc.NewLeaf("world", doc.MarkBold, doc.MarkItalic)),
	}
	fmt.Println(markup.Serialize(d))
	// Output: <p>Hello <strong><em>world</em></strong></p>
}

func ExampleParse() {
	d := markup.Parse("<h1>Title</h1><p>Body</p>", doc.Welcome())
	for _, b := range d {
		fmt.Println(b.Kind, b.Text())
	}
	// Output:
	// heading-one Title
	// paragraph Body
}
