package doc

// Welcome returns the demo document shown by the editor before anything is
// loaded. It is also the default fallback for parses that yield nothing.
// Every call builds a fresh value.
func Welcome() Document {
	return Document{
		Paragraph(
			NewLeaf("This is editable "),
			NewLeaf("rich", MarkBold),
			NewLeaf(" text, "),
			NewLeaf("much", MarkItalic),
			NewLeaf(" better than a "),
			NewLeaf("<textarea>", MarkCode),
			NewLeaf("!"),
		),
		Paragraph(
			NewLeaf("Since it's rich text, you can do things like turn a selection of text "),
			NewLeaf("bold", MarkBold),
			NewLeaf(", or add a semantically rendered block quote in the middle of the page, like this:"),
		),
		NewBlock(KindBlockQuote, NewLeaf("A wise quote.")),
		Paragraph(NewLeaf("Try it out for yourself!")).WithAlign(AlignCenter),
	}
}
