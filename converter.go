package docref

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}

// TitleExtractor extracts a document title from HTML.
type TitleExtractor interface {
	// Title returns the document title, preferring the <title> element
	// and falling back to the first top-level heading. Returns an empty
	// string if no title can be found.
	Title(html string) string
}
