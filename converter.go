package scinews

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be a clean fragment (e.g., from an ArticleExtractor).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}
