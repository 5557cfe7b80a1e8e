package scinews

// Renderer assembles an extracted Article into a single Markdown
// document: heading, subheading, figure, separator, body. Rendering is
// deterministic; the same Article always produces the same document.
type Renderer interface {
	Render(article *Article) (string, error)
}
