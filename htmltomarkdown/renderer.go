package htmltomarkdown

import (
	"strings"

	"github.com/fwojciec/scinews"
)

// Ensure Renderer implements scinews.Renderer at compile time.
var _ scinews.Renderer = (*Renderer)(nil)

// Renderer assembles an extracted article into one Markdown document:
// heading, subheading, figure, a --- separator, then the body, each
// section on its own line.
type Renderer struct {
	conv scinews.Converter
}

// NewRenderer creates a new Renderer using the given converter.
// If conv is nil, a default Converter is used.
func NewRenderer(conv scinews.Converter) *Renderer {
	if conv == nil {
		conv = NewConverter()
	}
	return &Renderer{conv: conv}
}

// Render produces the Markdown document for an article. Rendering the
// same article twice produces identical output.
func (r *Renderer) Render(article *scinews.Article) (string, error) {
	if err := article.Validate(); err != nil {
		return "", err
	}

	figure, err := r.conv.Convert(article.FigureHTML)
	if err != nil {
		return "", err
	}

	body, err := r.conv.Convert(article.ContentHTML)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(article.Title)
	b.WriteString("\n## ")
	b.WriteString(article.Subtitle)
	b.WriteString("\n")
	b.WriteString(strings.TrimSpace(figure))
	b.WriteString("\n---\n")
	b.WriteString(strings.TrimSpace(body))
	b.WriteString("\n")
	return b.String(), nil
}
