package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scinews"
)

// Article page structure. The figure is matched site-wide, not scoped
// beneath the content container.
const (
	heroTitleSelector    = ".news-article__hero__title"
	heroSubtitleSelector = ".news-article__hero__subtitle"
	contentSelector      = "article.news-article-content"
	figureSelector       = "figure"
)

// noiseSelectors are stripped before any field extraction. Scripts, ad
// slots and the audio player would otherwise leak into the hero text or
// the serialized fragments.
var noiseSelectors = []string{
	"script",
	"form",
	"style",
	".audio-player",
	".adplaceholder",
	"#div-gpt-ad-leader-inline",
}

// Ensure ArticleExtractor implements scinews.ArticleExtractor at compile time.
var _ scinews.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor extracts structured detail from a single article page.
type ArticleExtractor struct{}

// NewArticleExtractor creates a new ArticleExtractor.
func NewArticleExtractor() *ArticleExtractor {
	return &ArticleExtractor{}
}

// ExtractArticle parses an article page. Each required fragment must
// match exactly once; zero or multiple matches abort the call and no
// partial Article is ever returned.
func (e *ArticleExtractor) ExtractArticle(html string) (*scinews.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	title, err := requireText(doc.Selection, heroTitleSelector)
	if err != nil {
		return nil, err
	}

	subtitle, err := requireText(doc.Selection, heroSubtitleSelector)
	if err != nil {
		return nil, err
	}

	contentHTML, err := requireOuterHTML(doc.Selection, contentSelector)
	if err != nil {
		return nil, err
	}

	figureHTML, err := requireOuterHTML(doc.Selection, figureSelector)
	if err != nil {
		return nil, err
	}

	return &scinews.Article{
		Title:       title,
		Subtitle:    subtitle,
		ContentHTML: scinews.AbsoluteHTML(contentHTML, scinews.BaseURL),
		FigureHTML:  scinews.AbsoluteHTML(figureHTML, scinews.BaseURL),
	}, nil
}

// requireText returns the trimmed text content of the unique match.
func requireText(scope *goquery.Selection, selector string) (string, error) {
	sel, err := RequireOne(scope, selector)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sel.Text()), nil
}

// requireOuterHTML serializes the unique match including its own tag.
func requireOuterHTML(scope *goquery.Selection, selector string) (string, error) {
	sel, err := RequireOne(scope, selector)
	if err != nil {
		return "", err
	}
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", scinews.Errorf(scinews.EINTERNAL, "failed to serialize %q: %v", selector, err)
	}
	return html, nil
}
