package scinews

import (
	"fmt"
	"strings"
	"time"
)

// BaseURL is the origin all article URLs live under. Root-relative
// resource references are rewritten against it.
const BaseURL = "https://www.science.org/"

// FeedURL is the site's RSS feed of current news items.
const FeedURL = BaseURL + "rss/news_current.xml"

// ListingURL composes the URL of one page of the news index.
// startPage is zero-based.
func ListingURL(pageSize, startPage int) string {
	return fmt.Sprintf("%snews/all-news?pageSize=%d&startPage=%d", BaseURL, pageSize, startPage)
}

// AbsoluteHTML rewrites root-relative src and href references in a
// serialized HTML fragment against base. The rewrite is textual: a
// single pass over the markup that leaves every other byte unchanged,
// including already-absolute URLs and query strings. Re-applying it to
// its own output is a no-op. Because it operates on raw markup it also
// matches the patterns inside text content such as inline code samples;
// that is an accepted limitation of the single-pass design.
//
// Both patterns rewrite to a src=" replacement, so a rewritten href
// literally loses its attribute name. This mirrors the production
// scraper byte for byte.
// TODO: confirm whether the href branch should emit href=" and ship
// that as a labeled behavior change.
func AbsoluteHTML(fragment, base string) string {
	fragment = strings.ReplaceAll(fragment, `src="/`, `src="`+base)
	return strings.ReplaceAll(fragment, `href="/`, `src="`+base)
}

// Summary is one entry of a news listing page. Entries keep the
// document order of the page, which the site already sorts by recency.
type Summary struct {
	Title string
	URL   string // absolute

	// Date is the publish date, a calendar date at midnight UTC.
	Date time.Time
}

// Validate returns an error if the summary contains invalid fields.
func (s *Summary) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "summary title required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "summary URL required")
	}
	return nil
}

// Article is the structured detail of a single news article. All fields
// are required: a page missing any source fragment fails extraction
// outright rather than producing a partial Article.
type Article struct {
	Title    string
	Subtitle string

	// ContentHTML is the article body container serialized as HTML,
	// noise-stripped and with resource references rewritten absolute.
	ContentHTML string

	// FigureHTML is the page's figure serialized and rewritten the
	// same way.
	FigureHTML string
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Subtitle == "" {
		return Errorf(EINVALID, "article subtitle required")
	}
	if a.ContentHTML == "" {
		return Errorf(EINVALID, "article content required")
	}
	if a.FigureHTML == "" {
		return Errorf(EINVALID, "article figure required")
	}
	return nil
}

// ListingExtractor parses a news listing document into summaries.
// A listing with no entries yields an empty slice; any malformed entry
// fails the whole call, never a partial result.
type ListingExtractor interface {
	ExtractListing(html string) ([]Summary, error)
}

// ArticleExtractor parses a single article page into its structured
// detail. Every required fragment must match exactly once; zero or
// multiple matches fail the call.
type ArticleExtractor interface {
	ExtractArticle(html string) (*Article, error)
}
