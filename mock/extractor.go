package mock

import "github.com/fwojciec/scinews"

var _ scinews.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of scinews.ListingExtractor.
type ListingExtractor struct {
	ExtractListingFn func(html string) ([]scinews.Summary, error)
}

func (e *ListingExtractor) ExtractListing(html string) ([]scinews.Summary, error) {
	return e.ExtractListingFn(html)
}

var _ scinews.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of scinews.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(html string) (*scinews.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(html string) (*scinews.Article, error) {
	return e.ExtractArticleFn(html)
}
