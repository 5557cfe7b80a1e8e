// Package scrape composes the fetch, extract, and render stages of the
// news pipeline, and provides a caller layer for exporting listings.
package scrape

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/scinews"
)

// Scraper composes the core pipeline. Each method performs exactly one
// solver fetch followed by synchronous extraction; there is no shared
// mutable state between calls and no internal concurrency, so a Scraper
// may be used from multiple goroutines.
type Scraper struct {
	Fetcher  scinews.Fetcher
	Listings scinews.ListingExtractor
	Articles scinews.ArticleExtractor
	Renderer scinews.Renderer

	// Feed serves FeedListing; optional.
	Feed scinews.ListingExtractor

	// Timeout is the per-fetch solver budget.
	// Defaults to scinews.DefaultFetchTimeout.
	Timeout time.Duration

	// Proxy optionally routes solver traffic.
	Proxy *scinews.Proxy
}

func (s *Scraper) request(url string) scinews.FetchRequest {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = scinews.DefaultFetchTimeout
	}
	return scinews.FetchRequest{URL: url, Timeout: timeout, Proxy: s.Proxy}
}

// Listing fetches one page of the news index and extracts its entries.
// startPage is zero-based.
func (s *Scraper) Listing(ctx context.Context, startPage, pageSize int) ([]scinews.Summary, error) {
	if startPage < 0 {
		return nil, scinews.Errorf(scinews.EINVALID, "start page must not be negative, got %d", startPage)
	}
	if pageSize <= 0 {
		return nil, scinews.Errorf(scinews.EINVALID, "page size must be positive, got %d", pageSize)
	}

	html, err := s.Fetcher.Fetch(ctx, s.request(scinews.ListingURL(pageSize, startPage)))
	if err != nil {
		return nil, err
	}

	return s.Listings.ExtractListing(html)
}

// FeedListing fetches the RSS news feed and extracts its items.
func (s *Scraper) FeedListing(ctx context.Context) ([]scinews.Summary, error) {
	if s.Feed == nil {
		return nil, scinews.Errorf(scinews.EINTERNAL, "feed extractor not configured")
	}

	xml, err := s.Fetcher.Fetch(ctx, s.request(scinews.FeedURL))
	if err != nil {
		return nil, err
	}

	return s.Feed.ExtractListing(xml)
}

// Article fetches a single article page and extracts its detail. The
// URL must be under the site's base origin.
func (s *Scraper) Article(ctx context.Context, url string) (*scinews.Article, error) {
	if !strings.HasPrefix(url, scinews.BaseURL) {
		return nil, scinews.Errorf(scinews.EINVALID, "article URL must be under %s, got %q", scinews.BaseURL, url)
	}

	html, err := s.Fetcher.Fetch(ctx, s.request(url))
	if err != nil {
		return nil, err
	}

	return s.Articles.ExtractArticle(html)
}

// ArticleMarkdown fetches an article and renders it as one Markdown
// document.
func (s *Scraper) ArticleMarkdown(ctx context.Context, url string) (string, error) {
	article, err := s.Article(ctx, url)
	if err != nil {
		return "", err
	}
	return s.Renderer.Render(article)
}
