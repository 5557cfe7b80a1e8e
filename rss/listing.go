// Package rss extracts article summaries from the site's RSS news
// feed. The feed sits behind the same anti-bot wall as the HTML pages,
// so it is fetched through the same scinews.Fetcher.
package rss

import (
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/scinews"
)

// pubDateFormats are the item date layouts the feed has been observed
// to use.
var pubDateFormats = []string{time.RFC1123Z, time.RFC1123}

// Ensure ListingExtractor implements scinews.ListingExtractor at compile time.
var _ scinews.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor extracts article summaries from feed XML.
type ListingExtractor struct{}

// NewListingExtractor creates a new ListingExtractor.
func NewListingExtractor() *ListingExtractor {
	return &ListingExtractor{}
}

// ExtractListing parses feed XML into summaries in feed order. A feed
// without items yields an empty slice; any malformed item fails the
// whole call.
func (e *ListingExtractor) ExtractListing(feed string) ([]scinews.Summary, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(feed); err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "failed to parse feed XML: %v", err)
	}

	base, err := url.Parse(scinews.BaseURL)
	if err != nil {
		return nil, scinews.Errorf(scinews.EINTERNAL, "invalid base URL: %v", err)
	}

	summaries := []scinews.Summary{}
	for _, item := range doc.FindElements("//channel/item") {
		summary, err := extractItem(item, base)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

// extractItem pulls one summary out of a feed item.
func extractItem(item *etree.Element, base *url.URL) (*scinews.Summary, error) {
	title := item.SelectElement("title")
	if title == nil {
		return nil, scinews.Errorf(scinews.ENOTFOUND, "feed item missing title")
	}

	link := item.SelectElement("link")
	if link == nil {
		return nil, scinews.Errorf(scinews.ENOTFOUND, "feed item missing link")
	}
	ref, err := url.Parse(strings.TrimSpace(link.Text()))
	if err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "invalid feed item link %q: %v", link.Text(), err)
	}

	pubDate := item.SelectElement("pubDate")
	if pubDate == nil {
		return nil, scinews.Errorf(scinews.ENOTFOUND, "feed item missing pubDate")
	}
	date, err := parsePubDate(strings.TrimSpace(pubDate.Text()))
	if err != nil {
		return nil, err
	}

	return &scinews.Summary{
		Title: strings.TrimSpace(title.Text()),
		URL:   base.ResolveReference(ref).String(),
		Date:  date,
	}, nil
}

// parsePubDate parses an item date and truncates it to a calendar date
// at midnight UTC, matching the listing-page date granularity.
func parsePubDate(text string) (time.Time, error) {
	for _, layout := range pubDateFormats {
		if ts, err := time.Parse(layout, text); err == nil {
			ts = ts.UTC()
			return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, scinews.Errorf(scinews.EINVALID, "unparseable feed item date %q", text)
}
