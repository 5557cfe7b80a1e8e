package goquery

import (
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scinews"
)

// Listing page card structure.
const (
	listingCardSelector = ".titles-results article"
	cardTitleSelector   = ".card__title a"
	cardDateSelector    = "time"
)

// listingDateFormat is the fixed publish-date form used on listing
// cards, e.g. "05 Jan 2024". Any other form fails the extraction.
const listingDateFormat = "02 Jan 2006"

// Ensure ListingExtractor implements scinews.ListingExtractor at compile time.
var _ scinews.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor extracts article summaries from a news listing page.
type ListingExtractor struct{}

// NewListingExtractor creates a new ListingExtractor.
func NewListingExtractor() *ListingExtractor {
	return &ListingExtractor{}
}

// ExtractListing parses one page of the news index into summaries in
// document order. Duplicate URLs are preserved as separate entries. Any
// malformed card fails the whole call.
func (e *ListingExtractor) ExtractListing(html string) ([]scinews.Summary, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "failed to parse HTML: %v", err)
	}

	base, err := url.Parse(scinews.BaseURL)
	if err != nil {
		return nil, scinews.Errorf(scinews.EINTERNAL, "invalid base URL: %v", err)
	}

	summaries := []scinews.Summary{}
	var cardErr error
	doc.Find(listingCardSelector).EachWithBreak(func(_ int, card *goquery.Selection) bool {
		summary, err := extractCard(card, base)
		if err != nil {
			cardErr = err
			return false
		}
		summaries = append(summaries, *summary)
		return true
	})
	if cardErr != nil {
		return nil, cardErr
	}

	return summaries, nil
}

// extractCard pulls one summary out of a listing card.
func extractCard(card *goquery.Selection, base *url.URL) (*scinews.Summary, error) {
	anchor, err := RequireOne(card, cardTitleSelector)
	if err != nil {
		return nil, err
	}

	title, err := RequireAttr(anchor, "title")
	if err != nil {
		return nil, err
	}

	href, err := RequireAttr(anchor, "href")
	if err != nil {
		return nil, err
	}
	ref, err := url.Parse(href)
	if err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "invalid card href %q: %v", href, err)
	}

	marker, err := RequireOne(card, cardDateSelector)
	if err != nil {
		return nil, err
	}
	dateText := strings.TrimSpace(marker.Text())
	date, err := time.Parse(listingDateFormat, dateText)
	if err != nil {
		return nil, scinews.Errorf(scinews.EINVALID, "unparseable publish date %q, want e.g. %q", dateText, "05 Jan 2024")
	}

	return &scinews.Summary{
		Title: title,
		URL:   base.ResolveReference(ref).String(),
		Date:  date,
	}, nil
}
