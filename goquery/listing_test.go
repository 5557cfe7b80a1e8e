package goquery_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/scinews"
	"github.com/fwojciec/scinews/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ListingExtractor implements scinews.ListingExtractor at compile time.
var _ scinews.ListingExtractor = (*goquery.ListingExtractor)(nil)

func listingCard(title, href, date string) string {
	return fmt.Sprintf(`<article>
  <div class="card__title"><a title=%q href=%q>%s</a></div>
  <time>%s</time>
</article>`, title, href, title, date)
}

func listingPage(cards ...string) string {
	page := `<html><body><div class="titles-results">`
	for _, card := range cards {
		page += card
	}
	return page + `</div></body></html>`
}

func TestListingExtractor_ExtractListing(t *testing.T) {
	t.Parallel()

	t.Run("extracts every card in document order", func(t *testing.T) {
		t.Parallel()

		page := listingPage(
			listingCard("First article", "/content/article/first", "05 Jan 2024"),
			listingCard("Second article", "/content/article/second", "28 Dec 2023"),
			listingCard("Third article", "/content/article/third", "01 Nov 2023"),
		)

		summaries, err := goquery.NewListingExtractor().ExtractListing(page)

		require.NoError(t, err)
		require.Len(t, summaries, 3)
		assert.Equal(t, scinews.Summary{
			Title: "First article",
			URL:   "https://www.science.org/content/article/first",
			Date:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		}, summaries[0])
		assert.Equal(t, "Second article", summaries[1].Title)
		assert.Equal(t, "https://www.science.org/content/article/third", summaries[2].URL)
	})

	t.Run("returns empty result for a page without cards", func(t *testing.T) {
		t.Parallel()

		summaries, err := goquery.NewListingExtractor().ExtractListing(listingPage())

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("leaves already-absolute hrefs alone", func(t *testing.T) {
		t.Parallel()

		page := listingPage(listingCard("A", "https://www.science.org/content/article/a", "05 Jan 2024"))

		summaries, err := goquery.NewListingExtractor().ExtractListing(page)

		require.NoError(t, err)
		assert.Equal(t, "https://www.science.org/content/article/a", summaries[0].URL)
	})

	t.Run("preserves duplicate URLs as separate entries", func(t *testing.T) {
		t.Parallel()

		page := listingPage(
			listingCard("A", "/content/article/same", "05 Jan 2024"),
			listingCard("A", "/content/article/same", "05 Jan 2024"),
		)

		summaries, err := goquery.NewListingExtractor().ExtractListing(page)

		require.NoError(t, err)
		assert.Len(t, summaries, 2)
	})

	t.Run("trims whitespace around the date text", func(t *testing.T) {
		t.Parallel()

		page := listingPage(listingCard("A", "/a", "\n  05 Jan 2024\n  "))

		summaries, err := goquery.NewListingExtractor().ExtractListing(page)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), summaries[0].Date)
	})

	t.Run("fails the whole call on one unparseable date", func(t *testing.T) {
		t.Parallel()

		page := listingPage(
			listingCard("Good", "/good", "05 Jan 2024"),
			listingCard("Bad", "/bad", "2024-01-05"),
		)

		_, err := goquery.NewListingExtractor().ExtractListing(page)

		require.Error(t, err)
		assert.Equal(t, scinews.EINVALID, scinews.ErrorCode(err))
	})

	t.Run("fails when a card has no title anchor", func(t *testing.T) {
		t.Parallel()

		page := listingPage(`<article><time>05 Jan 2024</time></article>`)

		_, err := goquery.NewListingExtractor().ExtractListing(page)

		require.Error(t, err)
		assert.Equal(t, scinews.ENOTFOUND, scinews.ErrorCode(err))
	})

	t.Run("fails when a card has two title anchors", func(t *testing.T) {
		t.Parallel()

		page := listingPage(`<article>
  <div class="card__title"><a title="A" href="/a">A</a><a title="B" href="/b">B</a></div>
  <time>05 Jan 2024</time>
</article>`)

		_, err := goquery.NewListingExtractor().ExtractListing(page)

		require.Error(t, err)
		assert.Equal(t, scinews.EAMBIGUOUS, scinews.ErrorCode(err))
	})

	t.Run("fails when the title anchor lacks a title attribute", func(t *testing.T) {
		t.Parallel()

		page := listingPage(`<article>
  <div class="card__title"><a href="/a">A</a></div>
  <time>05 Jan 2024</time>
</article>`)

		_, err := goquery.NewListingExtractor().ExtractListing(page)

		require.Error(t, err)
		assert.Equal(t, scinews.ENOTFOUND, scinews.ErrorCode(err))
	})

	t.Run("fails when a card has no date marker", func(t *testing.T) {
		t.Parallel()

		page := listingPage(`<article>
  <div class="card__title"><a title="A" href="/a">A</a></div>
</article>`)

		_, err := goquery.NewListingExtractor().ExtractListing(page)

		require.Error(t, err)
		assert.Equal(t, scinews.ENOTFOUND, scinews.ErrorCode(err))
	})
}
