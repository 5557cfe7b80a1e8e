package rss_test

import (
	"testing"
	"time"

	"github.com/fwojciec/scinews"
	"github.com/fwojciec/scinews/rss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ListingExtractor implements scinews.ListingExtractor at compile time.
var _ scinews.ListingExtractor = (*rss.ListingExtractor)(nil)

const feed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Science Current News</title>
    <link>https://www.science.org/news</link>
    <item>
      <title>Ancient microbes found</title>
      <link>https://www.science.org/content/article/ancient-microbes</link>
      <pubDate>Fri, 05 Jan 2024 14:30:00 -0500</pubDate>
    </item>
    <item>
      <title>Second story</title>
      <link>/content/article/second-story</link>
      <pubDate>Thu, 28 Dec 2023 09:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestListingExtractor_ExtractListing(t *testing.T) {
	t.Parallel()

	t.Run("extracts items in feed order", func(t *testing.T) {
		t.Parallel()

		summaries, err := rss.NewListingExtractor().ExtractListing(feed)

		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, scinews.Summary{
			Title: "Ancient microbes found",
			URL:   "https://www.science.org/content/article/ancient-microbes",
			Date:  time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		}, summaries[0])
	})

	t.Run("resolves relative links against the base origin", func(t *testing.T) {
		t.Parallel()

		summaries, err := rss.NewListingExtractor().ExtractListing(feed)

		require.NoError(t, err)
		assert.Equal(t, "https://www.science.org/content/article/second-story", summaries[1].URL)
	})

	t.Run("truncates pubDate to a calendar date", func(t *testing.T) {
		t.Parallel()

		summaries, err := rss.NewListingExtractor().ExtractListing(feed)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 28, 0, 0, 0, 0, time.UTC), summaries[1].Date)
	})

	t.Run("returns empty result for a channel without items", func(t *testing.T) {
		t.Parallel()

		empty := `<?xml version="1.0"?><rss version="2.0"><channel><title>x</title></channel></rss>`

		summaries, err := rss.NewListingExtractor().ExtractListing(empty)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})

	t.Run("fails the whole call on one unparseable date", func(t *testing.T) {
		t.Parallel()

		bad := `<?xml version="1.0"?><rss version="2.0"><channel>
<item><title>ok</title><link>/a</link><pubDate>Fri, 05 Jan 2024 14:30:00 GMT</pubDate></item>
<item><title>bad</title><link>/b</link><pubDate>2024-01-05</pubDate></item>
</channel></rss>`

		_, err := rss.NewListingExtractor().ExtractListing(bad)

		require.Error(t, err)
		assert.Equal(t, scinews.EINVALID, scinews.ErrorCode(err))
	})

	t.Run("fails on an item without a link", func(t *testing.T) {
		t.Parallel()

		bad := `<?xml version="1.0"?><rss version="2.0"><channel>
<item><title>no link</title><pubDate>Fri, 05 Jan 2024 14:30:00 GMT</pubDate></item>
</channel></rss>`

		_, err := rss.NewListingExtractor().ExtractListing(bad)

		require.Error(t, err)
		assert.Equal(t, scinews.ENOTFOUND, scinews.ErrorCode(err))
	})

	t.Run("fails on malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := rss.NewListingExtractor().ExtractListing("<rss><channel>")

		require.Error(t, err)
		assert.Equal(t, scinews.EINVALID, scinews.ErrorCode(err))
	})
}
