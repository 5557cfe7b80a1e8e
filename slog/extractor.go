package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/scinews"
)

// Ensure LoggingListingExtractor implements scinews.ListingExtractor.
var _ scinews.ListingExtractor = (*LoggingListingExtractor)(nil)

// LoggingListingExtractor wraps a ListingExtractor with debug logging.
type LoggingListingExtractor struct {
	next   scinews.ListingExtractor
	logger *slog.Logger
}

// NewLoggingListingExtractor creates a new LoggingListingExtractor.
func NewLoggingListingExtractor(next scinews.ListingExtractor, logger *slog.Logger) *LoggingListingExtractor {
	return &LoggingListingExtractor{next: next, logger: logger}
}

// ExtractListing delegates to the wrapped extractor and logs the operation.
func (e *LoggingListingExtractor) ExtractListing(html string) (summaries []scinews.Summary, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract listing",
			"count", len(summaries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractListing(html)
}

// Ensure LoggingArticleExtractor implements scinews.ArticleExtractor.
var _ scinews.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with debug logging.
type LoggingArticleExtractor struct {
	next   scinews.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next scinews.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the operation.
func (e *LoggingArticleExtractor) ExtractArticle(html string) (article *scinews.Article, err error) {
	defer func(begin time.Time) {
		title := ""
		if article != nil {
			title = article.Title
		}
		e.logger.Info("extract article",
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractArticle(html)
}
