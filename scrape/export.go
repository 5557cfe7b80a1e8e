package scrape

import (
	"context"

	"github.com/fwojciec/scinews"
	"golang.org/x/sync/errgroup"
)

// Exporter fetches one listing page and writes every article on it as
// a rendered Markdown document. Article fetches run concurrently up to
// Concurrency, gated by the Limiter. There is no retry, no
// deduplication, and no resume state; a failed article is counted and
// reported, the rest proceed.
type Exporter struct {
	Scraper *Scraper
	Writer  scinews.ArticleWriter

	// Limiter gates solver calls; optional.
	Limiter *Limiter

	// Concurrency bounds concurrent article fetches. Defaults to 4.
	Concurrency int
}

// Result holds the outcome of an export operation.
type Result struct {
	Saved  int
	Failed int
	Bytes  int
}

// ProgressEvent reports progress during an export operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting export progress.
type ProgressFunc func(event ProgressEvent)

// exportResult holds the outcome of processing a single article.
type exportResult struct {
	url      string
	markdown string
	err      error
}

// Export processes one listing page. The progress callback, if
// provided, receives events as articles complete.
func (e *Exporter) Export(ctx context.Context, startPage, pageSize int, progress ProgressFunc) (*Result, error) {
	if err := e.wait(ctx); err != nil {
		return nil, err
	}
	summaries, err := e.Scraper.Listing(ctx, startPage, pageSize)
	if err != nil {
		return nil, err
	}

	total := len(summaries)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	concurrency := e.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan exportResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, summary := range summaries {
			g.Go(func() error {
				resultCh <- e.processArticle(gctx, summary)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var result Result
	var completed int
	for r := range resultCh {
		completed++
		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: completed,
					Total:     total,
					URL:       r.url,
					Error:     r.err,
				})
			}
			continue
		}

		result.Saved++
		result.Bytes += len(r.markdown)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				URL:       r.url,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return &result, nil
}

// processArticle renders and writes a single article.
func (e *Exporter) processArticle(ctx context.Context, summary scinews.Summary) exportResult {
	result := exportResult{url: summary.URL}

	if err := e.wait(ctx); err != nil {
		result.err = err
		return result
	}

	markdown, err := e.Scraper.ArticleMarkdown(ctx, summary.URL)
	if err != nil {
		result.err = err
		return result
	}

	if err := e.Writer.WriteArticle(ctx, &summary, markdown); err != nil {
		result.err = err
		return result
	}

	result.markdown = markdown
	return result
}

func (e *Exporter) wait(ctx context.Context) error {
	if e.Limiter == nil {
		return nil
	}
	return e.Limiter.Wait(ctx)
}
