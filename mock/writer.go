package mock

import (
	"context"

	"github.com/fwojciec/scinews"
)

var _ scinews.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of scinews.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, summary *scinews.Summary, markdown string) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, summary *scinews.Summary, markdown string) error {
	return w.WriteArticleFn(ctx, summary, markdown)
}
