package scinews

import "context"

// ArticleWriter persists a rendered article.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, summary *Summary, markdown string) error
}
