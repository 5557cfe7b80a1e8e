package scinews

import "context"

// Summarizer produces a short natural language summary of a rendered
// article.
type Summarizer interface {
	Summarize(ctx context.Context, markdown string) (string, error)
}
