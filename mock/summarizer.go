package mock

import (
	"context"

	"github.com/fwojciec/scinews"
)

var _ scinews.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of scinews.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, markdown string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, markdown string) (string, error) {
	return s.SummarizeFn(ctx, markdown)
}
