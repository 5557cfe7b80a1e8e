// Package mock provides hand-written mocks for the scinews interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/scinews"
)

var _ scinews.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of scinews.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, req scinews.FetchRequest) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, req scinews.FetchRequest) (string, error) {
	return f.FetchFn(ctx, req)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
