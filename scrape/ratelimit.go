package scrape

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter gates solver calls with a token bucket. All traffic goes to a
// single upstream (the solver serializes browser work internally), so
// one shared bucket with a burst of 1 covers it.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new Limiter with the given requests per second.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows the next solver call.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
