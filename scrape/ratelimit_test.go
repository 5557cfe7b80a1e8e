package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/scinews/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("allows the first call immediately", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewLimiter(1)

		start := time.Now()
		require.NoError(t, l.Wait(context.Background()))
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("spaces subsequent calls", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewLimiter(20) // 50ms between calls

		require.NoError(t, l.Wait(context.Background()))
		start := time.Now()
		require.NoError(t, l.Wait(context.Background()))
		assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		l := scrape.NewLimiter(0.001) // effectively blocked after the first token

		require.NoError(t, l.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := l.Wait(ctx)
		require.Error(t, err)
	})
}
