package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/docpull"
	"github.com/fwojciec/docpull/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntervalLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements docpull.Limiter interface", func(t *testing.T) {
		t.Parallel()
		var _ docpull.Limiter = crawl.NewIntervalLimiter(time.Second)
	})

	t.Run("allows first request immediately", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewIntervalLimiter(time.Second)

		start := time.Now()
		err := limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Less(t, elapsed, 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("spaces consecutive requests by the interval", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewIntervalLimiter(100 * time.Millisecond)

		require.NoError(t, limiter.Wait(context.Background()))

		start := time.Now()
		err := limiter.Wait(context.Background())
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "should wait for the interval")
	})

	t.Run("measures interval from previous request start", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewIntervalLimiter(50 * time.Millisecond)

		require.NoError(t, limiter.Wait(context.Background()))
		// Simulates a page that took longer than the interval.
		time.Sleep(80 * time.Millisecond)

		start := time.Now()
		err := limiter.Wait(context.Background())

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 30*time.Millisecond)
	})

	t.Run("zero interval disables pacing", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewIntervalLimiter(0)

		start := time.Now()
		for range 5 {
			require.NoError(t, limiter.Wait(context.Background()))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := crawl.NewIntervalLimiter(time.Second)

		// First request exhausts the token
		require.NoError(t, limiter.Wait(context.Background()))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx)
		assert.Error(t, err, "should fail when context times out")
	})
}
