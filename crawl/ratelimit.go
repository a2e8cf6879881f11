package crawl

import (
	"context"
	"time"

	"github.com/fwojciec/docpull"
	"golang.org/x/time/rate"
)

// DefaultInterval is the minimum spacing between requests to the origin.
const DefaultInterval = time.Second

var _ docpull.Limiter = (*IntervalLimiter)(nil)

// IntervalLimiter spaces requests at least one interval apart using a token
// bucket with a burst of 1. The first request is never delayed.
//
// The interval is measured between request starts, not from the end of the
// previous page: a page that took longer than the interval to process is
// followed by the next request without further delay.
type IntervalLimiter struct {
	limiter *rate.Limiter
}

// NewIntervalLimiter creates a limiter allowing one request per interval.
// A non-positive interval disables pacing.
func NewIntervalLimiter(interval time.Duration) *IntervalLimiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &IntervalLimiter{
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Wait blocks until the interval since the previous request has elapsed.
// Returns an error if the context is canceled before the wait completes.
func (l *IntervalLimiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
