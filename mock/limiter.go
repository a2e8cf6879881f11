package mock

import (
	"context"

	"github.com/fwojciec/docpull"
)

var _ docpull.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of docpull.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
