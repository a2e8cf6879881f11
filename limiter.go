package docpull

import "context"

// Limiter paces outbound requests.
type Limiter interface {
	// Wait blocks until the next request may be issued.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context) error
}
