package docpull

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for the URL and returns the response body.
	// Any transport failure or non-2xx status is returned as an error.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the Fetcher.
	Close() error
}
