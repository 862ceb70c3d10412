package docsite

import "context"

// Fetcher retrieves the body of a URL.
type Fetcher interface {
	// Fetch returns the response body for url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}
