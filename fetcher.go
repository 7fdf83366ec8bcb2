package pagelens

import "context"

// Fetcher retrieves raw HTML from URLs.
// A fetch failure (timeout, DNS error, non-2xx) is terminal for that
// extraction; implementations never retry internally. Retry policy belongs
// to the caller.
type Fetcher interface {
	// Fetch performs a single GET and returns the response body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
