// Package mock provides function-field mock implementations of pagelens
// interfaces for use in tests.
package mock

import (
	"context"

	"github.com/semanticgateway/pagelens"
)

var _ pagelens.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagelens.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
