package mock

import (
	"context"

	"github.com/fwojciec/htmltree"
)

var _ htmltree.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of htmltree.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

// Fetch invokes the mock implementation.
func (m *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return m.FetchFn(ctx, url)
}

// Close invokes the mock implementation when set.
func (m *Fetcher) Close() error {
	if m.CloseFn == nil {
		return nil
	}
	return m.CloseFn()
}
