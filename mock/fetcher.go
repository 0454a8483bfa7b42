package mock

import (
	"context"

	"github.com/fwojciec/markdowned"
)

var _ markdowned.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of markdowned.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*markdowned.Snapshot, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*markdowned.Snapshot, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
