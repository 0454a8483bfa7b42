package batch

import (
	"context"
	"time"

	"github.com/fwojciec/markdowned"
)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry fetches url, retrying transient failures after each of
// delays in turn. Missing pages, unsupported content and invalid input are
// not retried. onRetry, if set, is called before each retry.
func FetchWithRetry(ctx context.Context, fetcher markdowned.Fetcher, url string, delays []time.Duration, onRetry func(attempt int, err error)) (*markdowned.Snapshot, error) {
	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		snap, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return snap, nil
		}
		lastErr = err

		if attempt == len(delays) || !retryable(err) {
			break
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if onRetry != nil {
			onRetry(attempt+2, err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
	return nil, lastErr
}

func retryable(err error) bool {
	switch markdowned.ErrorCode(err) {
	case markdowned.ENOTFOUND, markdowned.EUNSUPPORTED, markdowned.EINVALID:
		return false
	}
	return true
}
