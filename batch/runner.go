// Package batch exports many pages concurrently with bounded parallelism
// and per-domain rate limiting.
package batch

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/fwojciec/markdowned"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages exported at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 3

// Runner exports a list of sources. Each source is fetched, retried on
// transient failures and handed to the Exporter. A failing source is
// reported and counted but never aborts the batch.
type Runner struct {
	Fetcher     markdowned.Fetcher
	Exporter    markdowned.Exporter
	Limiter     markdowned.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a batch.
type Result struct {
	Exported int
	Failed   int
	Payloads []*markdowned.ExportPayload // In source order; nil for failures
}

// ProgressEvent reports progress during a batch.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Attempt   int
	Payload   *markdowned.ExportPayload
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressExported
	ProgressFailed
	ProgressRetry
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. Calls are
// serialized.
type ProgressFunc func(event ProgressEvent)

// Run exports every source. The returned error is non-nil only when ctx is
// canceled; per-source failures are reported through progress and Result.
func (r *Runner) Run(ctx context.Context, sources []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	total := len(sources)
	result := &Result{Payloads: make([]*markdowned.ExportPayload, total)}

	var mu sync.Mutex
	completed := 0
	report := func(i int, payload *markdowned.ExportPayload, err error) {
		mu.Lock()
		defer mu.Unlock()

		completed++
		event := ProgressEvent{Completed: completed, Total: total, Source: sources[i]}
		if err != nil {
			result.Failed++
			event.Type, event.Error = ProgressFailed, err
		} else {
			result.Exported++
			result.Payloads[i] = payload
			event.Type, event.Payload = ProgressExported, payload
		}
		progress(event)
	}

	retry := func(i int) func(attempt int, err error) {
		return func(attempt int, err error) {
			mu.Lock()
			defer mu.Unlock()
			progress(ProgressEvent{
				Type:      ProgressRetry,
				Completed: completed,
				Total:     total,
				Source:    sources[i],
				Attempt:   attempt,
				Error:     err,
			})
		}
	}

	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, source := range sources {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			payload, err := r.export(gctx, source, delays, retry(i))
			if gctx.Err() != nil {
				return gctx.Err()
			}
			report(i, payload, err)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	return result, nil
}

// export fetches and exports a single source.
// onRetry is called before each fetch retry.
func (r *Runner) export(ctx context.Context, source string, delays []time.Duration, onRetry func(attempt int, err error)) (*markdowned.ExportPayload, error) {
	if r.Limiter != nil {
		if host := hostOf(source); host != "" {
			if err := r.Limiter.Wait(ctx, host); err != nil {
				return nil, err
			}
		}
	}

	snap, err := FetchWithRetry(ctx, r.Fetcher, source, delays, onRetry)
	if err != nil {
		return nil, err
	}

	return r.Exporter.Export(ctx, snap)
}

// hostOf returns the host of a URL source, or "" for local files.
func hostOf(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return u.Host
}
