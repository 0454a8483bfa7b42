package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/markdowned"
)

// Ensure LoggingFetcher implements markdowned.Fetcher.
var _ markdowned.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   markdowned.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next markdowned.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (snap *markdowned.Snapshot, err error) {
	defer func(begin time.Time) {
		var size int
		var title, finalURL string
		if snap != nil {
			size, title, finalURL = len(snap.HTML), snap.Title, snap.URL
		}
		f.logger.Debug("fetch",
			"url", url,
			"final_url", finalURL,
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
