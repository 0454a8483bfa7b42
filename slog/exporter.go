package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/markdowned"
	"github.com/google/uuid"
)

// Ensure LoggingExporter implements markdowned.Exporter.
var _ markdowned.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter and logs each export under a fresh
// request ID.
type LoggingExporter struct {
	next   markdowned.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next markdowned.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter. Failures are logged at warn level.
func (e *LoggingExporter) Export(ctx context.Context, snap *markdowned.Snapshot) (payload *markdowned.ExportPayload, err error) {
	logger := e.logger.With("request_id", uuid.NewString())

	defer func(begin time.Time) {
		var url string
		if snap != nil {
			url = snap.URL
		}
		if err != nil {
			logger.Warn("export",
				"url", url,
				"code", markdowned.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		logger.Info("export",
			"url", payload.URL,
			"title", payload.Title,
			"file", payload.FileName,
			"bytes", len(payload.Markdown),
			"digest", Digest(payload.Markdown),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Export(ctx, snap)
}
