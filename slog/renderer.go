package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/markdowned"
)

// Ensure LoggingRenderer implements markdowned.Renderer.
var _ markdowned.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   markdowned.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next markdowned.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// BuildMarkdown delegates to the wrapped renderer and logs the output size.
func (r *LoggingRenderer) BuildMarkdown(content *markdowned.ExtractedContent, url, extractedAt string) (md string, err error) {
	defer func(begin time.Time) {
		r.logger.Debug("render markdown",
			"url", url,
			"bytes", len(md),
			"digest", Digest(md),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.BuildMarkdown(content, url, extractedAt)
}
