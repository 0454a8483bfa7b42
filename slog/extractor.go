package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/markdowned"
)

// Ensure LoggingExtractor implements markdowned.Extractor.
var _ markdowned.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   markdowned.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. name identifies the
// strategy in log lines.
func NewLoggingExtractor(next markdowned.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the candidate size.
func (e *LoggingExtractor) Extract(snap *markdowned.Snapshot) (content *markdowned.ExtractedContent, err error) {
	defer func(begin time.Time) {
		var url string
		if snap != nil {
			url = snap.URL
		}
		var textLen int
		if content != nil {
			textLen = utf8.RuneCountInString(content.Text)
		}
		e.logger.Debug("extract",
			"strategy", e.name,
			"url", url,
			"text_length", textLen,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(snap)
}

// Ensure LoggingScorer implements markdowned.Scorer.
var _ markdowned.Scorer = (*LoggingScorer)(nil)

// LoggingScorer wraps a Scorer with debug logging.
type LoggingScorer struct {
	next   markdowned.Scorer
	logger *slog.Logger
}

// NewLoggingScorer creates a new LoggingScorer.
func NewLoggingScorer(next markdowned.Scorer, logger *slog.Logger) *LoggingScorer {
	return &LoggingScorer{next: next, logger: logger}
}

// Score delegates to the wrapped scorer and logs the score.
func (s *LoggingScorer) Score(snap *markdowned.Snapshot) (score int) {
	defer func(begin time.Time) {
		s.logger.Debug("app signal score",
			"score", score,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Score(snap)
}
