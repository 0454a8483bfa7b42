package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/markdowned"
)

// SourceSelector is a CandidateSelector that reports which strategy
// produced its result, such as *extract.Selector.
type SourceSelector interface {
	Select(snap *markdowned.Snapshot) (*markdowned.ExtractedContent, markdowned.CandidateSource)
}

// Ensure LoggingSelector implements markdowned.CandidateSelector.
var _ markdowned.CandidateSelector = (*LoggingSelector)(nil)

// LoggingSelector wraps a SourceSelector and logs the chosen strategy.
type LoggingSelector struct {
	next   SourceSelector
	logger *slog.Logger
}

// NewLoggingSelector creates a new LoggingSelector.
func NewLoggingSelector(next SourceSelector, logger *slog.Logger) *LoggingSelector {
	return &LoggingSelector{next: next, logger: logger}
}

// SelectExtractionCandidate delegates to the wrapped selector.
func (s *LoggingSelector) SelectExtractionCandidate(snap *markdowned.Snapshot) *markdowned.ExtractedContent {
	begin := time.Now()
	content, source := s.next.Select(snap)
	s.logger.Debug("select candidate",
		"source", string(source),
		"duration", time.Since(begin),
	)
	return content
}
