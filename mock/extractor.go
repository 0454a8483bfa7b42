package mock

import "github.com/fwojciec/markdowned"

var _ markdowned.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of markdowned.Extractor.
type Extractor struct {
	ExtractFn func(snap *markdowned.Snapshot) (*markdowned.ExtractedContent, error)
}

func (e *Extractor) Extract(snap *markdowned.Snapshot) (*markdowned.ExtractedContent, error) {
	return e.ExtractFn(snap)
}

var _ markdowned.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of markdowned.Scorer.
type Scorer struct {
	ScoreFn func(snap *markdowned.Snapshot) int
}

func (s *Scorer) Score(snap *markdowned.Snapshot) int {
	return s.ScoreFn(snap)
}

var _ markdowned.CandidateSelector = (*CandidateSelector)(nil)

// CandidateSelector is a mock implementation of markdowned.CandidateSelector.
type CandidateSelector struct {
	SelectExtractionCandidateFn func(snap *markdowned.Snapshot) *markdowned.ExtractedContent
}

func (s *CandidateSelector) SelectExtractionCandidate(snap *markdowned.Snapshot) *markdowned.ExtractedContent {
	return s.SelectExtractionCandidateFn(snap)
}
