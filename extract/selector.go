// Package extract chooses the content block that best represents a page.
// It runs the article and main-content strategies, scores the page for
// application-like structure and falls back to the whole document.
package extract

import (
	"github.com/fwojciec/markdowned"
)

// Ensure Selector implements markdowned.CandidateSelector at compile time.
var _ markdowned.CandidateSelector = (*Selector)(nil)

// Selector chooses between extraction candidates.
type Selector struct {
	Article    markdowned.Extractor
	Main       markdowned.Extractor
	Scorer     markdowned.Scorer
	Document   markdowned.Extractor
	Thresholds markdowned.ContentQualityThresholds
}

// SelectExtractionCandidate returns the selected content for snap.
// It never returns nil.
func (s *Selector) SelectExtractionCandidate(snap *markdowned.Snapshot) *markdowned.ExtractedContent {
	content, _ := s.Select(snap)
	return content
}

// Select is like SelectExtractionCandidate but also reports which strategy
// produced the content.
func (s *Selector) Select(snap *markdowned.Snapshot) (*markdowned.ExtractedContent, markdowned.CandidateSource) {
	article := tryExtract(s.Article, snap)
	main := tryExtract(s.Main, snap)

	// Scoring only matters when there is a choice to make.
	score := 0
	if article != nil && main != nil {
		score = tryScore(s.Scorer, snap)
	}

	if content, source := markdowned.ChooseCandidate(article, main, score, s.Thresholds); content != nil {
		return content, source
	}

	if content := run(s.Document, snap); content != nil {
		return content, markdowned.SourceDocument
	}
	return rawDocument(snap), markdowned.SourceDocument
}

// tryExtract runs ext and returns its candidate, or nil when the extractor
// fails or yields invalid content.
func tryExtract(ext markdowned.Extractor, snap *markdowned.Snapshot) *markdowned.ExtractedContent {
	content := run(ext, snap)
	if content.Validate() != nil {
		return nil
	}
	return content
}

// run calls ext and converts errors and panics into a nil result.
func run(ext markdowned.Extractor, snap *markdowned.Snapshot) (content *markdowned.ExtractedContent) {
	if ext == nil {
		return nil
	}
	defer func() {
		if recover() != nil {
			content = nil
		}
	}()

	content, err := ext.Extract(snap)
	if err != nil {
		return nil
	}
	return content
}

// tryScore returns 0 when the scorer is missing or panics.
func tryScore(scorer markdowned.Scorer, snap *markdowned.Snapshot) (score int) {
	if scorer == nil {
		return 0
	}
	defer func() {
		if recover() != nil {
			score = 0
		}
	}()
	return scorer.Score(snap)
}

// rawDocument is the content of last resort: the snapshot HTML as is.
func rawDocument(snap *markdowned.Snapshot) *markdowned.ExtractedContent {
	if snap == nil {
		return &markdowned.ExtractedContent{}
	}
	return &markdowned.ExtractedContent{
		Title:         snap.Title,
		HTML:          snap.HTML,
		DocumentTitle: snap.Title,
	}
}
