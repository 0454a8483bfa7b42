package markdowned

// Extractor produces a content candidate from a document snapshot.
type Extractor interface {
	// Extract parses the snapshot and returns a candidate.
	// Returns ENOTFOUND if the strategy yields no usable content. Callers
	// treat any error as "no candidate" rather than a failure.
	Extract(snap *Snapshot) (*ExtractedContent, error)
}

// Scorer estimates how application-like a document's main region is.
type Scorer interface {
	// Score returns a small non-negative integer; higher means more app-like.
	Score(snap *Snapshot) int
}

// CandidateSelector chooses the content that best represents the page.
type CandidateSelector interface {
	// SelectExtractionCandidate never fails; when no strategy yields a
	// candidate it falls back to the whole document.
	SelectExtractionCandidate(snap *Snapshot) *ExtractedContent
}
