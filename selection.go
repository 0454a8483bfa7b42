package markdowned

import "unicode/utf8"

// ChooseCandidate decides between the readability candidate and the
// main-content candidate. Either may be nil. Returns (nil, SourceNone) when
// both are absent so the caller can fall back to the whole document.
//
// When both are present the rules apply in order, first match wins:
//  1. strong app signal and main text longer than StrongSignalRatio × article text
//  2. thin article text and substantial main text
//  3. main text longer than OverwhelmingRatio × article text
//  4. otherwise the article candidate
func ChooseCandidate(article, main *ExtractedContent, score int, t ContentQualityThresholds) (*ExtractedContent, CandidateSource) {
	switch {
	case article == nil && main == nil:
		return nil, SourceNone
	case main == nil:
		return article, SourceReadability
	case article == nil:
		return main, SourceMain
	}

	articleLen := float64(utf8.RuneCountInString(article.Text))
	mainLen := float64(utf8.RuneCountInString(main.Text))

	if score >= t.StrongSignalScore && mainLen > articleLen*t.StrongSignalRatio {
		return main, SourceMain
	}
	if articleLen < float64(t.ThinArticleLength) && mainLen > float64(t.SubstantialMainLength) {
		return main, SourceMain
	}
	if mainLen > articleLen*t.OverwhelmingRatio {
		return main, SourceMain
	}
	return article, SourceReadability
}
