package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/markdowned"
)

// Ensure DocumentExtractor implements markdowned.Extractor at compile time.
var _ markdowned.Extractor = (*DocumentExtractor)(nil)

// DocumentExtractor returns the whole document as content. It is the last
// resort when no other strategy yields a candidate, so its result is not
// validated and may carry empty text.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new DocumentExtractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the outer HTML of the document element and the
// normalized visible text of the body.
func (e *DocumentExtractor) Extract(snap *markdowned.Snapshot) (*markdowned.ExtractedContent, error) {
	doc, err := parseSnapshot(snap)
	if err != nil {
		return nil, err
	}

	outer, err := goquery.OuterHtml(doc.Find("html").First())
	if err != nil {
		return nil, markdowned.Errorf(markdowned.EINTERNAL, "failed to render document: %v", err)
	}

	body := doc.Find("body").First().Clone()
	body.Find("script, style, noscript, template").Remove()

	return &markdowned.ExtractedContent{
		Title:         snap.Title,
		HTML:          outer,
		Text:          markdowned.NormalizeText(body.Text()),
		DocumentTitle: snap.Title,
	}, nil
}
