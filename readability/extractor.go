package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/markdowned"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements markdowned.Extractor at compile time.
var _ markdowned.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to produce the article candidate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs readability over the snapshot HTML. A page readability
// cannot make sense of yields ENOTFOUND.
func (e *Extractor) Extract(snap *markdowned.Snapshot) (content *markdowned.ExtractedContent, err error) {
	if snap == nil || strings.TrimSpace(snap.HTML) == "" {
		return nil, markdowned.Errorf(markdowned.EINVALID, "empty HTML input")
	}

	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = markdowned.Errorf(markdowned.EINTERNAL, "readability panicked: %v", r)
		}
	}()

	pageURL, _ := url.Parse(snap.URL)

	article, err := readability.FromReader(strings.NewReader(snap.HTML), pageURL)
	if err != nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "readability: %v", err)
	}

	content = &markdowned.ExtractedContent{
		Title:            markdowned.NormalizeText(article.Title),
		HTML:             strings.TrimSpace(article.Content),
		Text:             markdowned.NormalizeText(article.TextContent),
		ReadabilityTitle: markdowned.NormalizeText(article.Title),
		DocumentTitle:    snap.Title,
	}
	if err := content.Validate(); err != nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "readability found no article")
	}
	return content, nil
}
