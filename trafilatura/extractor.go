package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/markdowned"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements markdowned.Extractor at compile time.
var _ markdowned.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura as an alternate article engine. Its
// metadata title fills the readability title slot so title resolution
// treats both engines alike.
type Extractor struct {
	// EnableFallback lets trafilatura compare its result with its own
	// readability and dom-distiller passes.
	EnableFallback bool
}

// NewExtractor creates a new Extractor with fallback enabled.
func NewExtractor() *Extractor {
	return &Extractor{EnableFallback: true}
}

// Extract processes the snapshot HTML and returns the article candidate.
func (e *Extractor) Extract(snap *markdowned.Snapshot) (content *markdowned.ExtractedContent, err error) {
	if snap == nil || strings.TrimSpace(snap.HTML) == "" {
		return nil, markdowned.Errorf(markdowned.EINVALID, "empty HTML input")
	}

	defer func() {
		if r := recover(); r != nil {
			content = nil
			err = markdowned.Errorf(markdowned.EINTERNAL, "trafilatura panicked: %v", r)
		}
	}()

	opts := trafilatura.Options{
		EnableFallback: e.EnableFallback,
		IncludeLinks:   true,
		IncludeImages:  true,
	}

	result, err := trafilatura.Extract(strings.NewReader(snap.HTML), opts)
	if err != nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "trafilatura: %v", err)
	}
	if result == nil || result.ContentNode == nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "trafilatura found no content")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, markdowned.Errorf(markdowned.EINTERNAL, "failed to render content: %v", err)
	}

	title := markdowned.NormalizeText(result.Metadata.Title)
	content = &markdowned.ExtractedContent{
		Title:            title,
		HTML:             strings.TrimSpace(contentHTML),
		Text:             markdowned.NormalizeText(result.ContentText),
		ReadabilityTitle: title,
		DocumentTitle:    snap.Title,
	}
	if err := content.Validate(); err != nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "trafilatura found no content")
	}
	return content, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
