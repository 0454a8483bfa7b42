package htmltomarkdown

import (
	"strings"

	"github.com/fwojciec/markdowned"
)

// Ensure Renderer implements markdowned.Renderer at compile time.
var _ markdowned.Renderer = (*Renderer)(nil)

// Renderer turns selected content into an exported Markdown document.
type Renderer struct {
	Converter markdowned.Converter
}

// NewRenderer creates a Renderer backed by conv.
func NewRenderer(conv markdowned.Converter) *Renderer {
	return &Renderer{Converter: conv}
}

// BuildMarkdown converts the content HTML and wraps it with a title heading
// and source metadata. Content without HTML renders an empty body.
func (r *Renderer) BuildMarkdown(content *markdowned.ExtractedContent, url, extractedAt string) (string, error) {
	var body string
	if content != nil && strings.TrimSpace(content.HTML) != "" {
		md, err := r.Converter.Convert(content.HTML)
		if err != nil {
			return "", err
		}
		body = md
	}
	return markdowned.FormatMarkdown(markdowned.MarkdownTitle(content), url, extractedAt, body), nil
}
