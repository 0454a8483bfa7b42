package mock

import "github.com/fwojciec/markdowned"

var _ markdowned.Converter = (*Converter)(nil)

// Converter is a mock implementation of markdowned.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ markdowned.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of markdowned.Renderer.
type Renderer struct {
	BuildMarkdownFn func(content *markdowned.ExtractedContent, url, extractedAt string) (string, error)
}

func (r *Renderer) BuildMarkdown(content *markdowned.ExtractedContent, url, extractedAt string) (string, error) {
	return r.BuildMarkdownFn(content, url, extractedAt)
}
