package markdowned

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}

// Renderer builds the final Markdown document for an export.
type Renderer interface {
	// BuildMarkdown converts the content body and wraps it with a title
	// heading and source/date metadata.
	BuildMarkdown(content *ExtractedContent, url, extractedAt string) (string, error)
}
