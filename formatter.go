package markdowned

import "strings"

// FormatMarkdown assembles an exported Markdown document: a level-one
// heading, the source URL and generation timestamp, then the body.
// The body is trimmed and the document ends with a newline.
func FormatMarkdown(title, url, extractedAt, body string) string {
	return strings.Join([]string{
		"# " + title,
		"",
		"Source: " + url,
		"Generated: " + extractedAt,
		"",
		strings.TrimSpace(body),
		"",
	}, "\n")
}

// MarkdownTitle returns the heading title for content: its title, else the
// document title, else UntitledPage, normalized to a single line.
func MarkdownTitle(content *ExtractedContent) string {
	var title string
	if content != nil {
		title = NormalizeText(content.Title)
		if title == "" {
			title = NormalizeText(content.DocumentTitle)
		}
	}
	if title == "" {
		title = UntitledPage
	}
	return title
}
