package markdowned

import (
	"strings"
	"time"
	"unicode"
)

// Snapshot is a rendered document captured at export time.
// It is never mutated; extractors parse their own copy of HTML.
type Snapshot struct {
	// URL is the address of the page the snapshot was taken from.
	URL string

	// HTML is the serialized document, including the <html> element.
	HTML string

	// Title is the document title as reported by the page.
	Title string
}

// ExtractedContent is a content candidate produced by an Extractor.
type ExtractedContent struct {
	Title            string `json:"title"`
	HTML             string `json:"html"`
	Text             string `json:"text"` // Whitespace-normalized
	ReadabilityTitle string `json:"readabilityTitle,omitempty"`
	DocumentTitle    string `json:"documentTitle"`
}

// Validate returns an error if the candidate has no usable HTML or text.
// Invalid candidates are treated as absent.
func (c *ExtractedContent) Validate() error {
	if c == nil {
		return Errorf(EINVALID, "content required")
	}
	if strings.TrimSpace(c.HTML) == "" {
		return Errorf(EINVALID, "content HTML required")
	}
	if NormalizeText(c.Text) == "" {
		return Errorf(EINVALID, "content text required")
	}
	return nil
}

// CandidateSource identifies which extraction strategy produced the content.
type CandidateSource string

// CandidateSource constants.
const (
	SourceNone        CandidateSource = ""
	SourceReadability CandidateSource = "readability"
	SourceMain        CandidateSource = "main"
	SourceDocument    CandidateSource = "document"
)

// ExportPayload is the result of a successful export.
type ExportPayload struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Markdown    string `json:"markdown"`
	FileName    string `json:"fileName"`
	ExtractedAt string `json:"extractedAt"`
}

// NormalizeText collapses runs of whitespace into single spaces and trims the result.
func NormalizeText(s string) string {
	return strings.Join(strings.FieldsFunc(s, isSpace), " ")
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

// FormatTimestamp formats t as an ISO-8601 instant in UTC with millisecond precision.
// Example: 2026-02-20T15:00:00.000Z
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
