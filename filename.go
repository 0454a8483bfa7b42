package markdowned

import (
	"strings"
)

// MaxFileNameLength is the maximum length of a file name before the extension.
const MaxFileNameLength = 120

// BuildExportFileName derives a filesystem-safe Markdown file name from a
// title and the date portion of an ISO timestamp.
// The result always matches ^[a-z0-9-]*\.md$ and is at most
// MaxFileNameLength+3 characters long.
func BuildExportFileName(title, extractedAt string) string {
	return SanitizeFileName(title + "-" + datePrefix(extractedAt))
}

// SanitizeFileName lowercases s, drops everything but ASCII letters, digits,
// whitespace, hyphens and underscores, joins words with single hyphens and
// appends ".md".
func SanitizeFileName(s string) string {
	name := strings.ToLower(NormalizeText(s))

	var b strings.Builder
	pendingHyphen := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '-' || r == '_' || isSpace(r):
			pendingHyphen = true
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		cleaned = FallbackName
	}

	if len(cleaned) > MaxFileNameLength {
		cleaned = cleaned[:MaxFileNameLength]
	}
	cleaned = strings.TrimRight(cleaned, "-")
	if cleaned == "" {
		cleaned = FallbackName
	}
	return cleaned + ".md"
}

// datePrefix returns the first ten characters of an ISO timestamp.
func datePrefix(ts string) string {
	runes := []rune(ts)
	if len(runes) > 10 {
		runes = runes[:10]
	}
	return string(runes)
}
