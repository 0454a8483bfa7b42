package markdowned

import (
	"net/url"
	"regexp"
	"strings"
)

// UntitledPage is the placeholder title used when a page has none.
const UntitledPage = "Untitled Page"

// FallbackName is used when neither a title nor a hostname is available.
const FallbackName = "markdowned-page"

var uuidTitleRe = regexp.MustCompile(`(?i)^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// TitleInput holds the title candidates for an export.
type TitleInput struct {
	PreferredTitle   string
	ReadabilityTitle string
	DocumentTitle    string
	URL              string
}

// SelectExportTitle returns the first informative title among the
// readability, preferred and document titles, in that order. When all are
// low-signal it falls back to the URL hostname without a leading "www.".
// The result is never empty.
func SelectExportTitle(in TitleInput) string {
	for _, candidate := range []string{in.ReadabilityTitle, in.PreferredTitle, in.DocumentTitle} {
		normalized := NormalizeText(candidate)
		if !IsLowSignalTitle(normalized) {
			return normalized
		}
	}
	return hostFallbackTitle(in.URL)
}

// IsLowSignalTitle reports whether a title carries too little information to
// name an export: empty, the untitled placeholder, a bare UUID, fewer than
// three ASCII letters or digits, or digits only.
func IsLowSignalTitle(title string) bool {
	normalized := NormalizeText(title)
	if normalized == "" {
		return true
	}
	if strings.EqualFold(normalized, UntitledPage) {
		return true
	}
	if uuidTitleRe.MatchString(normalized) {
		return true
	}

	var letters, digits int
	for _, r := range normalized {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letters++
		case r >= '0' && r <= '9':
			digits++
		}
	}
	if letters+digits < 3 {
		return true
	}
	return letters == 0
}

func hostFallbackTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return FallbackName
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if host = NormalizeText(host); host != "" {
		return host
	}
	return FallbackName
}
