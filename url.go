package markdowned

import (
	"net/url"
	"strings"
)

// MaxURLLength is the longest page URL accepted for export.
const MaxURLLength = 2048

// ValidatePageURL returns the normalized URL if it can be exported.
// Only http and https pages are supported.
func ValidatePageURL(rawURL string) (string, error) {
	normalized := NormalizeText(rawURL)
	if normalized == "" {
		return "", Errorf(EINVALID, "No URL available for this page.")
	}

	u, err := url.Parse(normalized)
	if err != nil {
		return "", Errorf(EINVALID, "Invalid page URL: %v", err)
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", Errorf(EUNSUPPORTED, "Unsupported protocol: %s:", scheme)
	}

	if len(normalized) > MaxURLLength {
		return "", Errorf(EINVALID, "Current URL is too long to export safely.")
	}

	return normalized, nil
}
