// Package goquery implements structural content extraction over a document
// snapshot using CSS selectors: the main-content extractor, the app-signal
// scorer and the whole-document fallback.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/markdowned"
	"golang.org/x/net/html"
)

// Selector groups shared by extraction and scoring.
const (
	interactiveSelector = "a[href], button, input, select, textarea, summary, " +
		"[role='button'], [role='link'], [role='menuitem'], [role='tab'], " +
		"[tabindex], [onclick], [contenteditable]:not([contenteditable='false'])"
	buttonSelector   = "button, [role='button']"
	editableSelector = "textarea, [contenteditable]:not([contenteditable='false'])"
	blockSelector    = "p, li, pre, blockquote"
)

// mainRootSelectors are tried in order; the first match is the main region.
var mainRootSelectors = []string{
	"main",
	"[role='main']",
	"article",
	"#main",
	".main",
}

// parseSnapshot parses the snapshot HTML into a fresh document.
func parseSnapshot(snap *markdowned.Snapshot) (*goquery.Document, error) {
	if snap == nil {
		return nil, markdowned.Errorf(markdowned.EINVALID, "snapshot required")
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return nil, markdowned.Errorf(markdowned.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// MainRoot returns the element representing the page's main region,
// falling back to the body when no main landmark exists.
func MainRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range mainRootSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Find("body").First()
}

// isElement reports whether n is an element node.
func isElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// textLength returns the number of characters in the normalized text of s.
func textLength(s *goquery.Selection) int {
	return len([]rune(markdowned.NormalizeText(s.Text())))
}
