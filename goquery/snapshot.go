package goquery

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/markdowned"
)

// ParseSnapshot reads an HTML document, such as a saved page, and builds a
// snapshot for pageURL with the title taken from the <title> element. When
// pageURL is empty the document's canonical URL is used instead.
func ParseSnapshot(pageURL string, r io.Reader) (*markdowned.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, markdowned.Errorf(markdowned.EINVALID, "failed to parse HTML: %v", err)
	}

	if pageURL == "" {
		pageURL = CanonicalURL(doc)
	}

	return &markdowned.Snapshot{
		URL:   pageURL,
		HTML:  string(data),
		Title: DocumentTitle(doc),
	}, nil
}

// DocumentTitle returns the whitespace-normalized text of the first <title>
// element, like document.title.
func DocumentTitle(doc *goquery.Document) string {
	return markdowned.NormalizeText(doc.Find("title").First().Text())
}

// CanonicalURL returns the URL a saved document declares for itself through
// <link rel="canonical"> or the og:url property, or "".
func CanonicalURL(doc *goquery.Document) string {
	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok {
		if href = markdowned.NormalizeText(href); href != "" {
			return href
		}
	}
	if content, ok := doc.Find(`meta[property="og:url"]`).First().Attr("content"); ok {
		return markdowned.NormalizeText(content)
	}
	return ""
}
