package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns the whole document", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewDocumentExtractor()
		content, err := ext.Extract(snapshot(`<html><head><title>T</title></head><body>
<div>Hello <b>there</b></div>
<script>ignored()</script>
</body></html>`))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(content.HTML, "<html>"), content.HTML)
		assert.Contains(t, content.HTML, "<script>")
		assert.Equal(t, "Hello there", content.Text)
		assert.Equal(t, "Doc Title", content.Title)
		assert.Equal(t, "Doc Title", content.DocumentTitle)
	})

	t.Run("allows empty text", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewDocumentExtractor()
		content, err := ext.Extract(snapshot(""))

		require.NoError(t, err)
		assert.Equal(t, "<html><head></head><body></body></html>", content.HTML)
		assert.Empty(t, content.Text)
	})

	t.Run("rejects nil snapshot", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewDocumentExtractor().Extract(nil)

		assert.Equal(t, markdowned.EINVALID, markdowned.ErrorCode(err))
	})
}

func TestParseSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("reads the document title", func(t *testing.T) {
		t.Parallel()

		html := "<html><head><title>\n  Spaced \n Title </title></head><body><p>x</p></body></html>"

		snap, err := goquery.ParseSnapshot("https://example.com", strings.NewReader(html))

		require.NoError(t, err)
		assert.Equal(t, "Spaced Title", snap.Title)
		assert.Equal(t, "https://example.com", snap.URL)
		assert.Equal(t, html, snap.HTML)
	})

	t.Run("returns empty title when missing", func(t *testing.T) {
		t.Parallel()

		snap, err := goquery.ParseSnapshot("https://example.com", strings.NewReader("<p>x</p>"))

		require.NoError(t, err)
		assert.Empty(t, snap.Title)
	})

	t.Run("falls back to the canonical URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href=" https://example.com/post "></head><body></body></html>`

		snap, err := goquery.ParseSnapshot("", strings.NewReader(html))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/post", snap.URL)
	})

	t.Run("falls back to the og:url property", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:url" content="https://example.com/og"></head><body></body></html>`

		snap, err := goquery.ParseSnapshot("", strings.NewReader(html))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/og", snap.URL)
	})

	t.Run("prefers the given URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href="https://example.com/post"></head></html>`

		snap, err := goquery.ParseSnapshot("https://mirror.test/post", strings.NewReader(html))

		require.NoError(t, err)
		assert.Equal(t, "https://mirror.test/post", snap.URL)
	})
}
