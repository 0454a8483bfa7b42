package goquery_test

import (
	"testing"

	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(html string) *markdowned.Snapshot {
	return &markdowned.Snapshot{URL: "https://example.com/page", HTML: html, Title: "Doc Title"}
}

func extractMain(t *testing.T, html string) *markdowned.ExtractedContent {
	t.Helper()

	ext := goquery.NewMainContentExtractor(markdowned.DefaultThresholds())
	content, err := ext.Extract(snapshot(html))
	require.NoError(t, err)
	return content
}

func TestMainContentExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts the main element and prunes landmarks", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<!DOCTYPE html>
<html>
<head><title>Doc</title></head>
<body>
<div>Outside content that should be ignored</div>
<main>
<nav><a href="/a">Nav Link</a></nav>
<h1>Heading</h1>
<p>Paragraph text that belongs to the main region.</p>
<script>var tracking = 1;</script>
<footer>Footer text</footer>
</main>
</body>
</html>`)

		assert.Contains(t, content.HTML, "Paragraph text")
		assert.NotContains(t, content.HTML, "Outside content")
		assert.NotContains(t, content.HTML, "Nav Link")
		assert.NotContains(t, content.HTML, "Footer text")
		assert.NotContains(t, content.HTML, "tracking")
		assert.Equal(t, "Heading Paragraph text that belongs to the main region.", content.Text)
		assert.Equal(t, "Doc Title", content.Title)
		assert.Equal(t, "Doc Title", content.DocumentTitle)
		assert.Empty(t, content.ReadabilityTitle)
	})

	t.Run("prefers role main over article", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body>
<article><p>Article paragraph</p></article>
<div role="main"><p>Role main paragraph</p></div>
</body></html>`)

		assert.Contains(t, content.Text, "Role main paragraph")
		assert.NotContains(t, content.Text, "Article paragraph")
	})

	t.Run("uses id and class main selectors", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body>
<div class="main"><p>Class main</p></div>
<div id="main"><p>Id main</p></div>
</body></html>`)

		assert.Equal(t, "Id main", content.Text)
	})

	t.Run("falls back to body", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><div><p>Body paragraph</p></div></body></html>`)

		assert.Equal(t, "Body paragraph", content.Text)
		assert.Equal(t, "<div><p>Body paragraph</p></div>", content.HTML)
	})

	t.Run("removes hidden elements", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<p>Visible paragraph</p>
<p aria-hidden="true">Aria hidden</p>
<p hidden>Hidden attribute</p>
<p style="display: none">Display none</p>
<p style="color:red; VISIBILITY : hidden">Visibility hidden</p>
<p style="opacity:0">Transparent</p>
</main></body></html>`)

		assert.Equal(t, "Visible paragraph", content.Text)
	})

	t.Run("removes chrome by class hint", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<div class="left-sidebar"><p>Sidebar links</p></div>
<div class="editor-toolbar"><p>Bold Italic</p></div>
<span class="sr-only">Screen reader only</span>
<div class="tooltip-content"><p>Tooltip text</p></div>
<p>Real content</p>
</main></body></html>`)

		assert.Equal(t, "Real content", content.Text)
	})

	t.Run("removes interactive controls", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<p>Answer text</p>
<button>Copy</button>
<input value="query">
<select><option>Model A</option></select>
<textarea>Draft message</textarea>
<div role="button">Regenerate</div>
<span aria-haspopup="menu">More</span>
</main></body></html>`)

		assert.Equal(t, "Answer text", content.Text)
	})

	t.Run("removes short interactive-only containers", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<p>Article body paragraph.</p>
<div class="actions"><a href="/share">Share</a> <a href="/like">Like</a></div>
<div class="related"><a href="/next">Next post</a><p>Short teaser</p></div>
</main></body></html>`)

		assert.NotContains(t, content.Text, "Share")
		assert.NotContains(t, content.Text, "Like")
		assert.Contains(t, content.Text, "Next post")
		assert.Contains(t, content.Text, "Short teaser")
	})

	t.Run("removes menu labels in any case", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<p>Answer text</p>
<div aria-label="MENU"><span>Upper menu</span></div>
<div aria-label="Main Menu"><span>Title menu</span></div>
<div aria-label="SubMenu"><span>Camel menu</span></div>
</main></body></html>`)

		assert.Equal(t, "Answer text", content.Text)
	})

	t.Run("keeps interactive containers holding block content", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			name  string
			block string
			text  string
		}{
			{name: "list item", block: `<ul><li>Listed</li></ul>`, text: "Listed"},
			{name: "preformatted", block: `<pre>go test</pre>`, text: "go test"},
			{name: "blockquote", block: `<blockquote>Quoted</blockquote>`, text: "Quoted"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				content := extractMain(t, `<html><body><main>
<p>Article body paragraph.</p>
<div class="related"><a href="/next">Next post</a>`+tc.block+`</div>
</main></body></html>`)

				assert.Contains(t, content.Text, "Next post")
				assert.Contains(t, content.Text, tc.text)
			})
		}
	})

	t.Run("keeps long containers with links", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<div><span>This sentence is long enough to exceed the sixty character container limit.</span> <a href="/more">more</a></div>
</main></body></html>`)

		assert.Contains(t, content.Text, "sixty character container limit")
		assert.Contains(t, content.Text, "more")
	})

	t.Run("removes a short caption next to a control", func(t *testing.T) {
		t.Parallel()

		content := extractMain(t, `<html><body><main>
<p>Body paragraph.</p>
<figure><span>Figure caption</span><a href="/zoom">Zoom</a></figure>
</main></body></html>`)

		assert.Equal(t, "Body paragraph.", content.Text)
	})

	t.Run("honors the container text threshold", func(t *testing.T) {
		t.Parallel()

		th := markdowned.DefaultThresholds()
		th.InteractiveContainerMaxText = 0
		ext := goquery.NewMainContentExtractor(th)

		content, err := ext.Extract(snapshot(`<html><body><main>
<p>Article body paragraph.</p>
<div><a href="/share">Share</a></div>
</main></body></html>`))

		require.NoError(t, err)
		assert.Contains(t, content.Text, "Share")
	})

	t.Run("does not modify the snapshot", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><nav>Nav</nav><p>Text</p></main></body></html>`
		snap := snapshot(html)

		ext := goquery.NewMainContentExtractor(markdowned.DefaultThresholds())
		_, err := ext.Extract(snap)

		require.NoError(t, err)
		assert.Equal(t, html, snap.HTML)
	})

	t.Run("returns not found when pruning leaves nothing", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewMainContentExtractor(markdowned.DefaultThresholds())
		_, err := ext.Extract(snapshot(`<html><body><main>
<nav><a href="/">Home</a></nav>
<button>Send</button>
</main></body></html>`))

		require.Error(t, err)
		assert.Equal(t, markdowned.ENOTFOUND, markdowned.ErrorCode(err))
	})

	t.Run("rejects nil snapshot", func(t *testing.T) {
		t.Parallel()

		ext := goquery.NewMainContentExtractor(markdowned.DefaultThresholds())
		_, err := ext.Extract(nil)

		assert.Equal(t, markdowned.EINVALID, markdowned.ErrorCode(err))
	})
}
