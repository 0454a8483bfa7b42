package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		html string
		want []string
	}{
		{
			name: "uses ATX headings",
			html: `<h1>Title</h1><h2>Subtitle</h2><h3>Section</h3>`,
			want: []string{"# Title", "## Subtitle", "### Section"},
		},
		{
			name: "converts links",
			html: `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`,
			want: []string{"[Example](https://example.com)"},
		},
		{
			name: "uses dash bullets",
			html: `<ul><li>First</li><li>Second</li></ul>`,
			want: []string{"- First", "- Second"},
		},
		{
			name: "numbers ordered lists",
			html: `<ol><li>First</li><li>Second</li></ol>`,
			want: []string{"1. First", "2. Second"},
		},
		{
			name: "uses asterisks for emphasis",
			html: `<p><strong>Bold</strong> and <em>italic</em> text.</p>`,
			want: []string{"**Bold**", "*italic*"},
		},
		{
			name: "fences code blocks with backticks",
			html: `<p>Run <code>go build</code>.</p><pre><code class="language-go">package main</code></pre>`,
			want: []string{"`go build`", "```go", "package main"},
		},
		{
			name: "converts tables",
			html: `<table><thead><tr><th>Name</th><th>Age</th></tr></thead><tbody><tr><td>Alice</td><td>30</td></tr></tbody></table>`,
			want: []string{"Name", "Alice", "|", "---"},
		},
		{
			name: "converts blockquotes",
			html: `<blockquote><p>This is a quote.</p></blockquote>`,
			want: []string{"> This is a quote."},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			md, err := htmltomarkdown.NewConverter().Convert(tc.html)

			require.NoError(t, err)
			for _, s := range tc.want {
				assert.Contains(t, md, s)
			}
		})
	}

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert(" \n")

		assert.Equal(t, markdowned.EINVALID, markdowned.ErrorCode(err))
	})
}
