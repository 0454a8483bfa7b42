package markdowned_test

import (
	"testing"
	"time"

	"github.com/fwojciec/markdowned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractedContent_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts content with html and text", func(t *testing.T) {
		t.Parallel()

		c := &markdowned.ExtractedContent{HTML: "<p>Hi</p>", Text: "Hi"}

		require.NoError(t, c.Validate())
	})

	t.Run("rejects nil content", func(t *testing.T) {
		t.Parallel()

		var c *markdowned.ExtractedContent

		assert.Equal(t, markdowned.EINVALID, markdowned.ErrorCode(c.Validate()))
	})

	t.Run("rejects whitespace-only html", func(t *testing.T) {
		t.Parallel()

		c := &markdowned.ExtractedContent{HTML: "  \n ", Text: "Hi"}

		assert.Equal(t, markdowned.EINVALID, markdowned.ErrorCode(c.Validate()))
	})

	t.Run("rejects whitespace-only text", func(t *testing.T) {
		t.Parallel()

		c := &markdowned.ExtractedContent{HTML: "<div> </div>", Text: " \t\n"}

		assert.Equal(t, markdowned.EINVALID, markdowned.ErrorCode(c.Validate()))
	})
}

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	t.Run("collapses whitespace runs", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "a b c", markdowned.NormalizeText("  a \n\t b  c  "))
	})

	t.Run("returns empty string for blank input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, markdowned.NormalizeText(" \n\ufeff "))
	})
}

func TestFormatTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2026, 2, 20, 16, 0, 0, 123456789, time.FixedZone("CET", 3600))

	assert.Equal(t, "2026-02-20T15:00:00.123Z", markdowned.FormatTimestamp(ts))
}
