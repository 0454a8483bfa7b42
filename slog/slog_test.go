package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"regexp"
	"testing"

	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/mock"
	mdslog "github.com/fwojciec/markdowned/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

var snap = &markdowned.Snapshot{URL: "https://example.com/a", HTML: "<p>x</p>", Title: "A"}

func TestDigest(t *testing.T) {
	t.Parallel()

	assert.Len(t, mdslog.Digest("hello"), 16)
	assert.Equal(t, mdslog.Digest("hello"), mdslog.Digest("hello"))
	assert.NotEqual(t, mdslog.Digest("hello"), mdslog.Digest("hello!"))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs strategy and text length", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{ExtractFn: func(*markdowned.Snapshot) (*markdowned.ExtractedContent, error) {
			return &markdowned.ExtractedContent{HTML: "<p>héllo</p>", Text: "héllo"}, nil
		}}

		content, err := mdslog.NewLoggingExtractor(inner, "main", newLogger(&buf)).Extract(snap)

		require.NoError(t, err)
		assert.Equal(t, "héllo", content.Text)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "strategy=main")
		assert.Contains(t, output, "url=https://example.com/a")
		assert.Contains(t, output, "text_length=5")
	})

	t.Run("logs error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{ExtractFn: func(*markdowned.Snapshot) (*markdowned.ExtractedContent, error) {
			return nil, markdowned.Errorf(markdowned.ENOTFOUND, "no article")
		}}

		_, err := mdslog.NewLoggingExtractor(inner, "readability", newLogger(&buf)).Extract(nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "text_length=0")
		assert.Contains(t, buf.String(), "no article")
	})
}

func TestLoggingScorer_Score(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Scorer{ScoreFn: func(*markdowned.Snapshot) int { return 3 }}

	score := mdslog.NewLoggingScorer(inner, newLogger(&buf)).Score(snap)

	assert.Equal(t, 3, score)
	assert.Contains(t, buf.String(), "score=3")
}

type sourceSelector struct {
	content *markdowned.ExtractedContent
	source  markdowned.CandidateSource
}

func (s *sourceSelector) Select(*markdowned.Snapshot) (*markdowned.ExtractedContent, markdowned.CandidateSource) {
	return s.content, s.source
}

func TestLoggingSelector_SelectExtractionCandidate(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	want := &markdowned.ExtractedContent{Title: "Main"}
	inner := &sourceSelector{content: want, source: markdowned.SourceMain}

	got := mdslog.NewLoggingSelector(inner, newLogger(&buf)).SelectExtractionCandidate(snap)

	assert.Same(t, want, got)
	assert.Contains(t, buf.String(), "source=main")
}

func TestLoggingRenderer_BuildMarkdown(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Renderer{BuildMarkdownFn: func(*markdowned.ExtractedContent, string, string) (string, error) {
		return "# T\n", nil
	}}

	md, err := mdslog.NewLoggingRenderer(inner, newLogger(&buf)).BuildMarkdown(&markdowned.ExtractedContent{}, "https://x.test", "2026-02-20T15:00:00.000Z")

	require.NoError(t, err)
	assert.Equal(t, "# T\n", md)
	assert.Contains(t, buf.String(), "bytes=4")
	assert.Contains(t, buf.String(), "digest="+mdslog.Digest("# T\n"))
}

func TestLoggingExporter_Export(t *testing.T) {
	t.Parallel()

	requestID := regexp.MustCompile(`request_id=[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)

	t.Run("logs the payload with a request ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Exporter{ExportFn: func(context.Context, *markdowned.Snapshot) (*markdowned.ExportPayload, error) {
			return &markdowned.ExportPayload{
				Title:    "A",
				URL:      "https://example.com/a",
				Markdown: "# A\n",
				FileName: "a-2026-02-20.md",
			}, nil
		}}

		payload, err := mdslog.NewLoggingExporter(inner, newLogger(&buf)).Export(context.Background(), snap)

		require.NoError(t, err)
		assert.Equal(t, "A", payload.Title)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "file=a-2026-02-20.md")
		assert.Regexp(t, requestID, output)
	})

	t.Run("logs failures as warnings with the error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Exporter{ExportFn: func(context.Context, *markdowned.Snapshot) (*markdowned.ExportPayload, error) {
			return nil, markdowned.Errorf(markdowned.EUNSUPPORTED, "Unsupported protocol: ftp:")
		}}

		_, err := mdslog.NewLoggingExporter(inner, newLogger(&buf)).Export(context.Background(), snap)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "code=unsupported")
		assert.Regexp(t, requestID, output)
	})

	t.Run("uses a new request ID per export", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Exporter{ExportFn: func(context.Context, *markdowned.Snapshot) (*markdowned.ExportPayload, error) {
			return nil, errors.New("boom")
		}}
		exporter := mdslog.NewLoggingExporter(inner, newLogger(&buf))

		_, _ = exporter.Export(context.Background(), snap)
		_, _ = exporter.Export(context.Background(), snap)

		ids := requestID.FindAllString(buf.String(), -1)
		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
	})
}
