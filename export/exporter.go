// Package export orchestrates a single page export: URL validation,
// content selection, rendering, naming and delivery.
package export

import (
	"context"
	"time"

	"github.com/fwojciec/markdowned"
)

// Ensure Exporter implements markdowned.Exporter at compile time.
var _ markdowned.Exporter = (*Exporter)(nil)

// Exporter turns snapshots into Markdown exports. Clipboard, Files and
// Notifier are optional; a nil collaborator is skipped.
type Exporter struct {
	Selector  markdowned.CandidateSelector
	Renderer  markdowned.Renderer
	Clipboard markdowned.Clipboard
	Files     markdowned.FileWriter
	Notifier  markdowned.Notifier

	// Now returns the export time. Defaults to time.Now.
	Now func() time.Time
}

// Export builds the payload for snap, then copies it to the clipboard,
// writes the file and notifies the user, in that order. Any failure is
// reported through the notifier and returned.
func (e *Exporter) Export(ctx context.Context, snap *markdowned.Snapshot) (*markdowned.ExportPayload, error) {
	payload, err := e.export(ctx, snap)
	if err != nil {
		e.notify(errorMessage(err), true)
		return nil, err
	}
	e.notify(markdowned.ExportedMessage, false)
	return payload, nil
}

func (e *Exporter) export(ctx context.Context, snap *markdowned.Snapshot) (*markdowned.ExportPayload, error) {
	if snap == nil {
		return nil, markdowned.Errorf(markdowned.EINVALID, "No URL available for this page.")
	}

	pageURL, err := markdowned.ValidatePageURL(snap.URL)
	if err != nil {
		return nil, err
	}

	payload, err := e.Build(snap, pageURL)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.Clipboard != nil {
		if err := e.Clipboard.WriteText(ctx, payload.Markdown); err != nil {
			return nil, err
		}
	}
	if e.Files != nil {
		if err := e.Files.WriteFile(ctx, payload.FileName, payload.Markdown); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// Build runs the pure part of an export for an already validated URL:
// selection, rendering, title resolution and file naming.
func (e *Exporter) Build(snap *markdowned.Snapshot, pageURL string) (*markdowned.ExportPayload, error) {
	extractedAt := markdowned.FormatTimestamp(e.now())

	content := e.Selector.SelectExtractionCandidate(snap)

	md, err := e.Renderer.BuildMarkdown(content, pageURL, extractedAt)
	if err != nil {
		return nil, err
	}

	documentTitle := content.DocumentTitle
	if documentTitle == "" {
		documentTitle = snap.Title
	}
	title := markdowned.SelectExportTitle(markdowned.TitleInput{
		PreferredTitle:   content.Title,
		ReadabilityTitle: content.ReadabilityTitle,
		DocumentTitle:    documentTitle,
		URL:              pageURL,
	})

	return &markdowned.ExportPayload{
		Title:       title,
		URL:         pageURL,
		Markdown:    md,
		FileName:    markdowned.BuildExportFileName(title, extractedAt),
		ExtractedAt: extractedAt,
	}, nil
}

func (e *Exporter) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

func (e *Exporter) notify(message string, isError bool) {
	if e.Notifier != nil {
		e.Notifier.Notify(message, isError)
	}
}

func errorMessage(err error) string {
	if msg := markdowned.ErrorMessage(err); msg != "" {
		return msg
	}
	return markdowned.DefaultExportErrorMessage
}
