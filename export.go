package markdowned

import "context"

// Export outcome messages shown to the user.
const (
	ExportedMessage           = "Copied & downloaded."
	DefaultExportErrorMessage = "Failed to export page as markdown."
)

// Exporter turns a document snapshot into an export payload and delivers it.
type Exporter interface {
	Export(ctx context.Context, snap *Snapshot) (*ExportPayload, error)
}

// Clipboard receives the exported Markdown text.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// FileWriter persists the exported Markdown under the given file name.
// This is the counterpart of a browser download.
type FileWriter interface {
	WriteFile(ctx context.Context, fileName string, markdown string) error
}

// Notifier reports the outcome of an export to the user.
type Notifier interface {
	Notify(message string, isError bool)
}
