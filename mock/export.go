package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/markdowned"
)

var _ markdowned.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of markdowned.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, snap *markdowned.Snapshot) (*markdowned.ExportPayload, error)
}

func (e *Exporter) Export(ctx context.Context, snap *markdowned.Snapshot) (*markdowned.ExportPayload, error) {
	return e.ExportFn(ctx, snap)
}

var _ markdowned.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of markdowned.Clipboard.
type Clipboard struct {
	WriteTextFn func(ctx context.Context, text string) error
}

func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	return c.WriteTextFn(ctx, text)
}

var _ markdowned.FileWriter = (*FileWriter)(nil)

// FileWriter is a mock implementation of markdowned.FileWriter.
type FileWriter struct {
	WriteFileFn func(ctx context.Context, fileName string, markdown string) error
}

func (w *FileWriter) WriteFile(ctx context.Context, fileName string, markdown string) error {
	return w.WriteFileFn(ctx, fileName, markdown)
}

var _ markdowned.Notifier = (*Notifier)(nil)

// Notifier is a mock implementation of markdowned.Notifier that records
// every notification.
type Notifier struct {
	mu    sync.Mutex
	calls []Notification
}

// Notification is a recorded Notifier call.
type Notification struct {
	Message string
	IsError bool
}

func (n *Notifier) Notify(message string, isError bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, Notification{Message: message, IsError: isError})
}

// Calls returns the notifications received so far.
func (n *Notifier) Calls() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Notification(nil), n.calls...)
}
