package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/markdowned"
)

// Compile-time interface verification.
var (
	_ markdowned.Notifier   = (*WriterNotifier)(nil)
	_ markdowned.FileWriter = (*StdoutWriter)(nil)
	_ markdowned.FileWriter = (multiFileWriter)(nil)
)

// WriterNotifier prints export notifications as terminal lines.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier that writes to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes message, prefixed with "error: " for failures.
func (n *WriterNotifier) Notify(message string, isError bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if isError {
		fmt.Fprintf(n.w, "error: %s\n", message)
		return
	}
	fmt.Fprintln(n.w, message)
}

// StdoutWriter implements markdowned.FileWriter by printing the markdown
// instead of saving it.
type StdoutWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdoutWriter creates a writer that prints to w.
func NewStdoutWriter(w io.Writer) *StdoutWriter {
	return &StdoutWriter{w: w}
}

// WriteFile prints markdown. Concurrent exports never interleave.
func (s *StdoutWriter) WriteFile(ctx context.Context, _ string, markdown string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := io.WriteString(s.w, markdown)
	return err
}

// multiFileWriter writes the markdown to every writer in order.
type multiFileWriter []markdowned.FileWriter

func (m multiFileWriter) WriteFile(ctx context.Context, fileName string, markdown string) error {
	for _, w := range m {
		if err := w.WriteFile(ctx, fileName, markdown); err != nil {
			return err
		}
	}
	return nil
}
