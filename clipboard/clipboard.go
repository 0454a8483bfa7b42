// Package clipboard copies exported Markdown to the system clipboard.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/markdowned"
)

// Ensure Clipboard implements markdowned.Clipboard at compile time.
var _ markdowned.Clipboard = (*Clipboard)(nil)

// Clipboard writes text to the system clipboard via atotto/clipboard.
type Clipboard struct {
	// Unsupported reports that no clipboard utility is available.
	Unsupported bool

	writeAll func(text string) error
}

// NewClipboard creates a Clipboard backed by the system clipboard.
func NewClipboard() *Clipboard {
	return &Clipboard{
		Unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
	}
}

// NewClipboardWithWriter creates a Clipboard that hands text to writeAll.
func NewClipboardWithWriter(writeAll func(text string) error) *Clipboard {
	return &Clipboard{writeAll: writeAll}
}

// WriteText replaces the clipboard contents with text.
func (c *Clipboard) WriteText(ctx context.Context, text string) error {
	if c.Unsupported || c.writeAll == nil {
		return markdowned.Errorf(markdowned.EUNSUPPORTED, "Clipboard API unavailable in this context.")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := c.writeAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}
