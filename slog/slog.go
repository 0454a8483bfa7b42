// Package slog provides log/slog decorators for the export pipeline.
// Each decorator wraps a markdowned interface, delegates to it and logs the
// operation with its duration and error.
package slog

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a short content hash for correlating exports in logs.
func Digest(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
