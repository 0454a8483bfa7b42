// Package fs saves exported Markdown files to a directory.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/markdowned"
)

// Ensure Writer implements markdowned.FileWriter at compile time.
var _ markdowned.FileWriter = (*Writer)(nil)

// Writer writes exports as markdown files to a directory.
// Files are written to a temporary name and renamed into place so a reader
// never observes a partial export.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns the full path an export named fileName is written to.
func (w *Writer) Path(fileName string) string {
	return filepath.Join(w.baseDir, fileName)
}

// WriteFile writes markdown to fileName inside the base directory,
// replacing any existing file with the same name.
func (w *Writer) WriteFile(ctx context.Context, fileName string, markdown string) error {
	if err := validateFileName(fileName); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(w.baseDir, "."+fileName+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(markdown); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, w.Path(fileName)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

func validateFileName(fileName string) error {
	switch {
	case fileName == "":
		return markdowned.Errorf(markdowned.EINVALID, "file name required")
	case strings.ContainsAny(fileName, `/\`), fileName == ".", fileName == "..":
		return markdowned.Errorf(markdowned.EINVALID, "invalid file name %q", fileName)
	}
	return nil
}
