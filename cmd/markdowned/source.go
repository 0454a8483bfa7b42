package main

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/markdowned"
	"github.com/fwojciec/markdowned/goquery"
)

// Compile-time interface verification.
var _ markdowned.Fetcher = (*SourceFetcher)(nil)

// SourceFetcher implements markdowned.Fetcher by reading saved HTML files
// from disk and delegating everything else to a remote fetcher.
type SourceFetcher struct {
	Remote markdowned.Fetcher

	// URL is the page address assigned to saved files. When empty, the
	// file's canonical link is used.
	URL string
}

// Fetch returns a snapshot for a file path or URL.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) (*markdowned.Snapshot, error) {
	if isLocalFile(source) {
		return f.readFile(ctx, filePath(source))
	}
	if f.Remote == nil {
		return nil, markdowned.Errorf(markdowned.EUNSUPPORTED, "no fetcher for %s", source)
	}
	return f.Remote.Fetch(ctx, source)
}

func (f *SourceFetcher) readFile(ctx context.Context, path string) (*markdowned.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, markdowned.Errorf(markdowned.ENOTFOUND, "cannot open %s", path)
	}
	defer file.Close()
	return goquery.ParseSnapshot(f.URL, file)
}

// Close closes the remote fetcher.
func (f *SourceFetcher) Close() error {
	if f.Remote == nil {
		return nil
	}
	return f.Remote.Close()
}

// isLocalFile reports whether source names an existing regular file rather
// than a URL.
func isLocalFile(source string) bool {
	if strings.HasPrefix(source, "file://") {
		return true
	}
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		return false
	}
	info, err := os.Stat(source)
	return err == nil && info.Mode().IsRegular()
}

// filePath strips the file:// scheme from source.
func filePath(source string) string {
	if u, err := url.Parse(source); err == nil && u.Scheme == "file" {
		return u.Path
	}
	return source
}

// hasRemoteSource reports whether any source must be fetched over the network.
func hasRemoteSource(sources []string) bool {
	for _, s := range sources {
		if !isLocalFile(s) {
			return true
		}
	}
	return false
}
