// Package rod captures rendered document snapshots with headless Chrome,
// for pages that build their content with JavaScript.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/markdowned"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements markdowned.Fetcher at compile time.
var _ markdowned.Fetcher = (*Fetcher)(nil)

// Fetcher renders pages in headless Chrome and snapshots the resulting DOM.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *browser
	timeout  time.Duration
	maxPages int
	bin      string
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page render timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPages sets how many pages are rendered before Chrome is restarted.
// Zero disables restarts.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// WithBrowserBin uses the Chrome binary at path instead of locating one.
func WithBrowserBin(path string) Option {
	return func(f *Fetcher) {
		f.bin = path
	}
}

// NewFetcher launches headless Chrome and returns a Fetcher using it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:  DefaultFetchTimeout,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}

	b, err := newBrowser(f.maxPages, f.bin)
	if err != nil {
		return nil, err
	}
	f.browser = b
	return f, nil
}

// Fetch navigates to url, waits for the load event and returns the rendered
// document with the page's title and final URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*markdowned.Snapshot, error) {
	if f.closed.Load() {
		return nil, markdowned.Errorf(markdowned.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := f.browser.acquire().Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, contextErr(ctx, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, contextErr(ctx, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, contextErr(ctx, err)
	}

	info, err := page.Info()
	if err != nil {
		return nil, contextErr(ctx, err)
	}

	snap := &markdowned.Snapshot{
		URL:   info.URL,
		HTML:  html,
		Title: markdowned.NormalizeText(info.Title),
	}
	if snap.URL == "" {
		snap.URL = url
	}
	return snap, nil
}

// contextErr prefers the context error so callers can match timeouts with
// errors.Is.
func contextErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return err
}

// LauncherPID returns the process ID of the running Chrome launcher.
func (f *Fetcher) LauncherPID() int {
	return f.browser.pid()
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.browser.close()
}
