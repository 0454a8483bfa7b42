package markdowned

import "context"

// Fetcher captures a document snapshot of a URL.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch loads the URL and returns the rendered document.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Snapshot, error)

	// Close releases resources such as a running browser.
	Close() error
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
