package rulepick

import "context"

// Fetcher loads the HTML of a page. Browser-backed implementations return
// the DOM after scripts have run.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases browsers, connections, and other resources.
	Close() error
}

// DomainLimiter spaces out requests to the same host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed or ctx is done.
	Wait(ctx context.Context, domain string) error
}
