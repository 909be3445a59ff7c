// Package rod loads JavaScript-rendered pages with a headless browser.
package rod

import (
	"context"
	"time"

	"github.com/fwojciec/rulepick"
)

// Ensure Fetcher implements rulepick.Fetcher at compile time.
var _ rulepick.Fetcher = (*Fetcher)(nil)

// DefaultFetchTimeout bounds navigation and load of a single page.
const DefaultFetchTimeout = 30 * time.Second

// Fetcher returns the DOM of a page after its scripts have run.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager     *BrowserManager
	managerOpts []ManagerOption
	timeout     time.Duration
	settle      time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout bounds each fetch.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithSettleDelay waits d after the load event before reading the DOM, for
// pages that render content after load.
func WithSettleDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// WithBrowser configures the browser the Fetcher launches.
func WithBrowser(opts ...ManagerOption) FetcherOption {
	return func(f *Fetcher) {
		f.managerOpts = append(f.managerOpts, opts...)
	}
}

// NewFetcher launches a headless browser.
// Close must be called when the Fetcher is no longer needed.
func NewFetcher(opts ...FetcherOption) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(f.managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = manager
	return f, nil
}

// Fetch navigates to url and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if url == "" {
		return "", rulepick.Errorf(rulepick.EINVALID, "url required")
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Page(ctx)
	if err != nil {
		return "", err
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	if f.settle > 0 {
		timer := time.NewTimer(f.settle)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return page.HTML()
}

// Close releases the browser.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// LauncherPID returns the process ID of the running browser, or 0.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
