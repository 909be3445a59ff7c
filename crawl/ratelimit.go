package crawl

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/rulepick"
	"golang.org/x/time/rate"
)

var _ rulepick.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter keeps one token bucket per host so sample pages of one site
// are fetched politely while other hosts proceed independently.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter allows rps requests per second per host with the given
// burst. A burst below one is treated as one.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
		burst:   max(burst, 1),
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(strings.ToLower(domain)).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[domain]
	if !ok {
		b = rate.NewLimiter(d.limit, d.burst)
		d.buckets[domain] = b
	}
	return b
}

// Domain returns the host of rawURL, or "" when it has none.
func Domain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Hostname())
}
