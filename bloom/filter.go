// Package bloom remembers which sample pages a validation run has already
// visited.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// DefaultFalsePositiveRate is used when callers do not pick one.
const DefaultFalsePositiveRate = 0.001

// Filter is a concurrency-safe set of page URLs. URLs differing only by
// fragment, a trailing slash, or host case are the same page. A false
// positive makes a page look visited; a visited page never looks new.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter sizes a Filter for n pages at the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	if n == 0 {
		n = 1
	}
	if fpRate <= 0 || fpRate >= 1 {
		fpRate = DefaultFalsePositiveRate
	}
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// TestAndAdd records rawURL and reports whether it was probably recorded
// before.
func (f *Filter) TestAndAdd(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestAndAddString(normalize(rawURL))
}

// Seen reports whether rawURL was probably recorded.
func (f *Filter) Seen(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(normalize(rawURL))
}

// Count approximates how many distinct pages were recorded.
func (f *Filter) Count() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

func normalize(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Host = strings.ToLower(u.Host)
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = strings.TrimSuffix(u.RawPath, "/")
	}
	return u.String()
}
