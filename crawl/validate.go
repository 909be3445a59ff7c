// Package crawl checks picked selectors against other pages of the same
// site, fetching sample pages concurrently and politely.
package crawl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/bloom"
	"github.com/fwojciec/rulepick/selector"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages fetched at once.
const DefaultConcurrency = 4

var _ rulepick.Validator = (*Validator)(nil)

// Validator counts the matches of selector checks on sample pages. A page
// that fails to load is reported with its error and does not fail the run.
type Validator struct {
	Fetcher     rulepick.Fetcher
	Parser      rulepick.DocumentParser
	RateLimiter rulepick.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Validate loads each distinct URL once and counts every check's matches
// within its context. Pages whose body repeats an earlier page are marked
// duplicate. Reports follow the order of urls.
func (v *Validator) Validate(ctx context.Context, urls []string, checks []rulepick.SelectorCheck) (*rulepick.ValidationReport, error) {
	if len(checks) == 0 {
		return nil, rulepick.Errorf(rulepick.EINVALID, "no selectors to validate")
	}
	for _, c := range checks {
		if c.Selector == "" {
			return nil, rulepick.Errorf(rulepick.EINVALID, "empty selector for field %q", c.FieldName)
		}
	}

	seen := bloom.NewFilter(uint(len(urls)), bloom.DefaultFalsePositiveRate)
	var pages []*rulepick.PageReport
	for _, u := range urls {
		if seen.TestAndAdd(u) {
			continue
		}
		pages = append(pages, &rulepick.PageReport{URL: u})
	}

	concurrency := v.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	delays := v.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	var (
		mu     sync.Mutex
		bodies = make(map[uint64]bool)
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for _, page := range pages {
		g.Go(func() error {
			if v.RateLimiter != nil {
				if err := v.RateLimiter.Wait(gctx, Domain(page.URL)); err != nil {
					return err
				}
			}

			html, err := FetchWithRetry(gctx, v.Fetcher, page.URL, delays, v.Logger)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				page.Err = err
				return nil
			}

			sum := xxhash.Sum64String(html)
			mu.Lock()
			dup := bodies[sum]
			bodies[sum] = true
			mu.Unlock()
			if dup {
				page.Duplicate = true
				return nil
			}

			doc, err := v.Parser.Parse(html)
			if err != nil {
				page.Err = err
				return nil
			}
			page.Counts = make([]int, len(checks))
			for i, c := range checks {
				page.Counts[i] = selector.CountInContext(doc, c.Selector, c.Context())
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &rulepick.ValidationReport{Checks: checks, Pages: pages}, nil
}
