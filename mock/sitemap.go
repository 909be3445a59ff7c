package mock

import (
	"context"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of rulepick.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *rulepick.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *rulepick.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}
