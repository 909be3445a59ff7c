package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/rulepick"
)

// DefaultMaxSitemaps bounds how many sitemap files one discovery reads.
const DefaultMaxSitemaps = 50

var _ rulepick.SitemapService = (*SitemapService)(nil)

// SitemapService reads robots.txt and sitemap XML over HTTP.
type SitemapService struct {
	client      *http.Client
	maxSitemaps int
}

// NewSitemapService creates a SitemapService. A nil client means
// http.DefaultClient.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client, maxSitemaps: DefaultMaxSitemaps}
}

// DiscoverURLs returns the deduplicated page URLs in document order.
// A site without sitemaps yields an empty slice.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *rulepick.URLFilter) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, rulepick.Errorf(rulepick.EINVALID, "invalid base URL %q", baseURL)
	}
	scope := strings.TrimSuffix(base.Path, "/")

	queue, err := s.sitemapLocations(ctx, base)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seenURLs := make(map[string]bool)
	seenSitemaps := make(map[string]bool)
	for len(queue) > 0 && len(seenSitemaps) < s.maxSitemaps {
		loc := queue[0]
		queue = queue[1:]
		if seenSitemaps[loc] {
			continue
		}
		seenSitemaps[loc] = true

		pages, nested, err := s.readSitemap(ctx, loc)
		if err != nil {
			return nil, err
		}
		queue = append(queue, nested...)
		for _, u := range pages {
			if seenURLs[u] || !inScope(u, scope) || !filter.Match(u) {
				continue
			}
			seenURLs[u] = true
			urls = append(urls, u)
		}
	}
	return urls, nil
}

// sitemapLocations returns the sitemaps named in robots.txt, or
// /sitemap.xml when robots.txt names none and it exists.
func (s *SitemapService) sitemapLocations(ctx context.Context, base *url.URL) ([]string, error) {
	root := &url.URL{Scheme: base.Scheme, Host: base.Host}

	if body, err := s.get(ctx, root.JoinPath("robots.txt").String()); err == nil {
		locs, err := robotsSitemaps(body)
		body.Close()
		if err != nil {
			return nil, err
		}
		if len(locs) > 0 {
			return locs, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := root.JoinPath("sitemap.xml").String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

func robotsSitemaps(r io.Reader) ([]string, error) {
	var locs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if loc := strings.TrimSpace(value); loc != "" {
			locs = append(locs, loc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}
	return locs, nil
}

// readSitemap returns the page URLs of a urlset, or the nested sitemap
// URLs of a sitemapindex.
func (s *SitemapService) readSitemap(ctx context.Context, loc string) (pages, nested []string, err error) {
	body, err := s.get(ctx, loc)
	if err != nil {
		return nil, nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(loc, ".gz") {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, nil, fmt.Errorf("decompress sitemap %s: %w", loc, err)
		}
		defer gz.Close()
		r = gz
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, nil, rulepick.Errorf(rulepick.EINVALID, "invalid sitemap XML at %s: %v", loc, err)
	}
	root := doc.Root()
	if root == nil {
		return nil, nil, rulepick.Errorf(rulepick.EINVALID, "empty sitemap at %s", loc)
	}

	switch root.Tag {
	case "sitemapindex":
		return nil, locs(root, "sitemap"), nil
	default:
		return locs(root, "url"), nil, nil
	}
}

func locs(root *etree.Element, entry string) []string {
	var out []string
	for _, el := range root.SelectElements(entry) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			out = append(out, u)
		}
	}
	return out
}

// inScope reports whether u lies under the path scope, respecting segment
// boundaries: /news matches /news and /news/a but not /newsletter.
func inScope(u, scope string) bool {
	if scope == "" {
		return true
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	return parsed.Path == scope || strings.HasPrefix(parsed.Path, scope+"/")
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", target, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
