package main

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/goquery"
)

// Page is a loaded page and where it came from.
type Page struct {
	// URL is the page address, or "" for local files.
	URL      string
	Document *goquery.Document
}

// BaseURL returns the scheme and host of the page, or "" for local files.
func (p *Page) BaseURL() string {
	u, err := url.Parse(p.URL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// PageLoader loads a page from a URL or a local file.
type PageLoader interface {
	Load(ctx context.Context, source string) (*Page, error)
}

// PageLoaderFunc adapts a function to PageLoader.
type PageLoaderFunc func(ctx context.Context, source string) (*Page, error)

// Load calls f.
func (f PageLoaderFunc) Load(ctx context.Context, source string) (*Page, error) {
	return f(ctx, source)
}

var _ PageLoader = (*SourceLoader)(nil)

// SourceLoader fetches http(s) sources and reads anything else from disk.
type SourceLoader struct {
	Fetcher rulepick.Fetcher
}

// Load implements PageLoader.
func (l *SourceLoader) Load(ctx context.Context, source string) (*Page, error) {
	if source == "" {
		return nil, rulepick.Errorf(rulepick.EINVALID, "page source required")
	}

	var (
		html    string
		pageURL string
	)
	if isURL(source) {
		var err error
		if html, err = l.Fetcher.Fetch(ctx, source); err != nil {
			return nil, err
		}
		pageURL = source
	} else {
		data, err := os.ReadFile(source)
		if os.IsNotExist(err) {
			return nil, rulepick.Errorf(rulepick.ENOTFOUND, "file %q not found", source)
		} else if err != nil {
			return nil, err
		}
		html = string(data)
	}

	doc, err := goquery.NewDocument(html)
	if err != nil {
		return nil, err
	}
	return &Page{URL: pageURL, Document: doc}, nil
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
