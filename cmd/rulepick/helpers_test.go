package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/rulepick"
	main "github.com/fwojciec/rulepick/cmd/rulepick"
	"github.com/fwojciec/rulepick/filters"
	"github.com/fwojciec/rulepick/goquery"
	"github.com/fwojciec/rulepick/htmltomarkdown"
	"github.com/fwojciec/rulepick/selector"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<html><head><title>Post</title></head><body>
<div class="wrapper">
<article class="post">
<h1 class="title">Hello</h1>
<span class="author-name">Jane</span>
<div class="post-content"><p>First <strong>paragraph</strong>.</p><p>Second <a href="/more">link</a>.</p></div>
<ul><li class="tag">a</li><li class="tag">b</li></ul>
</article>
</div>
</body></html>`

// testDeps returns dependencies serving html for every source.
func testDeps(t *testing.T, html string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	registry := filters.NewRegistry()
	filters.RegisterDefaults(registry)

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	deps := &main.Dependencies{
		Ctx:    context.Background(),
		Stdin:  &bytes.Buffer{},
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
		Pages: main.PageLoaderFunc(func(_ context.Context, source string) (*main.Page, error) {
			doc, err := goquery.NewDocument(html)
			require.NoError(t, err)
			return &main.Page{URL: source, Document: doc}, nil
		}),
		Resolver: selector.NewResolver(registry),
		Converters: func(baseURL string) rulepick.Converter {
			return htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(baseURL))
		},
	}
	return deps, stdout, stderr
}
