package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/rulepick"
	rphttp "github.com/fwojciec/rulepick/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body", func(t *testing.T) {
		t.Parallel()

		var ua, accept string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ua = r.Header.Get("User-Agent")
			accept = r.Header.Get("Accept")
			_, _ = w.Write([]byte(`<html><body><p class="lead">Hi</p></body></html>`))
		}))
		defer server.Close()

		fetcher := rphttp.NewFetcher(rphttp.WithUserAgent("test-agent"))
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)

		require.NoError(t, err)
		assert.Equal(t, `<html><body><p class="lead">Hi</p></body></html>`, html)
		assert.Equal(t, "test-agent", ua)
		assert.Contains(t, accept, "text/html")
	})

	t.Run("reports missing pages as not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer server.Close()

		_, err := rphttp.NewFetcher().Fetch(context.Background(), server.URL)

		assert.Equal(t, rulepick.ENOTFOUND, rulepick.ErrorCode(err))
	})

	t.Run("returns an error for other statuses", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		_, err := rphttp.NewFetcher().Fetch(context.Background(), server.URL)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})

	t.Run("rejects oversized pages", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		}))
		defer server.Close()

		_, err := rphttp.NewFetcher(rphttp.WithMaxBodySize(32)).Fetch(context.Background(), server.URL)

		assert.Equal(t, rulepick.EINVALID, rulepick.ErrorCode(err))
	})

	t.Run("respects the timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
		}))
		defer server.Close()

		_, err := rphttp.NewFetcher(rphttp.WithTimeout(10*time.Millisecond)).Fetch(context.Background(), server.URL)

		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer server.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := rphttp.NewFetcher().Fetch(ctx, server.URL)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects malformed URLs", func(t *testing.T) {
		t.Parallel()

		_, err := rphttp.NewFetcher().Fetch(context.Background(), "http://[::1")

		assert.Equal(t, rulepick.EINVALID, rulepick.ErrorCode(err))
	})
}
