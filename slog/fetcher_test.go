package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/rulepick/mock"
	rpslog "github.com/fwojciec/rulepick/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs url and page size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "<p>article</p>", nil
			},
		}

		html, err := rpslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), "https://example.com/news/1")

		require.NoError(t, err)
		assert.Equal(t, "<p>article</p>", html)
		out := buf.String()
		assert.Contains(t, out, "msg=fetch")
		assert.Contains(t, out, "url=https://example.com/news/1")
		assert.Contains(t, out, "bytes=14")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs the error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Fetcher{
			FetchFn: func(context.Context, string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		_, err := rpslog.NewLoggingFetcher(inner, slog.New(slog.NewTextHandler(&buf, nil))).
			Fetch(context.Background(), "https://example.com/news/1")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="connection refused"`)
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{CloseFn: func() error { closed = true; return nil }}

		require.NoError(t, rpslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close())
		assert.True(t, closed)
	})
}
