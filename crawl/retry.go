package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rulepick"
)

// DefaultRetryDelays are the waits before the second, third, and fourth
// attempts.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{500 * time.Millisecond, time.Second, 2 * time.Second}
}

// FetchWithRetry fetches url, retrying transient failures after each of
// delays. Not-found and invalid-input errors are returned at once.
func FetchWithRetry(ctx context.Context, fetcher rulepick.Fetcher, url string, delays []time.Duration, logger *slog.Logger) (string, error) {
	for attempt := 0; ; attempt++ {
		html, err := fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		if !retryable(err) || attempt >= len(delays) {
			return "", err
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if logger != nil {
			logger.Debug("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", ctx.Err()
		case <-timer.C:
		}
	}
}

func retryable(err error) bool {
	switch rulepick.ErrorCode(err) {
	case rulepick.ENOTFOUND, rulepick.EINVALID:
		return false
	}
	return true
}
