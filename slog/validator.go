package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.Validator = (*LoggingValidator)(nil)

// LoggingValidator wraps a Validator and logs a summary of each run.
type LoggingValidator struct {
	next   rulepick.Validator
	logger *slog.Logger
}

// NewLoggingValidator creates a new LoggingValidator.
func NewLoggingValidator(next rulepick.Validator, logger *slog.Logger) *LoggingValidator {
	return &LoggingValidator{next: next, logger: logger}
}

// Validate delegates to the wrapped validator and logs page outcomes.
func (v *LoggingValidator) Validate(ctx context.Context, urls []string, checks []rulepick.SelectorCheck) (report *rulepick.ValidationReport, err error) {
	defer func(begin time.Time) {
		var failed, duplicate int
		if report != nil {
			for _, p := range report.Pages {
				switch {
				case p.Err != nil:
					failed++
					v.logger.Warn("page failed", "url", p.URL, "err", p.Err)
				case p.Duplicate:
					duplicate++
				}
			}
		}
		v.logger.Info("validate",
			"urls", len(urls),
			"checks", len(checks),
			"failed", failed,
			"duplicate", duplicate,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return v.next.Validate(ctx, urls, checks)
}
