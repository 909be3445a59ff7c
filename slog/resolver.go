// Package slog decorates rulepick services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.Resolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a Resolver and logs every resolution.
type LoggingResolver struct {
	next   rulepick.Resolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next rulepick.Resolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// Resolve delegates to the wrapped resolver and logs the outcome.
func (r *LoggingResolver) Resolve(req rulepick.ResolveRequest) (selectors []string) {
	defer func(begin time.Time) {
		var best string
		if len(selectors) > 0 {
			best = selectors[0]
		}
		tag := ""
		if req.Element != nil {
			tag = req.Element.TagName()
		}
		r.logger.Info("resolve",
			"field", req.FieldName,
			"element", tag,
			"multiple", req.Multiple,
			"context", req.ContextSelector,
			"count", len(selectors),
			"best", best,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Resolve(req)
}
