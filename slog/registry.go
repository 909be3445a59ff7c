package slog

import (
	"log/slog"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.FilterRegistry = (*LoggingFilterRegistry)(nil)

// LoggingFilterRegistry wraps a FilterRegistry and logs, at debug level,
// which heuristics apply to a field.
type LoggingFilterRegistry struct {
	next   rulepick.FilterRegistry
	logger *slog.Logger
}

// NewLoggingFilterRegistry creates a new LoggingFilterRegistry.
func NewLoggingFilterRegistry(next rulepick.FilterRegistry, logger *slog.Logger) *LoggingFilterRegistry {
	return &LoggingFilterRegistry{next: next, logger: logger}
}

func (r *LoggingFilterRegistry) ElementFilter(fieldName string) rulepick.ElementFilter {
	f := r.next.ElementFilter(fieldName)
	r.logLookup("element", fieldName, f != nil)
	return f
}

func (r *LoggingFilterRegistry) WeightFilter(fieldName string) rulepick.WeightFilter {
	f := r.next.WeightFilter(fieldName)
	r.logLookup("weight", fieldName, f != nil)
	return f
}

func (r *LoggingFilterRegistry) ScoreFilter(fieldName string) rulepick.ScoreFilter {
	f := r.next.ScoreFilter(fieldName)
	r.logLookup("score", fieldName, f != nil)
	return f
}

func (r *LoggingFilterRegistry) RegisterElementFilter(key string, f rulepick.ElementFilter) {
	r.next.RegisterElementFilter(key, f)
}

func (r *LoggingFilterRegistry) RegisterWeightFilter(key string, f rulepick.WeightFilter) {
	r.next.RegisterWeightFilter(key, f)
}

func (r *LoggingFilterRegistry) RegisterScoreFilter(key string, f rulepick.ScoreFilter) {
	r.next.RegisterScoreFilter(key, f)
}

func (r *LoggingFilterRegistry) logLookup(kind, fieldName string, found bool) {
	if fieldName == "" {
		return
	}
	r.logger.Debug("filter lookup",
		"kind", kind,
		"field", fieldName,
		"found", found,
	)
}
