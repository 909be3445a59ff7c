// Package filters holds per-field heuristics that steer selector resolution
// for semantically special fields such as an article's author or body.
package filters

import (
	"sync"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.FilterRegistry = (*Registry)(nil)

// Registry maps field keys to filters. A lookup tries the exact field name,
// then its wildcard key. Registering a key again replaces the filter.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]rulepick.ElementFilter
	weights  map[string]rulepick.WeightFilter
	scores   map[string]rulepick.ScoreFilter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		elements: make(map[string]rulepick.ElementFilter),
		weights:  make(map[string]rulepick.WeightFilter),
		scores:   make(map[string]rulepick.ScoreFilter),
	}
}

func (r *Registry) ElementFilter(fieldName string) rulepick.ElementFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookup(r.elements, fieldName)
}

func (r *Registry) WeightFilter(fieldName string) rulepick.WeightFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookup(r.weights, fieldName)
}

func (r *Registry) ScoreFilter(fieldName string) rulepick.ScoreFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lookup(r.scores, fieldName)
}

func (r *Registry) RegisterElementFilter(key string, f rulepick.ElementFilter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements[key] = f
}

func (r *Registry) RegisterWeightFilter(key string, f rulepick.WeightFilter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.weights[key] = f
}

func (r *Registry) RegisterScoreFilter(key string, f rulepick.ScoreFilter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scores[key] = f
}

func lookup[F any](m map[string]F, fieldName string) F {
	if f, ok := m[fieldName]; ok {
		return f
	}
	if key := rulepick.WildcardFieldKey(fieldName); key != "" {
		if f, ok := m[key]; ok {
			return f
		}
	}
	var zero F
	return zero
}
