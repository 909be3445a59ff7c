package selector

import "github.com/fwojciec/rulepick"

var _ rulepick.Resolver = (*Resolver)(nil)

// Resolver implements rulepick.Resolver over any rulepick.Document.
type Resolver struct {
	filters       rulepick.FilterRegistry
	weights       rulepick.Weights
	maxDepth      int
	maxCandidates int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth sets how many levels (element plus ancestors) candidates span.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithMaxCandidates sets how many deduplicated candidates are checked
// against the document.
func WithMaxCandidates(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxCandidates = n
		}
	}
}

// WithWeights replaces the default feature weights. Weight filters receive
// a copy, so w is never modified.
func WithWeights(w rulepick.Weights) Option {
	return func(r *Resolver) {
		if w != nil {
			r.weights = w.Clone()
		}
	}
}

// NewResolver creates a Resolver consulting filters for per-field
// heuristics. A nil registry disables them.
func NewResolver(filters rulepick.FilterRegistry, opts ...Option) *Resolver {
	r := &Resolver{
		filters:       filters,
		weights:       rulepick.DefaultWeights(),
		maxDepth:      rulepick.DefaultMaxDepth,
		maxCandidates: rulepick.MaxCandidates,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the legal candidates for req ordered best-first, or the
// absolute path to the element when no candidate is legal.
func (r *Resolver) Resolve(req rulepick.ResolveRequest) []string {
	el := req.Element
	if el == nil {
		return nil
	}

	var (
		elementFilter rulepick.ElementFilter
		weightFilter  rulepick.WeightFilter
		scoreFilter   rulepick.ScoreFilter
	)
	if r.filters != nil {
		elementFilter = r.filters.ElementFilter(req.FieldName)
		weightFilter = r.filters.WeightFilter(req.FieldName)
		scoreFilter = r.filters.ScoreFilter(req.FieldName)
	}

	if elementFilter != nil {
		if sub := elementFilter(el); sub != nil {
			el = sub
		}
	}

	candidates := GenerateCandidates(el, r.maxDepth)
	if len(candidates) > r.maxCandidates {
		candidates = candidates[:r.maxCandidates]
	}

	doc := el.OwnerDocument()
	legal := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if r.accept(doc, el, c, req) {
			legal = append(legal, c)
		}
	}
	if len(legal) == 0 {
		return []string{ResolveAbsolute(el, req.ContextSelector)}
	}

	weights := r.weights.Clone()
	if weightFilter != nil {
		weights = weightFilter(weights)
	}

	var adjust func(string, float64) float64
	if scoreFilter != nil {
		adjust = func(selector string, score float64) float64 {
			return scoreFilter(doc, score, selector, req.ContextSelector)
		}
	}

	ranked := NewScorer(weights).Rank(legal, adjust)
	out := make([]string, len(ranked))
	for i, s := range ranked {
		out[i] = s.Selector
	}
	return out
}

func (r *Resolver) accept(doc rulepick.Document, el rulepick.Element, candidate string, req rulepick.ResolveRequest) bool {
	if req.Multiple {
		return MatchesElement(el, candidate)
	}
	if doc == nil {
		return false
	}
	return IsUnique(doc, candidate, req.ContextSelector)
}
