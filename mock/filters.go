package mock

import "github.com/fwojciec/rulepick"

var _ rulepick.FilterRegistry = (*FilterRegistry)(nil)

// FilterRegistry is a mock implementation of rulepick.FilterRegistry.
type FilterRegistry struct {
	ElementFilterFn func(fieldName string) rulepick.ElementFilter
	WeightFilterFn  func(fieldName string) rulepick.WeightFilter
	ScoreFilterFn   func(fieldName string) rulepick.ScoreFilter

	RegisterElementFilterFn func(key string, f rulepick.ElementFilter)
	RegisterWeightFilterFn  func(key string, f rulepick.WeightFilter)
	RegisterScoreFilterFn   func(key string, f rulepick.ScoreFilter)
}

func (r *FilterRegistry) ElementFilter(fieldName string) rulepick.ElementFilter {
	return r.ElementFilterFn(fieldName)
}

func (r *FilterRegistry) WeightFilter(fieldName string) rulepick.WeightFilter {
	return r.WeightFilterFn(fieldName)
}

func (r *FilterRegistry) ScoreFilter(fieldName string) rulepick.ScoreFilter {
	return r.ScoreFilterFn(fieldName)
}

func (r *FilterRegistry) RegisterElementFilter(key string, f rulepick.ElementFilter) {
	r.RegisterElementFilterFn(key, f)
}

func (r *FilterRegistry) RegisterWeightFilter(key string, f rulepick.WeightFilter) {
	r.RegisterWeightFilterFn(key, f)
}

func (r *FilterRegistry) RegisterScoreFilter(key string, f rulepick.ScoreFilter) {
	r.RegisterScoreFilterFn(key, f)
}
