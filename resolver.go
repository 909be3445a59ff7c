package rulepick

import "strings"

// Resolution limits.
const (
	// MaxCandidates caps the deduplicated candidates considered per resolution.
	MaxCandidates = 512

	// DefaultMaxDepth is the number of levels (element plus ancestors)
	// used when generating candidates.
	DefaultMaxDepth = 3

	// DefaultContextSelector bounds bindings and checks saved without a
	// context: the whole document.
	DefaultContextSelector = "html"
)

// MarkerClassPrefix prefixes the classes the editor adds to highlight
// elements. Such classes never appear in generated selectors.
const MarkerClassPrefix = "facebook-instant-articles-sdk-rules-editor-"

// Marker classes toggled on the loaded page.
const (
	MarkerHighlight   = MarkerClassPrefix + "highlight"
	MarkerHover       = MarkerClassPrefix + "hover"
	MarkerPassThrough = MarkerClassPrefix + "pass-through"
)

// ResolveRequest describes one resolution: the picked element, whether the
// selector may match many elements, the selector bounding the subtrees in
// which uniqueness is evaluated, and the field being bound.
type ResolveRequest struct {
	Element         Element
	Multiple        bool
	ContextSelector string
	FieldName       string
}

// Resolver synthesizes CSS selectors for picked elements.
type Resolver interface {
	// Resolve returns candidate selectors ordered best-first.
	// The result is never empty for an element attached to its document.
	Resolve(req ResolveRequest) []string
}

// Feature names a property of a candidate selector used in scoring.
type Feature string

// Scoring features.
const (
	FeatureLeafHasID          Feature = "leafHasID"
	FeatureLeafHasClass       Feature = "leafHasClass"
	FeatureLeafHasTagName     Feature = "leafHasTagName"
	FeatureEndsWithNumber     Feature = "endsWithNumber"
	FeatureNumberOfComponents Feature = "numberOfComponents"
	FeatureTrunkScore         Feature = "trunkScore"
)

// Features maps each feature to its value for one candidate.
type Features map[Feature]float64

// Weights maps each feature to its signed scoring coefficient.
type Weights map[Feature]float64

// DefaultWeights returns a fresh copy of the default feature weights.
// Shorter, class-based, non-numeric selectors score higher; IDs are
// preferred over classes, classes over bare tags.
func DefaultWeights() Weights {
	return Weights{
		FeatureLeafHasID:          -1,
		FeatureLeafHasClass:       -2,
		FeatureLeafHasTagName:     -4,
		FeatureEndsWithNumber:     -8,
		FeatureNumberOfComponents: -16,
		FeatureTrunkScore:         0.5,
	}
}

// Clone returns a copy of w.
func (w Weights) Clone() Weights {
	c := make(Weights, len(w))
	for k, v := range w {
		c[k] = v
	}
	return c
}

// ElementFilter substitutes the picked element before candidate generation.
// Returning nil keeps the original element.
type ElementFilter func(el Element) Element

// WeightFilter adjusts a copy of the default weights for a field.
type WeightFilter func(w Weights) Weights

// ScoreFilter returns a replacement score for a candidate. It may query the
// document, e.g. to penalize selectors matching too many elements.
type ScoreFilter func(doc Document, score float64, selector, contextSelector string) float64

// FilterRegistry holds per-field heuristics. Lookups try the exact field
// name first, then its wildcard key (see WildcardFieldKey). A nil result
// means no filter applies.
type FilterRegistry interface {
	ElementFilter(fieldName string) ElementFilter
	WeightFilter(fieldName string) WeightFilter
	ScoreFilter(fieldName string) ScoreFilter

	RegisterElementFilter(key string, f ElementFilter)
	RegisterWeightFilter(key string, f WeightFilter)
	RegisterScoreFilter(key string, f ScoreFilter)
}

// WildcardPrefix replaces the rule name in wildcard field keys.
const WildcardPrefix = "all"

// SplitFieldName splits "GlobalRule.author.name" into the rule name
// ("GlobalRule") and the property name ("author.name"). A field without a
// dot names a rule's own selector and has an empty property.
func SplitFieldName(fieldName string) (rule, property string) {
	rule, property, _ = strings.Cut(fieldName, ".")
	return rule, property
}

// WildcardFieldKey returns the key matching fieldName's property under any
// rule, e.g. "all.author.name". It returns "" for fields without a property.
func WildcardFieldKey(fieldName string) string {
	_, property := SplitFieldName(fieldName)
	if property == "" {
		return ""
	}
	return WildcardPrefix + "." + property
}
