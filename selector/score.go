package selector

import (
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/rulepick"
)

var (
	leadingTagName = regexp.MustCompile(`^[a-zA-Z]+`)
	trailingNumber = regexp.MustCompile(`[0-9]+$`)
)

// featureOrder fixes the summation order so scores are reproducible.
var featureOrder = []rulepick.Feature{
	rulepick.FeatureLeafHasID,
	rulepick.FeatureLeafHasClass,
	rulepick.FeatureLeafHasTagName,
	rulepick.FeatureEndsWithNumber,
	rulepick.FeatureNumberOfComponents,
	rulepick.FeatureTrunkScore,
}

// Scorer computes desirability scores for candidate selectors.
type Scorer struct {
	weights rulepick.Weights
}

// NewScorer creates a Scorer using weights. Nil weights mean the defaults.
func NewScorer(weights rulepick.Weights) *Scorer {
	if weights == nil {
		weights = rulepick.DefaultWeights()
	}
	return &Scorer{weights: weights}
}

// Features computes the feature vector of a candidate. The empty candidate
// has no features.
//
// The trunk scored recursively is the candidate without its last two
// components, not just without the leaf.
func (s *Scorer) Features(candidate string) rulepick.Features {
	components := strings.Fields(candidate)
	if len(components) == 0 {
		return nil
	}

	leaf := components[len(components)-1]
	var trunk string
	if len(components) > 2 {
		trunk = strings.Join(components[:len(components)-2], " ")
	}

	return rulepick.Features{
		rulepick.FeatureLeafHasID:          boolValue(strings.Contains(leaf, "#")),
		rulepick.FeatureLeafHasClass:       boolValue(strings.Contains(leaf, ".")),
		rulepick.FeatureLeafHasTagName:     boolValue(leadingTagName.MatchString(leaf)),
		rulepick.FeatureEndsWithNumber:     boolValue(trailingNumber.MatchString(leaf)),
		rulepick.FeatureNumberOfComponents: float64(len(components)),
		rulepick.FeatureTrunkScore:         s.Score(trunk),
	}
}

// Score returns the weighted sum of the candidate's features.
func (s *Scorer) Score(candidate string) float64 {
	features := s.Features(candidate)
	var score float64
	for _, f := range featureOrder {
		score += s.weights[f] * features[f]
	}
	return score
}

// Scored is a candidate with its final score.
type Scored struct {
	Selector string
	Score    float64
}

// Rank scores candidates, applies adjust to each score when non-nil, and
// orders them by descending score. Ties keep their input order.
func (s *Scorer) Rank(candidates []string, adjust func(selector string, score float64) float64) []Scored {
	ranked := make([]Scored, 0, len(candidates))
	for _, c := range candidates {
		score := s.Score(c)
		if adjust != nil {
			score = adjust(c, score)
		}
		ranked = append(ranked, Scored{Selector: c, Score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
