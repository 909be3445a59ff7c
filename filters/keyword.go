package filters

import (
	"strings"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/selector"
)

// Keyword score filter defaults.
const (
	DefaultKeywordBoost = 16
	DefaultMaxMatches   = 3
	DefaultPenalty      = 32
)

// KeywordScoreFilter returns a score filter that adds boost to selectors
// containing any of keywords (case-insensitive, once per selector) and
// subtracts penalty from selectors matching more than maxMatches elements
// in the context. A maxMatches of zero disables the penalty.
func KeywordScoreFilter(keywords []string, boost float64, maxMatches int, penalty float64) rulepick.ScoreFilter {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}

	return func(doc rulepick.Document, score float64, sel, contextSelector string) float64 {
		if containsAny(strings.ToLower(sel), lowered) {
			score += boost
		}
		if maxMatches > 0 && doc != nil && selector.CountInContext(doc, sel, contextSelector) > maxMatches {
			score -= penalty
		}
		return score
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
