package selector

import (
	"strings"

	"github.com/fwojciec/rulepick"
)

// IsUnique reports whether selector matches exactly one element across the
// subtrees matched by contextSelector, and never more than one inside any
// single context. Empty selectors and contexts that match nothing are never
// unique.
func IsUnique(doc rulepick.Document, selector, contextSelector string) bool {
	if strings.TrimSpace(selector) == "" {
		return false
	}
	total := 0
	for _, ctx := range doc.QuerySelectorAll(contextSelector) {
		n := len(ctx.QuerySelectorAll(selector))
		if n > 1 {
			return false
		}
		total += n
	}
	return total == 1
}

// MatchesElement reports whether el itself matches selector.
func MatchesElement(el rulepick.Element, selector string) bool {
	if strings.TrimSpace(selector) == "" {
		return false
	}
	return el.Matches(selector)
}

// CountInContext sums the matches of selector inside every context.
func CountInContext(doc rulepick.Document, selector, contextSelector string) int {
	if strings.TrimSpace(selector) == "" {
		return 0
	}
	total := 0
	for _, ctx := range doc.QuerySelectorAll(contextSelector) {
		total += len(ctx.QuerySelectorAll(selector))
	}
	return total
}

// FindInContext returns the distinct elements matching selector inside the
// contexts, in the order they are first found.
func FindInContext(doc rulepick.Document, selector, contextSelector string) []rulepick.Element {
	if strings.TrimSpace(selector) == "" {
		return nil
	}
	var found []rulepick.Element
	seen := make(map[rulepick.Element]struct{})
	for _, ctx := range doc.QuerySelectorAll(contextSelector) {
		for _, el := range ctx.QuerySelectorAll(selector) {
			if _, ok := seen[el]; ok {
				continue
			}
			seen[el] = struct{}{}
			found = append(found, el)
		}
	}
	return found
}
