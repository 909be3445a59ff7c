package rulepick

import "context"

// SelectorCheck is a selector to verify on other pages of a site.
type SelectorCheck struct {
	FieldName       string `json:"fieldName"`
	Selector        string `json:"selector"`
	ContextSelector string `json:"contextSelector"`
	Multiple        bool   `json:"multiple"`
}

// Context returns the check's context selector, or the whole document
// when none was given.
func (c SelectorCheck) Context() string {
	if c.ContextSelector == "" {
		return DefaultContextSelector
	}
	return c.ContextSelector
}

// Stable reports whether count matches are acceptable for the check:
// exactly one in single mode, at least one in multiple mode.
func (c SelectorCheck) Stable(count int) bool {
	if c.Multiple {
		return count > 0
	}
	return count == 1
}

// PageReport holds the match counts of each check on one page, indexed
// like the checks passed to Validate.
type PageReport struct {
	URL    string `json:"url"`
	Counts []int  `json:"counts,omitempty"`

	// Duplicate is set when the page body was identical to a page already
	// checked; such pages carry no counts.
	Duplicate bool  `json:"duplicate,omitempty"`
	Err       error `json:"-"`
}

// ValidationReport summarizes selector checks across sample pages.
type ValidationReport struct {
	Checks []SelectorCheck `json:"checks"`
	Pages  []*PageReport   `json:"pages"`
}

// StablePages returns how many checked pages satisfied check i, and how many
// pages were checked (excluding failed and duplicate pages).
func (r *ValidationReport) StablePages(i int) (stable, checked int) {
	for _, p := range r.Pages {
		if p.Err != nil || p.Duplicate || i >= len(p.Counts) {
			continue
		}
		checked++
		if r.Checks[i].Stable(p.Counts[i]) {
			stable++
		}
	}
	return stable, checked
}

// Validator checks selectors against sample pages of a site.
type Validator interface {
	Validate(ctx context.Context, urls []string, checks []SelectorCheck) (*ValidationReport, error)
}
