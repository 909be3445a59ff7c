// Package selector synthesizes short CSS selectors for picked elements.
//
// Resolution generates candidate selectors from the element and a few of
// its ancestors, keeps those that are unique within the context (or that
// match the element, when many matches are wanted), and ranks them so that
// short, class-based selectors without numeric suffixes come first. When no
// candidate survives, an absolute path is returned instead.
package selector

import (
	"strings"

	"github.com/fwojciec/rulepick"
)

// GenerateCandidates enumerates selectors for el composed with up to
// maxDepth-1 of its ancestors. The element's own forms come before
// compositions with ancestors. The result contains no duplicates.
func GenerateCandidates(el rulepick.Element, maxDepth int) []string {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return generate(el, 0, maxDepth)
}

func generate(el rulepick.Element, level, maxDepth int) []string {
	own := atoms(el)
	// An empty form on intermediate levels lets compositions skip that ancestor.
	if level > 0 && level < maxDepth-1 {
		own = append(own, "")
	}

	parent := el.Parent()
	if level+1 >= maxDepth || isBoundary(parent) {
		return dedupe(own)
	}

	result := append([]string(nil), own...)
	for _, p := range generate(parent, level+1, maxDepth) {
		for _, c := range own {
			result = append(result, normalize(p+" "+c))
		}
	}
	return dedupe(result)
}

// atoms returns the single-component forms of el.
func atoms(el rulepick.Element) []string {
	tag := el.TagName()
	var classes []string
	for _, class := range el.ClassList() {
		if strings.HasPrefix(class, rulepick.MarkerClassPrefix) {
			continue
		}
		classes = append(classes, EscapeIdent(class))
	}

	forms := make([]string, 0, 2*len(classes)+3)
	for _, class := range classes {
		forms = append(forms, "."+class)
	}
	for _, class := range classes {
		forms = append(forms, tag+"."+class)
	}
	var id string
	if raw := el.ID(); raw != "" {
		id = EscapeIdent(raw)
		forms = append(forms, "#"+id)
	}
	forms = append(forms, tag)
	if id != "" {
		forms = append(forms, tag+"#"+id)
	}
	return forms
}

// isBoundary reports whether generation must stop before el.
func isBoundary(el rulepick.Element) bool {
	if el == nil {
		return true
	}
	switch el.TagName() {
	case "body", "html":
		return true
	}
	return false
}

// normalize collapses runs of whitespace and trims the ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// dedupe removes repeated strings, keeping the first occurrence.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
