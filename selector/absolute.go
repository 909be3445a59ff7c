package selector

import (
	"fmt"
	"slices"
	"strings"

	"github.com/fwojciec/rulepick"
)

// ResolveAbsolute builds a child-combinator path from the nearest anchor
// down to el. The walk stops at the first element carrying an id (emitted
// as its escaped #id), before the first ancestor matching contextSelector,
// or at the top of the document. Elements with a same-tag sibling are disambiguated
// with :nth-child.
func ResolveAbsolute(el rulepick.Element, contextSelector string) string {
	var path []string
	for cur := el; cur != nil; cur = cur.Parent() {
		if cur != el && MatchesElement(cur, contextSelector) {
			break
		}
		if id := cur.ID(); id != "" {
			path = append(path, "#"+EscapeIdent(id))
			break
		}
		path = append(path, pathToken(cur))
	}
	slices.Reverse(path)
	return strings.Join(path, " > ")
}

func pathToken(el rulepick.Element) string {
	tag := el.TagName()
	if !hasSameTagSibling(el) {
		return tag
	}
	return fmt.Sprintf("%s:nth-child(%d)", tag, childPosition(el))
}

func hasSameTagSibling(el rulepick.Element) bool {
	tag := el.TagName()
	for s := el.PreviousElementSibling(); s != nil; s = s.PreviousElementSibling() {
		if s.TagName() == tag {
			return true
		}
	}
	for s := el.NextElementSibling(); s != nil; s = s.NextElementSibling() {
		if s.TagName() == tag {
			return true
		}
	}
	return false
}

// childPosition returns the 1-based index of el among its element siblings.
func childPosition(el rulepick.Element) int {
	n := 1
	for s := el.PreviousElementSibling(); s != nil; s = s.PreviousElementSibling() {
		n++
	}
	return n
}
