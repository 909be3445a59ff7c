package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/selection"
	"github.com/fwojciec/rulepick/selector"
)

// maxValueWidth truncates long attribute values in listings.
const maxValueWidth = 60

// Run executes the attributes command.
func (c *AttributesCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	matches := selector.FindInContext(page.Document, c.Selector, c.Context)
	fmt.Fprintf(deps.Stdout, "%d match(es) for %s\n", len(matches), c.Selector)
	if len(matches) == 0 {
		return nil
	}

	for _, a := range (selection.AttributeExtractor{}).Attributes(matches[0]) {
		fmt.Fprintf(deps.Stdout, "%-14s %-8s %s\n", a.Name, a.Type, truncate(a.Value, maxValueWidth))
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
