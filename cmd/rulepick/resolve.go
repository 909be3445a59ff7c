package main

import (
	"fmt"

	"github.com/fwojciec/rulepick"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	matches := page.Document.QuerySelectorAll(c.Target)
	if c.Index < 0 || c.Index >= len(matches) {
		fmt.Fprintf(deps.Stderr, "error: %q has %d matches, cannot pick index %d\n", c.Target, len(matches), c.Index)
		return rulepick.Errorf(rulepick.ENOTFOUND, "no element %d matches %q", c.Index, c.Target)
	}

	selectors := deps.Resolver.Resolve(rulepick.ResolveRequest{
		Element:         matches[c.Index],
		Multiple:        c.Multiple,
		ContextSelector: c.Context,
		FieldName:       c.Field,
	})
	if c.Limit > 0 && len(selectors) > c.Limit {
		selectors = selectors[:c.Limit]
	}

	for i, s := range selectors {
		fmt.Fprintf(deps.Stdout, "%2d. %s\n", i+1, s)
	}
	return nil
}
