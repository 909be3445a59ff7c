package main

import (
	"fmt"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/selector"
)

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	matches := selector.FindInContext(page.Document, c.Selector, c.Context)
	if c.Index < 0 || c.Index >= len(matches) {
		fmt.Fprintf(deps.Stderr, "error: %q has %d matches in %q\n", c.Selector, len(matches), c.Context)
		return rulepick.Errorf(rulepick.ENOTFOUND, "no element %d matches %q", c.Index, c.Selector)
	}

	md, err := deps.Converters(page.BaseURL()).Convert(matches[c.Index].InnerHTML())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, md)
	return nil
}
