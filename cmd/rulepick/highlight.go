package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/goquery"
)

// Run executes the highlight command.
func (c *HighlightCmd) Run(deps *Dependencies) error {
	page, err := deps.Pages.Load(deps.Ctx, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	h := goquery.NewHighlighter(page.Document)
	h.MarkPassThrough(c.PassThrough)
	n := h.Highlight(c.Selector, c.Context)

	html, err := h.Render()
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Fprintln(deps.Stdout, html)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(html), 0644); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Marked %d element(s) in %s\n", n, c.Out)
	return nil
}
