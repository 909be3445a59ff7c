package main

import (
	"fmt"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/crawl"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	var filter rulepick.BindingFilter
	if c.Rule != "" {
		filter.Rule = &c.Rule
	}
	bindings, err := deps.Bindings.FindBindings(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}
	if len(bindings) == 0 {
		fmt.Fprintln(deps.Stderr, "error: nothing to validate. Use 'rulepick bind' first.")
		return rulepick.Errorf(rulepick.ENOTFOUND, "no bindings")
	}

	checks := make([]rulepick.SelectorCheck, len(bindings))
	for i, b := range bindings {
		checks[i] = rulepick.SelectorCheck{
			FieldName:       b.FieldName,
			Selector:        b.Selector,
			ContextSelector: b.ContextSelector,
			Multiple:        b.Multiple,
		}
	}

	urls, err := c.sampleURLs(deps, bindings)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}
	if len(urls) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no pages found for %s. Pass pages with --url.\n", c.Site)
		return rulepick.Errorf(rulepick.ENOTFOUND, "no sample pages for %q", c.Site)
	}

	report, err := deps.Validator.Validate(deps.Ctx, urls, checks)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	for _, p := range report.Pages {
		switch {
		case p.Err != nil:
			fmt.Fprintf(deps.Stdout, "skipped %s: %s\n", p.URL, rulepick.ErrorMessage(p.Err))
		case p.Duplicate:
			fmt.Fprintf(deps.Stdout, "skipped %s: duplicate content\n", p.URL)
		}
	}

	unstable := 0
	for i, check := range report.Checks {
		stable, checked := report.StablePages(i)
		status := "ok"
		if stable < checked || checked == 0 {
			status = "UNSTABLE"
			unstable++
		}
		fmt.Fprintf(deps.Stdout, "%-8s %d/%d  %s  %s\n", status, stable, checked, check.FieldName, check.Selector)
	}

	if unstable > 0 {
		return rulepick.Errorf(rulepick.ECONFLICT, "%d selector(s) unstable across %d page(s)", unstable, len(report.Pages))
	}
	return nil
}

// sampleURLs returns the explicit --url pages, or a spread of sitemap pages
// excluding the pages the bindings were picked on.
func (c *ValidateCmd) sampleURLs(deps *Dependencies, bindings []*rulepick.Binding) ([]string, error) {
	if len(c.URLs) > 0 {
		return c.URLs, nil
	}

	filter, err := rulepick.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}
	urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Site, filter)
	if err != nil {
		return nil, err
	}

	picked := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if b.SourceURL != "" {
			picked = append(picked, b.SourceURL)
		}
	}
	return crawl.Sample(urls, c.Samples, picked...), nil
}
