package main

import (
	"fmt"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/fs"
	"github.com/fwojciec/rulepick/yaml"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
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
		fmt.Fprintln(deps.Stderr, "error: nothing to export. Use 'rulepick bind' first.")
		return rulepick.Errorf(rulepick.ENOTFOUND, "no bindings")
	}

	var enc rulepick.RuleEncoder = fs.JSONEncoder{}
	if c.Format == "yaml" {
		enc = yaml.Encoder{}
	}

	file := rulepick.NewRuleFile(bindings)
	path, err := fs.NewRuleFileWriter(enc).Write(c.Path, file)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d rule(s) to %s\n", len(file.Rules), path)
	return nil
}
