package main

import (
	"fmt"

	"github.com/fwojciec/rulepick"
)

// Run executes the bind command.
func (c *BindCmd) Run(deps *Dependencies) error {
	b := &rulepick.Binding{
		FieldName:       c.Field,
		Selector:        c.Selector,
		ContextSelector: c.Context,
		Multiple:        c.Multiple,
		Attribute:       c.Attribute,
		Type:            rulepick.AttributeType(c.Type),
		SourceURL:       c.Source,
	}
	if err := deps.Bindings.CreateBinding(deps.Ctx, b); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Bound %s to %s\n", b.FieldName, b.Selector)
	return nil
}

// Run executes the bindings command.
func (c *BindingsCmd) Run(deps *Dependencies) error {
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
		fmt.Fprintln(deps.Stdout, "No bindings found. Use 'rulepick bind' to create one.")
		return nil
	}

	for _, b := range bindings {
		line := fmt.Sprintf("%s  %s", b.FieldName, b.Selector)
		if c := b.ContextSelector; c != "" && c != rulepick.DefaultContextSelector {
			line += "  in " + c
		}
		if b.Multiple {
			line += "  (multiple)"
		}
		if b.Attribute != "" {
			line += fmt.Sprintf("  @%s:%s", b.Attribute, b.Type)
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}

// Run executes the unbind command.
func (c *UnbindCmd) Run(deps *Dependencies) error {
	if err := deps.Bindings.DeleteBinding(deps.Ctx, c.Field); err != nil {
		if rulepick.ErrorCode(err) == rulepick.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: field %q is not bound. Use 'rulepick bindings' to see bound fields.\n", c.Field)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rulepick.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Unbound %s\n", c.Field)
	return nil
}
