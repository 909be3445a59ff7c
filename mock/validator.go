package mock

import (
	"context"

	"github.com/fwojciec/rulepick"
)

var _ rulepick.Validator = (*Validator)(nil)

// Validator is a mock implementation of rulepick.Validator.
type Validator struct {
	ValidateFn func(ctx context.Context, urls []string, checks []rulepick.SelectorCheck) (*rulepick.ValidationReport, error)
}

func (v *Validator) Validate(ctx context.Context, urls []string, checks []rulepick.SelectorCheck) (*rulepick.ValidationReport, error) {
	return v.ValidateFn(ctx, urls, checks)
}
