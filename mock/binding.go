package mock

import (
	"context"
	"io"

	"github.com/fwojciec/rulepick"
)

var (
	_ rulepick.BindingService = (*BindingService)(nil)
	_ rulepick.RuleEncoder    = (*RuleEncoder)(nil)
)

// BindingService is a mock implementation of rulepick.BindingService.
type BindingService struct {
	CreateBindingFn      func(ctx context.Context, binding *rulepick.Binding) error
	FindBindingByFieldFn func(ctx context.Context, fieldName string) (*rulepick.Binding, error)
	FindBindingsFn       func(ctx context.Context, filter rulepick.BindingFilter) ([]*rulepick.Binding, error)
	DeleteBindingFn      func(ctx context.Context, fieldName string) error
}

func (s *BindingService) CreateBinding(ctx context.Context, binding *rulepick.Binding) error {
	return s.CreateBindingFn(ctx, binding)
}

func (s *BindingService) FindBindingByField(ctx context.Context, fieldName string) (*rulepick.Binding, error) {
	return s.FindBindingByFieldFn(ctx, fieldName)
}

func (s *BindingService) FindBindings(ctx context.Context, filter rulepick.BindingFilter) ([]*rulepick.Binding, error) {
	return s.FindBindingsFn(ctx, filter)
}

func (s *BindingService) DeleteBinding(ctx context.Context, fieldName string) error {
	return s.DeleteBindingFn(ctx, fieldName)
}

// RuleEncoder is a mock implementation of rulepick.RuleEncoder.
type RuleEncoder struct {
	EncodeFn    func(w io.Writer, file *rulepick.RuleFile) error
	ExtensionFn func() string
}

func (e *RuleEncoder) Encode(w io.Writer, file *rulepick.RuleFile) error {
	return e.EncodeFn(w, file)
}

func (e *RuleEncoder) Extension() string {
	return e.ExtensionFn()
}
