package rulepick

import (
	"context"
	"time"
)

// Binding is a confirmed choice of selector for a rule field.
type Binding struct {
	ID              string        `json:"id"`
	FieldName       string        `json:"fieldName"`
	Selector        string        `json:"selector"`
	ContextSelector string        `json:"contextSelector"`
	Multiple        bool          `json:"multiple"`
	Attribute       string        `json:"attribute"`
	Type            AttributeType `json:"type"`
	SourceURL       string        `json:"sourceUrl"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// Validate returns an error if the binding contains invalid fields.
func (b *Binding) Validate() error {
	if b.FieldName == "" {
		return Errorf(EINVALID, "binding field name required")
	}
	if b.Selector == "" {
		return Errorf(EINVALID, "binding selector required")
	}
	switch b.Type {
	case "", AttributeTypeString, AttributeTypeElement, AttributeTypeDate:
	default:
		return Errorf(EINVALID, "unknown attribute type %q", b.Type)
	}
	return nil
}

// BindingService represents a service for managing bindings.
type BindingService interface {
	// CreateBinding stores a binding, replacing any binding for the same field.
	CreateBinding(ctx context.Context, binding *Binding) error

	// FindBindingByField retrieves the binding for a field.
	// Returns ENOTFOUND if the field is not bound.
	FindBindingByField(ctx context.Context, fieldName string) (*Binding, error)

	// FindBindings retrieves bindings matching the filter, ordered by field name.
	FindBindings(ctx context.Context, filter BindingFilter) ([]*Binding, error)

	// DeleteBinding removes the binding for a field.
	// Returns ENOTFOUND if the field is not bound.
	DeleteBinding(ctx context.Context, fieldName string) error
}

// BindingFilter represents a filter for FindBindings.
type BindingFilter struct {
	// Rule restricts results to fields of one rule (e.g., "GlobalRule").
	Rule *string `json:"rule"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
