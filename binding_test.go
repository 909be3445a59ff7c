package rulepick_test

import (
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinding_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		binding rulepick.Binding
		wantErr bool
	}{
		{"valid", rulepick.Binding{FieldName: "R.title", Selector: "h1"}, false},
		{"valid date", rulepick.Binding{FieldName: "R.date", Selector: "time", Type: rulepick.AttributeTypeDate}, false},
		{"missing field", rulepick.Binding{Selector: "h1"}, true},
		{"missing selector", rulepick.Binding{FieldName: "R.title"}, true},
		{"unknown type", rulepick.Binding{FieldName: "R.title", Selector: "h1", Type: "number"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.binding.Validate()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, rulepick.EINVALID, rulepick.ErrorCode(err))
		})
	}
}
