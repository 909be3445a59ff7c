package rulepick_test

import (
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleFile(t *testing.T) {
	t.Parallel()

	t.Run("groups bindings by rule class", func(t *testing.T) {
		t.Parallel()

		file := rulepick.NewRuleFile([]*rulepick.Binding{
			{FieldName: "ImageRule", Selector: "figure"},
			{FieldName: "ImageRule.image.url", Selector: "img", Attribute: "src"},
			{FieldName: "GlobalRule.author.name", Selector: ".author-name", Attribute: rulepick.AttributeTextContent},
			{FieldName: "GlobalRule.article.body", Selector: ".post-content", Attribute: rulepick.AttributeInnerContent, Type: rulepick.AttributeTypeElement},
		})

		require.Len(t, file.Rules, 2)
		global, image := file.Rules[0], file.Rules[1]

		assert.Equal(t, "GlobalRule", global.Class)
		assert.Empty(t, global.Selector)
		assert.Equal(t, &rulepick.Property{Type: rulepick.AttributeTypeString, Selector: ".author-name"}, global.Properties["author.name"])
		assert.Equal(t, &rulepick.Property{Type: rulepick.AttributeTypeElement, Selector: ".post-content"}, global.Properties["article.body"])

		assert.Equal(t, "ImageRule", image.Class)
		assert.Equal(t, "figure", image.Selector)
		assert.Equal(t, "src", image.Properties["image.url"].Attribute)
	})

	t.Run("empty bindings give empty rules", func(t *testing.T) {
		t.Parallel()

		file := rulepick.NewRuleFile(nil)
		assert.NotNil(t, file.Rules)
		assert.Empty(t, file.Rules)
	})
}
