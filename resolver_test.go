package rulepick_test

import (
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/stretchr/testify/assert"
)

func TestSplitFieldName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		field    string
		rule     string
		property string
	}{
		{"GlobalRule.author.name", "GlobalRule", "author.name"},
		{"GlobalRule", "GlobalRule", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			t.Parallel()
			rule, property := rulepick.SplitFieldName(tt.field)
			assert.Equal(t, tt.rule, rule)
			assert.Equal(t, tt.property, property)
		})
	}
}

func TestWildcardFieldKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "all.article.publish", rulepick.WildcardFieldKey("GlobalRule.article.publish"))
	assert.Equal(t, "all.article.publish", rulepick.WildcardFieldKey("ArticleRule.article.publish"))
	assert.Empty(t, rulepick.WildcardFieldKey("GlobalRule"))
}

func TestDefaultWeights(t *testing.T) {
	t.Parallel()

	t.Run("returns a fresh copy", func(t *testing.T) {
		t.Parallel()

		w := rulepick.DefaultWeights()
		w[rulepick.FeatureLeafHasTagName] = 0

		assert.Equal(t, -4.0, rulepick.DefaultWeights()[rulepick.FeatureLeafHasTagName])
	})

	t.Run("clone is independent", func(t *testing.T) {
		t.Parallel()

		w := rulepick.DefaultWeights()
		c := w.Clone()
		c[rulepick.FeatureTrunkScore] = 1

		assert.Equal(t, 0.5, w[rulepick.FeatureTrunkScore])
		assert.Len(t, c, 6)
	})
}
