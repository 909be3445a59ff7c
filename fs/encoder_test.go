package fs_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/fwojciec/rulepick/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONEncoder_Encode(t *testing.T) {
	t.Parallel()

	t.Run("writes rules object", func(t *testing.T) {
		t.Parallel()

		file := rulepick.NewRuleFile([]*rulepick.Binding{
			{FieldName: "GlobalRule.author.name", Selector: ".author > a", Attribute: rulepick.AttributeTextContent},
			{FieldName: "GlobalRule.article.publish", Selector: "time", Attribute: "datetime", Type: rulepick.AttributeTypeDate},
		})

		var buf bytes.Buffer
		require.NoError(t, fs.JSONEncoder{}.Encode(&buf, file))

		assert.JSONEq(t, `{
			"rules": [{
				"class": "GlobalRule",
				"properties": {
					"author.name": {"type": "string", "selector": ".author > a"},
					"article.publish": {"type": "date", "selector": "time", "attribute": "datetime"}
				}
			}]
		}`, buf.String())
	})

	t.Run("does not escape selector characters", func(t *testing.T) {
		t.Parallel()

		file := &rulepick.RuleFile{Rules: []*rulepick.Rule{{Class: "R", Selector: "div > p"}}}

		var buf bytes.Buffer
		require.NoError(t, fs.JSONEncoder{}.Encode(&buf, file))
		assert.Contains(t, buf.String(), `"div > p"`)
		assert.True(t, json.Valid(buf.Bytes()))
	})

	t.Run("extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ".json", fs.JSONEncoder{}.Extension())
	})
}
