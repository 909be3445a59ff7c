package yaml_test

import (
	"bytes"
	"testing"

	"github.com/fwojciec/rulepick"
	rpyaml "github.com/fwojciec/rulepick/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEncoder_Encode(t *testing.T) {
	t.Parallel()

	file := rulepick.NewRuleFile([]*rulepick.Binding{
		{FieldName: "GlobalRule", Selector: "html"},
		{FieldName: "GlobalRule.article.title", Selector: "h1.title", Attribute: rulepick.AttributeTextContent},
		{FieldName: "ImageRule.image.url", Selector: "img", Attribute: "src"},
	})

	t.Run("decodes back to the same rules", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, rpyaml.Encoder{}.Encode(&buf, file))

		var got rulepick.RuleFile
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, file, &got)
	})

	t.Run("omits empty attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, rpyaml.Encoder{}.Encode(&buf, file))

		out := buf.String()
		assert.Contains(t, out, "class: GlobalRule")
		assert.Contains(t, out, "attribute: src")
		assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("attribute:")))
	})

	t.Run("uses configured indent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		require.NoError(t, rpyaml.Encoder{Indent: 4}.Encode(&buf, file))
		assert.Contains(t, buf.String(), "\n    - class: GlobalRule")
	})

	t.Run("extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, ".yaml", rpyaml.Encoder{}.Extension())
	})
}
