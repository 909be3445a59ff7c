package main_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rulepick"
	main "github.com/fwojciec/rulepick/cmd/rulepick"
	"github.com/fwojciec/rulepick/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	bindings := &mock.BindingService{
		FindBindingsFn: func(_ context.Context, _ rulepick.BindingFilter) ([]*rulepick.Binding, error) {
			return []*rulepick.Binding{
				{FieldName: "GlobalRule", Selector: "html"},
				{FieldName: "GlobalRule.article.title", Selector: "h1.title", Type: rulepick.AttributeTypeString},
			}, nil
		},
	}

	t.Run("writes json by default", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := testDeps(t, articleHTML)
		deps.Bindings = bindings
		path := filepath.Join(t.TempDir(), "rules")

		require.NoError(t, (&main.ExportCmd{Path: path, Format: "json"}).Run(deps))

		assert.Equal(t, "Wrote 1 rule(s) to "+path+".json\n", stdout.String())
		data, err := os.ReadFile(path + ".json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"rules":[{"class":"GlobalRule","selector":"html","properties":{"article.title":{"type":"string","selector":"h1.title"}}}]}`, string(data))
	})

	t.Run("writes yaml", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t, articleHTML)
		deps.Bindings = bindings
		path := filepath.Join(t.TempDir(), "rules")

		require.NoError(t, (&main.ExportCmd{Path: path, Format: "yaml"}).Run(deps))

		data, err := os.ReadFile(path + ".yaml")
		require.NoError(t, err)
		assert.Contains(t, string(data), "class: GlobalRule")
	})

	t.Run("fails without bindings", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := testDeps(t, articleHTML)
		deps.Bindings = &mock.BindingService{
			FindBindingsFn: func(_ context.Context, _ rulepick.BindingFilter) ([]*rulepick.Binding, error) {
				return nil, nil
			},
		}

		err := (&main.ExportCmd{Path: filepath.Join(t.TempDir(), "rules"), Format: "json"}).Run(deps)
		assert.Equal(t, rulepick.ENOTFOUND, rulepick.ErrorCode(err))
	})
}
