package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/rulepick/cmd/rulepick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runMain(t *testing.T, dbPath string, args ...string) (string, string, error) {
	t.Helper()
	m := main.NewMain()
	m.DBPath = dbPath
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	err := m.Run(context.Background(), args, strings.NewReader(""), stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help lists all commands", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, filepath.Join(t.TempDir(), "test.db"), "--help")
		require.NoError(t, err)

		for _, cmd := range []string{"resolve", "attributes", "highlight", "preview", "validate", "bind", "bindings", "unbind", "export", "serve"} {
			assert.Contains(t, stdout, cmd)
		}
	})

	t.Run("fails without command", func(t *testing.T) {
		t.Parallel()

		_, _, err := runMain(t, filepath.Join(t.TempDir(), "test.db"))
		require.Error(t, err)
	})

	t.Run("binds lists exports and unbinds", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		db := filepath.Join(dir, "test.db")

		_, _, err := runMain(t, db, "bind", "GlobalRule.author.name", ".author-name", "-a", "textContent")
		require.NoError(t, err)
		_, _, err = runMain(t, db, "bind", "GlobalRule", "html")
		require.NoError(t, err)

		stdout, _, err := runMain(t, db, "bindings")
		require.NoError(t, err)
		assert.Equal(t, "GlobalRule  html\nGlobalRule.author.name  .author-name  @textContent:string\n", stdout)

		out := filepath.Join(dir, "rules")
		_, _, err = runMain(t, db, "export", out, "--format", "yaml")
		require.NoError(t, err)
		data, err := os.ReadFile(out + ".yaml")
		require.NoError(t, err)
		assert.Contains(t, string(data), "author.name:")

		_, _, err = runMain(t, db, "unbind", "GlobalRule")
		require.NoError(t, err)
		stdout, _, err = runMain(t, db, "bindings")
		require.NoError(t, err)
		assert.NotContains(t, stdout, "GlobalRule  html")
	})

	t.Run("resolves element of local file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		page := filepath.Join(dir, "page.html")
		require.NoError(t, os.WriteFile(page, []byte(articleHTML), 0644))

		stdout, _, err := runMain(t, filepath.Join(dir, "test.db"), "resolve", page, "span", "-f", "GlobalRule.author.name", "-n", "1")
		require.NoError(t, err)
		assert.Equal(t, " 1. .author-name\n", stdout)
	})

	t.Run("passes browser flags to the launcher", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		missing := filepath.Join(dir, "no-such-chrome")

		_, stderr, err := runMain(t, filepath.Join(dir, "test.db"),
			"--browser", "--no-sandbox", "--chrome", missing, "resolve", "page.html", "p")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to start browser")
		assert.Contains(t, stderr, "Chrome or Chromium must be installed")
	})
}
