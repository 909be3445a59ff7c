//go:build integration

package rod_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rulepick/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowserManager_Page(t *testing.T) {
	t.Parallel()

	t.Run("recycles browser after max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(2))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		for range 2 {
			page, err := manager.Page(context.Background())
			require.NoError(t, err)
			require.NoError(t, page.Close())
		}

		assert.NotSame(t, first, manager.Browser())
	})

	t.Run("keeps browser below max pages", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithMaxPages(5))
		require.NoError(t, err)
		defer manager.Close()

		first := manager.Browser()
		page, err := manager.Page(context.Background())
		require.NoError(t, err)
		require.NoError(t, page.Close())

		assert.Same(t, first, manager.Browser())
	})

	t.Run("fails after close", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager()
		require.NoError(t, err)
		require.NoError(t, manager.Close())
		require.NoError(t, manager.Close())

		_, err = manager.Page(context.Background())
		assert.Error(t, err)
	})

	t.Run("launches without sandbox", func(t *testing.T) {
		t.Parallel()

		manager, err := rod.NewBrowserManager(rod.WithNoSandbox(true))
		require.NoError(t, err)
		defer manager.Close()

		page, err := manager.Page(context.Background())
		require.NoError(t, err)
		assert.NoError(t, page.Close())
		assert.NotZero(t, manager.LauncherPID())
	})

	t.Run("fails for a missing browser binary", func(t *testing.T) {
		t.Parallel()

		_, err := rod.NewBrowserManager(rod.WithBrowserBin(filepath.Join(t.TempDir(), "no-such-chrome")))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "launching browser")
	})
}

