package rulepick_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/rulepick"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := rulepick.Errorf(rulepick.ENOTFOUND, "field %q is not bound", "R.title")

	assert.Equal(t, rulepick.ENOTFOUND, rulepick.ErrorCode(err))
	assert.Equal(t, `field "R.title" is not bound`, rulepick.ErrorMessage(err))
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, rulepick.ErrorCode(nil))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("loading page: %w", rulepick.Errorf(rulepick.EINVALID, "bad"))
		assert.Equal(t, rulepick.EINVALID, rulepick.ErrorCode(err))
		assert.Equal(t, "bad", rulepick.ErrorMessage(err))
	})

	t.Run("other errors are internal", func(t *testing.T) {
		t.Parallel()
		err := errors.New("disk full")
		assert.Equal(t, rulepick.EINTERNAL, rulepick.ErrorCode(err))
		assert.Equal(t, "Internal error.", rulepick.ErrorMessage(err))
	})
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rulepick.ErrorMessage(nil))
}
