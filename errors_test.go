package docref_test

import (
	"errors"
	"fmt"
	"testing"

	"docref"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns the code of an application error", func(t *testing.T) {
		t.Parallel()

		err := docref.Errorf(docref.ENOTFOUND, "section not found")

		assert.Equal(t, docref.ENOTFOUND, docref.ErrorCode(err))
	})

	t.Run("unwraps wrapped application errors", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("query failed: %w", docref.Errorf(docref.EINVALID, "bad anchor"))

		assert.Equal(t, docref.EINVALID, docref.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, docref.EINTERNAL, docref.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "", docref.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns the message of an application error", func(t *testing.T) {
		t.Parallel()

		err := docref.Errorf(docref.ENOTFOUND, "section not found for anchor %q", "hooks")

		assert.Equal(t, `section not found for anchor "hooks"`, docref.ErrorMessage(err))
	})

	t.Run("masks non-application errors", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Internal error.", docref.ErrorMessage(errors.New("boom")))
	})
}
