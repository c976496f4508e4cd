package docref_test

import (
	"testing"

	"docref"

	"github.com/stretchr/testify/assert"
)

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a document with a path", func(t *testing.T) {
		t.Parallel()

		doc := &docref.Document{Path: "guide.md"}

		assert.NoError(t, doc.Validate())
	})

	t.Run("rejects a document without a path", func(t *testing.T) {
		t.Parallel()

		doc := &docref.Document{Title: "No Path"}

		err := doc.Validate()
		assert.Equal(t, docref.EINVALID, docref.ErrorCode(err))
	})
}
