package glamour_test

import (
	"testing"

	"docref/glamour"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("renders markdown content", func(t *testing.T) {
		t.Parallel()

		renderer, err := glamour.NewRenderer()
		require.NoError(t, err)

		out, err := renderer.Render("# Title\n\nSome body text.\n")

		require.NoError(t, err)
		assert.Contains(t, out, "Title")
		assert.Contains(t, out, "Some body text.")
	})

	t.Run("renders empty input without error", func(t *testing.T) {
		t.Parallel()

		renderer, err := glamour.NewRenderer()
		require.NoError(t, err)

		_, err = renderer.Render("")

		assert.NoError(t, err)
	})
}
