package bloom_test

import (
	"fmt"
	"testing"

	"docref/bloom"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("reports added keys as seen", func(t *testing.T) {
		t.Parallel()

		filter := bloom.NewFilter(1024, 0.01)

		filter.Add("abc123")

		assert.True(t, filter.Seen("abc123"))
	})

	t.Run("never reports false negatives", func(t *testing.T) {
		t.Parallel()

		filter := bloom.NewFilter(1024, 0.01)

		for i := 0; i < 1000; i++ {
			filter.Add(fmt.Sprintf("hash-%d", i))
		}
		for i := 0; i < 1000; i++ {
			assert.True(t, filter.Seen(fmt.Sprintf("hash-%d", i)))
		}
	})

	t.Run("reports unknown keys as unseen when empty", func(t *testing.T) {
		t.Parallel()

		filter := bloom.NewFilter(1024, 0.01)

		assert.False(t, filter.Seen("never-added"))
	})

	t.Run("estimates the number of items", func(t *testing.T) {
		t.Parallel()

		filter := bloom.NewFilter(1024, 0.01)

		for i := 0; i < 100; i++ {
			filter.Add(fmt.Sprintf("hash-%d", i))
		}

		count := filter.EstimatedCount()
		assert.InDelta(t, 100, count, 10)
	})
}
