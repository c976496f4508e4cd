// Package bloom provides content-hash deduplication using Bloom filters.
// Import uses it as a cheap negative check before hitting the database:
// a hash the filter has never seen belongs to new or changed content.
package bloom

import (
	"docref"

	"github.com/bits-and-blooms/bloom/v3"
)

// Ensure Filter implements docref.SeenTracker at compile time.
var _ docref.SeenTracker = (*Filter)(nil)

// Filter wraps a Bloom filter for content-hash deduplication.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a key in the filter.
func (f *Filter) Add(key string) {
	f.f.AddString(key)
}

// Seen returns true if the key might have been recorded.
// False positives are possible; false negatives are not.
func (f *Filter) Seen(key string) bool {
	return f.f.TestString(key)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
