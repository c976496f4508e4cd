package docref

// SeenTracker answers approximate membership queries over previously
// recorded keys. Implementations may return false positives from Seen,
// but never false negatives: a false result is authoritative.
type SeenTracker interface {
	// Add records a key.
	Add(key string)

	// Seen returns true if the key might have been recorded.
	Seen(key string) bool
}
