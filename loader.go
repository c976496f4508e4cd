package docref

import "context"

// DocumentLoader reads authored content into documents.
// Implementations hide the source format (markdown files, HTML files)
// and directory layout.
type DocumentLoader interface {
	// Load returns documents in source order. Position is populated.
	Load(ctx context.Context) ([]*Document, error)
}
