package mock

import (
	"context"

	"docref"
)

var _ docref.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of docref.DocumentLoader.
type DocumentLoader struct {
	LoadFn func(ctx context.Context) ([]*docref.Document, error)
}

func (l *DocumentLoader) Load(ctx context.Context) ([]*docref.Document, error) {
	return l.LoadFn(ctx)
}
