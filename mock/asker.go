package mock

import (
	"context"

	"docref"
)

var _ docref.Asker = (*Asker)(nil)

// Asker is a mock implementation of docref.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	return a.AskFn(ctx, question)
}

var _ docref.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of docref.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}
