package docref

import "context"

// Asker answers natural language questions grounded on store content.
type Asker interface {
	// Ask answers a question using the stored documents as context.
	// Returns ENOTFOUND if the store is empty.
	Ask(ctx context.Context, question string) (string, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
