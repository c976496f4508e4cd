// Package glamour provides terminal markdown rendering for docref.
package glamour

import (
	"docref"

	"github.com/charmbracelet/glamour"
)

// Ensure Renderer implements docref.Renderer at compile time.
var _ docref.Renderer = (*Renderer)(nil)

// Renderer renders markdown as styled terminal output.
type Renderer struct {
	tr *glamour.TermRenderer
}

// NewRenderer creates a new Renderer. The style is detected from the
// terminal environment; plain output is used when stdout is not a TTY.
func NewRenderer() (*Renderer, error) {
	tr, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr}, nil
}

// Render converts markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	return r.tr.Render(markdown)
}
