package mock

import "docref"

var _ docref.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of docref.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
