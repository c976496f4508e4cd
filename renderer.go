package docref

// Renderer renders markdown for presentation.
// Implementations hide the output format (HTML, ANSI terminal, etc.).
// Rendering is deterministic: the same input always produces the same
// output bytes.
type Renderer interface {
	Render(markdown string) (string, error)
}
