package mock

import "docref"

var _ docref.Converter = (*Converter)(nil)

// Converter is a mock implementation of docref.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ docref.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of docref.TitleExtractor.
type TitleExtractor struct {
	TitleFn func(html string) string
}

func (e *TitleExtractor) Title(html string) string {
	return e.TitleFn(html)
}
