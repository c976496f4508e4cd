package mock

import "docref"

var _ docref.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of docref.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn     func(markdown string) ([]docref.Section, error)
	ExtractCodeExamplesFn func(markdown string) ([]docref.CodeExample, error)
}

func (e *SectionExtractor) ExtractSections(markdown string) ([]docref.Section, error) {
	return e.ExtractSectionsFn(markdown)
}

func (e *SectionExtractor) ExtractCodeExamples(markdown string) ([]docref.CodeExample, error) {
	return e.ExtractCodeExamplesFn(markdown)
}
