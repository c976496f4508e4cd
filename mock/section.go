package mock

import (
	"context"

	"docref"
)

var _ docref.SectionService = (*SectionService)(nil)

// SectionService is a mock implementation of docref.SectionService.
type SectionService struct {
	ReplaceSectionsFn          func(ctx context.Context, documentID string, sections []*docref.Section) error
	FindSectionByAnchorFn      func(ctx context.Context, anchor string) (*docref.Section, error)
	FindSectionsFn             func(ctx context.Context, filter docref.SectionFilter) ([]*docref.Section, error)
	DeleteSectionsByDocumentFn func(ctx context.Context, documentID string) error
}

func (s *SectionService) ReplaceSections(ctx context.Context, documentID string, sections []*docref.Section) error {
	return s.ReplaceSectionsFn(ctx, documentID, sections)
}

func (s *SectionService) FindSectionByAnchor(ctx context.Context, anchor string) (*docref.Section, error) {
	return s.FindSectionByAnchorFn(ctx, anchor)
}

func (s *SectionService) FindSections(ctx context.Context, filter docref.SectionFilter) ([]*docref.Section, error) {
	return s.FindSectionsFn(ctx, filter)
}

func (s *SectionService) DeleteSectionsByDocument(ctx context.Context, documentID string) error {
	return s.DeleteSectionsByDocumentFn(ctx, documentID)
}
