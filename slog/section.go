// Package slog provides logging decorators for docref services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"docref"
)

// Ensure LoggingSectionService implements docref.SectionService.
var _ docref.SectionService = (*LoggingSectionService)(nil)

// LoggingSectionService wraps a SectionService with debug logging.
type LoggingSectionService struct {
	next   docref.SectionService
	logger *slog.Logger
}

// NewLoggingSectionService creates a new LoggingSectionService.
func NewLoggingSectionService(next docref.SectionService, logger *slog.Logger) *LoggingSectionService {
	return &LoggingSectionService{next: next, logger: logger}
}

// ReplaceSections delegates to the wrapped service.
func (s *LoggingSectionService) ReplaceSections(ctx context.Context, documentID string, sections []*docref.Section) error {
	begin := time.Now()
	err := s.next.ReplaceSections(ctx, documentID, sections)
	s.logger.Debug("replace sections",
		"documentID", documentID,
		"count", len(sections),
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// FindSectionByAnchor logs anchor lookups, including misses.
func (s *LoggingSectionService) FindSectionByAnchor(ctx context.Context, anchor string) (*docref.Section, error) {
	begin := time.Now()
	section, err := s.next.FindSectionByAnchor(ctx, anchor)
	s.logger.Debug("find section by anchor",
		"anchor", anchor,
		"found", err == nil,
		"duration", time.Since(begin),
	)
	return section, err
}

// FindSections delegates to the wrapped service.
func (s *LoggingSectionService) FindSections(ctx context.Context, filter docref.SectionFilter) ([]*docref.Section, error) {
	begin := time.Now()
	sections, err := s.next.FindSections(ctx, filter)
	s.logger.Debug("find sections",
		"count", len(sections),
		"duration", time.Since(begin),
		"error", err,
	)
	return sections, err
}

// DeleteSectionsByDocument delegates to the wrapped service.
func (s *LoggingSectionService) DeleteSectionsByDocument(ctx context.Context, documentID string) error {
	return s.next.DeleteSectionsByDocument(ctx, documentID)
}
