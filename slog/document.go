package slog

import (
	"context"
	"log/slog"
	"time"

	"docref"
)

// Ensure LoggingDocumentService implements docref.DocumentService.
var _ docref.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with debug logging.
type LoggingDocumentService struct {
	next   docref.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next docref.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// CreateDocument logs document creation.
func (s *LoggingDocumentService) CreateDocument(ctx context.Context, doc *docref.Document) error {
	begin := time.Now()
	err := s.next.CreateDocument(ctx, doc)
	s.logger.Debug("create document",
		"path", doc.Path,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}

// FindDocumentByID delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByID(ctx context.Context, id string) (*docref.Document, error) {
	return s.next.FindDocumentByID(ctx, id)
}

// FindDocumentByPath delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocumentByPath(ctx context.Context, path string) (*docref.Document, error) {
	return s.next.FindDocumentByPath(ctx, path)
}

// FindDocuments delegates to the wrapped service.
func (s *LoggingDocumentService) FindDocuments(ctx context.Context, filter docref.DocumentFilter) ([]*docref.Document, error) {
	begin := time.Now()
	docs, err := s.next.FindDocuments(ctx, filter)
	s.logger.Debug("find documents",
		"count", len(docs),
		"duration", time.Since(begin),
		"error", err,
	)
	return docs, err
}

// UpdateDocument logs document updates.
func (s *LoggingDocumentService) UpdateDocument(ctx context.Context, id string, upd docref.DocumentUpdate) (*docref.Document, error) {
	begin := time.Now()
	doc, err := s.next.UpdateDocument(ctx, id, upd)
	s.logger.Debug("update document",
		"id", id,
		"duration", time.Since(begin),
		"error", err,
	)
	return doc, err
}

// DeleteDocument logs document deletion.
func (s *LoggingDocumentService) DeleteDocument(ctx context.Context, id string) error {
	begin := time.Now()
	err := s.next.DeleteDocument(ctx, id)
	s.logger.Debug("delete document",
		"id", id,
		"duration", time.Since(begin),
		"error", err,
	)
	return err
}
