package mock

import (
	"context"

	"docref"
)

var _ docref.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of docref.DocumentService.
type DocumentService struct {
	CreateDocumentFn     func(ctx context.Context, doc *docref.Document) error
	FindDocumentByIDFn   func(ctx context.Context, id string) (*docref.Document, error)
	FindDocumentByPathFn func(ctx context.Context, path string) (*docref.Document, error)
	FindDocumentsFn      func(ctx context.Context, filter docref.DocumentFilter) ([]*docref.Document, error)
	UpdateDocumentFn     func(ctx context.Context, id string, upd docref.DocumentUpdate) (*docref.Document, error)
	DeleteDocumentFn     func(ctx context.Context, id string) error
}

func (s *DocumentService) CreateDocument(ctx context.Context, doc *docref.Document) error {
	return s.CreateDocumentFn(ctx, doc)
}

func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docref.Document, error) {
	return s.FindDocumentByIDFn(ctx, id)
}

func (s *DocumentService) FindDocumentByPath(ctx context.Context, path string) (*docref.Document, error) {
	return s.FindDocumentByPathFn(ctx, path)
}

func (s *DocumentService) FindDocuments(ctx context.Context, filter docref.DocumentFilter) ([]*docref.Document, error) {
	return s.FindDocumentsFn(ctx, filter)
}

func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd docref.DocumentUpdate) (*docref.Document, error) {
	return s.UpdateDocumentFn(ctx, id, upd)
}

func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	return s.DeleteDocumentFn(ctx, id)
}
