package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"docref"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docref.DocumentService = (*DocumentService)(nil)

// DocumentService implements docref.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// HashContent computes xxHash of content and returns a hex string.
// Import uses it to detect unchanged documents without comparing bodies.
func HashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateDocument creates a new document.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *docref.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.ImportedAt = time.Now().UTC()
	doc.ContentHash = HashContent(doc.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, path, title, content, content_hash, position, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.Path, doc.Title, doc.Content, doc.ContentHash,
		doc.Position, doc.ImportedAt.Format(time.RFC3339))

	return err
}

const documentColumns = "id, path, title, content, content_hash, position, imported_at"

func scanDocument(scan func(dest ...any) error) (*docref.Document, error) {
	var doc docref.Document
	var importedAt string

	if err := scan(&doc.ID, &doc.Path, &doc.Title, &doc.Content,
		&doc.ContentHash, &doc.Position, &importedAt); err != nil {
		return nil, err
	}

	var parseErr error
	doc.ImportedAt, parseErr = parseRFC3339(importedAt, "imported_at")
	if parseErr != nil {
		return nil, parseErr
	}

	return &doc, nil
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*docref.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE id = ?
	`, id)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docref.Errorf(docref.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocumentByPath retrieves a document by its source path.
func (s *DocumentService) FindDocumentByPath(ctx context.Context, path string) (*docref.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+documentColumns+`
		FROM documents
		WHERE path = ?
	`, path)

	doc, err := scanDocument(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docref.Errorf(docref.ENOTFOUND, "document not found")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// FindDocuments retrieves documents matching the filter.
func (s *DocumentService) FindDocuments(ctx context.Context, filter docref.DocumentFilter) ([]*docref.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + documentColumns + " FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Path != nil {
		query.WriteString(" AND path = ?")
		args = append(args, *filter.Path)
	}

	switch filter.SortBy {
	case docref.SortByImportedAt:
		query.WriteString(" ORDER BY imported_at DESC")
	default:
		query.WriteString(" ORDER BY position ASC, path ASC")
	}

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docref.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, rows.Err()
}

// UpdateDocument updates an existing document.
func (s *DocumentService) UpdateDocument(ctx context.Context, id string, upd docref.DocumentUpdate) (*docref.Document, error) {
	doc, err := s.FindDocumentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		doc.Title = *upd.Title
	}
	if upd.Content != nil {
		doc.Content = *upd.Content
		doc.ContentHash = HashContent(doc.Content)
	}
	if upd.Position != nil {
		doc.Position = *upd.Position
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	doc.ImportedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE documents
		SET title = ?, content = ?, content_hash = ?, position = ?, imported_at = ?
		WHERE id = ?
	`, doc.Title, doc.Content, doc.ContentHash, doc.Position,
		doc.ImportedAt.Format(time.RFC3339), id)

	if err != nil {
		return nil, err
	}

	return doc, nil
}

// DeleteDocument permanently removes a document. Associated sections are
// removed by the foreign key cascade.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docref.Errorf(docref.ENOTFOUND, "document not found")
	}

	return nil
}
