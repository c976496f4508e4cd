package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"docref"

	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docref.SectionService = (*SectionService)(nil)

// SectionService implements docref.SectionService using SQLite.
type SectionService struct {
	db *DB
}

// NewSectionService creates a new SectionService.
func NewSectionService(db *DB) *SectionService {
	return &SectionService{db: db}
}

// ReplaceSections atomically replaces all sections for a document.
func (s *SectionService) ReplaceSections(ctx context.Context, documentID string, sections []*docref.Section) error {
	if documentID == "" {
		return docref.Errorf(docref.EINVALID, "document ID required")
	}

	for _, sec := range sections {
		sec.DocumentID = documentID
		if err := sec.Validate(); err != nil {
			return err
		}
	}

	if err := s.DeleteSectionsByDocument(ctx, documentID); err != nil {
		return err
	}

	for i, sec := range sections {
		sec.ID = uuid.New().String()
		sec.Position = i

		_, err := s.db.ExecContext(ctx, `
			INSERT INTO sections (id, document_id, level, title, anchor, heading_path, position, start_line, end_line, body)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, sec.ID, sec.DocumentID, sec.Level, sec.Title, sec.Anchor, sec.HeadingPath,
			sec.Position, sec.StartLine, sec.EndLine, sec.Body)
		if err != nil {
			return err
		}
	}

	return nil
}

const sectionColumns = "s.id, s.document_id, s.level, s.title, s.anchor, s.heading_path, s.position, s.start_line, s.end_line, s.body"

func scanSection(scan func(dest ...any) error) (*docref.Section, error) {
	var sec docref.Section
	if err := scan(&sec.ID, &sec.DocumentID, &sec.Level, &sec.Title, &sec.Anchor,
		&sec.HeadingPath, &sec.Position, &sec.StartLine, &sec.EndLine, &sec.Body); err != nil {
		return nil, err
	}
	return &sec, nil
}

// FindSectionByAnchor retrieves a section by its anchor. The first match
// in store order wins when the anchor exists in more than one document.
func (s *SectionService) FindSectionByAnchor(ctx context.Context, anchor string) (*docref.Section, error) {
	if anchor == "" {
		return nil, docref.Errorf(docref.EINVALID, "anchor required")
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT `+sectionColumns+`
		FROM sections s
		JOIN documents d ON d.id = s.document_id
		WHERE s.anchor = ?
		ORDER BY d.position ASC, d.path ASC, s.position ASC
		LIMIT 1
	`, anchor)

	sec, err := scanSection(row.Scan)
	if err == sql.ErrNoRows {
		return nil, docref.Errorf(docref.ENOTFOUND, "section not found for anchor %q", anchor)
	}
	if err != nil {
		return nil, err
	}
	return sec, nil
}

// FindSections retrieves sections matching the filter, in store order.
func (s *SectionService) FindSections(ctx context.Context, filter docref.SectionFilter) ([]*docref.Section, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + sectionColumns + `
		FROM sections s
		JOIN documents d ON d.id = s.document_id
		WHERE 1=1`)

	if filter.DocumentID != nil {
		query.WriteString(" AND s.document_id = ?")
		args = append(args, *filter.DocumentID)
	}
	if filter.Anchor != nil {
		query.WriteString(" AND s.anchor = ?")
		args = append(args, *filter.Anchor)
	}
	if filter.Level != nil {
		query.WriteString(" AND s.level = ?")
		args = append(args, *filter.Level)
	}

	query.WriteString(" ORDER BY d.position ASC, d.path ASC, s.position ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*docref.Section
	for rows.Next() {
		sec, err := scanSection(rows.Scan)
		if err != nil {
			return nil, err
		}
		sections = append(sections, sec)
	}

	return sections, rows.Err()
}

// DeleteSectionsByDocument removes all sections for a document.
func (s *SectionService) DeleteSectionsByDocument(ctx context.Context, documentID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sections WHERE document_id = ?", documentID)
	return err
}
