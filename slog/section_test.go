package slog_test

import (
	"bytes"
	"context"
	stdslog "log/slog"
	"testing"

	"docref"
	"docref/mock"
	docslog "docref/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBufferLogger returns a debug-level logger writing to the buffer.
func newBufferLogger(buf *bytes.Buffer) *stdslog.Logger {
	return stdslog.New(stdslog.NewTextHandler(buf, &stdslog.HandlerOptions{
		Level: stdslog.LevelDebug,
	}))
}

func TestLoggingSectionService_FindSectionByAnchor(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs hits", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		next := &mock.SectionService{
			FindSectionByAnchorFn: func(ctx context.Context, anchor string) (*docref.Section, error) {
				return &docref.Section{Title: "Hooks", Anchor: anchor}, nil
			},
		}
		svc := docslog.NewLoggingSectionService(next, newBufferLogger(&buf))

		section, err := svc.FindSectionByAnchor(context.Background(), "hooks")

		require.NoError(t, err)
		assert.Equal(t, "Hooks", section.Title)
		assert.Contains(t, buf.String(), "find section by anchor")
		assert.Contains(t, buf.String(), "anchor=hooks")
		assert.Contains(t, buf.String(), "found=true")
	})

	t.Run("logs misses and passes the error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		next := &mock.SectionService{
			FindSectionByAnchorFn: func(ctx context.Context, anchor string) (*docref.Section, error) {
				return nil, docref.Errorf(docref.ENOTFOUND, "section not found for anchor %q", anchor)
			},
		}
		svc := docslog.NewLoggingSectionService(next, newBufferLogger(&buf))

		_, err := svc.FindSectionByAnchor(context.Background(), "missing")

		assert.Equal(t, docref.ENOTFOUND, docref.ErrorCode(err))
		assert.Contains(t, buf.String(), "found=false")
	})
}

func TestLoggingSectionService_ReplaceSections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.SectionService{
		ReplaceSectionsFn: func(ctx context.Context, documentID string, sections []*docref.Section) error {
			return nil
		},
	}
	svc := docslog.NewLoggingSectionService(next, newBufferLogger(&buf))

	err := svc.ReplaceSections(context.Background(), "doc-1", []*docref.Section{
		{Level: 1, Title: "A", Anchor: "a"},
		{Level: 2, Title: "B", Anchor: "b"},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "replace sections")
	assert.Contains(t, buf.String(), "count=2")
}

func TestLoggingDocumentService_CreateDocument(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.DocumentService{
		CreateDocumentFn: func(ctx context.Context, doc *docref.Document) error {
			return nil
		},
	}
	svc := docslog.NewLoggingDocumentService(next, newBufferLogger(&buf))

	err := svc.CreateDocument(context.Background(), &docref.Document{Path: "a.md"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "create document")
	assert.Contains(t, buf.String(), "path=a.md")
}

func TestLoggingDocumentService_FindDocuments(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	next := &mock.DocumentService{
		FindDocumentsFn: func(ctx context.Context, filter docref.DocumentFilter) ([]*docref.Document, error) {
			return []*docref.Document{{Path: "a.md"}}, nil
		},
	}
	svc := docslog.NewLoggingDocumentService(next, newBufferLogger(&buf))

	docs, err := svc.FindDocuments(context.Background(), docref.DocumentFilter{})

	require.NoError(t, err)
	assert.Len(t, docs, 1)
	assert.Contains(t, buf.String(), "find documents")
	assert.Contains(t, buf.String(), "count=1")
}
