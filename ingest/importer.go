// Package ingest orchestrates importing authored content into the store.
package ingest

import (
	"context"
	"log/slog"

	"docref"
	"docref/sqlite"
)

// Report summarizes an import run.
type Report struct {
	Created   int
	Updated   int
	Unchanged int
	Pruned    int
}

// Importer loads authored content and reconciles it with the store.
// Unchanged documents are skipped; changed documents are rewritten along
// with their extracted sections.
type Importer struct {
	Loader    docref.DocumentLoader
	Documents docref.DocumentService
	Sections  docref.SectionService
	Extractor docref.SectionExtractor

	// Tracker is an approximate set of known content hashes. A miss
	// proves the content is new or changed and skips the per-document
	// database lookup on first import.
	Tracker docref.SeenTracker

	Logger *slog.Logger

	// Prune removes stored documents whose source file no longer exists.
	Prune bool
}

// Run imports the content directory and returns a summary.
func (i *Importer) Run(ctx context.Context) (*Report, error) {
	docs, err := i.Loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := i.Documents.FindDocuments(ctx, docref.DocumentFilter{})
	if err != nil {
		return nil, err
	}

	existingByPath := make(map[string]*docref.Document, len(existing))
	for _, doc := range existing {
		existingByPath[doc.Path] = doc
		if i.Tracker != nil {
			i.Tracker.Add(doc.ContentHash)
		}
	}

	report := &Report{}
	seen := make(map[string]bool, len(docs))

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		seen[doc.Path] = true

		hash := sqlite.HashContent(doc.Content)

		// A tracker miss is authoritative: the content cannot be in the
		// store. A hit still needs confirmation against the stored hash.
		if i.Tracker != nil && i.Tracker.Seen(hash) {
			if prev, ok := existingByPath[doc.Path]; ok && prev.ContentHash == hash &&
				prev.Title == doc.Title && prev.Position == doc.Position {
				report.Unchanged++
				continue
			}
		}

		if prev, ok := existingByPath[doc.Path]; ok {
			if _, err := i.Documents.UpdateDocument(ctx, prev.ID, docref.DocumentUpdate{
				Title:    &doc.Title,
				Content:  &doc.Content,
				Position: &doc.Position,
			}); err != nil {
				return nil, err
			}
			doc.ID = prev.ID
			report.Updated++
		} else {
			if err := i.Documents.CreateDocument(ctx, doc); err != nil {
				return nil, err
			}
			report.Created++
		}

		if i.Tracker != nil {
			i.Tracker.Add(hash)
		}

		if err := i.replaceSections(ctx, doc); err != nil {
			return nil, err
		}

		if i.Logger != nil {
			i.Logger.Debug("imported document", "path", doc.Path)
		}
	}

	if i.Prune {
		for path, doc := range existingByPath {
			if seen[path] {
				continue
			}
			if err := i.Documents.DeleteDocument(ctx, doc.ID); err != nil {
				return nil, err
			}
			report.Pruned++
			if i.Logger != nil {
				i.Logger.Debug("pruned document", "path", path)
			}
		}
	}

	return report, nil
}

func (i *Importer) replaceSections(ctx context.Context, doc *docref.Document) error {
	sections, err := i.Extractor.ExtractSections(doc.Content)
	if err != nil {
		return err
	}

	ptrs := make([]*docref.Section, len(sections))
	for j := range sections {
		ptrs[j] = &sections[j]
	}

	return i.Sections.ReplaceSections(ctx, doc.ID, ptrs)
}
