// Package fs provides filesystem-based import and export for docref.
package fs

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"docref"

	"github.com/adrg/frontmatter"
	"golang.org/x/sync/errgroup"
)

// Ensure Loader implements docref.DocumentLoader at compile time.
var _ docref.DocumentLoader = (*Loader)(nil)

// Loader reads a content directory into documents. Markdown files are
// read directly; HTML files are converted to markdown when a Converter
// is configured.
type Loader struct {
	// Dir is the content directory to walk.
	Dir string

	// Converter converts HTML files to markdown. When nil, HTML files
	// are skipped.
	Converter docref.Converter

	// Titles extracts titles from HTML files. Optional.
	Titles docref.TitleExtractor

	// Concurrency limits parallel file parsing. Defaults to 8.
	Concurrency int
}

// metadata is the optional YAML frontmatter recognized in markdown files.
type metadata struct {
	Title    string `yaml:"title"`
	Position *int   `yaml:"position"`
}

// Load walks the content directory and returns documents in path order.
// Position reflects path order unless overridden by frontmatter.
func (l *Loader) Load(ctx context.Context) ([]*docref.Document, error) {
	if l.Dir == "" {
		return nil, docref.Errorf(docref.EINVALID, "content directory required")
	}

	paths, err := l.collectPaths()
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, nil
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	docs := make([]*docref.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := l.loadFile(path)
			if err != nil {
				return err
			}
			if doc != nil {
				if doc.Position < 0 {
					doc.Position = i
				}
				docs[i] = doc
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Compact out skipped files.
	result := make([]*docref.Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			result = append(result, doc)
		}
	}
	return result, nil
}

// collectPaths returns the importable files under Dir, sorted. Hidden
// directories and files are skipped.
func (l *Loader) collectPaths() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(l.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != l.Dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".markdown":
			paths = append(paths, path)
		case ".html", ".htm":
			if l.Converter != nil {
				paths = append(paths, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

func (l *Loader) loadFile(path string) (*docref.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(l.Dir, path)
	if err != nil {
		return nil, err
	}

	// Position -1 means "no explicit order"; Load assigns path order.
	doc := &docref.Document{Path: filepath.ToSlash(rel), Position: -1}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		content, err := l.Converter.Convert(string(raw))
		if err != nil {
			return nil, err
		}
		doc.Content = content
		if l.Titles != nil {
			doc.Title = l.Titles.Title(string(raw))
		}
	default:
		var meta metadata
		rest, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
		if err != nil {
			return nil, docref.Errorf(docref.EINVALID, "invalid frontmatter in %s: %v", rel, err)
		}
		doc.Content = string(rest)
		doc.Title = meta.Title
		if meta.Position != nil {
			doc.Position = *meta.Position
		}
	}

	if doc.Title == "" {
		doc.Title = firstHeading(doc.Content)
	}

	return doc, nil
}

// firstHeading returns the text of the first level-1 heading, if any.
func firstHeading(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return ""
}
