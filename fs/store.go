package fs

import (
	"context"
	"os"
	"path/filepath"
)

// ExportStore writes exported files with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on
// Commit. Abort discards pending changes.
type ExportStore struct {
	baseDir string
	name    string
}

// NewExportStore creates a new ExportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewExportStore(baseDir, name string) *ExportStore {
	return &ExportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ExportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ExportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the final output directory.
func (s *ExportStore) Dir() string {
	return s.finalDir()
}

// Save writes a file to the pending export at the given relative path.
func (s *ExportStore) Save(ctx context.Context, relPath string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, data, 0644)
}

// Commit atomically replaces the final directory with the pending export.
func (s *ExportStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the pending export.
func (s *ExportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
