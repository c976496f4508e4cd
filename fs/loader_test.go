package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docref"
	"docref/fs"
	"docref/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile creates a file (and parent directories) under dir.
func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()

	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoader_LoadsMarkdownFilesInPathOrder(t *testing.T) {
	t.Parallel()

	// Given a content directory with markdown files
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "# Second\n\nBody B.\n")
	writeFile(t, dir, "a.md", "# First\n\nBody A.\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then documents come back in path order with path-order positions
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.md", docs[0].Path)
	assert.Equal(t, 0, docs[0].Position)
	assert.Equal(t, "b.md", docs[1].Path)
	assert.Equal(t, 1, docs[1].Position)
}

func TestLoader_ReadsFrontmatterTitleAndPosition(t *testing.T) {
	t.Parallel()

	// Given a markdown file with YAML frontmatter
	dir := t.TempDir()
	writeFile(t, dir, "guide.md", "---\ntitle: The Guide\nposition: 5\n---\n# Heading\n\nBody.\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then frontmatter wins over path order and the first heading
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "The Guide", docs[0].Title)
	assert.Equal(t, 5, docs[0].Position)
	assert.NotContains(t, docs[0].Content, "title: The Guide")
}

func TestLoader_HonorsExplicitPositionZero(t *testing.T) {
	t.Parallel()

	// Given two files where the later path pins itself to position 0
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "z.md", "---\nposition: 0\n---\n# Z\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then the explicit zero is kept rather than overwritten by path order
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "z.md", docs[1].Path)
	assert.Equal(t, 0, docs[1].Position)
}

func TestLoader_FallsBackToFirstHeadingForTitle(t *testing.T) {
	t.Parallel()

	// Given a markdown file without frontmatter
	dir := t.TempDir()
	writeFile(t, dir, "plain.md", "Intro line.\n\n# Actual Title\n\nBody.\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then the first level-1 heading becomes the title
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Actual Title", docs[0].Title)
}

func TestLoader_ConvertsHTMLWhenConverterConfigured(t *testing.T) {
	t.Parallel()

	// Given an HTML file and a converter plus title extractor
	dir := t.TempDir()
	writeFile(t, dir, "page.html", "<html><head><title>Page</title></head><body><h1>Hi</h1></body></html>")

	loader := &fs.Loader{
		Dir: dir,
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "# Hi\n", nil },
		},
		Titles: &mock.TitleExtractor{
			TitleFn: func(html string) string { return "Page" },
		},
	}

	// When the directory is loaded
	docs, err := loader.Load(context.Background())

	// Then the HTML is converted and titled
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "page.html", docs[0].Path)
	assert.Equal(t, "# Hi\n", docs[0].Content)
	assert.Equal(t, "Page", docs[0].Title)
}

func TestLoader_SkipsHTMLWithoutConverter(t *testing.T) {
	t.Parallel()

	// Given a directory with both markdown and HTML
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, "page.html", "<h1>Hi</h1>")

	// When loaded without a converter
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then only the markdown file is imported
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.md", docs[0].Path)
}

func TestLoader_SkipsHiddenFilesAndDirectories(t *testing.T) {
	t.Parallel()

	// Given hidden entries alongside regular content
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "# A\n")
	writeFile(t, dir, ".draft.md", "# Draft\n")
	writeFile(t, dir, ".git/notes.md", "# Notes\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then hidden files and directories are ignored
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a.md", docs[0].Path)
}

func TestLoader_UsesSlashPathsForNestedFiles(t *testing.T) {
	t.Parallel()

	// Given a nested content tree
	dir := t.TempDir()
	writeFile(t, dir, "guides/setup.md", "# Setup\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	docs, err := loader.Load(context.Background())

	// Then document paths are slash-separated and relative to the root
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "guides/setup.md", docs[0].Path)
	assert.False(t, strings.Contains(docs[0].Path, "\\"))
}

func TestLoader_RejectsInvalidFrontmatter(t *testing.T) {
	t.Parallel()

	// Given a markdown file with malformed frontmatter
	dir := t.TempDir()
	writeFile(t, dir, "bad.md", "---\ntitle: [unclosed\n---\n# Bad\n")

	// When the directory is loaded
	loader := &fs.Loader{Dir: dir}
	_, err := loader.Load(context.Background())

	// Then loading fails with a validation error naming the file
	require.Error(t, err)
	assert.Equal(t, docref.EINVALID, docref.ErrorCode(err))
	assert.Contains(t, docref.ErrorMessage(err), "bad.md")
}

func TestLoader_RequiresDirectory(t *testing.T) {
	t.Parallel()

	// Given a loader with no directory configured
	loader := &fs.Loader{}

	// When loading
	_, err := loader.Load(context.Background())

	// Then it fails with a validation error
	assert.Equal(t, docref.EINVALID, docref.ErrorCode(err))
}

func TestLoader_ReturnsNilForEmptyDirectory(t *testing.T) {
	t.Parallel()

	// Given an empty content directory
	loader := &fs.Loader{Dir: t.TempDir()}

	// When loading
	docs, err := loader.Load(context.Background())

	// Then there are no documents and no error
	require.NoError(t, err)
	assert.Nil(t, docs)
}
