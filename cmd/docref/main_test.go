package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"docref"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactDoc = `# React

A library for building user interfaces.

- [Hooks](#hooks)

## Key Concepts

The big ideas.

### Hooks

Hooks let you use state in function components.

## API Reference

` + "```js\nuseState(0)\n```" + `
`

// newTestMain returns a Main wired to a temp database and a content
// directory holding one document.
func newTestMain(t *testing.T) (*Main, string) {
	t.Helper()

	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content")
	require.NoError(t, os.Mkdir(contentDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "react.md"), []byte(reactDoc), 0644))

	m := NewMain()
	m.DBPath = filepath.Join(dir, "docref.db")
	m.ConfigPath = filepath.Join(dir, "docref.yaml")
	return m, contentDir
}

// run executes one CLI invocation and returns stdout.
func run(t *testing.T, m *Main, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	err := m.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), err
}

func TestMain_ImportAndToc(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	out, err := run(t, m, "import", contentDir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 created")

	out, err = run(t, m, "toc")
	require.NoError(t, err)
	assert.Contains(t, out, "- [React](#react)")
	assert.Contains(t, out, "  - [Key Concepts](#key-concepts)")
	assert.Contains(t, out, "    - [Hooks](#hooks)")
	assert.Contains(t, out, "  - [API Reference](#api-reference)")
}

func TestMain_GlobalFlagBeforeCommand(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	out, err := run(t, m, "-v", "import", contentDir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 created")

	out, err = run(t, m, "--verbose", "show", "hooks", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "### Hooks")
}

func TestMain_ShowResolvesAnchorToNestedSection(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	out, err := run(t, m, "show", "hooks", "--raw")
	require.NoError(t, err)
	assert.Contains(t, out, "### Hooks")
	assert.Contains(t, out, "Hooks let you use state in function components.")
}

func TestMain_ShowUnknownAnchorFails(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	_, err = run(t, m, "show", "nonexistent", "--raw")
	require.Error(t, err)
	assert.Equal(t, docref.ENOTFOUND, docref.ErrorCode(err))
}

func TestMain_CheckPassesForValidDocument(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	out, err := run(t, m, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found.")
}

func TestMain_CheckReportsDeadLink(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "broken.md"),
		[]byte("# Broken\n\nSee [Setup](#setup).\n"), 0644))

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	out, err := run(t, m, "check", "broken.md")
	require.Error(t, err)
	assert.Equal(t, docref.EINVALID, docref.ErrorCode(err))
	assert.Contains(t, out, "dead_link")
}

func TestMain_ReimportIsIdempotent(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	out, err := run(t, m, "import", contentDir)
	require.NoError(t, err)
	assert.Contains(t, out, "0 created")
	assert.Contains(t, out, "1 unchanged")
}

func TestMain_ImportPruneRemovesDeletedFiles(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)
	extra := filepath.Join(contentDir, "extra.md")
	require.NoError(t, os.WriteFile(extra, []byte("# Extra\n"), 0644))

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	require.NoError(t, os.Remove(extra))

	out, err := run(t, m, "import", contentDir, "--prune")
	require.NoError(t, err)
	assert.Contains(t, out, "1 pruned")

	out, err = run(t, m, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "extra.md")
	assert.Contains(t, out, "react.md")
}

func TestMain_ExamplesListsCodeBlocks(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	out, err := run(t, m, "examples", "react.md")
	require.NoError(t, err)
	assert.Contains(t, out, "[js]")
	assert.Contains(t, out, "useState(0)")
}

func TestMain_ExportWritesStaticSite(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "site")
	_, err = run(t, m, "export", "-o", outDir, "--base-url", "https://docs.example.com")
	require.NoError(t, err)

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "react.html")

	page, err := os.ReadFile(filepath.Join(outDir, "react.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `id="hooks"`)

	sitemap, err := os.ReadFile(filepath.Join(outDir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://docs.example.com/react.html")
}

func TestMain_ExportNestedDocumentLinksHome(t *testing.T) {
	t.Parallel()

	m, contentDir := newTestMain(t)
	guideDir := filepath.Join(contentDir, "guide")
	require.NoError(t, os.Mkdir(guideDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(guideDir, "intro.md"), []byte("# Intro\n"), 0644))

	_, err := run(t, m, "import", contentDir)
	require.NoError(t, err)

	outDir := filepath.Join(t.TempDir(), "site")
	_, err = run(t, m, "export", "-o", outDir)
	require.NoError(t, err)

	page, err := os.ReadFile(filepath.Join(outDir, "guide", "intro.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), `href="../index.html"`)

	root, err := os.ReadFile(filepath.Join(outDir, "react.html"))
	require.NoError(t, err)
	assert.Contains(t, string(root), `href="index.html"`)
}

func TestMain_NoCommandShowsHelp(t *testing.T) {
	t.Parallel()

	m, _ := newTestMain(t)

	_, err := run(t, m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "docref --help")
}
