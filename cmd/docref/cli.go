package main

import (
	"context"
	"io"
	"log/slog"

	"docref"
	"docref/fsnotify"
	dochttp "docref/http"
	"docref/ingest"
	"docref/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    *Config
	DB        *sqlite.DB
	Documents docref.DocumentService
	Sections  docref.SectionService
	Extractor docref.SectionExtractor
	Renderer  docref.Renderer // HTML
	Term      docref.Renderer // styled terminal output
	Importer  *ingest.Importer
	Server    *dochttp.Server
	Watcher   *fsnotify.Watcher
	Asker     docref.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Import   ImportCmd   `cmd:"" help:"Import a content directory into the store"`
	List     ListCmd     `cmd:"" help:"List imported documents"`
	Toc      TocCmd      `cmd:"" help:"Print the table of contents"`
	Show     ShowCmd     `cmd:"" help:"Show a section by anchor"`
	Check    CheckCmd    `cmd:"" help:"Validate heading structure and internal links"`
	Examples ExamplesCmd `cmd:"" help:"List code examples in a document"`
	Export   ExportCmd   `cmd:"" help:"Export the store as a static HTML site"`
	Serve    ServeCmd    `cmd:"" help:"Serve the store over HTTP"`
	Ask      AskCmd      `cmd:"" help:"Ask a question about the stored documentation"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir         string `arg:"" optional:"" help:"Content directory (defaults to the configured contentDir)"`
	Prune       bool   `help:"Remove stored documents whose source file is gone"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent file parse limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Full bool `help:"Print full document contents instead of a summary"`
}

// TocCmd is the "toc" subcommand.
type TocCmd struct {
	Doc  string `arg:"" optional:"" help:"Document path (all documents when omitted)"`
	JSON bool   `help:"Print the table of contents as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Anchor string `arg:"" help:"Section anchor"`
	Raw    bool   `help:"Print raw markdown instead of styled output"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Doc string `arg:"" optional:"" help:"Document path (all documents when omitted)"`
}

// ExamplesCmd is the "examples" subcommand.
type ExamplesCmd struct {
	Doc string `arg:"" help:"Document path"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out     string `short:"o" help:"Output directory (defaults to the configured outputDir)"`
	BaseURL string `help:"Site base URL for sitemap.xml (defaults to the configured baseURL)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string `default:":4117" help:"Listen address"`
	Watch bool   `short:"w" help:"Re-import when the content directory changes"`
	Dir   string `optional:"" help:"Content directory to watch (defaults to the configured contentDir)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question string `arg:"" help:"Question to ask about the documentation"`
}
