package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"docref"
	"docref/bloom"
	"docref/fs"
	"docref/fsnotify"
	"docref/gemini"
	"docref/glamour"
	"docref/goldmark"
	"docref/goquery"
	dochttp "docref/http"
	"docref/htmltomarkdown"
	"docref/ingest"
	docslog "docref/slog"
	"docref/sqlite"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Project config path. Set before calling Run().
	ConfigPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	DocumentService docref.DocumentService
	SectionService  docref.SectionService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:     defaultDBPath(),
		ConfigPath: defaultConfigPath,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Load .env for GEMINI_API_KEY and friends; absence is fine.
	_ = godotenv.Load()

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docref"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docref --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	selected := kongCtx.Selected()
	if selected == nil {
		return nil
	}

	// Dispatch on the parsed command, not args[0]: global flags like
	// --verbose may precede the command name.
	cmd := selected.Name

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	cfg, err := LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}
	deps.Config = cfg

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCREF_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.DocumentService = sqlite.NewDocumentService(m.DB)
	m.SectionService = sqlite.NewSectionService(m.DB)

	deps.DB = m.DB
	deps.Documents = m.DocumentService
	deps.Sections = m.SectionService
	if cli.Verbose {
		deps.Documents = docslog.NewLoggingDocumentService(deps.Documents, logger)
		deps.Sections = docslog.NewLoggingSectionService(deps.Sections, logger)
	}
	deps.Extractor = goldmark.NewExtractor()
	deps.Renderer = goldmark.NewRenderer()

	// Wire command-specific dependencies based on command
	if cmd == "show" && !cli.Show.Raw {
		term, err := glamour.NewRenderer()
		if err != nil {
			return fmt.Errorf("failed to create terminal renderer: %w", err)
		}
		deps.Term = term
	}

	if cmd == "import" || (cmd == "serve" && cli.Serve.Watch) {
		dir := cli.Import.Dir
		if cmd == "serve" {
			dir = cli.Serve.Dir
		}
		if dir == "" {
			dir = cfg.ContentDir
		}

		deps.Importer = &ingest.Importer{
			Loader: &fs.Loader{
				Dir:         dir,
				Converter:   htmltomarkdown.NewConverter(),
				Titles:      goquery.NewTitleExtractor(),
				Concurrency: cli.Import.Concurrency,
			},
			Documents: deps.Documents,
			Sections:  deps.Sections,
			Extractor: deps.Extractor,
			Tracker:   bloom.NewFilter(4096, 0.01),
			Logger:    logger,
			Prune:     cli.Import.Prune,
		}
	}

	if cmd == "serve" {
		deps.Server = &dochttp.Server{
			Addr:      cli.Serve.Addr,
			SiteTitle: cfg.SiteTitle,
			Documents: deps.Documents,
			Sections:  deps.Sections,
			Renderer:  deps.Renderer,
			Logger:    logger,
		}
		if cli.Serve.Watch {
			watcher, err := fsnotify.NewWatcher(logger)
			if err != nil {
				return fmt.Errorf("failed to create file watcher: %w", err)
			}
			defer watcher.Close()
			deps.Watcher = watcher
		}
	}

	if cmd == "ask" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		asker := gemini.NewAsker(client, deps.Documents, defaultModel)
		if tc, err := gemini.NewTokenCounter(tokenizerModel); err == nil {
			asker.Tokens = tc
		}
		deps.Asker = asker
	}

	return kongCtx.Run(deps)
}

const defaultModel = "gemini-3-flash-preview"

// tokenizerModel is used for token counting. Using gemini-2.5-flash until
// gemini-3-flash-preview is supported by google.golang.org/genai/tokenizer.
const tokenizerModel = "gemini-2.5-flash"

func defaultDBPath() string {
	if path := os.Getenv("DOCREF_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "docref.db"
	}
	dir := filepath.Join(home, ".docref")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docref.db")
}
