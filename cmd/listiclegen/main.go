// Command listiclegen turns e-commerce product pages into listicle
// landing-page copy: extract a product brief, pick a headline, generate
// the listicle.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/lars154/ecom-listicle-writer/gemini"
	"github.com/lars154/ecom-listicle-writer/goquery"
	listiclehttp "github.com/lars154/ecom-listicle-writer/http"
	"github.com/lars154/ecom-listicle-writer/preview"
	listicleslog "github.com/lars154/ecom-listicle-writer/slog"
	"github.com/lars154/ecom-listicle-writer/sqlite"
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

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("listiclegen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'listiclegen --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LISTICLE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Briefs = sqlite.NewBriefService(m.DB)
	deps.Sitemaps = listiclehttp.NewSitemapService(nil)
	deps.Fetcher = listiclehttp.NewFetcher()
	deps.Extractor = goquery.NewBriefExtractor()
	deps.Previewer = preview.NewPreviewer()

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, nil))
		deps.Fetcher = listicleslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Sitemaps = listicleslog.NewLoggingSitemapService(deps.Sitemaps, logger)
		deps.Extractor = goquery.NewBriefExtractor(goquery.WithLogger(logger))
	}
	defer deps.Fetcher.Close()

	// Model-backed services are only wired for commands that call the API.
	if cmd == "headlines" || cmd == "generate" {
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

		deps.Generator = gemini.NewGenerator(client)
		deps.Headlines = gemini.NewHeadliner(client)
		if logger != nil {
			deps.Generator = listicleslog.NewLoggingGenerator(deps.Generator, logger)
			deps.Headlines = listicleslog.NewLoggingHeadlineGenerator(deps.Headlines, logger)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LISTICLE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "listicle.db"
	}
	dir := filepath.Join(home, ".listiclegen")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "listicle.db")
}
