package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/stefw/cardex"
	"github.com/stefw/cardex/csv"
	"github.com/stefw/cardex/fs"
	"github.com/stefw/cardex/goquery"
	cardexhttp "github.com/stefw/cardex/http"
	"github.com/stefw/cardex/scan"
	cardexslog "github.com/stefw/cardex/slog"
	"github.com/stefw/cardex/sqlite"
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
	// SQLite database, open only when a command runs against one.
	DB *sqlite.DB

	// Record store used by commands. Exposed for end-to-end testing.
	Store cardex.RecordStore
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("cardex"),
		kong.Description("Extract product records from saved catalog-listing pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cardex --help' to see available commands")
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
	cmd := kongCtx.Selected().Name

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire the record store based on the command's storage flags.
	var storage StoreFlags
	switch cmd {
	case "scan":
		storage = cli.Scan.StoreFlags
	case "stats":
		storage = cli.Stats.StoreFlags
	}

	if storage.Out == "" {
		storage.Out = DefaultStorePath()
	}

	if storage.DB != "" {
		m.DB = sqlite.NewDB(storage.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", storage.DB, err)
		}
		defer m.Close()
		m.Store = sqlite.NewRecordService(m.DB)
	} else {
		m.Store = csv.NewStore(storage.Out)
	}
	deps.Store = cardexslog.NewLoggingStore(m.Store, logger)

	if cmd == "scan" {
		var source cardex.PageSource
		if len(cli.Scan.URL) > 0 {
			source = cardexhttp.NewSource(cli.Scan.URL,
				cardexhttp.WithRate(cli.Scan.Rate),
			)
		} else {
			source = fs.NewDirSource(cli.Scan.Dir,
				fs.WithGlob(cli.Scan.Glob),
				fs.WithLimit(cli.Scan.Pages),
			)
		}

		cfg := goquery.DefaultConfig()
		if cli.Scan.BaseURL != "" {
			cfg.BaseURL = cli.Scan.BaseURL
		}
		if cli.Scan.Platform != "" {
			cfg.Platform = cli.Scan.Platform
		}

		deps.Scanner = &scan.Scanner{
			Source:    source,
			Extractor: cardexslog.NewLoggingExtractor(goquery.NewExtractor(cfg), logger),
			Store:     deps.Store,
		}
	}

	return kongCtx.Run(deps)
}

// DefaultStorePath returns the CSV store path, overridable via the
// CARDEX_STORE environment variable.
func DefaultStorePath() string {
	if path := os.Getenv("CARDEX_STORE"); path != "" {
		return path
	}
	return "products.csv"
}
