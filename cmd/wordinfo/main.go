package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordinfo"
	"github.com/fwojciec/wordinfo/fs"
	"github.com/fwojciec/wordinfo/goquery"
	wihttp "github.com/fwojciec/wordinfo/http"
	"github.com/fwojciec/wordinfo/lookup"
	"github.com/fwojciec/wordinfo/rod"
	wislog "github.com/fwojciec/wordinfo/slog"
	"github.com/fwojciec/wordinfo/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, opened when --db is set.
	DB *sqlite.DB

	// Fetcher used for live lookups.
	Fetcher wordinfo.Fetcher

	// Lookup service for end-to-end testing. When set, Run uses it instead
	// of wiring one from flags.
	Lookup wordinfo.LookupService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var err error
	if m.Fetcher != nil {
		err = m.Fetcher.Close()
	}
	if m.DB != nil {
		if dbErr := m.DB.Close(); err == nil {
			err = dbErr
		}
	}
	return err
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
		kong.Name("wordinfo"),
		kong.Description("Look up meanings, synonyms, antonyms and parts of speech of English words."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordinfo --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.JSON = cli.JSON
	deps.Logger = newLogger(stderr, cli.Verbose)

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set WORDINFO_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
	}
	defer m.Close()

	switch command := strings.Fields(kongCtx.Command())[0]; command {
	case "import":
		if m.DB == nil {
			return wordinfo.Errorf(wordinfo.EINVALID, "import requires --db or WORDINFO_DB")
		}
		deps.Importer = sqlite.NewImporter(m.DB)
	default:
		if m.Lookup == nil {
			svc, err := m.newLookupService(cli, deps.Logger)
			if err != nil {
				return err
			}
			m.Lookup = svc
		}
		deps.Lookup = m.Lookup
	}

	return kongCtx.Run(deps)
}

// newLookupService wires the live fetcher, extractor and offline dataset
// selected by the global flags.
func (m *Main) newLookupService(cli *CLI, logger *slog.Logger) (wordinfo.LookupService, error) {
	fetcher, err := newFetcher(cli)
	if err != nil {
		return nil, err
	}
	m.Fetcher = fetcher

	dataset := m.newDataset(cli)

	if cli.Verbose {
		fetcher = wislog.NewLoggingFetcher(fetcher, logger)
		dataset = wislog.NewLoggingDataset(dataset, logger)
	}

	var svc wordinfo.LookupService = &lookup.Service{
		Fetcher:       fetcher,
		Extractor:     goquery.NewExtractor(),
		Dataset:       dataset,
		DictionaryURL: cli.DictionaryURL,
		ThesaurusURL:  cli.ThesaurusURL,
		Logger:        logger,
	}
	if cli.Verbose {
		svc = wislog.NewLoggingLookupService(svc, logger)
	}
	return svc, nil
}

func newFetcher(cli *CLI) (wordinfo.Fetcher, error) {
	if cli.Browser {
		opts := []rod.Option{rod.WithFetchTimeout(cli.Timeout)}
		if cli.UserAgent != "" {
			opts = append(opts, rod.WithUserAgent(cli.UserAgent))
		}
		fetcher, err := rod.NewFetcher(opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		return fetcher, nil
	}

	opts := []wihttp.Option{wihttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, wihttp.WithUserAgent(cli.UserAgent))
	}
	return wihttp.NewFetcher(opts...), nil
}

// newDataset picks the offline dataset: the SQLite database when open, the
// partition directory when given, the bundled data otherwise.
func (m *Main) newDataset(cli *CLI) wordinfo.Dataset {
	switch {
	case m.DB != nil:
		return sqlite.NewDataset(m.DB)
	case cli.Dataset != "":
		return fs.NewDirDataset(cli.Dataset)
	default:
		return fs.Bundled()
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
