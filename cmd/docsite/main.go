package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/bluemonday"
	"github.com/fwojciec/docsite/chroma"
	"github.com/fwojciec/docsite/fs"
	"github.com/fwojciec/docsite/gomarkdown"
	"github.com/fwojciec/docsite/goquery"
	"github.com/fwojciec/docsite/htmltomarkdown"
	dshttp "github.com/fwojciec/docsite/http"
	"github.com/fwojciec/docsite/importer"
	"github.com/fwojciec/docsite/readability"
	"github.com/fwojciec/docsite/render"
	"github.com/fwojciec/docsite/search"
	dsslog "github.com/fwojciec/docsite/slog"
	"github.com/fwojciec/docsite/sqlite"
	"github.com/fwojciec/docsite/store"
	"github.com/fwojciec/docsite/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin feeds the interactive browser. Set before calling Run().
	Stdin io.Reader

	// SQLite database backing the document cache, when configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
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
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsite"),
		kong.Description("Serve, search and browse a Markdown documentation site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsite --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	defer m.Close()
	if err := m.wire(cli, deps); err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the services described by the global flags.
func (m *Main) wire(cli *CLI, deps *Dependencies) error {
	mode, err := docsite.ParseAddressing(cli.Mode)
	if err != nil {
		return err
	}
	deps.Addresser = docsite.NewAddresser(mode, cli.Base)
	deps.Logger = newLogger(deps.Stderr, cli.LogLevel, cli.LogFormat)
	deps.Concurrency = cli.Concurrency
	deps.Names = cli.Docs

	opts := []dshttp.Option{dshttp.WithTimeout(cli.Timeout)}
	if cli.Rate > 0 {
		opts = append(opts, dshttp.WithRateLimit(cli.Rate))
	}
	fetcher := dsslog.NewLoggingFetcher(dshttp.NewFetcher(opts...), deps.Logger)

	var source docsite.Source
	if cli.Origin != "" {
		if source, err = dshttp.NewSource(fetcher, cli.Origin, cli.Base); err != nil {
			return err
		}
	} else {
		source = fs.NewSource(cli.Root)
		deps.Writer = fs.NewWriter(cli.Root)
	}
	deps.Source = dsslog.NewLoggingSource(source, deps.Logger)

	var cache docsite.DocumentCache = store.NewMemoryCache()
	if cli.CachePath != "" {
		m.DB = sqlite.NewDB(cli.CachePath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Set DOCSITE_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", cli.CachePath, err)
		}
		deps.CacheDB = sqlite.NewDocumentCache(m.DB)
		cache = deps.CacheDB
	}
	deps.Store = store.New(deps.Source, dsslog.NewLoggingDocumentCache(cache, deps.Logger))

	decorator, err := goquery.NewDecorator(cli.SiteURL)
	if err != nil {
		return err
	}
	deps.Highlighter = chroma.NewHighlighter(chroma.DefaultStyle)
	deps.Renderer = dsslog.NewLoggingRenderer(&render.Renderer{
		Converter: gomarkdown.NewConverter(deps.Highlighter),
		Decorator: decorator,
		Sanitizer: bluemonday.NewSanitizer(),
		Addresser: deps.Addresser,
	}, deps.Logger)

	deps.Index = search.NewIndex()
	deps.Searcher = dsslog.NewLoggingSearcher(deps.Index, deps.Logger)

	if deps.Writer != nil {
		rps := cli.Rate
		if rps <= 0 {
			rps = 1
		}
		deps.Importer = &importer.Importer{
			Fetcher:      fetcher,
			Extractor:    trafilatura.NewExtractor(),
			Fallback:     readability.NewExtractor(),
			Converter:    htmltomarkdown.NewConverter(),
			Writer:       deps.Writer,
			Concurrency:  cli.Concurrency,
			HostInterval: time.Duration(float64(time.Second) / rps),
			Logger:       deps.Logger,
		}
	}

	return nil
}

// newLogger returns a logger writing to w. Unknown levels fall back to
// warn.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// errorMessage returns the user-facing text of err.
func errorMessage(err error) string {
	var e *docsite.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
