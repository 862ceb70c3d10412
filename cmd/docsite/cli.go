package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/chroma"
	"github.com/fwojciec/docsite/fs"
	"github.com/fwojciec/docsite/importer"
	"github.com/fwojciec/docsite/search"
	"github.com/fwojciec/docsite/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Addresser   docsite.Addresser
	Source      docsite.Source
	Store       docsite.DocumentStore
	Renderer    docsite.Renderer
	Index       *search.Index
	Searcher    docsite.Searcher
	Highlighter *chroma.Highlighter

	// CacheDB is nil unless a cache database is configured.
	CacheDB *sqlite.DocumentCache

	// Writer and Importer are nil when documents are read from a remote
	// origin.
	Writer   *fs.Writer
	Importer *importer.Importer

	// Names lists the documents to index up front. Empty means every
	// document the source can list.
	Names       []string
	Concurrency int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root        string        `default:"." env:"DOCSITE_ROOT" help:"Site directory containing docs/"`
	Origin      string        `env:"DOCSITE_ORIGIN" help:"Read documents from a remote site instead of --root"`
	Base        string        `env:"DOCSITE_BASE" help:"Deployment base path, e.g. /manual"`
	Mode        string        `default:"path" enum:"path,hash,memory" env:"DOCSITE_MODE" help:"Addressing mode (path, hash, memory)"`
	SiteURL     string        `name:"site-url" default:"http://localhost:8080" env:"DOCSITE_SITE_URL" help:"Public site origin used to recognize local embeds"`
	CachePath   string        `name:"cache" env:"DOCSITE_CACHE" help:"SQLite document cache (default: in-memory)"`
	Docs        []string      `env:"DOCSITE_DOCS" help:"Documents to index on startup (default: all local documents)"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
	Rate        float64       `help:"Remote requests per second (0: unlimited)"`
	LogLevel    string        `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat   string        `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	Serve  ServeCmd  `cmd:"" help:"Serve the documentation site over HTTP"`
	Render RenderCmd `cmd:"" help:"Render a document to HTML"`
	Search SearchCmd `cmd:"" help:"Search the documentation"`
	Browse BrowseCmd `cmd:"" help:"Browse the documentation in the terminal"`
	Import ImportCmd `cmd:"" help:"Import HTML pages as documents"`
	Cache  CacheCmd  `cmd:"" help:"Inspect the document cache"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" env:"DOCSITE_ADDR" help:"Listen address"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Name string `arg:"" help:"Document name"`
	JSON bool   `help:"Print the document view as JSON"`
	TOC  bool   `name:"toc" help:"Print the table of contents only"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
	JSON  bool   `help:"Print results as JSON"`
}

// BrowseCmd is the "browse" subcommand.
type BrowseCmd struct {
	Name string `arg:"" optional:"" default:"index" help:"Document to open first"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Pages     []string `arg:"" optional:"" help:"Pages as name=url, or a bare url to name the document after it"`
	Manifest  string   `short:"m" type:"path" help:"YAML file listing the pages to import"`
	Overwrite bool     `short:"f" help:"Replace existing documents"`
}

// CacheCmd is the "cache" subcommand.
type CacheCmd struct {
	List   CacheListCmd   `cmd:"" name:"ls" help:"List cached documents"`
	Forget CacheForgetCmd `cmd:"" name:"rm" help:"Remove documents from the cache"`
}

// CacheListCmd is the "cache ls" subcommand.
type CacheListCmd struct{}

// CacheForgetCmd is the "cache rm" subcommand.
type CacheForgetCmd struct {
	Names []string `arg:"" help:"Document names"`
}
