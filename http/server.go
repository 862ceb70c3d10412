package http

import (
	"context"
	"embed"
	"html/template"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/docsite"
	sprig "github.com/go-task/slim-sprig/v3"
)

// ShutdownTimeout is the time given for in-flight requests to finish.
const ShutdownTimeout = 5 * time.Second

//go:embed templates/*.html
var templateFS embed.FS

// Stylesheet writes the CSS for highlighted code.
type Stylesheet interface {
	WriteCSS(w io.Writer) error
}

// Catalog reports the documents present in the search index.
type Catalog interface {
	Documents() []string
}

// Server serves the documentation site.
type Server struct {
	ln     net.Listener
	server *http.Server
	tmpl   *template.Template

	// Addr is the bind address, e.g. ":8080".
	Addr string

	// Addresser encodes document locations. Its Base prefixes every route.
	Addresser docsite.Addresser

	// SiteURL is the public origin used in the sitemap. Defaults to the
	// request host.
	SiteURL string

	// Documents lists the documents shown in the site navigation.
	Documents []string

	DocumentStore docsite.DocumentStore
	Renderer      docsite.Renderer
	Searcher      docsite.Searcher
	Indexer       docsite.Indexer
	Catalog       Catalog
	Stylesheet    Stylesheet

	Logger *slog.Logger
}

// NewServer returns a Server with parsed templates.
func NewServer() *Server {
	funcs := sprig.HtmlFuncMap()
	funcs["safeHTML"] = func(s string) template.HTML { return template.HTML(s) }

	return &Server{
		tmpl:      template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
		Addresser: docsite.NewAddresser(docsite.AddressPath, ""),
		Indexer:   docsite.NopIndexer{},
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// Handler returns the site's routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	b := s.Addresser.Base
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+b+"/{$}", s.handlePage)
	if s.Addresser.Mode == docsite.AddressPath {
		mux.HandleFunc("GET "+b+"/{name}", s.handlePage)
	}
	mux.HandleFunc("GET "+b+"/docs/{file}", s.handleRaw)
	mux.HandleFunc("GET "+b+"/api/documents/{name}", s.handleDocument)
	mux.HandleFunc("GET "+b+"/api/search", s.handleSearchAPI)
	mux.HandleFunc("GET "+b+"/search", s.handleSearch)
	mux.HandleFunc("GET "+b+"/search/select", s.handleSelect)
	mux.HandleFunc("GET "+b+"/assets/highlight.css", s.handleStylesheet)
	mux.HandleFunc("GET "+b+SitemapPath, s.handleSitemap)
	return s.withRequestLog(mux)
}

// Open starts listening on Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() { _ = s.server.Serve(s.ln) }()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the local base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String() + s.Addresser.Base
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// navItems lists the navigation entries with the current document marked.
func (s *Server) navItems(current, currentTitle string) []navItem {
	items := make([]navItem, 0, len(s.Documents))
	for _, name := range s.Documents {
		item := navItem{Name: name, Href: s.Addresser.DocumentHref(name)}
		if name == current {
			item.Active = true
			item.Title = currentTitle
		}
		items = append(items, item)
	}
	return items
}

// ErrorStatusCode maps an application error code to an HTTP status.
func ErrorStatusCode(code string) int {
	switch code {
	case docsite.EINVALID:
		return http.StatusBadRequest
	case docsite.ENOTFOUND:
		return http.StatusNotFound
	case docsite.EUNAVAILABLE:
		return http.StatusServiceUnavailable
	case "":
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

// logError records internal errors. Other codes are expected outcomes.
func (s *Server) logError(r *http.Request, err error) {
	if docsite.ErrorCode(err) == docsite.EINTERNAL {
		s.logger().Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}
