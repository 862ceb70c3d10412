package http

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/router"
)

type navItem struct {
	Name   string
	Title  string
	Href   string
	Active bool
}

type tocLink struct {
	docsite.TOCEntry
	Href string
}

type errorPanel struct {
	Path    string
	Message string
}

// pageData is the model of the page templates.
type pageData struct {
	Base    string
	Title   string
	Query   string
	Nav     []navItem
	HTML    template.HTML
	TOC     []tocLink
	Error   *errorPanel
	Results *docsite.SearchResults
}

// pageDisplay collects what the router shows for one request.
type pageDisplay struct {
	view   *router.View
	name   string
	err    error
	scroll string
}

func (d *pageDisplay) ShowLoading(name string) { d.name = name }
func (d *pageDisplay) ShowDocument(v *router.View) { d.view, d.err = v, nil }
func (d *pageDisplay) ShowError(name string, err error) { d.name, d.err = name, err }
func (d *pageDisplay) ScrollTo(id string) { d.scroll = id }
func (d *pageDisplay) SetActiveHeading(string) {}

func (s *Server) newRouter(d *pageDisplay) *router.Router {
	rt := router.NewRouter(s.DocumentStore, s.Renderer, d, router.NewMemoryHistory(), s.Addresser)
	if s.Indexer != nil {
		rt.Indexer = s.Indexer
	}
	return rt
}

// open loads the document a location names.
func (s *Server) open(ctx context.Context, loc docsite.Location) *pageDisplay {
	d := &pageDisplay{}
	_ = s.newRouter(d).Start(ctx, loc)
	return d
}

// handlePage renders a full page for the document named by the path.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	d := s.open(r.Context(), docsite.Location{Path: r.URL.Path})
	s.renderPage(w, r, d)
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, d *pageDisplay) {
	data := &pageData{Base: s.Addresser.Base}
	status := http.StatusOK
	if d.err != nil {
		s.logError(r, d.err)
		status = ErrorStatusCode(docsite.ErrorCode(d.err))
		data.Title = "Error"
		data.Nav = s.navItems(d.name, "")
		data.Error = &errorPanel{
			Path:    s.Addresser.ResourcePath(d.name),
			Message: docsite.ErrorMessage(d.err),
		}
	} else {
		v := d.view
		data.Title = v.Title
		data.Nav = s.navItems(v.Name, v.Title)
		data.HTML = template.HTML(v.HTML)
		for _, e := range v.TOC {
			data.TOC = append(data.TOC, tocLink{TOCEntry: e, Href: s.Addresser.AnchorHref(v.Name, e.ID)})
		}
	}
	s.execute(w, r, status, "page.html", data)
}

// handleRaw serves the Markdown source of a document.
func (s *Server) handleRaw(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), ".md")
	if !ok {
		http.NotFound(w, r)
		return
	}

	doc, err := s.DocumentStore.FetchDocument(r.Context(), name)
	if err != nil {
		s.logError(r, err)
		http.Error(w, docsite.ErrorMessage(err), ErrorStatusCode(docsite.ErrorCode(err)))
		return
	}

	etag := `"` + doc.ContentHash + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(doc.RawText))
}

// handleDocument returns a rendered document as JSON.
func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	d := &pageDisplay{}
	if _, err := s.newRouter(d).Click(r.Context(), router.Link{Name: name}); err != nil {
		s.logError(r, err)
		s.writeJSON(w, ErrorStatusCode(docsite.ErrorCode(err)), map[string]string{"error": docsite.ErrorMessage(err)})
		return
	}
	s.writeJSON(w, http.StatusOK, d.view)
}

// handleSearchAPI answers a query as JSON.
func (s *Server) handleSearchAPI(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Searcher.Search(r.URL.Query().Get("q")))
}

// handleSearch renders the results page for a query.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	s.execute(w, r, http.StatusOK, "search.html", &pageData{
		Base:    s.Addresser.Base,
		Title:   "Search",
		Query:   q,
		Nav:     s.navItems("", ""),
		Results: s.Searcher.Search(q),
	})
}

// handleSelect opens the document of a search match and redirects to the
// heading whose text equals the match title.
func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	m := docsite.SearchMatch{
		DocumentName: r.URL.Query().Get("doc"),
		SectionTitle: r.URL.Query().Get("title"),
	}
	if m.DocumentName == "" {
		m.DocumentName = docsite.DefaultDocument
	}

	d := &pageDisplay{}
	if err := s.newRouter(d).Select(r.Context(), m); err != nil {
		s.renderPage(w, r, d)
		return
	}

	href := s.Addresser.DocumentHref(m.DocumentName)
	if d.scroll != "" {
		href = s.Addresser.HeadingHref(m.DocumentName, d.scroll)
	}
	http.Redirect(w, r, href, http.StatusSeeOther)
}

// handleStylesheet serves the code highlighting CSS.
func (s *Server) handleStylesheet(w http.ResponseWriter, r *http.Request) {
	if s.Stylesheet == nil {
		http.NotFound(w, r)
		return
	}
	var buf bytes.Buffer
	if err := s.Stylesheet.WriteCSS(&buf); err != nil {
		s.logError(r, err)
		http.Error(w, "Internal error.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, status int, name string, data *pageData) {
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		s.logError(r, err)
		http.Error(w, "Internal error.", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
