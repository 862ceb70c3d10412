// Package router drives document navigation: it resolves locations to
// documents, loads and renders them, keeps history and tells a Display
// what to show.
package router

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fwojciec/docsite"
)

// ErrSuperseded is returned by a navigation whose result was discarded
// because a newer navigation started before it completed.
var ErrSuperseded = errors.New("navigation superseded")

// Display is the presentation surface the router renders into.
type Display interface {
	// ShowLoading shows the loading indicator for the named document.
	ShowLoading(name string)

	// ShowDocument installs a rendered document.
	ShowDocument(v *View)

	// ShowError shows the inline error panel for a failed navigation.
	ShowError(name string, err error)

	// ScrollTo brings the heading with the given id into view.
	ScrollTo(id string)

	// SetActiveHeading marks a table of contents entry active. An empty
	// id clears the mark.
	SetActiveHeading(id string)
}

// View is a rendered document ready for display.
type View struct {
	Name     string             `json:"name"`
	Title    string             `json:"title"`
	HTML     string             `json:"html"`
	Headings []docsite.Heading  `json:"headings"`
	TOC      []docsite.TOCEntry `json:"toc"`
}

// Entry is a history entry.
type Entry struct {
	Name    string
	Heading string
	Href    string
}

// History records navigations.
type History interface {
	Push(e Entry)
	Replace(e Entry)
}

// Link is an activated hyperlink.
type Link struct {
	Href string

	// Name is the target document when the link carries it explicitly.
	Name string

	// Target is the link's browsing context, e.g. "_blank".
	Target string

	// External marks links leaving the site.
	External bool
}

// Router navigates between documents. It is safe for concurrent use; when
// navigations overlap only the most recent one reaches the Display.
type Router struct {
	Store     docsite.DocumentStore
	Renderer  docsite.Renderer
	Display   Display
	History   History
	Addresser docsite.Addresser

	// Indexer receives every successfully rendered document. Defaults to
	// docsite.NopIndexer.
	Indexer docsite.Indexer

	mu       sync.Mutex
	state    State
	gen      uint64
	current  string
	headings []docsite.Heading
	active   string
}

// NewRouter creates a Router in the Idle state.
func NewRouter(store docsite.DocumentStore, renderer docsite.Renderer, display Display, history History, addresser docsite.Addresser) *Router {
	return &Router{
		Store:     store,
		Renderer:  renderer,
		Display:   display,
		History:   history,
		Addresser: addresser,
		Indexer:   docsite.NopIndexer{},
	}
}

// Start performs the initial navigation for loc. The current history
// entry is replaced, not pushed.
func (r *Router) Start(ctx context.Context, loc docsite.Location) error {
	name, heading := r.Addresser.Resolve(loc)
	r.History.Replace(r.entry(name, heading))
	return r.load(ctx, name, heading)
}

// Click handles an activated link. External links are not handled and
// handled is false. Otherwise one history entry is pushed and the target
// document is loaded.
func (r *Router) Click(ctx context.Context, link Link) (handled bool, err error) {
	if link.External || strings.EqualFold(link.Target, "_blank") {
		return false, nil
	}

	name, heading := link.Name, ""
	if name == "" {
		name, heading = r.Addresser.Resolve(parseHref(link.Href))
	}
	r.History.Push(r.entry(name, heading))
	return true, r.load(ctx, name, heading)
}

// PopState handles back and forward navigation. The target comes from
// the entry when present, else from loc. Nothing is pushed.
func (r *Router) PopState(ctx context.Context, e *Entry, loc docsite.Location) error {
	var name, heading string
	if e != nil && e.Name != "" {
		name, heading = e.Name, e.Heading
	} else {
		name, heading = r.Addresser.Resolve(loc)
	}
	return r.load(ctx, name, heading)
}

// Select navigates to the document of a search match and scrolls to the
// heading whose text equals the match's section title. When no heading
// matches the document is shown without scrolling.
func (r *Router) Select(ctx context.Context, m docsite.SearchMatch) error {
	r.History.Push(r.entry(m.DocumentName, ""))
	if err := r.load(ctx, m.DocumentName, ""); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current != m.DocumentName || r.state != StateRendered {
		return nil
	}
	for _, h := range r.headings {
		if h.Text == m.SectionTitle {
			r.History.Replace(r.entry(r.current, h.ID))
			r.Display.ScrollTo(h.ID)
			return nil
		}
	}
	return nil
}

// Viewport recomputes the active table of contents entry from heading
// positions reported by the display. The Display is told only about
// changes.
func (r *Router) Viewport(offsets []docsite.HeadingOffset, height float64) {
	id := docsite.ActiveHeading(offsets, height)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateRendered || id == r.active {
		return
	}
	r.active = id
	r.Display.SetActiveHeading(id)
}

// State returns the current navigation state.
func (r *Router) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Current returns the name of the current document, which is also the
// name of a document that failed to load.
func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Headings returns the headings of the current document.
func (r *Router) Headings() []docsite.Heading {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]docsite.Heading(nil), r.headings...)
}

// load fetches, renders and displays a document. A result is discarded
// with ErrSuperseded when another load started in the meantime.
func (r *Router) load(ctx context.Context, name, heading string) error {
	r.mu.Lock()
	if err := r.transition(StateLoading); err != nil {
		r.mu.Unlock()
		return err
	}
	r.gen++
	gen := r.gen
	r.current = name
	r.headings = nil
	r.active = ""
	r.Display.ShowLoading(name)
	r.mu.Unlock()

	doc, err := r.Store.FetchDocument(ctx, name)
	var rendered *docsite.Rendered
	if err == nil {
		rendered, err = r.Renderer.Render(doc.Name, doc.RawText)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		return ErrSuperseded
	}
	if err != nil {
		if terr := r.transition(StateError); terr != nil {
			return terr
		}
		r.Display.ShowError(name, err)
		return err
	}
	if err := r.transition(StateRendered); err != nil {
		return err
	}

	r.indexer().IndexDocument(doc)
	r.headings = rendered.Headings
	r.Display.ShowDocument(&View{
		Name:     doc.Name,
		Title:    doc.Title,
		HTML:     rendered.HTML,
		Headings: rendered.Headings,
		TOC:      docsite.BuildTOC(rendered.Headings),
	})
	if heading != "" && r.hasHeading(heading) {
		r.Display.ScrollTo(heading)
	}
	return nil
}

func (r *Router) indexer() docsite.Indexer {
	if r.Indexer == nil {
		return docsite.NopIndexer{}
	}
	return r.Indexer
}

func (r *Router) hasHeading(id string) bool {
	for _, h := range r.headings {
		if h.ID == id {
			return true
		}
	}
	return false
}

func (r *Router) entry(name, heading string) Entry {
	href := r.Addresser.DocumentHref(name)
	if heading != "" {
		href = r.Addresser.HeadingHref(name, heading)
	}
	return Entry{Name: name, Heading: heading, Href: href}
}

// parseHref splits an href into the location parts the Addresser reads.
func parseHref(href string) docsite.Location {
	path, frag, _ := strings.Cut(href, "#")
	if frag != "" {
		frag = "#" + frag
	}
	return docsite.Location{Path: path, Fragment: frag}
}
