package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/htmltomarkdown"
	"github.com/fwojciec/docsite/router"
)

const browseHelp = `Commands:
  open <name>      open a document
  back, forward    move through history
  search <query>   search the documentation
  select <n>       open search result n
  toc              show the table of contents
  goto <id>        jump to a heading of the current document
  help             show this help
  quit             leave the browser`

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	if _, err := deps.warm(); err != nil {
		return err
	}

	addresser := docsite.NewAddresser(docsite.AddressMemory, deps.Addresser.Base)
	display := &termDisplay{
		w:         deps.Stdout,
		converter: htmltomarkdown.NewConverter(),
		addresser: addresser,
	}
	history := router.NewMemoryHistory()
	r := router.NewRouter(deps.Store, deps.Renderer, display, history, addresser)
	r.Indexer = deps.Index

	b := &browser{deps: deps, router: r, history: history, display: display, addresser: addresser}

	first := router.Entry{Name: c.Name, Href: addresser.DocumentHref(c.Name)}
	history.Replace(first)
	_ = r.PopState(deps.Ctx, &first, docsite.Location{})

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}
		if quit := b.exec(scanner.Text()); quit {
			return nil
		}
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
	}
}

// browser holds the state of one terminal browsing session.
type browser struct {
	deps      *Dependencies
	router    *router.Router
	history   *router.MemoryHistory
	display   *termDisplay
	addresser docsite.Addresser
	results   *docsite.SearchResults
}

// exec runs one command line and reports whether the session should end.
// Navigation errors are already shown by the display.
func (b *browser) exec(line string) (quit bool) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)
	ctx := b.deps.Ctx
	out := b.deps.Stdout

	switch cmd {
	case "":
	case "open":
		if arg == "" {
			fmt.Fprintln(out, "usage: open <name>")
			return false
		}
		_, _ = b.router.Click(ctx, router.Link{Name: arg})
	case "back":
		e, ok := b.history.Back()
		if !ok {
			fmt.Fprintln(out, "No previous document.")
			return false
		}
		_ = b.router.PopState(ctx, &e, docsite.Location{})
	case "forward":
		e, ok := b.history.Forward()
		if !ok {
			fmt.Fprintln(out, "No next document.")
			return false
		}
		_ = b.router.PopState(ctx, &e, docsite.Location{})
	case "search":
		b.results = b.deps.Searcher.Search(arg)
		writeResults(out, b.results)
	case "select":
		b.selectResult(arg)
	case "toc":
		if b.router.State() != router.StateRendered {
			fmt.Fprintln(out, "No document loaded.")
			return false
		}
		writeTOC(b.deps, docsite.BuildTOC(b.router.Headings()), b.display.active)
	case "goto":
		b.gotoHeading(arg)
	case "help":
		fmt.Fprintln(out, browseHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(out, "Unknown command %q. Type help for a list of commands.\n", cmd)
	}
	return false
}

func (b *browser) selectResult(arg string) {
	out := b.deps.Stdout
	if b.results == nil || len(b.results.Matches) == 0 {
		fmt.Fprintln(out, "No search results to select from.")
		return
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(b.results.Matches) {
		fmt.Fprintf(out, "Pick a result between 1 and %d.\n", len(b.results.Matches))
		return
	}
	if err := b.router.Select(b.deps.Ctx, b.results.Matches[n-1]); err != nil && !errors.Is(err, router.ErrSuperseded) {
		b.deps.Logger.Debug("select", "err", err)
	}
}

func (b *browser) gotoHeading(id string) {
	id = strings.TrimPrefix(id, "#")
	current := b.router.Current()
	for _, h := range b.router.Headings() {
		if h.ID == id {
			b.history.Replace(router.Entry{Name: current, Heading: id, Href: b.addresser.HeadingHref(current, id)})
			b.display.ScrollTo(id)
			return
		}
	}
	fmt.Fprintf(b.deps.Stdout, "No heading %q in %s.\n", id, current)
}

// termDisplay is a router.Display writing to a terminal. Documents are
// shown as Markdown converted back from the rendered HTML.
type termDisplay struct {
	w         io.Writer
	converter *htmltomarkdown.Converter
	addresser docsite.Addresser
	view      *router.View
	active    string
}

func (d *termDisplay) ShowLoading(name string) {
	fmt.Fprintf(d.w, "Loading %s...\n", name)
}

func (d *termDisplay) ShowDocument(v *router.View) {
	d.view, d.active = v, ""

	text, err := d.text(v.HTML)
	if err != nil {
		text = v.HTML
	}
	rule := strings.Repeat("─", 60)
	fmt.Fprintf(d.w, "%s\n%s (%s)\n%s\n\n%s\n", rule, v.Title, v.Name, rule, text)
}

func (d *termDisplay) ShowError(name string, err error) {
	d.view, d.active = nil, ""
	fmt.Fprintf(d.w, "Error loading documentation\n  %s\n  %s\n", d.addresser.ResourcePath(name), errorMessage(err))
}

func (d *termDisplay) ScrollTo(id string) {
	d.active = id
	if d.view == nil {
		return
	}
	for _, h := range d.view.Headings {
		if h.ID == id {
			fmt.Fprintf(d.w, "→ %s (#%s)\n", h.Text, id)
			return
		}
	}
}

func (d *termDisplay) SetActiveHeading(id string) {
	d.active = id
}

// text converts rendered HTML into terminal text.
func (d *termDisplay) text(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}
	return d.converter.Convert(fragment, "")
}
