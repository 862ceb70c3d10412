// Package goquery post-processes rendered HTML using PuerkitoBio/goquery.
package goquery

import (
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docsite"
	"golang.org/x/net/html/atom"
)

// Ensure Decorator implements docsite.Decorator at compile time.
var _ docsite.Decorator = (*Decorator)(nil)

// DefaultFrameHosts are the hosts whose embedded players are kept.
var DefaultFrameHosts = []string{
	"www.youtube.com",
	"youtube.com",
	"www.youtube-nocookie.com",
	"youtube-nocookie.com",
}

// FramePathPrefix is the path every accepted frame source must start with.
const FramePathPrefix = "/embed/"

// Attributes set on every accepted frame.
const (
	FrameAllow          = "accelerometer; encrypted-media; gyroscope; picture-in-picture"
	FrameReferrerPolicy = "no-referrer-when-downgrade"
)

// Decorator filters embedded frames, assigns heading ids and prepends an
// anchor control to every heading.
type Decorator struct {
	// SiteURL is the origin relative frame sources are resolved against.
	SiteURL *url.URL

	// FrameHosts lists trusted frame hosts. Defaults to DefaultFrameHosts.
	FrameHosts []string
}

// NewDecorator creates a Decorator resolving frame sources against
// siteURL. An empty siteURL only accepts absolute sources.
func NewDecorator(siteURL string) (*Decorator, error) {
	d := &Decorator{FrameHosts: DefaultFrameHosts}
	if siteURL == "" {
		return d, nil
	}
	u, err := url.Parse(siteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid site URL %q", siteURL)
	}
	d.SiteURL = u
	return d, nil
}

// Decorate rewrites fragment and returns it with the headings it contains.
// anchor builds the href of each heading's anchor control; nil links to
// the bare id.
func (d *Decorator) Decorate(fragment string, anchor docsite.AnchorFunc) (*docsite.Rendered, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, docsite.Errorf(docsite.EINTERNAL, "failed to parse HTML: %v", err)
	}
	if anchor == nil {
		anchor = func(id string) string { return "#" + id }
	}

	d.filterFrames(doc)
	headings := decorateHeadings(doc, anchor)

	out, err := doc.Find("body").Html()
	if err != nil {
		return nil, docsite.Errorf(docsite.EINTERNAL, "failed to render HTML: %v", err)
	}
	return &docsite.Rendered{HTML: out, Headings: headings}, nil
}

// filterFrames removes untrusted frames and wraps the rest in a
// responsive container.
func (d *Decorator) filterFrames(doc *goquery.Document) {
	doc.Find("iframe").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		u, ok := d.trustedSource(src)
		if !ok {
			sel.Remove()
			return
		}
		sel.SetAttr("src", u.String())
		sel.SetAttr("loading", "lazy")
		sel.SetAttr("allow", FrameAllow)
		sel.SetAttr("allowfullscreen", "")
		sel.SetAttr("referrerpolicy", FrameReferrerPolicy)
		sel.WrapHtml(`<div class="video-container"></div>`)
	})
}

// trustedSource resolves src and reports whether it points at an embed
// path of a trusted host. Malformed sources are untrusted.
func (d *Decorator) trustedSource(src string) (*url.URL, bool) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, false
	}
	u, err := url.Parse(src)
	if err != nil {
		return nil, false
	}
	if d.SiteURL != nil {
		u = d.SiteURL.ResolveReference(u)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, false
	}
	if !strings.HasPrefix(u.Path, FramePathPrefix) {
		return nil, false
	}
	host := strings.ToLower(u.Hostname())
	for _, h := range d.hosts() {
		if host == h {
			return u, true
		}
	}
	return nil, false
}

func (d *Decorator) hosts() []string {
	if len(d.FrameHosts) == 0 {
		return DefaultFrameHosts
	}
	return d.FrameHosts
}

var headingLevels = map[atom.Atom]int{
	atom.H1: 1, atom.H2: 2, atom.H3: 3,
	atom.H4: 4, atom.H5: 5, atom.H6: 6,
}

// decorateHeadings assigns ids and prepends anchors. An explicit id is
// kept; otherwise the slug of the heading text is used unless it is empty
// or already taken, in which case the positional id is used.
func decorateHeadings(doc *goquery.Document, anchor docsite.AnchorFunc) []docsite.Heading {
	var headings []docsite.Heading
	used := make(map[string]bool)

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(i int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())

		id, _ := sel.Attr("id")
		if id == "" {
			id = docsite.Slugify(text)
			if id == "" || used[id] {
				id = docsite.PositionalID(i)
			}
			sel.SetAttr("id", id)
		}
		used[id] = true

		sel.PrependHtml(`<a class="header-anchor" href="` + html.EscapeString(anchor(id)) + `" aria-hidden="true">🔗</a>`)

		headings = append(headings, docsite.Heading{
			ID:    id,
			Level: headingLevels[sel.Get(0).DataAtom],
			Text:  text,
		})
	})
	return headings
}
