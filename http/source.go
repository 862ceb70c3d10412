package http

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsite"
	"github.com/gosimple/slug"
)

// Ensure Source implements docsite.Source and docsite.Lister at compile time.
var (
	_ docsite.Source = (*Source)(nil)
	_ docsite.Lister = (*Source)(nil)
)

// Source reads documents published by a remote site at
// {origin}{base}/docs/{name}.md.
type Source struct {
	fetcher   docsite.Fetcher
	origin    string
	addresser docsite.Addresser
}

// NewSource creates a Source for the site at origin, e.g.
// "https://docs.example.com". base is the site's deployment path.
func NewSource(fetcher docsite.Fetcher, origin, base string) (*Source, error) {
	u, err := url.Parse(origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid origin %q", origin)
	}
	return &Source{
		fetcher:   fetcher,
		origin:    u.Scheme + "://" + u.Host,
		addresser: docsite.NewAddresser(docsite.AddressPath, base),
	}, nil
}

// URL returns the address of a document's Markdown source.
func (s *Source) URL(name string) string {
	return s.origin + s.addresser.ResourcePath(name)
}

// Fetch returns the Markdown of the named document.
func (s *Source) Fetch(ctx context.Context, name string) (string, error) {
	return s.fetcher.Fetch(ctx, s.URL(name))
}

// List returns the documents listed in the remote site's sitemap.
// Locations outside the site base, or that are not document addresses,
// are skipped.
func (s *Source) List(ctx context.Context) ([]string, error) {
	body, err := s.fetcher.Fetch(ctx, s.origin+s.addresser.Base+SitemapPath)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return nil, fmt.Errorf("sitemap has no urlset")
	}

	var names []string
	seen := make(map[string]bool)
	for _, el := range root.SelectElements("url") {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		name, ok := s.documentName(strings.TrimSpace(loc.Text()))
		if ok && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	return names, nil
}

// documentName extracts the document name from a path-mode address.
func (s *Source) documentName(loc string) (string, bool) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", false
	}
	base := s.addresser.Base + "/"
	if !strings.HasPrefix(u.Path, base) {
		return "", false
	}
	name := strings.Trim(strings.TrimPrefix(u.Path, base), "/")
	if name == "" {
		return docsite.DefaultDocument, true
	}
	return name, slug.IsSlug(name)
}
