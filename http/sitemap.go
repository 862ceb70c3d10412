package http

import (
	"net/http"

	"github.com/beevik/etree"
	"github.com/fwojciec/docsite"
)

// SitemapPath is the path of the sitemap relative to the site base.
const SitemapPath = "/sitemap.xml"

// SitemapNamespace is the XML namespace of sitemap documents.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// sitemapNames returns the configured documents followed by any other
// indexed documents.
func (s *Server) sitemapNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(list []string) {
		for _, name := range list {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	add(s.Documents)
	if s.Catalog != nil {
		add(s.Catalog.Documents())
	}
	return names
}

// BuildSitemap returns a urlset listing the path address of every named
// document under origin.
func BuildSitemap(origin, base string, names []string) *etree.Document {
	addr := docsite.NewAddresser(docsite.AddressPath, base)

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)
	for _, name := range names {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(trimSlash(origin) + addr.DocumentHref(name))
	}
	doc.Indent(2)
	return doc
}

// handleSitemap serves the sitemap of the site.
func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	origin := s.SiteURL
	if origin == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		origin = scheme + "://" + r.Host
	}

	doc := BuildSitemap(origin, s.Addresser.Base, s.sitemapNames())
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if _, err := doc.WriteTo(w); err != nil {
		s.logError(r, err)
	}
}
