package importer

import (
	"errors"
	"io"
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
)

// Manifest lists the pages a site imports, so that they can be refreshed
// from their upstream in one run. In YAML:
//
//	base: https://docs.acme.dev/guide/
//	pages:
//	  - name: install
//	    url: install.html
//	  - url: https://docs.acme.dev/faq
type Manifest struct {
	// Base resolves relative page URLs.
	Base  string         `yaml:"base"`
	Pages []ManifestPage `yaml:"pages"`
}

// ManifestPage is one entry of a Manifest. An empty Name is derived from
// the URL.
type ManifestPage struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// ReadManifest decodes a YAML manifest. Unknown keys are rejected.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid manifest: %v", err)
	}
	return &m, nil
}

// Requests resolves the manifest into import requests.
func (m *Manifest) Requests() ([]Request, error) {
	var base *url.URL
	if m.Base != "" {
		u, err := url.Parse(m.Base)
		if err != nil || u.Host == "" {
			return nil, docsite.Errorf(docsite.EINVALID, "invalid manifest base %q", m.Base)
		}
		base = u
	}

	reqs := make([]Request, 0, len(m.Pages))
	for _, p := range m.Pages {
		u, err := url.Parse(strings.TrimSpace(p.URL))
		if err != nil || p.URL == "" {
			return nil, docsite.Errorf(docsite.EINVALID, "invalid page URL %q", p.URL)
		}
		if base != nil {
			u = base.ResolveReference(u)
		}
		reqs = append(reqs, Request{Name: p.Name, URL: u.String()})
	}
	return complete(reqs)
}

// ParseArgs turns command arguments of the form "name=url" or "url" into
// import requests.
func ParseArgs(args []string) ([]Request, error) {
	reqs := make([]Request, 0, len(args))
	for _, arg := range args {
		name, rawURL, ok := strings.Cut(arg, "=")
		if !ok || strings.Contains(name, "/") {
			name, rawURL = "", arg
		}
		reqs = append(reqs, Request{Name: name, URL: rawURL})
	}
	return complete(reqs)
}

// NameFromURL derives a document name from the last segment of a page
// URL without its extension. The site root becomes the default document.
func NameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(strings.TrimSuffix(u.Path, "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" || base == docsite.DefaultDocument {
		return docsite.DefaultDocument
	}
	return slug.Make(base)
}

// Combine joins lists of requests, rejecting two pages that write the
// same document.
func Combine(lists ...[]Request) ([]Request, error) {
	var all []Request
	for _, l := range lists {
		all = append(all, l...)
	}
	return complete(all)
}

// complete fills in missing names and rejects two pages writing the same
// document.
func complete(reqs []Request) ([]Request, error) {
	seen := make(map[string]string, len(reqs))
	for i := range reqs {
		if reqs[i].Name == "" {
			reqs[i].Name = NameFromURL(reqs[i].URL)
		}
		if prev, ok := seen[reqs[i].Name]; ok {
			return nil, docsite.Errorf(docsite.EINVALID, "document %q imported from both %s and %s", reqs[i].Name, prev, reqs[i].URL)
		}
		seen[reqs[i].Name] = reqs[i].URL
	}
	return reqs, nil
}
