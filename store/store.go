// Package store implements the document store: documents are retrieved
// from a source once per session and served from a cache afterwards.
package store

import (
	"bytes"
	"context"
	"encoding/hex"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsite"
	"github.com/gosimple/slug"
	"golang.org/x/sync/singleflight"
)

// Ensure Store implements docsite.DocumentStore at compile time.
var _ docsite.DocumentStore = (*Store)(nil)

// Store fetches documents through a Source and caches them.
// Concurrent requests for one uncached document share a single retrieval.
type Store struct {
	source docsite.Source
	cache  docsite.DocumentCache
	group  singleflight.Group

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// New returns a Store reading from source. A nil cache defaults to a
// MemoryCache.
func New(source docsite.Source, cache docsite.DocumentCache) *Store {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Store{
		source: source,
		cache:  cache,
		Now:    time.Now,
	}
}

// FetchDocument returns the named document, retrieving it on first use.
func (s *Store) FetchDocument(ctx context.Context, name string) (*docsite.Document, error) {
	if !slug.IsSlug(name) {
		return nil, docsite.Errorf(docsite.EINVALID, "invalid document name %q", name)
	}

	doc, err := s.cache.FindDocument(ctx, name)
	if err == nil {
		return doc, nil
	} else if docsite.ErrorCode(err) != docsite.ENOTFOUND {
		return nil, err
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		// A concurrent call may have filled the cache between the lookup
		// above and joining the group.
		if doc, err := s.cache.FindDocument(ctx, name); err == nil {
			return doc, nil
		}

		raw, err := s.source.Fetch(ctx, name)
		if err != nil {
			return nil, docsite.DocumentNotFound(name, docsite.DocumentPath(name), err)
		}

		doc := newDocument(name, raw, s.Now().UTC())
		if err := s.cache.SaveDocument(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*docsite.Document), nil
}

// meta holds the front matter fields the store understands.
type meta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
}

// newDocument builds a document from raw Markdown, splitting off any front
// matter. The title is the first level-1 heading, else the front matter
// title, else the capitalized name.
func newDocument(name, raw string, fetchedAt time.Time) *docsite.Document {
	var m meta
	body := raw
	if rest, err := frontmatter.Parse(strings.NewReader(raw), &m); err == nil {
		body = string(bytes.TrimLeft(rest, "\r\n"))
	}

	title, ok := docsite.FirstHeading(body)
	if !ok {
		title = strings.TrimSpace(m.Title)
	}
	if title == "" {
		title = docsite.FallbackTitle(name)
	}

	return &docsite.Document{
		Name:        name,
		Title:       title,
		RawText:     body,
		ContentHash: HashContent(body),
		FetchedAt:   fetchedAt,
	}
}

// HashContent computes the xxHash of content and returns it as hex.
func HashContent(content string) string {
	var b [8]byte
	h := xxhash.Sum64String(content)
	for i := range b {
		b[i] = byte(h >> (56 - 8*i))
	}
	return hex.EncodeToString(b[:])
}
