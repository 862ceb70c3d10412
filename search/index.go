// Package search implements the in-memory section index and the literal
// substring query engine over it.
package search

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/docsite"
)

// Ensure Index implements docsite.Indexer and docsite.Searcher at compile time.
var (
	_ docsite.Indexer  = (*Index)(nil)
	_ docsite.Searcher = (*Index)(nil)
)

// Index holds the searchable sections of every indexed document in
// insertion order. It is safe for concurrent use.
type Index struct {
	mu      sync.RWMutex
	entries []docsite.SearchIndexEntry
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{}
}

// IndexDocument replaces all entries of doc with the sections of its
// Markdown. Readers observe either the old or the new entries of the
// document, never a mix.
func (idx *Index) IndexDocument(doc *docsite.Document) {
	name := doc.Name
	title := doc.Title
	if title == "" {
		title = docsite.DocumentTitle(name, doc.RawText)
	}
	entries := buildEntries(name, title, doc.RawText)

	idx.mu.Lock()
	defer idx.mu.Unlock()

	kept := idx.entries[:0:0]
	for _, e := range idx.entries {
		if e.DocumentName != name {
			kept = append(kept, e)
		}
	}
	idx.entries = append(kept, entries...)
}

func buildEntries(name, title, markdown string) []docsite.SearchIndexEntry {
	var (
		entries []docsite.SearchIndexEntry
		leading bool
	)
	for _, s := range ParseSections(markdown) {
		text := Clean(s.Body)
		if s.Leading {
			if leading || text == "" {
				continue
			}
			leading = true
			entries = append(entries, docsite.SearchIndexEntry{
				DocumentName:   name,
				SectionTitle:   title,
				Context:        truncate(text, MaxLeadingContext),
				SearchableText: lower(title + " " + text),
			})
			continue
		}
		if utf8.RuneCountInString(text) < MinSectionLength {
			continue
		}
		entries = append(entries, docsite.SearchIndexEntry{
			DocumentName:   name,
			SectionTitle:   s.Title,
			Context:        text,
			SearchableText: lower(s.Title + " " + text),
		})
	}
	return entries
}

// Entries returns a copy of the index in insertion order.
func (idx *Index) Entries() []docsite.SearchIndexEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return append([]docsite.SearchIndexEntry(nil), idx.entries...)
}

// Documents returns the names of indexed documents in order of first entry.
func (idx *Index) Documents() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	seen := make(map[string]bool)
	var names []string
	for _, e := range idx.entries {
		if !seen[e.DocumentName] {
			seen[e.DocumentName] = true
			names = append(names, e.DocumentName)
		}
	}
	return names
}

// Len returns the number of entries.
func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.entries)
}

// Search returns the entries whose searchable text contains the query as
// a literal, case-insensitive substring. Matches keep insertion order and
// are capped at docsite.MaxSearchResults.
func (idx *Index) Search(query string) *docsite.SearchResults {
	q := lower(strings.TrimSpace(query))
	res := &docsite.SearchResults{Query: q, Matches: []docsite.SearchMatch{}}
	if utf8.RuneCountInString(q) < docsite.MinQueryLength {
		res.State = docsite.SearchTooShort
		return res
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	for _, e := range idx.entries {
		if !strings.Contains(e.SearchableText, q) {
			continue
		}
		res.Total++
		if len(res.Matches) < docsite.MaxSearchResults {
			res.Matches = append(res.Matches, docsite.SearchMatch{
				DocumentName: e.DocumentName,
				SectionTitle: e.SectionTitle,
				Snippet:      Highlight(Snippet(e.Context, q), q),
			})
		}
	}

	if res.Total == 0 {
		res.State = docsite.SearchNoResults
	} else {
		res.State = docsite.SearchFound
	}
	return res
}

// lower maps every rune to lower case, keeping the rune count unchanged.
func lower(s string) string {
	return strings.Map(unicode.ToLower, s)
}
