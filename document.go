package docsite

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// DefaultDocument is the document shown when a location names none.
const DefaultDocument = "index"

// Document represents a Markdown document of the site.
type Document struct {
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	RawText     string    `json:"rawText"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Name == "" {
		return Errorf(EINVALID, "document name required")
	}
	return nil
}

// DocumentPath returns the resource path of a document relative to the
// site base, e.g. "docs/deploy.md".
func DocumentPath(name string) string {
	return "docs/" + name + ".md"
}

// DocumentStore retrieves documents, each at most once per session.
type DocumentStore interface {
	// FetchDocument returns the named document.
	// Returns ENOTFOUND if the resource cannot be retrieved and EINVALID
	// if the name is not a slug.
	FetchDocument(ctx context.Context, name string) (*Document, error)
}

// DocumentCache holds documents that have already been retrieved.
type DocumentCache interface {
	// FindDocument returns a cached document.
	// Returns ENOTFOUND if the document is not cached.
	FindDocument(ctx context.Context, name string) (*Document, error)

	// SaveDocument stores a document, replacing any previous entry.
	SaveDocument(ctx context.Context, doc *Document) error
}

// Source retrieves the raw Markdown of a document by name.
// Callers pass only validated names.
type Source interface {
	Fetch(ctx context.Context, name string) (string, error)
}

// Lister is implemented by sources that can enumerate their documents.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

var titleRe = regexp.MustCompile(`(?m)^#[ \t]+(.*)`)

// FirstHeading returns the text of the first level-1 heading line.
func FirstHeading(markdown string) (string, bool) {
	m := titleRe.FindStringSubmatch(markdown)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// FallbackTitle returns name with its first letter upper-cased.
func FallbackTitle(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// DocumentTitle derives a document title from its first level-1 heading,
// falling back to the capitalized name.
func DocumentTitle(name, markdown string) string {
	if title, ok := FirstHeading(markdown); ok {
		return title
	}
	return FallbackTitle(name)
}
