package docsite

// Search limits.
const (
	// MinQueryLength is the shortest query, in characters, that is matched.
	MinQueryLength = 2

	// MaxSearchResults caps the matches returned for one query.
	MaxSearchResults = 10
)

// SearchIndexEntry is one indexed section of a document.
type SearchIndexEntry struct {
	DocumentName   string `json:"documentName"`
	SectionTitle   string `json:"sectionTitle"`
	Context        string `json:"context"`
	SearchableText string `json:"-"`
}

// SearchState describes the outcome of a query.
type SearchState string

// SearchState values.
const (
	SearchTooShort  SearchState = "too_short"
	SearchNoResults SearchState = "no_results"
	SearchFound     SearchState = "found"
)

// SearchMatch is an index entry matched by a query. Snippet is HTML:
// escaped text with query occurrences wrapped in highlight markers.
type SearchMatch struct {
	DocumentName string `json:"documentName"`
	SectionTitle string `json:"sectionTitle"`
	Snippet      string `json:"snippet"`
}

// SearchResults is the answer to a query. Total counts every matching
// entry; Matches holds at most MaxSearchResults of them.
type SearchResults struct {
	Query   string        `json:"query"`
	State   SearchState   `json:"state"`
	Matches []SearchMatch `json:"matches"`
	Total   int           `json:"total"`
}

// Indexer maintains the search index for documents.
type Indexer interface {
	// IndexDocument replaces every entry of the document with the
	// sections parsed from its Markdown. Leading content is listed under
	// the document's title.
	IndexDocument(doc *Document)
}

// Searcher answers queries against the search index.
type Searcher interface {
	Search(query string) *SearchResults
}

// NopIndexer is an Indexer that does nothing.
type NopIndexer struct{}

// IndexDocument does nothing.
func (NopIndexer) IndexDocument(*Document) {}
