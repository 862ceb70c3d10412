package mock

import "github.com/fwojciec/docsite"

var (
	_ docsite.Indexer  = (*Indexer)(nil)
	_ docsite.Searcher = (*Searcher)(nil)
)

// Indexer is a mock implementation of docsite.Indexer.
type Indexer struct {
	IndexDocumentFn func(doc *docsite.Document)
}

func (i *Indexer) IndexDocument(doc *docsite.Document) {
	i.IndexDocumentFn(doc)
}

// Searcher is a mock implementation of docsite.Searcher.
type Searcher struct {
	SearchFn func(query string) *docsite.SearchResults
}

func (s *Searcher) Search(query string) *docsite.SearchResults {
	return s.SearchFn(query)
}
