package mock

import (
	"context"

	"github.com/fwojciec/docsite"
)

var (
	_ docsite.DocumentStore = (*DocumentStore)(nil)
	_ docsite.DocumentCache = (*DocumentCache)(nil)
	_ docsite.Source        = (*Source)(nil)
)

// DocumentStore is a mock implementation of docsite.DocumentStore.
type DocumentStore struct {
	FetchDocumentFn func(ctx context.Context, name string) (*docsite.Document, error)
}

func (s *DocumentStore) FetchDocument(ctx context.Context, name string) (*docsite.Document, error) {
	return s.FetchDocumentFn(ctx, name)
}

// DocumentCache is a mock implementation of docsite.DocumentCache.
type DocumentCache struct {
	FindDocumentFn func(ctx context.Context, name string) (*docsite.Document, error)
	SaveDocumentFn func(ctx context.Context, doc *docsite.Document) error
}

func (c *DocumentCache) FindDocument(ctx context.Context, name string) (*docsite.Document, error) {
	return c.FindDocumentFn(ctx, name)
}

func (c *DocumentCache) SaveDocument(ctx context.Context, doc *docsite.Document) error {
	return c.SaveDocumentFn(ctx, doc)
}

// Source is a mock implementation of docsite.Source and docsite.Lister.
type Source struct {
	FetchFn func(ctx context.Context, name string) (string, error)
	ListFn  func(ctx context.Context) ([]string, error)
}

func (s *Source) Fetch(ctx context.Context, name string) (string, error) {
	return s.FetchFn(ctx, name)
}

func (s *Source) List(ctx context.Context) ([]string, error) {
	return s.ListFn(ctx)
}
