package store

import (
	"context"
	"sync"

	"github.com/fwojciec/docsite"
)

// Ensure MemoryCache implements docsite.DocumentCache at compile time.
var _ docsite.DocumentCache = (*MemoryCache)(nil)

// MemoryCache is a process-local DocumentCache. Entries live for the
// lifetime of the cache.
type MemoryCache struct {
	mu   sync.RWMutex
	docs map[string]*docsite.Document
}

// NewMemoryCache returns an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{docs: make(map[string]*docsite.Document)}
}

// FindDocument returns a cached document or ENOTFOUND.
func (c *MemoryCache) FindDocument(ctx context.Context, name string) (*docsite.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[name]
	if !ok {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "document %q not cached", name)
	}
	return doc, nil
}

// SaveDocument stores doc under its name.
func (c *MemoryCache) SaveDocument(ctx context.Context, doc *docsite.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[doc.Name] = doc
	return nil
}

// Len returns the number of cached documents.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
