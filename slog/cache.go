package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Ensure LoggingDocumentCache implements docsite.DocumentCache.
var _ docsite.DocumentCache = (*LoggingDocumentCache)(nil)

// LoggingDocumentCache wraps a DocumentCache with debug logging. Cache
// misses are logged as hit=false rather than as errors.
type LoggingDocumentCache struct {
	next   docsite.DocumentCache
	logger *slog.Logger
}

// NewLoggingDocumentCache creates a new LoggingDocumentCache.
func NewLoggingDocumentCache(next docsite.DocumentCache, logger *slog.Logger) *LoggingDocumentCache {
	return &LoggingDocumentCache{next: next, logger: logger}
}

// FindDocument delegates to the wrapped cache and logs the lookup.
func (c *LoggingDocumentCache) FindDocument(ctx context.Context, name string) (doc *docsite.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"name", name,
			"hit", err == nil,
			"duration", time.Since(begin),
		}
		if err != nil && docsite.ErrorCode(err) != docsite.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		c.logger.Debug("cache find", attrs...)
	}(time.Now())
	return c.next.FindDocument(ctx, name)
}

// SaveDocument delegates to the wrapped cache and logs the operation.
func (c *LoggingDocumentCache) SaveDocument(ctx context.Context, doc *docsite.Document) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache save",
			"name", doc.Name,
			"hash", doc.ContentHash,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SaveDocument(ctx, doc)
}
