package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/docsite"
)

// Compile-time interface verification.
var _ docsite.DocumentCache = (*DocumentCache)(nil)

// DocumentCache implements docsite.DocumentCache using SQLite. Entries
// survive process restarts when the database is file-backed.
type DocumentCache struct {
	db *DB
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(db *DB) *DocumentCache {
	return &DocumentCache{db: db}
}

// FindDocument retrieves a cached document by name.
func (c *DocumentCache) FindDocument(ctx context.Context, name string) (*docsite.Document, error) {
	var doc docsite.Document
	var fetchedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT name, title, raw_text, content_hash, fetched_at
		FROM documents
		WHERE name = ?
	`, name).Scan(&doc.Name, &doc.Title, &doc.RawText, &doc.ContentHash, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, docsite.Errorf(docsite.ENOTFOUND, "document %q not cached", name)
	}
	if err != nil {
		return nil, err
	}

	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// SaveDocument inserts doc or replaces the entry with the same name.
func (c *DocumentCache) SaveDocument(ctx context.Context, doc *docsite.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO documents (name, title, raw_text, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			title = excluded.title,
			raw_text = excluded.raw_text,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at
	`, doc.Name, doc.Title, doc.RawText, doc.ContentHash, doc.FetchedAt.UTC().Format(time.RFC3339Nano))

	return err
}

// DeleteDocument removes a cached document.
// Returns ENOTFOUND if nothing was cached under name.
func (c *DocumentCache) DeleteDocument(ctx context.Context, name string) error {
	result, err := c.db.ExecContext(ctx, `DELETE FROM documents WHERE name = ?`, name)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return docsite.Errorf(docsite.ENOTFOUND, "document %q not cached", name)
	}
	return nil
}

// ListDocumentNames returns the names of all cached documents in order.
func (c *DocumentCache) ListDocumentNames(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT name FROM documents ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
