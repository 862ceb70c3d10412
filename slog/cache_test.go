package slog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/mock"
	dsslog "github.com/fwojciec/docsite/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocumentCache_FindDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs a hit", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentCache{
			FindDocumentFn: func(ctx context.Context, name string) (*docsite.Document, error) {
				return &docsite.Document{Name: name}, nil
			},
		}

		doc, err := dsslog.NewLoggingDocumentCache(inner, newDebugLogger(&buf)).FindDocument(context.Background(), "intro")

		require.NoError(t, err)
		assert.Equal(t, "intro", doc.Name)
		assert.Contains(t, buf.String(), "hit=true")
	})

	t.Run("logs a miss without an error attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentCache{
			FindDocumentFn: func(ctx context.Context, name string) (*docsite.Document, error) {
				return nil, docsite.Errorf(docsite.ENOTFOUND, "document %q not cached", name)
			},
		}

		_, err := dsslog.NewLoggingDocumentCache(inner, newDebugLogger(&buf)).FindDocument(context.Background(), "intro")

		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
		assert.Contains(t, buf.String(), "hit=false")
		assert.NotContains(t, buf.String(), "err=")
	})

	t.Run("logs other failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentCache{
			FindDocumentFn: func(ctx context.Context, name string) (*docsite.Document, error) {
				return nil, errors.New("disk full")
			},
		}

		_, err := dsslog.NewLoggingDocumentCache(inner, newDebugLogger(&buf)).FindDocument(context.Background(), "intro")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="disk full"`)
	})
}

func TestLoggingDocumentCache_SaveDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs name and hash", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var saved *docsite.Document
		inner := &mock.DocumentCache{
			SaveDocumentFn: func(ctx context.Context, doc *docsite.Document) error {
				saved = doc
				return nil
			},
		}

		doc := &docsite.Document{Name: "intro", ContentHash: "abc123"}
		err := dsslog.NewLoggingDocumentCache(inner, newDebugLogger(&buf)).SaveDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Same(t, doc, saved)
		assert.Contains(t, buf.String(), "name=intro")
		assert.Contains(t, buf.String(), "hash=abc123")
	})
}
