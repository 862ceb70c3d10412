package store_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/mock"
	"github.com/fwojciec/docsite/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource returns a source serving docs and counting retrievals.
func countingSource(docs map[string]string, calls *atomic.Int32) *mock.Source {
	return &mock.Source{
		FetchFn: func(_ context.Context, name string) (string, error) {
			calls.Add(1)
			raw, ok := docs[name]
			if !ok {
				return "", errors.New("HTTP 404")
			}
			return raw, nil
		},
	}
}

func TestStore_FetchDocument(t *testing.T) {
	t.Parallel()

	t.Run("retrieves each document at most once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := store.New(countingSource(map[string]string{"deploy": "# Deploy\n\nSteps."}, &calls), nil)

		first, err := s.FetchDocument(context.Background(), "deploy")
		require.NoError(t, err)
		second, err := s.FetchDocument(context.Background(), "deploy")
		require.NoError(t, err)

		assert.Equal(t, int32(1), calls.Load())
		assert.Equal(t, first.RawText, second.RawText)
		assert.Equal(t, "# Deploy\n\nSteps.", first.RawText)
	})

	t.Run("concurrent fetches share one retrieval", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		release := make(chan struct{})
		src := &mock.Source{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				calls.Add(1)
				<-release
				return "# Guide", nil
			},
		}
		s := store.New(src, nil)

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				doc, err := s.FetchDocument(context.Background(), "guide")
				assert.NoError(t, err)
				assert.Equal(t, "Guide", doc.Title)
			}()
		}
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("derives title from first level-1 heading", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := store.New(countingSource(map[string]string{
			"intro": "Some text\n\n# Getting Started\n\n## Install",
		}, &calls), nil)

		doc, err := s.FetchDocument(context.Background(), "intro")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", doc.Title)
	})

	t.Run("falls back to front matter title then name", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := store.New(countingSource(map[string]string{
			"imported": "---\ntitle: Imported Page\n---\n\nBody text only.",
			"plain":    "No headings here.",
		}, &calls), nil)

		imported, err := s.FetchDocument(context.Background(), "imported")
		require.NoError(t, err)
		assert.Equal(t, "Imported Page", imported.Title)
		assert.Equal(t, "Body text only.", imported.RawText)

		plain, err := s.FetchDocument(context.Background(), "plain")
		require.NoError(t, err)
		assert.Equal(t, "Plain", plain.Title)
	})

	t.Run("sets content hash and fetch time", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		s := store.New(countingSource(map[string]string{"a": "alpha"}, &calls), nil)
		s.Now = func() time.Time { return now }

		doc, err := s.FetchDocument(context.Background(), "a")

		require.NoError(t, err)
		assert.Equal(t, store.HashContent("alpha"), doc.ContentHash)
		assert.Len(t, doc.ContentHash, 16)
		assert.Equal(t, now, doc.FetchedAt)
	})

	t.Run("returns not found carrying path and cause", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := store.New(countingSource(nil, &calls), nil)

		_, err := s.FetchDocument(context.Background(), "missing")

		require.Error(t, err)
		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
		assert.Contains(t, docsite.ErrorMessage(err), "docs/missing.md")
		assert.Contains(t, docsite.ErrorMessage(err), "HTTP 404")
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		s := store.New(countingSource(nil, &calls), nil)

		_, _ = s.FetchDocument(context.Background(), "missing")
		_, _ = s.FetchDocument(context.Background(), "missing")

		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("rejects names that are not slugs", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", "../secret", "a/b", "/etc/passwd", "Upper"} {
			var calls atomic.Int32
			s := store.New(countingSource(nil, &calls), nil)

			_, err := s.FetchDocument(context.Background(), name)

			assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err), name)
			assert.Zero(t, calls.Load(), name)
		}
	})

	t.Run("returns cache errors other than not found", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		cache := &mock.DocumentCache{
			FindDocumentFn: func(_ context.Context, _ string) (*docsite.Document, error) {
				return nil, errors.New("database is locked")
			},
		}
		s := store.New(countingSource(map[string]string{"a": "alpha"}, &calls), cache)

		_, err := s.FetchDocument(context.Background(), "a")

		require.EqualError(t, err, "database is locked")
		assert.Zero(t, calls.Load())
	})
}

func TestMemoryCache(t *testing.T) {
	t.Parallel()

	t.Run("find returns not found for unknown names", func(t *testing.T) {
		t.Parallel()

		c := store.NewMemoryCache()

		_, err := c.FindDocument(context.Background(), "nope")

		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(err))
	})

	t.Run("save then find", func(t *testing.T) {
		t.Parallel()

		c := store.NewMemoryCache()
		doc := &docsite.Document{Name: "a", Title: "A", RawText: "# A"}

		require.NoError(t, c.SaveDocument(context.Background(), doc))
		got, err := c.FindDocument(context.Background(), "a")

		require.NoError(t, err)
		assert.Equal(t, doc, got)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("save rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		c := store.NewMemoryCache()

		err := c.SaveDocument(context.Background(), &docsite.Document{})

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})
}
