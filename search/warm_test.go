package search_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/mock"
	"github.com/fwojciec/docsite/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmer_Warm(t *testing.T) {
	t.Parallel()

	docs := map[string]string{
		"index":  "# Home\n\nWelcome to the site.",
		"deploy": "# Deploy\n\n## Steps\n\nPush to the main branch.",
	}
	newStore := func() *mock.DocumentStore {
		return &mock.DocumentStore{
			FetchDocumentFn: func(_ context.Context, name string) (*docsite.Document, error) {
				raw, ok := docs[name]
				if !ok {
					return nil, docsite.DocumentNotFound(name, docsite.DocumentPath(name), errors.New("HTTP 404"))
				}
				return &docsite.Document{Name: name, RawText: raw}, nil
			},
		}
	}

	t.Run("indexes every document", func(t *testing.T) {
		t.Parallel()

		idx := search.NewIndex()
		w := &search.Warmer{Store: newStore(), Indexer: idx, Concurrency: 2}

		report, err := w.Warm(context.Background(), []string{"index", "deploy"})

		require.NoError(t, err)
		assert.Equal(t, []string{"index", "deploy"}, report.Indexed)
		assert.Empty(t, report.Failed)
		assert.Len(t, idx.Search("main branch").Matches, 1)
	})

	t.Run("collects failures without stopping", func(t *testing.T) {
		t.Parallel()

		var indexed atomic.Int32
		indexer := &mock.Indexer{
			IndexDocumentFn: func(*docsite.Document) { indexed.Add(1) },
		}
		w := &search.Warmer{Store: newStore(), Indexer: indexer}

		report, err := w.Warm(context.Background(), []string{"missing", "index", "deploy"})

		require.NoError(t, err)
		assert.Equal(t, []string{"index", "deploy"}, report.Indexed)
		require.Contains(t, report.Failed, "missing")
		assert.Equal(t, docsite.ENOTFOUND, docsite.ErrorCode(report.Failed["missing"]))
		assert.Equal(t, int32(2), indexed.Load())
	})

	t.Run("indexes in the order of names when fetches finish out of order", func(t *testing.T) {
		t.Parallel()

		secondDone := make(chan struct{})
		store := &mock.DocumentStore{
			FetchDocumentFn: func(ctx context.Context, name string) (*docsite.Document, error) {
				if name == "first" {
					select {
					case <-secondDone:
					case <-ctx.Done():
						return nil, ctx.Err()
					}
				} else {
					defer close(secondDone)
				}
				return &docsite.Document{Name: name, RawText: "## Shared\n\nA shared section body."}, nil
			},
		}
		var order []string
		indexer := &mock.Indexer{
			IndexDocumentFn: func(doc *docsite.Document) { order = append(order, doc.Name) },
		}
		w := &search.Warmer{Store: store, Indexer: indexer, Concurrency: 2}

		report, err := w.Warm(context.Background(), []string{"first", "second"})

		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
		assert.Equal(t, []string{"first", "second"}, report.Indexed)
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		w := &search.Warmer{Store: newStore(), Indexer: search.NewIndex()}

		_, err := w.Warm(ctx, []string{"index"})

		assert.ErrorIs(t, err, context.Canceled)
	})
}
