package search

import (
	"context"
	"sync"

	"github.com/fwojciec/docsite"
	"golang.org/x/sync/errgroup"
)

// DefaultWarmConcurrency is the number of documents fetched at once
// during warm-up.
const DefaultWarmConcurrency = 4

// Warmer fetches a list of documents and indexes each of them, so that
// queries cover documents the user has not opened yet.
type Warmer struct {
	Store   docsite.DocumentStore
	Indexer docsite.Indexer

	// Concurrency bounds parallel fetches. Defaults to
	// DefaultWarmConcurrency.
	Concurrency int
}

// WarmReport lists the outcome of a warm-up. Indexed keeps the order of
// the requested names.
type WarmReport struct {
	Indexed []string
	Failed  map[string]error
}

// Warm fetches every named document concurrently, then indexes them in
// the order of names. A failing document is recorded in the report and
// does not stop the others. The returned error is non-nil only when ctx
// is canceled.
func (w *Warmer) Warm(ctx context.Context, names []string) (*WarmReport, error) {
	limit := w.Concurrency
	if limit <= 0 {
		limit = DefaultWarmConcurrency
	}

	var (
		mu     sync.Mutex
		docs   = make([]*docsite.Document, len(names))
		failed = make(map[string]error)
	)

	g := new(errgroup.Group)
	g.SetLimit(limit)
	for i, name := range names {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			doc, err := w.Store.FetchDocument(ctx, name)
			if err != nil {
				mu.Lock()
				failed[name] = err
				mu.Unlock()
				return nil
			}
			docs[i] = doc
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Fetches finish in any order; index in the order of names so
	// results are stable across runs.
	report := &WarmReport{Failed: failed}
	for i, doc := range docs {
		if doc == nil {
			continue
		}
		w.Indexer.IndexDocument(doc)
		report.Indexed = append(report.Indexed, names[i])
	}
	return report, nil
}
