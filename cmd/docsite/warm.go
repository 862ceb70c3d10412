package main

import (
	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/search"
)

// documentNames returns the configured document list, or every document
// the source can list.
func (deps *Dependencies) documentNames() ([]string, error) {
	if len(deps.Names) > 0 {
		return deps.Names, nil
	}
	lister, ok := deps.Source.(docsite.Lister)
	if !ok {
		return nil, nil
	}
	names, err := lister.List(deps.Ctx)
	if docsite.ErrorCode(err) == docsite.EUNAVAILABLE {
		return nil, nil
	}
	return names, err
}

// warm indexes the documents returned by documentNames. A failing list
// and documents that fail to load are logged and skipped.
func (deps *Dependencies) warm() ([]string, error) {
	names, err := deps.documentNames()
	if err != nil {
		deps.Logger.Warn("document list", "err", err)
		return nil, nil
	}

	w := &search.Warmer{Store: deps.Store, Indexer: deps.Index, Concurrency: deps.Concurrency}
	report, err := w.Warm(deps.Ctx, names)
	if err != nil {
		return nil, err
	}
	for name, ferr := range report.Failed {
		deps.Logger.Warn("index warm-up", "name", name, "err", ferr)
	}
	deps.Logger.Info("index warm-up", "indexed", len(report.Indexed), "failed", len(report.Failed))
	return names, nil
}
