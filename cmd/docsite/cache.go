package main

import (
	"fmt"

	"github.com/fwojciec/docsite"
)

// requireCacheDB returns an error when no cache database is configured.
func requireCacheDB(deps *Dependencies) error {
	if deps.CacheDB == nil {
		return docsite.Errorf(docsite.EINVALID, "no cache database configured; set --cache or DOCSITE_CACHE")
	}
	return nil
}

// Run executes the cache ls command.
func (c *CacheListCmd) Run(deps *Dependencies) error {
	if err := requireCacheDB(deps); err != nil {
		return err
	}

	names, err := deps.CacheDB.ListDocumentNames(deps.Ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fmt.Fprintln(deps.Stdout, "No cached documents.")
		return nil
	}

	for _, name := range names {
		doc, err := deps.CacheDB.FindDocument(deps.Ctx, name)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "%-24s %s  %s  %s\n", doc.Name, doc.ContentHash, doc.FetchedAt.Format("2006-01-02 15:04"), doc.Title)
	}
	return nil
}

// Run executes the cache rm command.
func (c *CacheForgetCmd) Run(deps *Dependencies) error {
	if err := requireCacheDB(deps); err != nil {
		return err
	}

	for _, name := range c.Names {
		if err := deps.CacheDB.DeleteDocument(deps.Ctx, name); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "Removed %s\n", name)
	}
	return nil
}
