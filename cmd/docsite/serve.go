package main

import (
	"fmt"

	dshttp "github.com/fwojciec/docsite/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	names, err := deps.warm()
	if err != nil {
		return err
	}

	s := dshttp.NewServer()
	s.Addr = c.Addr
	s.Addresser = deps.Addresser
	s.Documents = names
	s.DocumentStore = deps.Store
	s.Renderer = deps.Renderer
	s.Searcher = deps.Searcher
	s.Indexer = deps.Index
	s.Catalog = deps.Index
	s.Stylesheet = deps.Highlighter
	s.Logger = deps.Logger

	if err := s.Open(); err != nil {
		return fmt.Errorf("failed to listen on %s: %w", c.Addr, err)
	}
	fmt.Fprintf(deps.Stdout, "Serving documentation at %s\n", s.URL())

	<-deps.Ctx.Done()
	return s.Close()
}
