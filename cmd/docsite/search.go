package main

import (
	"encoding/json"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fwojciec/docsite"
)

// Run executes the search command. Documents are indexed first so that
// results cover the whole site.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if _, err := deps.warm(); err != nil {
		return err
	}

	results := deps.Searcher.Search(c.Query)
	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	writeResults(deps.Stdout, results)
	return nil
}

// writeResults prints search results as a numbered list.
func writeResults(w io.Writer, results *docsite.SearchResults) {
	switch results.State {
	case docsite.SearchTooShort:
		fmt.Fprintf(w, "Type at least %d characters.\n", docsite.MinQueryLength)
		return
	case docsite.SearchNoResults:
		fmt.Fprintf(w, "No results for %q.\n", results.Query)
		return
	}

	fmt.Fprintf(w, "Showing %d of %d results for %q:\n\n", len(results.Matches), results.Total, results.Query)
	for i, m := range results.Matches {
		fmt.Fprintf(w, "%3d. %s › %s\n", i+1, m.DocumentName, m.SectionTitle)
		fmt.Fprintf(w, "     %s\n", plainSnippet(m.Snippet))
	}
}

var markReplacer = strings.NewReplacer(`<mark class="search-highlight">`, "[", "</mark>", "]")

// plainSnippet turns a highlighted HTML snippet into terminal text with
// matches in brackets.
func plainSnippet(snippet string) string {
	return html.UnescapeString(markReplacer.Replace(snippet))
}
