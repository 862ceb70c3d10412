package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/fwojciec/docsite/router"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	doc, err := deps.Store.FetchDocument(deps.Ctx, c.Name)
	if err != nil {
		return err
	}

	rendered, err := deps.Renderer.Render(doc.Name, doc.RawText)
	if err != nil {
		return err
	}

	view := &router.View{
		Name:     doc.Name,
		Title:    doc.Title,
		HTML:     rendered.HTML,
		Headings: rendered.Headings,
		TOC:      docsite.BuildTOC(rendered.Headings),
	}

	switch {
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case c.TOC:
		writeTOC(deps, view.TOC, "")
	default:
		fmt.Fprintln(deps.Stdout, view.HTML)
	}
	return nil
}

// writeTOC prints toc entries as an indented list. The entry with the
// active id is marked.
func writeTOC(deps *Dependencies, toc []docsite.TOCEntry, active string) {
	for _, e := range toc {
		indent := strings.Repeat("  ", e.Level-1)
		if e.Nested {
			indent += "  "
		}
		marker := "-"
		if e.ID == active {
			marker = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s%s %s (#%s)\n", indent, marker, e.Text, e.ID)
	}
}
