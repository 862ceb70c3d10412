// Package gomarkdown converts Markdown to HTML using gomarkdown/markdown.
package gomarkdown

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/fwojciec/docsite"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Ensure Converter implements docsite.Converter at compile time.
var _ docsite.Converter = (*Converter)(nil)

// Extensions are the parser extensions enabled for every document:
// GitHub-flavored tables, fenced code, autolinks and strikethrough,
// explicit heading ids, and hard line breaks. Math spans and definition
// lists are off so that "$" and leading ": " stay literal text.
const Extensions = (parser.CommonExtensions &^ parser.MathJax &^ parser.DefinitionLists) | parser.HardLineBreak

// Converter converts Markdown to HTML. Fenced code blocks that declare a
// language are passed to Highlighter when one is set. Absolute links open
// in a new window.
type Converter struct {
	Highlighter docsite.Highlighter
}

// NewConverter creates a Converter highlighting code with h. h may be nil.
func NewConverter(h docsite.Highlighter) *Converter {
	return &Converter{Highlighter: h}
}

// Convert renders markdown to an HTML fragment.
func (c *Converter) Convert(md string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = docsite.Errorf(docsite.EINTERNAL, "markdown conversion failed: %v", r)
		}
	}()

	// Parsers keep state and must not be reused across documents.
	p := parser.NewWithExtensions(Extensions)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags:          mdhtml.HrefTargetBlank,
		RenderNodeHook: c.renderCode,
	})
	return string(markdown.ToHTML([]byte(md), p, r)), nil
}

// renderCode writes highlighted code blocks. Blocks without a language or
// with an unknown one fall through to the default renderer.
func (c *Converter) renderCode(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	block, ok := node.(*ast.CodeBlock)
	if !ok || c.Highlighter == nil {
		return ast.GoToNext, false
	}
	lang := language(block.Info)
	if lang == "" {
		return ast.GoToNext, false
	}
	highlighted, ok := c.Highlighter.Highlight(string(block.Literal), lang)
	if !ok {
		return ast.GoToNext, false
	}
	fmt.Fprintf(w, "<pre class=\"chroma\"><code class=\"language-%s\">%s</code></pre>\n", html.EscapeString(lang), highlighted)
	return ast.GoToNext, true
}

// language returns the first word of a fenced block's info string.
func language(info []byte) string {
	fields := strings.Fields(string(info))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
