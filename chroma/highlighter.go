// Package chroma highlights source code using alecthomas/chroma.
package chroma

import (
	"bytes"
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/docsite"
)

// Ensure Highlighter implements docsite.Highlighter at compile time.
var _ docsite.Highlighter = (*Highlighter)(nil)

// DefaultStyle is the chroma style used for the stylesheet.
const DefaultStyle = "github"

// Highlighter emits class-based highlighted HTML. Colors come from the
// stylesheet written by WriteCSS.
type Highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewHighlighter creates a Highlighter using the named style. Unknown
// style names fall back to chroma's default style.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{
		style: styles.Get(style),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Highlight returns code as highlighted HTML. ok is false when no lexer
// is registered for lang.
func (h *Highlighter) Highlight(code, lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		return "", false
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", false
	}
	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, it); err != nil {
		return "", false
	}
	return buf.String(), true
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (h *Highlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
