package mock

import "github.com/fwojciec/docsite"

var (
	_ docsite.Renderer    = (*Renderer)(nil)
	_ docsite.Converter   = (*Converter)(nil)
	_ docsite.Highlighter = (*Highlighter)(nil)
	_ docsite.Decorator   = (*Decorator)(nil)
	_ docsite.Sanitizer   = (*Sanitizer)(nil)
)

// Renderer is a mock implementation of docsite.Renderer.
type Renderer struct {
	RenderFn func(name, markdown string) (*docsite.Rendered, error)
}

func (r *Renderer) Render(name, markdown string) (*docsite.Rendered, error) {
	return r.RenderFn(name, markdown)
}

// Converter is a mock implementation of docsite.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}

// Highlighter is a mock implementation of docsite.Highlighter.
type Highlighter struct {
	HighlightFn func(code, lang string) (string, bool)
}

func (h *Highlighter) Highlight(code, lang string) (string, bool) {
	return h.HighlightFn(code, lang)
}

// Decorator is a mock implementation of docsite.Decorator.
type Decorator struct {
	DecorateFn func(html string, anchor docsite.AnchorFunc) (*docsite.Rendered, error)
}

func (d *Decorator) Decorate(html string, anchor docsite.AnchorFunc) (*docsite.Rendered, error) {
	return d.DecorateFn(html, anchor)
}

// Sanitizer is a mock implementation of docsite.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) string
}

func (s *Sanitizer) Sanitize(html string) string {
	return s.SanitizeFn(html)
}
