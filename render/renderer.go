// Package render assembles the document rendering pipeline: Markdown
// conversion, decoration and sanitization.
package render

import (
	"github.com/fwojciec/docsite"
)

// Ensure Renderer implements docsite.Renderer at compile time.
var _ docsite.Renderer = (*Renderer)(nil)

// Renderer turns document Markdown into sanitized HTML with navigable
// headings. Every capability is required at call time.
type Renderer struct {
	Converter docsite.Converter
	Decorator docsite.Decorator
	Sanitizer docsite.Sanitizer

	// Addresser builds heading anchor hrefs.
	Addresser docsite.Addresser
}

// Render converts markdown of the named document. Frames are filtered and
// headings decorated before sanitization.
func (r *Renderer) Render(name, markdown string) (*docsite.Rendered, error) {
	switch {
	case r.Converter == nil:
		return nil, docsite.RendererUnavailable("markdown converter")
	case r.Decorator == nil:
		return nil, docsite.RendererUnavailable("decorator")
	case r.Sanitizer == nil:
		return nil, docsite.RendererUnavailable("sanitizer")
	}

	converted, err := r.Converter.Convert(markdown)
	if err != nil {
		if docsite.ErrorCode(err) != docsite.EINTERNAL {
			return nil, err
		}
		return nil, &docsite.Error{Code: docsite.EINTERNAL, Message: "failed to render " + name, Err: err}
	}

	decorated, err := r.Decorator.Decorate(converted, func(id string) string {
		return r.Addresser.AnchorHref(name, id)
	})
	if err != nil {
		return nil, err
	}

	return &docsite.Rendered{
		HTML:     r.Sanitizer.Sanitize(decorated.HTML),
		Headings: decorated.Headings,
	}, nil
}
