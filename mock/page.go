package mock

import (
	"context"

	"github.com/fwojciec/docsite"
)

var (
	_ docsite.Extractor     = (*Extractor)(nil)
	_ docsite.PageConverter = (*PageConverter)(nil)
	_ docsite.PageWriter    = (*PageWriter)(nil)
)

// Extractor is a mock implementation of docsite.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*docsite.ExtractResult, error)
}

func (e *Extractor) Extract(html, pageURL string) (*docsite.ExtractResult, error) {
	return e.ExtractFn(html, pageURL)
}

// PageConverter is a mock implementation of docsite.PageConverter.
type PageConverter struct {
	ConvertFn func(html, baseURL string) (string, error)
}

func (c *PageConverter) Convert(html, baseURL string) (string, error) {
	return c.ConvertFn(html, baseURL)
}

// PageWriter is a mock implementation of docsite.PageWriter.
type PageWriter struct {
	WritePageFn func(ctx context.Context, page *docsite.Page) error
}

func (w *PageWriter) WritePage(ctx context.Context, page *docsite.Page) error {
	return w.WritePageFn(ctx, page)
}
