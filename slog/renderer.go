package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Ensure LoggingRenderer implements docsite.Renderer.
var _ docsite.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   docsite.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next docsite.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs the operation.
func (r *LoggingRenderer) Render(name, markdown string) (out *docsite.Rendered, err error) {
	defer func(begin time.Time) {
		var headings int
		if out != nil {
			headings = len(out.Headings)
		}
		r.logger.Info("render",
			"name", name,
			"bytes", len(markdown),
			"headings", headings,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.Render(name, markdown)
}
