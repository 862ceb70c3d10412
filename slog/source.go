package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

var (
	_ docsite.Source = (*LoggingSource)(nil)
	_ docsite.Lister = (*LoggingSource)(nil)
)

// LoggingSource wraps a Source with logging. List is available only when
// the wrapped source is a docsite.Lister.
type LoggingSource struct {
	next   docsite.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docsite.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Fetch delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Fetch(ctx context.Context, name string) (markdown string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("source fetch",
			"name", name,
			"bytes", len(markdown),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Fetch(ctx, name)
}

// List delegates to the wrapped source and logs the operation.
// Returns EUNAVAILABLE if the wrapped source cannot list documents.
func (s *LoggingSource) List(ctx context.Context) (names []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("source list",
			"count", len(names),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	lister, ok := s.next.(docsite.Lister)
	if !ok {
		return nil, docsite.Errorf(docsite.EUNAVAILABLE, "document source cannot list documents")
	}
	return lister.List(ctx)
}
