package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docsite"
)

// Ensure LoggingSearcher implements docsite.Searcher.
var _ docsite.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with logging.
type LoggingSearcher struct {
	next   docsite.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next docsite.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the query outcome.
func (s *LoggingSearcher) Search(query string) *docsite.SearchResults {
	begin := time.Now()
	results := s.next.Search(query)
	s.logger.Info("search",
		"query", query,
		"state", string(results.State),
		"total", results.Total,
		"duration", time.Since(begin),
	)
	return results
}
