package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/todoswamp"
)

// Ensure LoggingSearcher implements todoswamp.Searcher.
var _ todoswamp.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   todoswamp.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next todoswamp.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs term and result counts.
func (s *LoggingSearcher) Search(ctx context.Context, q todoswamp.Query) (items []*todoswamp.Item, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"words", len(q.Words),
			"tags", len(q.Tags),
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, q)
}
