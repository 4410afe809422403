package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/todoswamp"
)

// Ensure LoggingItemService implements todoswamp.ItemService.
var _ todoswamp.ItemService = (*LoggingItemService)(nil)

// LoggingItemService wraps an ItemService with debug logging of mutations.
type LoggingItemService struct {
	next   todoswamp.ItemService
	logger *slog.Logger
}

// NewLoggingItemService creates a new LoggingItemService.
func NewLoggingItemService(next todoswamp.ItemService, logger *slog.Logger) *LoggingItemService {
	return &LoggingItemService{next: next, logger: logger}
}

// CreateItem delegates to the wrapped service and logs the assigned ID.
// No ID is logged when creation fails since none was assigned.
func (s *LoggingItemService) CreateItem(ctx context.Context, item *todoswamp.Item) (err error) {
	defer func(begin time.Time) {
		args := []any{
			"words", len(item.Words()),
			"tags", len(item.Tags),
			"duration", time.Since(begin),
			"err", err,
		}
		if err == nil {
			args = append([]any{"id", item.ID}, args...)
		}
		s.logger.Info("item create", args...)
	}(time.Now())
	return s.next.CreateItem(ctx, item)
}

// MarkItemDone delegates to the wrapped service and logs the operation.
func (s *LoggingItemService) MarkItemDone(ctx context.Context, id todoswamp.ID) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("item done",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.MarkItemDone(ctx, id)
}

// FindActiveItem delegates to the wrapped service.
func (s *LoggingItemService) FindActiveItem(ctx context.Context, id todoswamp.ID) (*todoswamp.Item, error) {
	return s.next.FindActiveItem(ctx, id)
}

// CountItems delegates to the wrapped service.
func (s *LoggingItemService) CountItems(ctx context.Context) (int, error) {
	return s.next.CountItems(ctx)
}
