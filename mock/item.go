package mock

import (
	"context"

	"github.com/fwojciec/todoswamp"
)

var _ todoswamp.ItemService = (*ItemService)(nil)

// ItemService is a mock implementation of todoswamp.ItemService.
type ItemService struct {
	CreateItemFn     func(ctx context.Context, item *todoswamp.Item) error
	MarkItemDoneFn   func(ctx context.Context, id todoswamp.ID) error
	FindActiveItemFn func(ctx context.Context, id todoswamp.ID) (*todoswamp.Item, error)
	CountItemsFn     func(ctx context.Context) (int, error)
}

func (s *ItemService) CreateItem(ctx context.Context, item *todoswamp.Item) error {
	return s.CreateItemFn(ctx, item)
}

func (s *ItemService) MarkItemDone(ctx context.Context, id todoswamp.ID) error {
	return s.MarkItemDoneFn(ctx, id)
}

func (s *ItemService) FindActiveItem(ctx context.Context, id todoswamp.ID) (*todoswamp.Item, error) {
	return s.FindActiveItemFn(ctx, id)
}

func (s *ItemService) CountItems(ctx context.Context) (int, error) {
	return s.CountItemsFn(ctx)
}
