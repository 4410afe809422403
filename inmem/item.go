// Package inmem provides the in-memory record store.
package inmem

import (
	"context"
	"slices"

	"github.com/fwojciec/todoswamp"
)

// Compile-time interface verification.
var _ todoswamp.ItemService = (*ItemService)(nil)

// ItemService implements todoswamp.ItemService on an append-only slice.
// An item's ID is its position in the slice. It is not safe for concurrent use.
type ItemService struct {
	items []*todoswamp.Item
	words todoswamp.Index
	tags  todoswamp.Index
}

// NewItemService creates a new ItemService feeding description words into
// words and tags into tags.
func NewItemService(words, tags todoswamp.Index) *ItemService {
	return &ItemService{words: words, tags: tags}
}

// CreateItem stores a copy of item under the next ID and indexes it.
func (s *ItemService) CreateItem(ctx context.Context, item *todoswamp.Item) error {
	stored := &todoswamp.Item{
		ID:          todoswamp.ID(len(s.items)),
		Description: item.Description,
		Tags:        slices.Clone(item.Tags),
	}
	s.items = append(s.items, stored)

	for _, word := range stored.Words() {
		s.words.Insert(stored.ID, word)
	}
	for _, tag := range stored.Tags {
		s.tags.Insert(stored.ID, tag)
	}

	item.ID = stored.ID
	item.Done = false
	return nil
}

// MarkItemDone flags the item as done.
func (s *ItemService) MarkItemDone(ctx context.Context, id todoswamp.ID) error {
	item, ok := s.item(id)
	if !ok {
		return todoswamp.Errorf(todoswamp.ENOTFOUND, "item %d does not exist", id)
	}
	item.Done = true
	return nil
}

// FindActiveItem returns the stored item if it exists and is not done.
// The returned item is owned by the store and must be treated as read-only.
func (s *ItemService) FindActiveItem(ctx context.Context, id todoswamp.ID) (*todoswamp.Item, error) {
	item, ok := s.item(id)
	if !ok || item.Done {
		return nil, todoswamp.Errorf(todoswamp.ENOTFOUND, "no active item %d", id)
	}
	return item, nil
}

// CountItems returns the number of items ever stored.
func (s *ItemService) CountItems(ctx context.Context) (int, error) {
	return len(s.items), nil
}

func (s *ItemService) item(id todoswamp.ID) (*todoswamp.Item, bool) {
	if id < 0 || int(id) >= len(s.items) {
		return nil, false
	}
	return s.items[id], true
}
