// Package ristretto provides a search result cache backed by ristretto.
package ristretto

import (
	"context"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/ristretto"
	"github.com/fwojciec/todoswamp"
)

// Cache holds search results for the current generation of the store.
// Every successful mutation starts a new generation, which makes all earlier
// entries unreachable.
type Cache struct {
	cache *ristretto.Cache
	gen   atomic.Uint64
}

// entry is a cached result together with the canonical query that produced
// it, so a 64-bit key collision is detected as a miss.
type entry struct {
	query string
	items []*todoswamp.Item
}

// NewCache creates a cache holding up to size search results.
func NewCache(size int64) (*Cache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        size * 10,
		MaxCost:            size,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Cache{cache: c}, nil
}

// Invalidate starts a new generation.
func (c *Cache) Invalidate() {
	c.gen.Add(1)
}

// Close stops the cache's background goroutines.
func (c *Cache) Close() {
	c.cache.Close()
}

func (c *Cache) get(query string) ([]*todoswamp.Item, bool) {
	v, ok := c.cache.Get(xxhash.Sum64String(query))
	if !ok {
		return nil, false
	}
	e, ok := v.(*entry)
	if !ok || e.query != query {
		return nil, false
	}
	return slices.Clone(e.items), true
}

func (c *Cache) set(query string, items []*todoswamp.Item) {
	c.cache.Set(xxhash.Sum64String(query), &entry{query: query, items: slices.Clone(items)}, 1)
	c.cache.Wait()
}

// canonical encodes the generation and query terms unambiguously.
func (c *Cache) canonical(q todoswamp.Query) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(c.gen.Load(), 10))
	writeTerms(&b, 'w', q.Words)
	writeTerms(&b, 't', q.Tags)
	return b.String()
}

func writeTerms(b *strings.Builder, kind byte, terms []string) {
	for _, term := range terms {
		b.WriteByte(kind)
		b.WriteString(strconv.Itoa(len(term)))
		b.WriteByte(':')
		b.WriteString(term)
	}
}

// Ensure Searcher implements todoswamp.Searcher.
var _ todoswamp.Searcher = (*Searcher)(nil)

// Searcher serves repeated queries from the cache.
type Searcher struct {
	next  todoswamp.Searcher
	cache *Cache
}

// NewSearcher creates a new Searcher.
func NewSearcher(next todoswamp.Searcher, cache *Cache) *Searcher {
	return &Searcher{next: next, cache: cache}
}

// Search returns cached results for q if the store has not changed since
// they were computed, otherwise it delegates and caches the result.
func (s *Searcher) Search(ctx context.Context, q todoswamp.Query) ([]*todoswamp.Item, error) {
	key := s.cache.canonical(q)
	if items, ok := s.cache.get(key); ok {
		return items, nil
	}

	items, err := s.next.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	s.cache.set(key, items)
	return items, nil
}

// Ensure ItemService implements todoswamp.ItemService.
var _ todoswamp.ItemService = (*ItemService)(nil)

// ItemService invalidates the cache after every successful mutation.
type ItemService struct {
	next  todoswamp.ItemService
	cache *Cache
}

// NewItemService creates a new ItemService.
func NewItemService(next todoswamp.ItemService, cache *Cache) *ItemService {
	return &ItemService{next: next, cache: cache}
}

// CreateItem delegates and invalidates the cache on success.
func (s *ItemService) CreateItem(ctx context.Context, item *todoswamp.Item) error {
	if err := s.next.CreateItem(ctx, item); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// MarkItemDone delegates and invalidates the cache on success.
func (s *ItemService) MarkItemDone(ctx context.Context, id todoswamp.ID) error {
	if err := s.next.MarkItemDone(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// FindActiveItem delegates to the wrapped service.
func (s *ItemService) FindActiveItem(ctx context.Context, id todoswamp.ID) (*todoswamp.Item, error) {
	return s.next.FindActiveItem(ctx, id)
}

// CountItems delegates to the wrapped service.
func (s *ItemService) CountItems(ctx context.Context) (int, error) {
	return s.next.CountItems(ctx)
}
