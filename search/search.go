// Package search merges fuzzy index lookups into ordered item results.
package search

import (
	"cmp"
	"context"
	"slices"

	"github.com/fwojciec/todoswamp"
)

// Compile-time interface verification.
var _ todoswamp.Searcher = (*Coordinator)(nil)

// Coordinator resolves queries against the word and tag indexes and filters
// the matches through the record store.
type Coordinator struct {
	Items todoswamp.ItemService
	Words todoswamp.Index
	Tags  todoswamp.Index
}

// Search pairs q.Words and q.Tags by position. Each position matches the
// union of its word and tag lookups, restricted to active items. Per-position
// results are concatenated without deduplication and stably sorted by ID
// descending.
func (c *Coordinator) Search(ctx context.Context, q todoswamp.Query) ([]*todoswamp.Item, error) {
	var results []*todoswamp.Item
	for k := range max(len(q.Words), len(q.Tags)) {
		for _, id := range c.match(k, q) {
			item, err := c.Items.FindActiveItem(ctx, id)
			if err != nil {
				if todoswamp.ErrorCode(err) == todoswamp.ENOTFOUND {
					continue
				}
				return nil, err
			}
			results = append(results, item)
		}
	}

	slices.SortStableFunc(results, func(a, b *todoswamp.Item) int {
		return cmp.Compare(b.ID, a.ID)
	})
	return results, nil
}

// match returns the IDs matched at position k.
func (c *Coordinator) match(k int, q todoswamp.Query) []todoswamp.ID {
	var ids []todoswamp.ID
	if k < len(q.Words) {
		ids = append(ids, c.Words.Lookup(q.Words[k])...)
	}
	if k < len(q.Tags) {
		ids = append(ids, c.Tags.Lookup(q.Tags[k])...)
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
