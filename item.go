package todoswamp

import (
	"context"
	"strings"
)

// ID identifies an item. IDs are assigned sequentially from zero in
// insertion order and are never reused.
type ID int

// Item represents a short text record with an ordered list of tags.
// Everything except Done is immutable once the item is stored.
type Item struct {
	ID          ID       `json:"id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Done        bool     `json:"done"`
}

// Words returns the whitespace-separated words of the description.
func (i *Item) Words() []string {
	return strings.Fields(i.Description)
}

// ItemService represents the record store.
type ItemService interface {
	// CreateItem stores a new item, assigns it the next ID and indexes its
	// description words and tags. On success item.ID holds the new ID.
	CreateItem(ctx context.Context, item *Item) error

	// MarkItemDone flags an item as done. Marking a done item again is a no-op.
	// Returns ENOTFOUND if the ID was never assigned.
	MarkItemDone(ctx context.Context, id ID) error

	// FindActiveItem retrieves an item that exists and is not done.
	// Returns ENOTFOUND otherwise.
	FindActiveItem(ctx context.Context, id ID) (*Item, error)

	// CountItems returns the number of items ever stored, done or not.
	CountItems(ctx context.Context) (int, error)
}

// Index maps query tokens to the IDs of items holding an indexed token
// which contains the query as a subsequence.
type Index interface {
	// Insert registers token under id. Indexed tokens are never removed.
	Insert(id ID, token string)

	// Lookup returns every ID with an indexed token containing token as a
	// subsequence, deduplicated and in ascending order.
	Lookup(token string) []ID
}

// Query holds the word and tag terms of a search. Terms are paired by
// position: the k-th word and the k-th tag form one criterion.
type Query struct {
	Words []string `json:"words"`
	Tags  []string `json:"tags"`
}

// IsEmpty reports whether the query has no terms at all.
func (q Query) IsEmpty() bool {
	return len(q.Words) == 0 && len(q.Tags) == 0
}

// Searcher resolves queries into active items.
type Searcher interface {
	// Search returns the active items matching q ordered by ID descending.
	// An item appears once per criterion position it matched.
	// Returned items are views into the store and must not be retained
	// past the next mutation.
	Search(ctx context.Context, q Query) ([]*Item, error)
}
