package mock

import (
	"context"

	"github.com/fwojciec/todoswamp"
)

var _ todoswamp.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of todoswamp.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, q todoswamp.Query) ([]*todoswamp.Item, error)
}

func (s *Searcher) Search(ctx context.Context, q todoswamp.Query) ([]*todoswamp.Item, error) {
	return s.SearchFn(ctx, q)
}
