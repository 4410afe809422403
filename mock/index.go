package mock

import "github.com/fwojciec/todoswamp"

var _ todoswamp.Index = (*Index)(nil)

// Index is a mock implementation of todoswamp.Index.
type Index struct {
	InsertFn func(id todoswamp.ID, token string)
	LookupFn func(token string) []todoswamp.ID
}

func (x *Index) Insert(id todoswamp.ID, token string) {
	x.InsertFn(id, token)
}

func (x *Index) Lookup(token string) []todoswamp.ID {
	return x.LookupFn(token)
}
