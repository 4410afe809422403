package fuzzy

import "github.com/fwojciec/todoswamp"

// Ensure ScanIndex implements todoswamp.Index.
var _ todoswamp.Index = (*ScanIndex)(nil)

// ScanIndex stores each distinct token once and tests the subsequence
// relation against every stored token at lookup time. Insertion is O(1)
// amortized; lookup is linear in the total length of distinct tokens.
type ScanIndex struct {
	postings []*posting
	byToken  map[string]*posting
}

type posting struct {
	token string
	sig   uint64
	ids   []todoswamp.ID
}

// NewScanIndex returns an empty ScanIndex.
func NewScanIndex() *ScanIndex {
	return &ScanIndex{byToken: make(map[string]*posting)}
}

// Insert registers token under id.
func (x *ScanIndex) Insert(id todoswamp.ID, token string) {
	p, ok := x.byToken[token]
	if !ok {
		p = &posting{token: token, sig: signature(token)}
		x.byToken[token] = p
		x.postings = append(x.postings, p)
	}
	p.ids = addID(p.ids, id)
}

// Lookup returns the IDs of every stored token containing token as a subsequence.
func (x *ScanIndex) Lookup(token string) []todoswamp.ID {
	sig := signature(token)

	var matched [][]todoswamp.ID
	for _, p := range x.postings {
		if sig&^p.sig != 0 {
			continue
		}
		if IsSubsequence(token, p.token) {
			matched = append(matched, p.ids)
		}
	}
	return mergeIDs(matched...)
}

// Len returns the number of distinct tokens stored.
func (x *ScanIndex) Len() int {
	return len(x.postings)
}
