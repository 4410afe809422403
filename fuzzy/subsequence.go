package fuzzy

import (
	"math/bits"
	"slices"
	"unicode/utf8"

	"github.com/fwojciec/todoswamp"
)

// Token length limits, in runes, for precomputed subsequences.
const (
	DefaultMaxTokenLength = 12
	MaxTokenLength        = 24
)

// Ensure SubsequenceIndex implements todoswamp.Index.
var _ todoswamp.Index = (*SubsequenceIndex)(nil)

// SubsequenceIndex precomputes every subsequence of each indexed token so a
// lookup is a single map access. A token of n runes costs 2^n insertions, so
// tokens longer than the configured limit are kept in a ScanIndex instead.
type SubsequenceIndex struct {
	maxLen int
	subs   map[string][]todoswamp.ID
	long   *ScanIndex
}

// NewSubsequenceIndex returns an index precomputing tokens of up to maxLen
// runes. Non-positive values select DefaultMaxTokenLength; values above
// MaxTokenLength are clamped.
func NewSubsequenceIndex(maxLen int) *SubsequenceIndex {
	if maxLen <= 0 {
		maxLen = DefaultMaxTokenLength
	}
	maxLen = min(maxLen, MaxTokenLength)
	return &SubsequenceIndex{
		maxLen: maxLen,
		subs:   make(map[string][]todoswamp.ID),
		long:   NewScanIndex(),
	}
}

// Insert registers every subsequence of token under id.
//
// Invalid UTF-8 bytes are symbols of their own. Joining such bytes can
// spell a valid rune, so a joined subsequence is registered only when it
// decodes back into the symbols it was built from.
func (x *SubsequenceIndex) Insert(id todoswamp.ID, token string) {
	syms := units(token)
	if len(syms) > x.maxLen {
		x.long.Insert(id, token)
		return
	}

	buf := make([]byte, 0, len(token))
	for mask := range 1 << len(syms) {
		buf = buf[:0]
		for j, sym := range syms {
			if mask&(1<<j) != 0 {
				buf = append(buf, sym...)
			}
		}
		if utf8.RuneCount(buf) != bits.OnesCount(uint(mask)) {
			continue
		}
		sub := string(buf)
		x.subs[sub] = addID(x.subs[sub], id)
	}
}

// Lookup returns the IDs registered under token.
func (x *SubsequenceIndex) Lookup(token string) []todoswamp.ID {
	short := x.subs[token]
	if x.long.Len() == 0 {
		return slices.Clone(short)
	}
	return mergeIDs(short, x.long.Lookup(token))
}

// Len returns the number of distinct precomputed subsequences.
func (x *SubsequenceIndex) Len() int {
	return len(x.subs)
}
