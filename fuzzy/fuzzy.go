// Package fuzzy provides subsequence-matching token indexes.
//
// A query token matches an indexed token when the query's runes occur in
// the indexed token in the same order, not necessarily contiguously.
// The empty query matches every indexed token.
package fuzzy

import (
	"slices"
	"unicode/utf8"

	"github.com/fwojciec/todoswamp"
)

// IsSubsequence reports whether the runes of q occur in s in order.
// Bytes that are not valid UTF-8 are compared as single-byte symbols, so an
// invalid byte only matches the same byte.
func IsSubsequence(q, s string) bool {
	for len(q) > 0 {
		unit := firstUnit(q)
		q = q[len(unit):]

		found := false
		for len(s) > 0 {
			u := firstUnit(s)
			s = s[len(u):]
			if u == unit {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// firstUnit returns the leading symbol of s: one encoded rune, or a single
// byte when s does not start with valid UTF-8.
func firstUnit(s string) string {
	_, size := utf8.DecodeRuneInString(s)
	return s[:size]
}

// units splits s into its symbols.
func units(s string) []string {
	var out []string
	for len(s) > 0 {
		u := firstUnit(s)
		out = append(out, u)
		s = s[len(u):]
	}
	return out
}

// signature returns a 64-bit set of the symbols in s, folded modulo 64.
// If q is a subsequence of s then signature(q) is a subset of signature(s).
func signature(s string) uint64 {
	var sig uint64
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			r = rune(s[0])
		}
		sig |= 1 << (uint32(r) % 64)
		s = s[size:]
	}
	return sig
}

// addID inserts id into the ascending, duplicate-free ids.
func addID(ids []todoswamp.ID, id todoswamp.ID) []todoswamp.ID {
	if n := len(ids); n == 0 || ids[n-1] < id {
		return append(ids, id)
	}
	i, found := slices.BinarySearch(ids, id)
	if found {
		return ids
	}
	return slices.Insert(ids, i, id)
}

// mergeIDs returns the sorted union of already sorted id lists.
func mergeIDs(lists ...[]todoswamp.ID) []todoswamp.ID {
	var out []todoswamp.ID
	for _, ids := range lists {
		out = append(out, ids...)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
