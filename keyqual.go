package gs1

import (
	"sort"
	"strings"
)

// Index is the Key-Qualifier Index of §4.6: a lexicographically
// sorted, binary-searchable list of space-joined `K [Q1 [Q2 ...]]`
// strings: each primary key alone, plus the key followed by every
// order-preserving subsequence of each declared qualifier chain.
type Index struct {
	entries []string
}

// BuildIndex derives the Key-Qualifier Index from a Dictionary's
// `dlpkey`/`dlpkey=Q1,Q2|Q3`-carrying entries (§4.6). For a chain of n
// qualifiers it enumerates every order-preserving prefix subset, 2^n
// entries, matching the rationale that a sorted-string index gives
// O(log N) membership tests for both "is this a valid path" and
// "would inserting this AI make it valid".
func BuildIndex(d *Dictionary) *Index {
	var entries []string
	seen := make(map[string]bool)

	add := func(parts []string) {
		s := strings.Join(parts, " ")
		if !seen[s] {
			seen[s] = true
			entries = append(entries, s)
		}
	}

	for i := range d.entries {
		e := &d.entries[i]
		if !e.DLPKey {
			continue
		}
		add([]string{e.Code})
		for _, chain := range e.DLPQualChain {
			for _, subset := range orderedPrefixSubsets(chain) {
				add(append([]string{e.Code}, subset...))
			}
		}
	}

	sort.Strings(entries)
	return &Index{entries: entries}
}

// orderedPrefixSubsets enumerates, for a chain of n qualifiers, every
// non-empty subsequence of the chain (one bit per qualifier: included
// or not, relative order kept), 2^n - 1 in all; the empty one is the
// bare key, which BuildIndex adds on its own.
func orderedPrefixSubsets(chain []string) [][]string {
	n := len(chain)
	var out [][]string
	for mask := 1; mask < (1 << n); mask++ {
		var subset []string
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				subset = append(subset, chain[i])
			}
		}
		out = append(out, subset)
	}
	return out
}

// Contains reports whether seq (a `{key, qualifiers...}` tuple) is a
// member of the index, via binary search.
func (idx *Index) Contains(seq []string) bool {
	s := strings.Join(seq, " ")
	i := sort.SearchStrings(idx.entries, s)
	return i < len(idx.entries) && idx.entries[i] == s
}

// WouldBeValidAt reports whether inserting ai into seq at position pos
// (0-indexed) would make the resulting sequence a member of the
// index. The DL URI parser (C5) uses this to decide whether a query
// AI belongs in the DL path rather than the query string.
func (idx *Index) WouldBeValidAt(seq []string, ai string, pos int) bool {
	if pos < 0 || pos > len(seq) {
		return false
	}
	candidate := make([]string, 0, len(seq)+1)
	candidate = append(candidate, seq[:pos]...)
	candidate = append(candidate, ai)
	candidate = append(candidate, seq[pos:]...)
	return idx.Contains(candidate)
}

// QualifiersStartingWith returns the qualifier part of every index
// entry that starts with key. The DL generator (C8) does not call it;
// it reads the key's DLPQualChain directly.
func (idx *Index) QualifiersStartingWith(key string) [][]string {
	var out [][]string
	for _, e := range idx.entries {
		parts := strings.Split(e, " ")
		if parts[0] == key {
			out = append(out, parts[1:])
		}
	}
	return out
}
