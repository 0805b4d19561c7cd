package gs1

import (
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// vivifyCacheSize bounds the memoization of synthesised unknown-AI
// pseudo-entries (§4.2): unknown-AI traffic tends to cluster on a
// handful of hot prefixes, so a small cache avoids reallocating the
// same pseudo-entry on every call without growing unbounded.
const vivifyCacheSize = 64

// lookupCache memoizes vivified pseudo-entries by their synthesising
// code. It is rebuilt (cleared) whenever the owning Engine's
// dictionary is replaced. Dictionary.Lookup passes no cache, so the
// parsers, which all go through Lookup, do not memoize vivified
// entries; only direct vivifyFixed calls that pass one do.
type lookupCache struct {
	cache *lru.Cache[string, *Entry]
}

func newLookupCache() *lookupCache {
	c, _ := lru.New[string, *Entry](vivifyCacheSize)
	return &lookupCache{cache: c}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

var genericUnknownEntry = &Entry{
	Code:         "",
	FNC1Required: true,
	DLClass:      DLUnknown,
	Components:   []Component{{CSet: CSetX, Min: 1, Max: 90, Opt: OptMandatory}},
	vivified:     true,
}

// Lookup resolves a prefix of data to a dictionary Entry, implementing
// the algorithm of §4.2: a binary search for a genuine dictionary
// entry at the length declared for the 2-digit prefix, falling back
// to vivification of a pseudo-entry when permitUnknown is set. Lookup
// is pure with respect to the dictionary: it neither mutates nor
// depends on any engine-owned state.
//
// exactLen, when nonzero, is the caller's already-known AI code length
// (the bracketed-string parser reads it off the closing paren rather
// than inferring it); zero means "infer the length from the
// dictionary" (used when extracting from the unbracketed canonical
// form).
func (d *Dictionary) Lookup(data []byte, exactLen int, permitUnknown bool) (*Entry, bool) {
	return d.lookupWithCache(data, exactLen, permitUnknown, nil)
}

func (d *Dictionary) lookupWithCache(data []byte, exactLen int, permitUnknown bool, cache *lookupCache) (*Entry, bool) {
	if exactLen != 0 && (exactLen < MinAILen || exactLen > MaxAILen) {
		return nil, false
	}

	checkLen := exactLen
	if checkLen < MinAILen {
		checkLen = MinAILen
	}
	if len(data) < checkLen {
		return nil, false
	}
	for i := 0; i < checkLen; i++ {
		if !isDigit(data[i]) {
			return nil, false
		}
	}

	pp := prefixIndex(string(data[:2]))
	declaredLen := int(d.LengthForPrefix(pp))

	if declaredLen != 0 {
		if exactLen != 0 && exactLen != declaredLen {
			return nil, false
		}
		if !allDigits(data, checkLen, declaredLen) {
			return nil, false
		}
		code := string(data[:declaredLen])
		if e, ok := d.findExact(code); ok {
			return e, true
		}
		if !permitUnknown {
			return nil, false
		}
		return d.vivifyFixed(code, pp, cache)
	}

	if !permitUnknown {
		return nil, false
	}
	if exactLen != 0 {
		if !allDigits(data, checkLen, exactLen) {
			return nil, false
		}
		return d.vivifyFixed(string(data[:exactLen]), pp, cache)
	}
	return genericUnknownEntry, true
}

func allDigits(data []byte, from, to int) bool {
	if len(data) < to {
		return false
	}
	for i := from; i < to; i++ {
		if !isDigit(data[i]) {
			return false
		}
	}
	return true
}

func (d *Dictionary) findExact(code string) (*Entry, bool) {
	entries := d.entries
	i := sort.Search(len(entries), func(i int) bool { return entries[i].Code >= code })
	if i < len(entries) && entries[i].Code == code {
		return &entries[i], true
	}
	return nil, false
}

// vivifyFixed synthesises a pseudo-entry whose code length was
// declared by the dictionary's lengthByPrefix table even though the
// specific code is absent (§4.2). The FNC1 requirement is derived from
// fixedValueLengthByPrefix: unknown fixed-length AIs don't require it,
// unknown variable-length AIs do.
func (d *Dictionary) vivifyFixed(code string, pp int, cache *lookupCache) (*Entry, bool) {
	if cache != nil {
		if e, ok := cache.cache.Get(code); ok {
			return e, true
		}
	}
	e := &Entry{
		Code:         code,
		FNC1Required: !d.HasFixedValueLength(pp),
		DLClass:      DLUnknown,
		Components:   []Component{{CSet: CSetX, Min: 1, Max: 90, Opt: OptMandatory}},
		vivified:     true,
	}
	if cache != nil {
		cache.cache.Add(code, e)
	}
	return e, true
}
