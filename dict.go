package gs1

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// CharSet tags the character set a component's value must belong to
// (§3 of the spec's data model).
type CharSet int

const (
	CSetN CharSet = iota // numeric
	CSetX                // CSET82
	CSetY                // CSET39
	CSetZ                // CSET64
)

// Optionality marks whether a component is mandatory or optional
// within its AI's value.
type Optionality int

const (
	OptMandatory Optionality = iota
	OptOptional
)

// DLAttrClass classifies how an AI may appear in a GS1 Digital Link
// URI's query string (§3, §4.5).
type DLAttrClass int

const (
	DLNone DLAttrClass = iota
	DLPermitted
	DLUnknown
)

// Component describes one fixed- or variable-length field within an
// AI's value.
type Component struct {
	CSet    CharSet
	Min     int
	Max     int
	Opt     Optionality
	Linters []LinterFunc
}

// ExGroup is one `ex=A,B,...` mutual-exclusion group: no AI matching
// one of the listed prefixes may co-occur with the entry that declares
// the group.
type ExGroup struct {
	AIs []string
}

// ReqGroup is one `req=...` requirement: satisfied if any one of its
// alternatives (each itself a set of AIs that must ALL be present,
// joined with `+`) is wholly present.
type ReqGroup struct {
	Alternatives [][]string
}

// Entry is one AI Dictionary record (§3, §4.1).
type Entry struct {
	Code         string
	FNC1Required bool
	DLClass      DLAttrClass
	Components   []Component
	DLPKey       bool
	DLPQualChain [][]string // alternative qualifier chains from `dlpkey=Q1,Q2|Q3`
	Mutex        []ExGroup
	Requisites   []ReqGroup

	// vivified marks pseudo-entries synthesised by Lookup (§4.2);
	// they are never part of a loaded Dictionary's own entry slice.
	vivified bool
}

// MinLen and MaxLen are the inclusive bounds on the AI's total value
// length, summing mandatory components as minima and all components
// as maxima (§4.4's "not less than the sum of mandatory component
// minima; not greater than the sum of maxima").
func (e *Entry) MinLen() int {
	total := 0
	for _, c := range e.Components {
		if c.Opt == OptMandatory {
			total += c.Min
		}
	}
	return total
}

func (e *Entry) MaxLen() int {
	total := 0
	for _, c := range e.Components {
		total += c.Max
	}
	return total
}

const (
	MinAILen = 2
	MaxAILen = 4
)

// Dictionary is the immutable, indexed AI table (§4.1). It is built
// once via NewDictionary and never mutated afterward; replacing it on
// an Engine with one of a different Fingerprint rebuilds the derived
// structures (the key-qualifier index and the lookup cache).
type Dictionary struct {
	entries                   []Entry // sorted by Code
	lengthByPrefix            [100]int8
	fixedValueLengthByPrefix  [100]bool
	fingerprint               uint64
}

// ErrDictionaryPrefixConflict is the one fatal, load-time-only error
// described in §4.1 and §7: two AI codes sharing a 2-digit prefix must
// agree on AI code length.
type ErrDictionaryPrefixConflict struct {
	Prefix string
}

func (e *ErrDictionaryPrefixConflict) Error() string {
	return "gs1: dictionary prefix " + e.Prefix + " has conflicting AI code lengths"
}

// NewDictionary builds an immutable Dictionary from a set of entries,
// validating the prefix-length-agreement invariant of §4.1.
func NewDictionary(entries []Entry) (*Dictionary, error) {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Code < sorted[j].Code })

	d := &Dictionary{entries: sorted}

	for _, e := range sorted {
		prefix := prefixIndex(e.Code)
		if prefix < 0 {
			continue
		}
		codeLen := int8(len(e.Code))
		if d.lengthByPrefix[prefix] != 0 && d.lengthByPrefix[prefix] != codeLen {
			return nil, &ErrDictionaryPrefixConflict{Prefix: e.Code[:2]}
		}
		d.lengthByPrefix[prefix] = codeLen
		if len(e.Components) == 1 && e.Components[0].Min == e.Components[0].Max {
			d.fixedValueLengthByPrefix[prefix] = true
		}
	}

	d.fingerprint = fingerprintEntries(sorted)
	return d, nil
}

// prefixIndex returns the 2-digit numeric prefix of an AI code, or -1
// if the code does not start with two digits.
func prefixIndex(code string) int {
	if len(code) < 2 {
		return -1
	}
	n := 0
	for i := 0; i < 2; i++ {
		c := code[i]
		if c < '0' || c > '9' {
			return -1
		}
		n = n*10 + int(c-'0')
	}
	return n
}

// Fingerprint returns a hash of the dictionary's entries, used by
// Engine.SetDictionary to skip rebuilding derived structures when a
// replacement dictionary is byte-identical to the current one (§3 of
// SPEC_FULL.md).
func (d *Dictionary) Fingerprint() uint64 { return d.fingerprint }

func fingerprintEntries(entries []Entry) uint64 {
	h := xxhash.New()
	for _, e := range entries {
		_, _ = h.WriteString(e.Code)
		if e.FNC1Required {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
		for _, c := range e.Components {
			_, _ = h.Write([]byte{byte(c.CSet), byte(c.Min), byte(c.Max), byte(c.Opt)})
		}
		if e.DLPKey {
			_, _ = h.Write([]byte{1})
		} else {
			_, _ = h.Write([]byte{0})
		}
		for _, chain := range e.DLPQualChain {
			_, _ = h.Write([]byte{'|'})
			for _, q := range chain {
				_, _ = h.WriteString(q + ",")
			}
		}
	}
	return h.Sum64()
}

// Entries returns the dictionary's entries in code order.
func (d *Dictionary) Entries() []Entry { return d.entries }

// LengthForPrefix returns the AI code length declared for the 2-digit
// numeric prefix pp, or 0 if no entry in the dictionary starts with
// it.
func (d *Dictionary) LengthForPrefix(pp int) int8 {
	if pp < 0 || pp > 99 {
		return 0
	}
	return d.lengthByPrefix[pp]
}

// HasFixedValueLength reports whether AIs under the 2-digit numeric
// prefix pp have a fixed-length value, used only to decide the FNC1
// requirement of a vivified pseudo-entry (§4.2).
func (d *Dictionary) HasFixedValueLength(pp int) bool {
	if pp < 0 || pp > 99 {
		return false
	}
	return d.fixedValueLengthByPrefix[pp]
}
