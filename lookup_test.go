package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_ExactMatch(t *testing.T) {
	d := DefaultDictionary()
	e, ok := d.Lookup([]byte("0012345678901234567"), 2, false)
	require.True(t, ok)
	assert.Equal(t, "00", e.Code)
}

func TestLookup_UndeclaredPrefixRejectedByDefault(t *testing.T) {
	d := DefaultDictionary()
	_, ok := d.Lookup([]byte("7712345"), 0, false)
	assert.False(t, ok)
}

func TestLookup_VivifiesFixedLengthUnknown(t *testing.T) {
	d := DefaultDictionary()
	// The 410-417 family declares a 3-digit code length for prefix
	// "41"; "419" shares that prefix but isn't one of the loaded
	// entries, so it is vivified rather than rejected.
	e, ok := d.Lookup([]byte("4199999999999999"), 0, true)
	require.True(t, ok)
	assert.Equal(t, "419", e.Code)
	assert.False(t, e.FNC1Required)
}

func TestLookup_GenericUnknownWhenPrefixWhollyUndeclared(t *testing.T) {
	d := DefaultDictionary()
	e, ok := d.Lookup([]byte("7712345678"), 0, true)
	require.True(t, ok)
	assert.Equal(t, "", e.Code)
	assert.True(t, e.FNC1Required)
}

func TestLookup_RejectsNonDigitPrefix(t *testing.T) {
	d := DefaultDictionary()
	_, ok := d.Lookup([]byte("AB12345"), 0, true)
	assert.False(t, ok)
}

func TestLookup_ExactLenOutOfBounds(t *testing.T) {
	d := DefaultDictionary()
	_, ok := d.Lookup([]byte("0012345"), 1, true)
	assert.False(t, ok)
	_, ok = d.Lookup([]byte("0012345"), 5, true)
	assert.False(t, ok)
}

func TestLookup_ExactLenMismatchWithDeclaredLength(t *testing.T) {
	d := DefaultDictionary()
	// "01" declares length 2, so claiming exactLen=3 must fail.
	_, ok := d.Lookup([]byte("01123456789012"), 3, true)
	assert.False(t, ok)
}

func TestVivifyFixed_CachesByCode(t *testing.T) {
	d := DefaultDictionary()
	cache := newLookupCache()
	e1, ok := d.vivifyFixed("4199", 41, cache)
	require.True(t, ok)
	e2, ok := d.vivifyFixed("4199", 41, cache)
	require.True(t, ok)
	assert.Same(t, e1, e2)
}
