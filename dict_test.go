package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_MinMaxLen(t *testing.T) {
	e := &Entry{Components: []Component{
		{Min: 13, Max: 13, Opt: OptMandatory},
		{Min: 0, Max: 17, Opt: OptOptional},
	}}
	assert.Equal(t, 13, e.MinLen())
	assert.Equal(t, 30, e.MaxLen())
}

func TestNewDictionary_PrefixConflict(t *testing.T) {
	_, err := NewDictionary([]Entry{
		{Code: "10", Components: []Component{{Min: 1, Max: 20}}},
		{Code: "100", Components: []Component{{Min: 1, Max: 1}}},
	})
	require.Error(t, err)
	var prefixErr *ErrDictionaryPrefixConflict
	require.ErrorAs(t, err, &prefixErr)
	assert.Equal(t, "10", prefixErr.Prefix)
}

func TestNewDictionary_Sorted(t *testing.T) {
	d, err := NewDictionary([]Entry{
		{Code: "99", Components: []Component{{Min: 1, Max: 1}}},
		{Code: "10", Components: []Component{{Min: 1, Max: 1}}},
	})
	require.NoError(t, err)
	entries := d.Entries()
	assert.Equal(t, "10", entries[0].Code)
	assert.Equal(t, "99", entries[1].Code)
}

func TestDictionary_LengthAndFixedValueByPrefix(t *testing.T) {
	d, err := NewDictionary([]Entry{
		{Code: "01", Components: []Component{{Min: 14, Max: 14}}},
		{Code: "10", Components: []Component{{Min: 1, Max: 20}}},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, d.LengthForPrefix(1))
	assert.True(t, d.HasFixedValueLength(1))
	assert.False(t, d.HasFixedValueLength(10))
	assert.EqualValues(t, 0, d.LengthForPrefix(55))
}

func TestDictionary_FingerprintStableAcrossEquivalentTables(t *testing.T) {
	entries := []Entry{{Code: "10", FNC1Required: true, Components: []Component{{CSet: CSetX, Min: 1, Max: 20}}}}
	d1, err := NewDictionary(entries)
	require.NoError(t, err)
	d2, err := NewDictionary(entries)
	require.NoError(t, err)
	assert.Equal(t, d1.Fingerprint(), d2.Fingerprint())
}

func TestDictionary_FingerprintDiffersOnContentChange(t *testing.T) {
	d1, err := NewDictionary([]Entry{{Code: "10", Components: []Component{{CSet: CSetX, Min: 1, Max: 20}}}})
	require.NoError(t, err)
	d2, err := NewDictionary([]Entry{{Code: "10", Components: []Component{{CSet: CSetX, Min: 1, Max: 30}}}})
	require.NoError(t, err)
	assert.NotEqual(t, d1.Fingerprint(), d2.Fingerprint())
}

func TestDefaultDictionary_Loads(t *testing.T) {
	d := DefaultDictionary()
	entries := d.Entries()
	assert.NotEmpty(t, entries)
	_, ok := d.findExact("01")
	assert.True(t, ok)
}
