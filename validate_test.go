package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBuf(t *testing.T, d *Dictionary, pairs [][2]string) *Buffer {
	t.Helper()
	buf := newBuffer()
	for _, p := range pairs {
		e, ok := d.findExact(p[0])
		require.True(t, ok, "AI %s must exist in the test dictionary", p[0])
		require.NoError(t, buf.appendAI(p[0], []byte(p[1]), buf.needsFNC1Prefix(), e, KindAIValue, ATTRSentinel))
	}
	return buf
}

func TestValidateMutexAIs(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{{"3920", "000100"}, {"3930", "840000100"}})
	err := validateMutexAIs(buf, d)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrInvalidAIPairs, ee.Code)
}

func TestValidateMutexAIs_OK(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{{"3920", "000100"}})
	assert.NoError(t, validateMutexAIs(buf, d))
}

func TestValidateRequisiteAIs(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{{"403", "ABC"}})
	err := validateRequisiteAIs(buf, d)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrRequiredAIsNotSatisfied, ee.Code)
}

func TestValidateRequisiteAIs_Satisfied(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{{"402", "12345678901234567"}, {"403", "ABC"}})
	assert.NoError(t, validateRequisiteAIs(buf, d))
}

func TestValidateRepeatedAIs(t *testing.T) {
	d := DefaultDictionary()
	buf := newBuffer()
	e, _ := d.findExact("10")
	require.NoError(t, buf.appendAI("10", []byte("ABC"), true, e, KindAIValue, ATTRSentinel))
	require.NoError(t, buf.appendAI("10", []byte("XYZ"), true, e, KindAIValue, ATTRSentinel))
	err := validateRepeatedAIs(buf, d)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrInstancesOfAIHaveDifferentValues, ee.Code)
}

func TestValidateRepeatedAIs_SameValueOK(t *testing.T) {
	d := DefaultDictionary()
	buf := newBuffer()
	e, _ := d.findExact("10")
	require.NoError(t, buf.appendAI("10", []byte("ABC"), true, e, KindAIValue, ATTRSentinel))
	require.NoError(t, buf.appendAI("10", []byte("ABC"), true, e, KindAIValue, ATTRSentinel))
	assert.NoError(t, validateRepeatedAIs(buf, d))
}

func TestValidateDigsigSerialKey(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{
		{"253", "1231231231233"}, // no serial beyond the mandatory 13 digits
		{"8030", "c2lnbmF0dXJl"},
	})
	err := validateDigsigSerialKey(buf, d)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrSerialNotPresent, ee.Code)
}

func TestValidateDigsigSerialKey_SerialPresentOK(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{
		{"253", "1231231231233SERIAL"},
		{"8030", "c2lnbmF0dXJl"},
	})
	assert.NoError(t, validateDigsigSerialKey(buf, d))
}

func TestValidateDigsigSerialKey_NoDigsigNoCheck(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{{"253", "1231231231233"}})
	assert.NoError(t, validateDigsigSerialKey(buf, d))
}

func TestRunValidators_AbortsOnFirstFailure(t *testing.T) {
	d := DefaultDictionary()
	buf := buildBuf(t, d, [][2]string{{"3920", "000100"}, {"3930", "840000100"}})
	err := runValidators(defaultValidators(), buf, d)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrInvalidAIPairs, ee.Code)
}

func TestDefaultValidators_LockedFlags(t *testing.T) {
	vs := defaultValidators()
	for _, v := range vs {
		switch v.ID {
		case ValidatorRequisiteAIs, ValidatorUnknownAINotDLAttr:
			assert.False(t, v.Locked)
		default:
			assert.True(t, v.Locked)
		}
		assert.True(t, v.Enabled)
	}
}

func TestCodePrefixMatches(t *testing.T) {
	assert.True(t, codePrefixMatches("393", "3930"))
	assert.False(t, codePrefixMatches("393", "392"))
	assert.False(t, codePrefixMatches("3930", "393"))
}
