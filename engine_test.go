package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	return NewEngine(DefaultDictionary(), NewConfig())
}

func TestEngine_ParseBracketed_RunsValidators(t *testing.T) {
	e := newTestEngine()
	_, err := e.ParseBracketed([]byte("(3920)000100(3930)840000100"))
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrInvalidAIPairs, ee.Code)
}

func TestEngine_ParseBracketed_OK(t *testing.T) {
	e := newTestEngine()
	buf, err := e.ParseBracketed([]byte("(01)12312312312333(10)ABC123"))
	require.NoError(t, err)
	assert.Len(t, buf.Parsed(), 2)
}

func TestEngine_ParseUnbracketed_OK(t *testing.T) {
	e := newTestEngine()
	buf, err := e.ParseUnbracketed([]byte("^0112312312312333^10ABC123"))
	require.NoError(t, err)
	assert.Len(t, buf.Parsed(), 2)
}

func TestEngine_ParseDLURI_AndGenerate_RoundTrip(t *testing.T) {
	e := newTestEngine()
	buf, err := e.ParseDLURI([]byte("https://a/01/12312312312333/22/TEST/10/ABC/21/XYZ"))
	require.NoError(t, err)

	uri, err := e.GenerateDLURI(buf, "a")
	require.NoError(t, err)
	assert.Equal(t, "https://a/01/12312312312333/22/TEST/10/ABC/21/XYZ", string(uri))
}

func TestEngine_InputTooLong(t *testing.T) {
	e := newTestEngine()
	long := make([]byte, MaxInputLen+1)
	for i := range long {
		long[i] = 'A'
	}
	_, err := e.ParseBracketed(long)
	require.Error(t, err)
}

func TestEngine_SetDictionary_SkipsRebuildOnIdenticalFingerprint(t *testing.T) {
	e := newTestEngine()
	before := e.idx
	e.SetDictionary(e.Dictionary())
	assert.Same(t, before, e.idx)
}

func TestEngine_SetDictionary_RebuildsOnChange(t *testing.T) {
	e := newTestEngine()
	before := e.idx

	d2, err := NewDictionary([]Entry{
		{Code: "00", Components: []Component{{CSet: CSetN, Min: 18, Max: 18}}, DLPKey: true},
	})
	require.NoError(t, err)
	e.SetDictionary(d2)
	assert.NotSame(t, before, e.idx)
}

func TestEngine_SetValidatorEnabled_LockedRefused(t *testing.T) {
	e := newTestEngine()
	assert.False(t, e.SetValidatorEnabled(ValidatorMutexAIs, false))
}

func TestEngine_SetValidatorEnabled_UnlockedToggle(t *testing.T) {
	e := newTestEngine()
	assert.True(t, e.SetValidatorEnabled(ValidatorRequisiteAIs, false))
	buf, err := e.ParseBracketed([]byte("(403)ABC")) // normally requires 402
	require.NoError(t, err)
	assert.Len(t, buf.Parsed(), 1)
}

func TestEngine_SetValidatorEnabled_UnknownAINotDLAttrSyncsConfig(t *testing.T) {
	e := newTestEngine()
	assert.True(t, e.Config().GetBool("unknownAINotDLAttr"))
	require.True(t, e.SetValidatorEnabled(ValidatorUnknownAINotDLAttr, false))
	assert.False(t, e.Config().GetBool("unknownAINotDLAttr"))
}

func TestEngine_PermitUnknownAIs(t *testing.T) {
	e := newTestEngine()
	_, err := e.ParseUnbracketed([]byte("^77ABC"))
	require.Error(t, err)

	e.Config().SetBool("permitUnknownAIs", true)
	buf, err := e.ParseUnbracketed([]byte("^7712345^10ABC"))
	require.NoError(t, err)
	assert.Len(t, buf.Parsed(), 2)
}
