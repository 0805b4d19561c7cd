package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePathSegment_PlusIsLiteral(t *testing.T) {
	v, err := decodePathSegment("A+B")
	require.NoError(t, err)
	assert.Equal(t, "A+B", v)
}

func TestDecodePathSegment_PercentTwentyIsSpace(t *testing.T) {
	v, err := decodePathSegment("A%20B")
	require.NoError(t, err)
	assert.Equal(t, "A B", v)
}

func TestDecodeQueryToken_PlusIsSpace(t *testing.T) {
	v, err := decodeQueryToken("A+B")
	require.NoError(t, err)
	assert.Equal(t, "A B", v)
}

func TestDecodeQueryToken_RejectsNUL(t *testing.T) {
	_, err := decodeQueryToken("A%00B")
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrIllegalNULInValue, ee.Code)
}

func TestEncodeDecodeRoundTrip_Path(t *testing.T) {
	orig := "ABC/DEF 123"
	enc := encodePathSegment(orig)
	dec, err := decodePathSegment(enc)
	require.NoError(t, err)
	assert.Equal(t, orig, dec)
}

func TestEncodeDecodeRoundTrip_Query(t *testing.T) {
	orig := "a value&with=chars"
	enc := encodeQueryToken(orig)
	dec, err := decodeQueryToken(enc)
	require.NoError(t, err)
	assert.Equal(t, orig, dec)
}

func TestEncodePathSegment_EscapesCSET82SubDelims(t *testing.T) {
	assert.Equal(t, "A%3AB%3DC%26D", encodePathSegment("A:B=C&D"))
}

func TestNonEmptySplit(t *testing.T) {
	assert.Equal(t, []string{"01", "123", "22", "TEST"}, nonEmptySplit("/01/123/22/TEST/", '/'))
	assert.Nil(t, nonEmptySplit("", '/'))
	assert.Nil(t, nonEmptySplit("///", '/'))
}
