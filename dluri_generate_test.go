package gs1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDLURI_FullQualifierChain(t *testing.T) {
	d, idx, cfg := newTestEngineParts(t)
	buf, err := ParseBracketed([]byte("(01)12312312312333(22)TEST(10)ABC(21)XYZ"), d, false)
	require.NoError(t, err)

	uri, err := GenerateDLURI(buf, "a", d, idx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://a/01/12312312312333/22/TEST/10/ABC/21/XYZ", string(uri))
}

func TestGenerateDLURI_LeftoverAttributeGoesToQuery(t *testing.T) {
	d, idx, cfg := newTestEngineParts(t)
	buf, err := ParseBracketed([]byte("(01)12312312312333(99)ABC"), d, false)
	require.NoError(t, err)

	uri, err := GenerateDLURI(buf, "a", d, idx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://a/01/12312312312333?99=ABC", string(uri))
}

func TestGenerateDLURI_FixedAttributesBeforeVariable(t *testing.T) {
	d, idx, cfg := newTestEngineParts(t)
	buf, err := ParseBracketed([]byte("(01)12312312312333(90)NINETY(422)356"), d, false)
	require.NoError(t, err)

	uri, err := GenerateDLURI(buf, "a", d, idx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://a/01/12312312312333?422=356&90=NINETY", string(uri))
}

func TestGenerateDLURI_NoPrimaryKeyPresent(t *testing.T) {
	d, idx, cfg := newTestEngineParts(t)
	buf, err := ParseBracketed([]byte("(90)NINETY"), d, false)
	require.NoError(t, err)

	_, err = GenerateDLURI(buf, "a", d, idx, cfg)
	require.Error(t, err)
	var ee *EngineError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, ErrCannotCreateDLURIWithoutPrimaryKeyAI, ee.Code)
}

func TestGenerateDLURI_PartialQualifierChain(t *testing.T) {
	d, idx, cfg := newTestEngineParts(t)
	buf, err := ParseBracketed([]byte("(01)12312312312333(10)ABC"), d, false)
	require.NoError(t, err)

	uri, err := GenerateDLURI(buf, "a", d, idx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://a/01/12312312312333/10/ABC", string(uri))
}
