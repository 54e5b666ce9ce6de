package cbor

import (
	"testing"

	fxcbor "github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests check our hand-built head encoding against a real CBOR
// implementation's canonical output, to catch any drift from RFC 7049
// §3.9 deterministic encoding. fxamacker/cbor is never imported outside
// _test.go files: the codec itself must be hand-built per the spec, this
// only verifies the work.
func canonicalOpts(t *testing.T) fxcbor.EncMode {
	t.Helper()
	mode, err := fxcbor.CanonicalEncOptions().EncMode()
	require.NoError(t, err)
	return mode
}

func TestInteropUint64MatchesCanonicalCBOR(t *testing.T) {
	mode := canonicalOpts(t)
	for _, v := range []uint64{0, 1, 23, 24, 255, 256, 65535, 65536, 4294967295, 4294967296, 18446744073709551615} {
		want, err := mode.Marshal(v)
		require.NoError(t, err)
		assert.Equal(t, want, EncodeUint64(v), "value %d", v)
	}
}

func TestInteropBytesMatchesCanonicalCBOR(t *testing.T) {
	mode := canonicalOpts(t)
	for _, b := range [][]byte{{}, {1, 2, 3}, make([]byte, 300)} {
		want, err := mode.Marshal(b)
		require.NoError(t, err)
		assert.Equal(t, want, EncodeBytes(b))
	}
}

func TestInteropTextMatchesCanonicalCBOR(t *testing.T) {
	mode := canonicalOpts(t)
	for _, s := range []string{"", "hello", "00", "5", string(make([]byte, 300))} {
		want, err := mode.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, want, EncodeText(s))
	}
}

// A real CBOR decoder must also be able to parse our output, as a second
// cross-check on framing correctness.
func TestInteropDecodeOurEncodingWithFxamacker(t *testing.T) {
	var got uint64
	require.NoError(t, fxcbor.Unmarshal(EncodeUint64(70000), &got))
	assert.Equal(t, uint64(70000), got)

	var gotBytes []byte
	require.NoError(t, fxcbor.Unmarshal(EncodeBytes([]byte("payload")), &gotBytes))
	assert.Equal(t, []byte("payload"), gotBytes)

	var gotText string
	require.NoError(t, fxcbor.Unmarshal(EncodeText("hello world"), &gotText))
	assert.Equal(t, "hello world", gotText)
}
