package pentacodec

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dxfeed/pentacodec/bufsrc"
)

func roundTripBytes(t *testing.T, symbol *string) []byte {
	t.Helper()
	var buf bytes.Buffer
	sink := bufsrc.NewSink(&buf)
	require.NoError(t, WriteSymbol(sink, symbol))
	require.NoError(t, sink.Flush())
	return buf.Bytes()
}

func TestWriteReadSymbolCipherableStrings(t *testing.T) {
	symbols := []string{"A", "IBM", "AAPL", "/AAAAAA", "$AAAAAA", "a", "."}
	for _, s := range symbols {
		s := s
		wire := roundTripBytes(t, &s)
		outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(wire)), nil)
		require.NoError(t, err)
		require.Equal(t, KindCipher, outcome.Kind)
		assert.Equal(t, Encode(&s), outcome.Cipher)
	}
}

func TestWriteReadSymbolNull(t *testing.T) {
	wire := roundTripBytes(t, nil)
	assert.Equal(t, []byte{tagNull}, wire)

	outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(wire)), nil)
	require.NoError(t, err)
	assert.Equal(t, KindNull, outcome.Kind)
}

func TestWriteReadSymbolEmpty(t *testing.T) {
	empty := ""
	wire := roundTripBytes(t, &empty)
	assert.Equal(t, []byte{tagEmpty}, wire)

	outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(wire)), nil)
	require.NoError(t, err)
	// Empty is itself cipherable (penta 0, non-zero cipher).
	assert.Equal(t, KindCipher, outcome.Kind)
	assert.Equal(t, encodePenta(0, 0), outcome.Cipher)
}

func TestWriteReadSymbolIneligibleString(t *testing.T) {
	s := "O'BRIEN"
	wire := roundTripBytes(t, &s)
	require.NotEmpty(t, wire)
	assert.Equal(t, uint8(tagCESU8), wire[0])

	outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(wire)), nil)
	require.NoError(t, err)
	require.Equal(t, KindString, outcome.Kind)
	assert.Equal(t, s, outcome.String)
}

func TestWriteReadSymbolUsesScratchWithoutAliasingCipher(t *testing.T) {
	s := "O'BRIEN"
	wire := roundTripBytes(t, &s)
	scratch := make([]uint16, 4) // shorter than the string, forces own alloc
	outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(wire)), scratch)
	require.NoError(t, err)
	assert.Equal(t, KindString, outcome.Kind)
	assert.Equal(t, s, outcome.String)

	scratch2 := make([]uint16, 64) // long enough to be reused internally
	outcome2, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(wire)), scratch2)
	require.NoError(t, err)
	assert.Equal(t, KindString, outcome2.Kind)
	assert.Equal(t, s, outcome2.String)
}

func TestReadSymbolReservedTagsFail(t *testing.T) {
	for _, b := range []byte{0xC0, 0xD5, 0xDF, 0xF8, 0xFA, 0xFB} {
		_, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader([]byte{b})), nil)
		assert.ErrorIs(t, err, ErrReservedBitSequence, "tag %#x", b)
	}
}

func TestReadSymbolUTF8Tag(t *testing.T) {
	var buf bytes.Buffer
	sink := bufsrc.NewSink(&buf)
	require.NoError(t, sink.WriteUint8(tagUTF8))
	require.NoError(t, sink.WriteUTFString("hello"))
	require.NoError(t, sink.Flush())

	outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(buf.Bytes())), nil)
	require.NoError(t, err)
	assert.Equal(t, KindString, outcome.Kind)
	assert.Equal(t, "hello", outcome.String)
}

func TestReadSymbolCESU8NullAndEmpty(t *testing.T) {
	var nullBuf bytes.Buffer
	sink := bufsrc.NewSink(&nullBuf)
	require.NoError(t, sink.WriteUint8(tagCESU8))
	require.NoError(t, sink.WriteCompactLong(-1))
	require.NoError(t, sink.Flush())
	outcome, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(nullBuf.Bytes())), nil)
	require.NoError(t, err)
	assert.Equal(t, KindNull, outcome.Kind)

	var emptyBuf bytes.Buffer
	sink = bufsrc.NewSink(&emptyBuf)
	require.NoError(t, sink.WriteUint8(tagCESU8))
	require.NoError(t, sink.WriteCompactLong(0))
	require.NoError(t, sink.Flush())
	outcome, err = ReadSymbol(bufsrc.NewSource(bytes.NewReader(emptyBuf.Bytes())), nil)
	require.NoError(t, err)
	assert.Equal(t, KindString, outcome.Kind)
	assert.Equal(t, "", outcome.String)
}

func TestReadSymbolCESU8IllegalLength(t *testing.T) {
	var buf bytes.Buffer
	sink := bufsrc.NewSink(&buf)
	require.NoError(t, sink.WriteUint8(tagCESU8))
	require.NoError(t, sink.WriteCompactLong(-2))
	require.NoError(t, sink.Flush())

	_, err := ReadSymbol(bufsrc.NewSource(bytes.NewReader(buf.Bytes())), nil)
	assert.ErrorIs(t, err, ErrIllegalLength)
}

func TestWriteSymbolPicksMinimalTier(t *testing.T) {
	a := "A"
	wire := roundTripBytes(t, &a)
	require.Len(t, wire, 2)
	assert.Equal(t, byte(0x00), wire[0]&0x80, "single char fits the 15-bit tier")

	aaaa := "AAAA" // plen=20
	wire = roundTripBytes(t, &aaaa)
	require.Len(t, wire, 3)
	assert.Equal(t, byte(0xE0), wire[0]&0xF0, "plen=20 uses the 20-bit tier")

	slash7 := "/AAAAAA" // plen=35
	wire = roundTripBytes(t, &slash7)
	require.Len(t, wire, 5)
	assert.Equal(t, byte(0xF0), wire[0]&0xF8, "plen=35 uses the 35-bit tier")
}
