package pentacodec

import "errors"

// ByteSource is the externally-owned input stream the wire codec reads
// framed symbols from. Implementations are single-owner and need not be
// thread-safe; ReadSymbol reads exactly the bytes implied by its tag byte
// and nothing more, but leaves the source positioned mid-record (poisoned)
// on any error.
type ByteSource interface {
	ReadUint8() (uint8, error)
	ReadUint16BE() (uint16, error)
	ReadInt32BE() (int32, error)
	// ReadCompactLong reads a pre-existing variable-length signed integer
	// encoding; its exact wire format is owned by the byte-source
	// implementation, not by this package.
	ReadCompactLong() (int64, error)
	// ReadUTFChar reads one Unicode code point encoded per the source's
	// modified-UTF scheme.
	ReadUTFChar() (rune, error)
	ReadUTFString() (string, error)
}

// ByteSink is the write-side mirror of ByteSource, used by WriteSymbol.
type ByteSink interface {
	WriteUint8(uint8) error
	WriteUint16BE(uint16) error
	WriteInt32BE(int32) error
	WriteCompactLong(int64) error
	WriteUTFChar(rune) error
	WriteUTFString(string) error
}

// ErrReservedBitSequence is returned by ReadSymbol when the first byte
// falls in one of the two ranges reserved for future framing tiers
// (0xC0..0xDF, 0xF8..0xFB). The source is left poisoned.
var ErrReservedBitSequence = errors.New("pentacodec: reserved bit sequence")

// ErrIllegalLength is returned by ReadSymbol's CESU-8 branch when the
// decoded length is negative (other than the -1 null sentinel) or exceeds
// the representable range.
var ErrIllegalLength = errors.New("pentacodec: illegal length")

// ErrCodePointBeyondBMP is returned by ReadSymbol's CESU-8 branch when a
// decoded code point does not fit in 16 bits.
var ErrCodePointBeyondBMP = errors.New("pentacodec: code point beyond BMP")
