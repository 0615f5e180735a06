package pentacodec

import "math"

// Wire tag byte ranges. The top bits of the first byte select one of nine
// mutually exclusive framings; each *Max constant is the inclusive upper
// bound of its range, and ReadSymbol checks the ranges in this order.
const (
	tag15BitMax     = 0x7F
	tag30BitMax     = 0xBF
	tagReserved1Max = 0xDF
	tag20BitMax     = 0xEF
	tag35BitMax     = 0xF7
	tagReserved2Max = 0xFB
	tagUTF8         = 0xFC
	tagCESU8        = 0xFD
	tagEmpty        = 0xFE
	tagNull         = 0xFF
)

// OutcomeKind discriminates the shape of a ReadSymbol result.
type OutcomeKind int

const (
	// KindCipher means Outcome.Cipher holds a non-zero cipher for the
	// symbol just read.
	KindCipher OutcomeKind = iota
	// KindNull means the wire carried a void/null symbol.
	KindNull
	// KindString means Outcome.String holds the decoded symbol text --
	// either because it arrived as a string on the wire (UTF-8, CESU-8) or
	// because its penta run could not be cipher-encoded.
	KindString
)

// ReadOutcome is the discriminated result of ReadSymbol. Exactly one of
// Cipher or String is meaningful, selected by Kind.
type ReadOutcome struct {
	Kind   OutcomeKind
	Cipher uint32
	String string
}

// ReadSymbol reads one tagged symbol from src. scratch is an
// optional caller-owned buffer the CESU-8 branch may reuse to avoid
// allocating when the decoded run fits; ReadSymbol never retains a
// reference to it past the call. Passing nil is always valid.
func ReadSymbol(src ByteSource, scratch []uint16) (ReadOutcome, error) {
	i, err := src.ReadUint8()
	if err != nil {
		return ReadOutcome{}, err
	}

	var penta uint64
	switch {
	case i <= tag15BitMax:
		lo, err := src.ReadUint8()
		if err != nil {
			return ReadOutcome{}, err
		}
		penta = uint64(i)<<8 | uint64(lo)
	case i <= tag30BitMax:
		mid, err := src.ReadUint8()
		if err != nil {
			return ReadOutcome{}, err
		}
		lo, err := src.ReadUint16BE()
		if err != nil {
			return ReadOutcome{}, err
		}
		penta = uint64(i&0x3F)<<24 | uint64(mid)<<16 | uint64(lo)
	case i <= tagReserved1Max:
		return ReadOutcome{}, ErrReservedBitSequence
	case i <= tag20BitMax:
		lo, err := src.ReadUint16BE()
		if err != nil {
			return ReadOutcome{}, err
		}
		penta = uint64(i&0x0F)<<16 | uint64(lo)
	case i <= tag35BitMax:
		lo, err := src.ReadInt32BE()
		if err != nil {
			return ReadOutcome{}, err
		}
		penta = uint64(i&0x07)<<32 | uint64(uint32(lo))
	case i <= tagReserved2Max:
		return ReadOutcome{}, ErrReservedBitSequence
	case i == tagUTF8:
		s, err := src.ReadUTFString()
		if err != nil {
			return ReadOutcome{}, err
		}
		return ReadOutcome{Kind: KindString, String: s}, nil
	case i == tagCESU8:
		return readCESU8Symbol(src, scratch)
	case i == tagEmpty:
		penta = pentaEmpty
	case i == tagNull:
		return ReadOutcome{Kind: KindNull}, nil
	}

	plen := plenOf(penta)
	cipher := encodePenta(penta, plen)
	if cipher != 0 {
		return ReadOutcome{Kind: KindCipher, Cipher: cipher}, nil
	}
	// Every run of at most 30 bits has a cipher, but a 35-bit run whose
	// leading character is not '/' or '$' does not. WriteSymbol never emits
	// such a run (it sends those symbols as CESU-8), so it arrives only from
	// another writer or a corrupted source; it is returned as a string.
	s, err := pentaToString(penta, plen)
	if err != nil {
		return ReadOutcome{}, err
	}
	return ReadOutcome{Kind: KindString, String: s}, nil
}

// readCESU8Symbol implements the 0xFD branch: a compact-long length prefix
// followed by that many UTF characters. A length of -1 means null, 0 means
// the empty string. This package always returns a discriminated String
// outcome rather than aliasing the cipher field to a scratch-buffer
// length -- see the wire codec notes in DESIGN.md for why.
func readCESU8Symbol(src ByteSource, scratch []uint16) (ReadOutcome, error) {
	length, err := src.ReadCompactLong()
	if err != nil {
		return ReadOutcome{}, err
	}
	if length < -1 || length > math.MaxInt32 {
		return ReadOutcome{}, ErrIllegalLength
	}
	if length == -1 {
		return ReadOutcome{Kind: KindNull}, nil
	}
	if length == 0 {
		return ReadOutcome{Kind: KindString, String: ""}, nil
	}

	var dst []uint16
	if int(length) <= len(scratch) {
		dst = scratch[:length]
	} else {
		dst = make([]uint16, length)
	}
	if err := decodeCESU8Chars(src, dst, int(length)); err != nil {
		return ReadOutcome{}, err
	}
	return ReadOutcome{Kind: KindString, String: runesToString(dst)}, nil
}

// WriteSymbol writes symbol to dst in PentaCodec's tagged wire format. A
// nil symbol writes the void tag; an empty string writes the empty-symbol
// tag; a cipherable symbol is decomposed into the minimum-width penta tier
// implied by its packed bit length; anything else is written as a CESU-8
// string. UTF-8 framing (tag 0xFC) is read-legal but never emitted here --
// it is reserved for a future mode, same as upstream.
func WriteSymbol(dst ByteSink, symbol *string) error {
	if symbol == nil {
		return dst.WriteUint8(tagNull)
	}
	if *symbol == "" {
		return dst.WriteUint8(tagEmpty)
	}
	if penta, plen, ok := packASCII(*symbol); ok && encodePenta(penta, plen) != 0 {
		return writePentaTier(dst, penta, plen)
	}
	return writeCESU8Symbol(dst, *symbol)
}

// writePentaTier emits the raw (not cipher-encoded) penta run using the
// smallest wire tier that fits plen bits.
func writePentaTier(dst ByteSink, penta uint64, plen uint8) error {
	switch {
	case plen <= 15:
		if err := dst.WriteUint8(uint8(penta >> 8)); err != nil {
			return err
		}
		return dst.WriteUint8(uint8(penta))
	case plen <= 20:
		if err := dst.WriteUint8(0xE0 | uint8((penta>>16)&0x0F)); err != nil {
			return err
		}
		return dst.WriteUint16BE(uint16(penta))
	case plen <= 30:
		if err := dst.WriteUint8(0x80 | uint8((penta>>24)&0x3F)); err != nil {
			return err
		}
		if err := dst.WriteUint8(uint8(penta >> 16)); err != nil {
			return err
		}
		return dst.WriteUint16BE(uint16(penta))
	default: // plen <= 35
		if err := dst.WriteUint8(0xF0 | uint8((penta>>32)&0x07)); err != nil {
			return err
		}
		return dst.WriteInt32BE(int32(uint32(penta)))
	}
}

func writeCESU8Symbol(dst ByteSink, s string) error {
	if err := dst.WriteUint8(tagCESU8); err != nil {
		return err
	}
	if err := dst.WriteCompactLong(int64(cesu8CharLen(s))); err != nil {
		return err
	}
	return writeCESU8Chars(dst, s)
}
