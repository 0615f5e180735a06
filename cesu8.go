package pentacodec

// decodeCESU8Chars reads n code points from src via ReadUTFChar into dst
// (which must have length >= n). Every code point read here must fit in
// the Basic Multilingual Plane -- the wire format has no notion of
// surrogate pairs, it simply errors if a single code point doesn't fit in
// 16 bits.
func decodeCESU8Chars(src ByteSource, dst []uint16, n int) error {
	for i := 0; i < n; i++ {
		cp, err := src.ReadUTFChar()
		if err != nil {
			return err
		}
		if cp > 0xFFFF {
			return ErrCodePointBeyondBMP
		}
		dst[i] = uint16(cp)
	}
	return nil
}

// runesToString renders a slice of BMP code points (as written by
// decodeCESU8Chars) back into a string.
func runesToString(codePoints []uint16) string {
	runes := make([]rune, len(codePoints))
	for i, cp := range codePoints {
		runes[i] = rune(cp)
	}
	return string(runes)
}

// writeCESU8Chars writes each rune of s to dst via WriteUTFChar, one code
// point per wire character. Symbols handled by this branch are the ones
// that have no cipher (stray quote characters, text outside the
// 93-character penta set, or runs too wide to cipher); in practice these
// are always BMP.
func writeCESU8Chars(dst ByteSink, s string) error {
	for _, r := range s {
		if err := dst.WriteUTFChar(r); err != nil {
			return err
		}
	}
	return nil
}

// cesu8CharLen returns the number of Unicode code points s encodes to,
// i.e. the CESU-8 "length in characters" written ahead of a string on the
// wire.
func cesu8CharLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
