package pentacodec

// Encode converts an ASCII symbol into its 32-bit cipher form. It never
// fails: a nil symbol, an ineligible character, or a packed width beyond
// 35 bits all simply yield 0 ("not cipherable"), and the caller is
// expected to fall back to the wire codec's string form in that case.
func Encode(symbol *string) uint32 {
	if symbol == nil {
		return 0
	}
	penta, plen, ok := packASCII(*symbol)
	if !ok {
		return 0
	}
	return encodePenta(penta, plen)
}

// WildcardCipher is the cipher for the conventional "all symbols" marker.
// '*' is a 10-bit penta (printable ASCII, not one of the excluded quote
// characters), so it is cipherable like any other single eligible char.
var WildcardCipher = func() uint32 {
	s := "*"
	return Encode(&s)
}()
