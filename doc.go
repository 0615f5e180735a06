// Package pentacodec implements the PentaCodec symbol codec: a bit-exact
// compressor for short ASCII ticker symbols (IBM, AAPL, /ESZ24, $INDEX.X)
// into 32-bit ciphers or a tagged variable-length wire format, and back.
//
// # Overview
//
// PentaCodec assigns every eligible ASCII character a 5-bit or 10-bit
// "penta" code, packs a symbol's pentas left-to-right into a 64-bit
// accumulator, and tries to fit the result into a 32-bit cipher. Symbols
// that don't fit (ineligible characters, more than 35 penta bits) fall
// back to a plain string on the wire.
//
// # When to Use PentaCodec
//
// PentaCodec is for:
//   - Market-data feeds carrying short, mostly-uppercase ticker symbols
//   - Wire protocols where symbol identity needs to round-trip bit-exact
//     with existing peers
//   - Hot paths where avoiding an allocation per symbol matters
//
// # When NOT to Use PentaCodec
//
// PentaCodec is not suitable for:
//   - General Unicode text (it only ever assigns codes to 93 ASCII chars)
//   - Symbols longer than 7 characters or requiring more than 35 penta bits
//   - Anything needing entropy coding or encryption
//
// # Basic Usage
//
//	symbol := "IBM"
//	cipher := pentacodec.Encode(&symbol)
//	if cipher != 0 {
//	    s, err := pentacodec.DecodeCipher(cipher)
//	    _ = s // "IBM"
//	}
//
//	// Reading/writing the tagged wire format:
//	var buf [256]uint16
//	outcome, err := pentacodec.ReadSymbol(src, buf[:])
//	err = pentacodec.WriteSymbol(dst, &symbol)
//
// # Performance Characteristics
//
// Table initialization: once, process-wide, O(1) (93 fixed assignments).
// Encoding: O(len(s)), at most 7 iterations, no allocation.
// Decoding: O(plen/5), at most 7 iterations, allocates only the result
// string. The wire codec allocates only for string-shaped outcomes; the
// CESU-8 branch decodes into the caller's scratch buffer when it is long
// enough and into a new buffer otherwise.
package pentacodec
