package scanner

// QuoteInterior turns one chunk's escape-adjusted quote bits into the
// string mask. A bit is set for every byte of a quoted span, the opening
// and the closing quote included, so for quotes at bits 1 and 2 the mask
// is 0b0110.
//
// inside carries the string state between chunks: all ones if the previous
// chunk ended inside a string, zero otherwise. It is updated in place.
func QuoteInterior(b Backend, quoteBits uint64, inside *uint64) uint64 {
	parity := b.QuoteMask(quoteBits) ^ *inside
	// sign-extend the last bit: all ones iff this chunk ends inside a string
	*inside = uint64(int64(parity) >> 63)
	return parity | quoteBits
}
