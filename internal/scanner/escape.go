package scanner

const (
	evenBits = 0x5555555555555555
	oddBits  = ^uint64(evenBits)
)

// findOddBackslashSequences returns the bytes that end an odd-length run of
// backslashes, i.e. the bytes that are escaped. prevEndsOdd is 1 if the
// previous chunk ended in the middle of such a run, and is updated for the
// next chunk.
//
// Runs are split by the parity of their start: adding a run's start bit to
// the run carries past its end, and the carry lands on an odd or even
// position depending on the run's length.
func findOddBackslashSequences(backslashes uint64, prevEndsOdd *uint64) uint64 {
	startEdges := backslashes &^ (backslashes << 1)

	// flip the parity of the start if we are continuing a run
	evenStartMask := evenBits ^ *prevEndsOdd
	evenStarts := startEdges & evenStartMask
	oddStarts := startEdges &^ evenStartMask

	evenCarries := backslashes + evenStarts

	oddCarries := backslashes + oddStarts
	endsOdd := oddCarries < backslashes // the carry ran off the top
	// bit 0 may end an odd run carried in from the previous chunk
	oddCarries |= *prevEndsOdd

	*prevEndsOdd = 0
	if endsOdd {
		*prevEndsOdd = 1
	}

	evenCarryEnds := evenCarries &^ backslashes
	oddCarryEnds := oddCarries &^ backslashes

	evenStartOddEnd := evenCarryEnds & oddBits
	oddStartEvenEnd := oddCarryEnds & evenBits
	return evenStartOddEnd | oddStartEvenEnd
}

// unescapedQuotes returns the quote bits of a chunk with escaped quotes
// removed.
func unescapedQuotes(b Backend, in *Block, prevEndsOddBackslash *uint64) uint64 {
	backslashes := b.CompareMask(in, '\\')
	escaped := findOddBackslashSequences(backslashes, prevEndsOddBackslash)
	return b.CompareMask(in, '"') &^ escaped
}
