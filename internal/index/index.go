// Package index turns the stage 1 bit streams into the positions a parser
// visits: structural characters, opening quotes, and the first byte of
// every bare value.
package index

import (
	"math/bits"

	"github.com/biggeezerdevelopment/simdmarks/internal/simd"
)

// Finalize combines one chunk's streams into its index word.
//
// stringMask must have the opening quote of every string set and its closing
// quote clear, i.e. the plain prefix parity of quoteBits. prevEndsPseudoPred
// is 1 if the previous chunk ended in a byte after which a value may start;
// it starts at 1 for the first chunk.
func Finalize(structurals, whitespace, stringMask, quoteBits uint64, prevEndsPseudoPred *uint64) uint64 {
	// nothing inside a string is structural, but its quotes are
	structurals &^= stringMask
	structurals |= quoteBits

	// a pseudo-structural is a byte outside strings and whitespace that
	// follows whitespace or a structural: the start of a number or literal
	pseudoPred := structurals | whitespace
	shifted := pseudoPred<<1 | *prevEndsPseudoPred
	*prevEndsPseudoPred = pseudoPred >> 63
	structurals |= shifted &^ whitespace &^ stringMask

	// closing quotes are in quoteBits but not in the mask
	return structurals &^ (quoteBits &^ stringMask)
}

// Flatten appends base+i to dst for every set bit i, lowest first.
func Flatten(dst []uint32, base uint32, word uint64) []uint32 {
	for word != 0 {
		dst = append(dst, base+uint32(bits.TrailingZeros64(word)))
		word &= word - 1
	}
	return dst
}

// Build returns the sorted index positions of an n-byte input given its
// whitespace, structural and escape-adjusted quote streams. Positions at or
// beyond n are dropped.
func Build(n int, whitespace, structurals, quoteBits []uint64) []uint32 {
	return AppendBuild(nil, n, whitespace, structurals, quoteBits)
}

// AppendBuild is Build appending to dst.
func AppendBuild(dst []uint32, n int, whitespace, structurals, quoteBits []uint64) []uint32 {
	words := (n + 63) / 64
	if len(structurals) < words || len(whitespace) < words || len(quoteBits) < words {
		panic("index: bit streams shorter than input")
	}

	var inside uint64
	prevEndsPseudoPred := uint64(1)
	for w := 0; w < words; w++ {
		stringMask := simd.PrefixXOR(quoteBits[w]) ^ inside
		inside = uint64(int64(stringMask) >> 63)

		word := Finalize(structurals[w], whitespace[w], stringMask, quoteBits[w], &prevEndsPseudoPred)
		if rem := n - w*64; rem < 64 {
			word &= 1<<rem - 1
		}
		dst = Flatten(dst, uint32(w*64), word)
	}
	return dst
}
