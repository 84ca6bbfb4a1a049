package index

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

func width[T constraints.Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// TestBit reports whether bit i of a little-endian bit stream is set. Bits
// past the end of words read as zero.
func TestBit[T constraints.Unsigned](words []T, i int) bool {
	w := width[T]()
	if i < 0 || i/w >= len(words) {
		return false
	}
	return words[i/w]>>(i%w)&1 != 0
}

// SetBit sets bit i of words, which must be long enough to hold it.
func SetBit[T constraints.Unsigned](words []T, i int) {
	w := width[T]()
	words[i/w] |= 1 << (i % w)
}

// OnesCount returns the number of set bits in words.
func OnesCount[T constraints.Unsigned](words []T) int {
	n := 0
	for _, x := range words {
		n += bits.OnesCount64(uint64(x))
	}
	return n
}
