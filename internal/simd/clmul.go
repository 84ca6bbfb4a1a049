package simd

import "math/bits"

// carrylessMul is replaced in init on targets with a hardware carry-less
// multiply.
var (
	carrylessMul = carrylessMulGeneric
	hasCLMUL     bool
)

// CarrylessMul returns the low 64 bits of the carry-less (GF(2)) product of
// a and b. Multiplying a quote bitmap by all ones yields, at every bit, the
// parity of the set bits at or below it.
func CarrylessMul(a, b uint64) uint64 {
	return carrylessMul(a, b)
}

// HasCarrylessMul reports whether CarrylessMul runs on a hardware
// instruction.
func HasCarrylessMul() bool {
	return hasCLMUL
}

// carrylessMulGeneric xors b shifted by the position of every set bit of a.
// Quote bitmaps are sparse, so the loop runs once per quote.
func carrylessMulGeneric(a, b uint64) uint64 {
	var r uint64
	for a != 0 {
		r ^= b << uint(bits.TrailingZeros64(a))
		a &= a - 1
	}
	return r
}

// PrefixXOR returns the running parity of x: bit i is the xor of bits 0..i.
// It is the log-step doubling form of CarrylessMul(x, ^uint64(0)).
func PrefixXOR(x uint64) uint64 {
	x ^= x << 1
	x ^= x << 2
	x ^= x << 4
	x ^= x << 8
	x ^= x << 16
	x ^= x << 32
	return x
}
