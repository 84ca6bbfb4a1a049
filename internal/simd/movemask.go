package simd

import "encoding/binary"

const (
	lsbs        = 0x0101010101010101
	gatherMagic = 0x0102040810204080
)

// movemask8 packs the top bit of each byte of w into the low 8 bits,
// byte 0 in bit 0. Byte j's bit lands at 56+j after the multiply and no
// two partial products overlap, so there are no carries into the top byte.
func movemask8(w uint64) uint64 {
	return (((w >> 7) & lsbs) * gatherMagic) >> 56
}

func le64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

// MoveMask64x16 merges the per-lane test results of one 64-byte chunk held
// in four 128-bit lanes into a single word, bit i for byte i.
func MoveMask64x16(a, b, c, d Uint8x16) uint64 {
	return uint64(a.MoveMask()) |
		uint64(b.MoveMask())<<16 |
		uint64(c.MoveMask())<<32 |
		uint64(d.MoveMask())<<48
}

// MoveMask64x32 is MoveMask64x16 for two 256-bit lanes.
func MoveMask64x32(a, b Uint8x32) uint64 {
	return uint64(a.MoveMask()) | uint64(b.MoveMask())<<32
}

// MoveMaskBytes packs the top bit of each of up to 64 bytes in b,
// b[0] in bit 0. It is the bulk extractor of the scalar backend.
func MoveMaskBytes(b []byte) uint64 {
	var m uint64
	i := 0
	for ; i+8 <= len(b); i += 8 {
		m |= movemask8(le64(b[i:])) << i
	}
	for ; i < len(b); i++ {
		m |= uint64(b[i]>>7) << i
	}
	return m
}
