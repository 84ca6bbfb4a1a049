// Package simd provides the fixed-width byte vectors stage 1 is written
// against. Each operation is named after, and has the semantics of, the
// SSE/AVX2/NEON instruction it stands in for, so a kernel written on top of
// these types reads like its intrinsic counterpart and produces the same bits.
package simd

// Uint8x16 is a 128-bit vector of 16 unsigned bytes.
type Uint8x16 [16]uint8

// Load16 loads the first 16 bytes of b.
func Load16(b []byte) (v Uint8x16) {
	copy(v[:], b[:16])
	return v
}

// Splat16 returns a vector with every lane set to x.
func Splat16(x uint8) (v Uint8x16) {
	for i := range v {
		v[i] = x
	}
	return v
}

func (a Uint8x16) And(b Uint8x16) (r Uint8x16) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

func (a Uint8x16) Or(b Uint8x16) (r Uint8x16) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

// AndNot returns a &^ b.
func (a Uint8x16) AndNot(b Uint8x16) (r Uint8x16) {
	for i := range r {
		r[i] = a[i] &^ b[i]
	}
	return r
}

// ShiftRight shifts every byte right by n bits, filling with zeros.
func (a Uint8x16) ShiftRight(n uint) (r Uint8x16) {
	for i := range r {
		r[i] = a[i] >> n
	}
	return r
}

// Add is a wrapping per-byte add.
func (a Uint8x16) Add(b Uint8x16) (r Uint8x16) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

// SubSat is an unsigned saturating subtract (psubusb / vqsubq_u8).
func (a Uint8x16) SubSat(b Uint8x16) (r Uint8x16) {
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i] - b[i]
		}
	}
	return r
}

// CmpEq sets a lane to 0xFF where a and b are equal.
func (a Uint8x16) CmpEq(b Uint8x16) (r Uint8x16) {
	for i := range r {
		if a[i] == b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// CmpGt sets a lane to 0xFF where a > b, comparing the bytes as int8.
func (a Uint8x16) CmpGt(b Uint8x16) (r Uint8x16) {
	for i := range r {
		if int8(a[i]) > int8(b[i]) {
			r[i] = 0xFF
		}
	}
	return r
}

// Test sets a lane to 0xFF where a&b is non-zero (vtstq_u8).
func (a Uint8x16) Test(b Uint8x16) (r Uint8x16) {
	for i := range r {
		if a[i]&b[i] != 0 {
			r[i] = 0xFF
		}
	}
	return r
}

// Lookup uses every lane of idx as an index into the 16-entry table t.
// A lane with its top bit set yields zero, as pshufb does.
func (t Uint8x16) Lookup(idx Uint8x16) (r Uint8x16) {
	for i := range r {
		if idx[i]&0x80 == 0 {
			r[i] = t[idx[i]&0x0F]
		}
	}
	return r
}

// Prev returns a shifted up by n lanes with the last n lanes of prev
// shifted in at the bottom: lane i holds the byte n positions before
// a[i] in the stream prev, a. It is palignr(a, prev, 16-n).
func (a Uint8x16) Prev(prev Uint8x16, n int) (r Uint8x16) {
	for i := range r {
		if i >= n {
			r[i] = a[i-n]
		} else {
			r[i] = prev[len(prev)-n+i]
		}
	}
	return r
}

// IsZero reports whether every lane is zero.
func (a Uint8x16) IsZero() bool {
	lo, hi := a.words()
	return lo|hi == 0
}

// MoveMask gathers the top bit of every lane, lane 0 in bit 0.
func (a Uint8x16) MoveMask() uint16 {
	lo, hi := a.words()
	return uint16(movemask8(lo) | movemask8(hi)<<8)
}

func (a Uint8x16) words() (lo, hi uint64) {
	return le64(a[0:8]), le64(a[8:16])
}
