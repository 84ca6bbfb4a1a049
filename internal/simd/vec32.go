package simd

// Uint8x32 is a 256-bit vector of 32 unsigned bytes.
type Uint8x32 [32]uint8

// Load32 loads the first 32 bytes of b.
func Load32(b []byte) (v Uint8x32) {
	copy(v[:], b[:32])
	return v
}

// Splat32 returns a vector with every lane set to x.
func Splat32(x uint8) (v Uint8x32) {
	for i := range v {
		v[i] = x
	}
	return v
}

// Broadcast copies the 128-bit t into both halves (vbroadcasti128), the
// layout Lookup expects for its table.
func Broadcast(t Uint8x16) (v Uint8x32) {
	copy(v[:16], t[:])
	copy(v[16:], t[:])
	return v
}

func (a Uint8x32) And(b Uint8x32) (r Uint8x32) {
	for i := range r {
		r[i] = a[i] & b[i]
	}
	return r
}

func (a Uint8x32) Or(b Uint8x32) (r Uint8x32) {
	for i := range r {
		r[i] = a[i] | b[i]
	}
	return r
}

func (a Uint8x32) AndNot(b Uint8x32) (r Uint8x32) {
	for i := range r {
		r[i] = a[i] &^ b[i]
	}
	return r
}

func (a Uint8x32) ShiftRight(n uint) (r Uint8x32) {
	for i := range r {
		r[i] = a[i] >> n
	}
	return r
}

func (a Uint8x32) Add(b Uint8x32) (r Uint8x32) {
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a Uint8x32) SubSat(b Uint8x32) (r Uint8x32) {
	for i := range r {
		if a[i] > b[i] {
			r[i] = a[i] - b[i]
		}
	}
	return r
}

func (a Uint8x32) CmpEq(b Uint8x32) (r Uint8x32) {
	for i := range r {
		if a[i] == b[i] {
			r[i] = 0xFF
		}
	}
	return r
}

// CmpGt compares the bytes as int8 (vpcmpgtb).
func (a Uint8x32) CmpGt(b Uint8x32) (r Uint8x32) {
	for i := range r {
		if int8(a[i]) > int8(b[i]) {
			r[i] = 0xFF
		}
	}
	return r
}

func (a Uint8x32) Test(b Uint8x32) (r Uint8x32) {
	for i := range r {
		if a[i]&b[i] != 0 {
			r[i] = 0xFF
		}
	}
	return r
}

// Lookup is vpshufb: every 128-bit half of idx indexes the matching half
// of t, and a lane with its top bit set yields zero.
func (t Uint8x32) Lookup(idx Uint8x32) (r Uint8x32) {
	for i := range r {
		if idx[i]&0x80 == 0 {
			r[i] = t[i&^0x0F+int(idx[i]&0x0F)]
		}
	}
	return r
}

// Prev is Uint8x16.Prev over the full 256 bits, the
// vperm2i128 + vpalignr pair on AVX2.
func (a Uint8x32) Prev(prev Uint8x32, n int) (r Uint8x32) {
	for i := range r {
		if i >= n {
			r[i] = a[i-n]
		} else {
			r[i] = prev[len(prev)-n+i]
		}
	}
	return r
}

func (a Uint8x32) IsZero() bool {
	return le64(a[0:8])|le64(a[8:16])|le64(a[16:24])|le64(a[24:32]) == 0
}

// MoveMask is vpmovmskb.
func (a Uint8x32) MoveMask() uint32 {
	return uint32(movemask8(le64(a[0:8])) |
		movemask8(le64(a[8:16]))<<8 |
		movemask8(le64(a[16:24]))<<16 |
		movemask8(le64(a[24:32]))<<24)
}
