package scanner

// scalarValidator is a byte-at-a-time UTF-8 state machine. It accepts
// exactly what the vector validators accept.
type scalarValidator struct {
	need   int  // continuation bytes still owed by the current sequence
	lo, hi byte // accepted range of the next continuation byte
	bad    bool
}

func (v *scalarValidator) Check(in *Block) {
	if v.bad {
		return
	}
	if isASCII(in) {
		if v.need > 0 {
			v.bad = true
		}
		return
	}
	for _, c := range in {
		if !v.step(c) {
			v.bad = true
			return
		}
	}
}

func (v *scalarValidator) step(c byte) bool {
	if v.need > 0 {
		if c < v.lo || c > v.hi {
			return false
		}
		v.need--
		v.lo, v.hi = 0x80, 0xBF
		return true
	}

	switch {
	case c < 0x80:
	case c < 0xC2: // stray continuation, or C0/C1 overlong
		return false
	case c < 0xE0:
		v.need, v.lo, v.hi = 1, 0x80, 0xBF
	case c == 0xE0:
		v.need, v.lo, v.hi = 2, 0xA0, 0xBF
	case c == surrogatePrefix:
		v.need, v.lo, v.hi = 2, 0x80, 0x9F
	case c < 0xF0:
		v.need, v.lo, v.hi = 2, 0x80, 0xBF
	case c == 0xF0:
		v.need, v.lo, v.hi = 3, 0x90, 0xBF
	case c < maxPlanePrefix:
		v.need, v.lo, v.hi = 3, 0x80, 0xBF
	case c == maxPlanePrefix:
		v.need, v.lo, v.hi = 3, 0x80, 0x8F
	default:
		return false
	}
	return true
}

func (v *scalarValidator) Finish() Verdict {
	if v.bad || v.need > 0 {
		v.bad = true
		return InvalidUTF8
	}
	return Success
}

func (v *scalarValidator) Reset() {
	*v = scalarValidator{}
}
