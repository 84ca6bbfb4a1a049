package scanner

import "github.com/biggeezerdevelopment/simdmarks/internal/simd"

var (
	one16             = simd.Splat16(1)
	two16             = simd.Splat16(2)
	maxLeadingByte16  = simd.Splat16(maxLeadingByte)
	surrogatePrefix16 = simd.Splat16(surrogatePrefix)
	maxPlanePrefix16  = simd.Splat16(maxPlanePrefix)
	maxAfterED16      = simd.Splat16(0x9F)
	maxAfterF4_16     = simd.Splat16(0x8F)
)

// processed16 is what the next lane needs to know about the previous one.
type processed16 struct {
	raw         simd.Uint8x16
	highNibbles simd.Uint8x16
	carried     simd.Uint8x16 // continuation bytes each position still expects
}

// narrowValidator validates UTF-8 in 128-bit lanes.
type narrowValidator struct {
	hasError simd.Uint8x16 // non-zero once any lane has failed; never cleared
	prev     processed16
}

func (v *narrowValidator) Check(in *Block) {
	if isASCII(in) {
		v.checkCarried()
		return
	}
	v.checkLanes(in)
}

// checkCarried is the whole check for an ASCII chunk: the only way it can
// be wrong is if the previous lane ended inside a multi-byte sequence.
func (v *narrowValidator) checkCarried() {
	v.hasError = v.hasError.Or(v.prev.carried.CmpGt(asciiCarryLimit))
}

func (v *narrowValidator) checkLanes(in *Block) {
	for _, lane := range loadNarrow(in) {
		v.prev = checkUTF8Bytes16(lane, &v.prev, &v.hasError)
	}
}

// Finish checks the end of input as if one more all-zero chunk followed.
func (v *narrowValidator) Finish() Verdict {
	v.checkCarried()
	if v.hasError.IsZero() {
		return Success
	}
	return InvalidUTF8
}

func (v *narrowValidator) Reset() {
	*v = narrowValidator{}
}

func checkUTF8Bytes16(cur simd.Uint8x16, prev *processed16, hasError *simd.Uint8x16) processed16 {
	pb := processed16{
		raw:         cur,
		highNibbles: cur.ShiftRight(4),
	}

	// F5..FF never occur
	*hasError = hasError.Or(cur.SubSat(maxLeadingByte16))

	lengths := continuationLengths.Lookup(pb.highNibbles)
	pb.carried = carryContinuations16(lengths, prev.carried)
	checkContinuations16(lengths, pb.carried, hasError)

	off1 := cur.Prev(prev.raw, 1)
	checkFirstContinuationMax16(cur, off1, hasError)
	checkOverlong16(cur, off1, pb.highNibbles, prev.highNibbles, hasError)
	return pb
}

// carryContinuations spreads each leading byte's length over the bytes that
// follow it, counting down, so that every position holds the number of
// bytes its sequence still needs including itself.
func carryContinuations16(lengths, prevCarries simd.Uint8x16) simd.Uint8x16 {
	right1 := lengths.Prev(prevCarries, 1).SubSat(one16)
	sum := lengths.Add(right1)
	right2 := sum.Prev(prevCarries, 2).SubSat(two16)
	return sum.Add(right2)
}

// checkContinuations flags a byte whose own length disagrees with the carry:
// a continuation byte nobody asked for, or a new sequence starting while the
// previous one is still owed bytes.
func checkContinuations16(lengths, carries simd.Uint8x16, hasError *simd.Uint8x16) {
	overunder := carries.CmpGt(lengths).CmpEq(lengths.CmpGt(simd.Uint8x16{}))
	*hasError = hasError.Or(overunder)
}

// After ED the next byte is at most 9F (no surrogates); after F4 at most 8F
// (nothing above U+10FFFF). Continuation bytes are negative as int8, so the
// signed compare orders them correctly.
func checkFirstContinuationMax16(cur, off1 simd.Uint8x16, hasError *simd.Uint8x16) {
	maskED := off1.CmpEq(surrogatePrefix16)
	maskF4 := off1.CmpEq(maxPlanePrefix16)

	badFollowED := cur.CmpGt(maxAfterED16).And(maskED)
	badFollowF4 := cur.CmpGt(maxAfterF4_16).And(maskF4)
	*hasError = hasError.Or(badFollowED.Or(badFollowF4))
}

func checkOverlong16(cur, off1, highNibbles, prevHighNibbles simd.Uint8x16, hasError *simd.Uint8x16) {
	off1High := highNibbles.Prev(prevHighNibbles, 1)

	initialUnder := initialMins.Lookup(off1High).CmpGt(off1)
	secondUnder := secondMins.Lookup(off1High).CmpGt(cur)
	*hasError = hasError.Or(initialUnder.And(secondUnder))
}
