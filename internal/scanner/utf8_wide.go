package scanner

import "github.com/biggeezerdevelopment/simdmarks/internal/simd"

var (
	one32             = simd.Splat32(1)
	two32             = simd.Splat32(2)
	maxLeadingByte32  = simd.Splat32(maxLeadingByte)
	surrogatePrefix32 = simd.Splat32(surrogatePrefix)
	maxPlanePrefix32  = simd.Splat32(maxPlanePrefix)
	maxAfterED32      = simd.Splat32(0x9F)
	maxAfterF4_32     = simd.Splat32(0x8F)

	continuationLengths32 = simd.Broadcast(continuationLengths)
	initialMins32         = simd.Broadcast(initialMins)
	secondMins32          = simd.Broadcast(secondMins)
	asciiCarryLimit32     = wideCarryLimit()
)

func wideCarryLimit() simd.Uint8x32 {
	v := simd.Splat32(9)
	v[WideLaneSize-1] = asciiCarryLimit[NarrowLaneSize-1]
	return v
}

type processed32 struct {
	raw         simd.Uint8x32
	highNibbles simd.Uint8x32
	carried     simd.Uint8x32
}

// wideValidator is narrowValidator on 256-bit lanes. Lookups use tables
// broadcast to both halves; Prev crosses the halves.
type wideValidator struct {
	hasError simd.Uint8x32
	prev     processed32
}

func (v *wideValidator) Check(in *Block) {
	if isASCII(in) {
		v.checkCarried()
		return
	}
	v.checkLanes(in)
}

func (v *wideValidator) checkCarried() {
	v.hasError = v.hasError.Or(v.prev.carried.CmpGt(asciiCarryLimit32))
}

func (v *wideValidator) checkLanes(in *Block) {
	for _, lane := range loadWide(in) {
		v.prev = checkUTF8Bytes32(lane, &v.prev, &v.hasError)
	}
}

func (v *wideValidator) Finish() Verdict {
	v.checkCarried()
	if v.hasError.IsZero() {
		return Success
	}
	return InvalidUTF8
}

func (v *wideValidator) Reset() {
	*v = wideValidator{}
}

func checkUTF8Bytes32(cur simd.Uint8x32, prev *processed32, hasError *simd.Uint8x32) processed32 {
	pb := processed32{
		raw:         cur,
		highNibbles: cur.ShiftRight(4),
	}

	*hasError = hasError.Or(cur.SubSat(maxLeadingByte32))

	lengths := continuationLengths32.Lookup(pb.highNibbles)
	pb.carried = carryContinuations32(lengths, prev.carried)
	overunder := pb.carried.CmpGt(lengths).CmpEq(lengths.CmpGt(simd.Uint8x32{}))
	*hasError = hasError.Or(overunder)

	off1 := cur.Prev(prev.raw, 1)

	badFollowED := cur.CmpGt(maxAfterED32).And(off1.CmpEq(surrogatePrefix32))
	badFollowF4 := cur.CmpGt(maxAfterF4_32).And(off1.CmpEq(maxPlanePrefix32))
	*hasError = hasError.Or(badFollowED.Or(badFollowF4))

	off1High := pb.highNibbles.Prev(prev.highNibbles, 1)
	initialUnder := initialMins32.Lookup(off1High).CmpGt(off1)
	secondUnder := secondMins32.Lookup(off1High).CmpGt(cur)
	*hasError = hasError.Or(initialUnder.And(secondUnder))
	return pb
}

func carryContinuations32(lengths, prevCarries simd.Uint8x32) simd.Uint8x32 {
	right1 := lengths.Prev(prevCarries, 1).SubSat(one32)
	sum := lengths.Add(right1)
	right2 := sum.Prev(prevCarries, 2).SubSat(two32)
	return sum.Add(right2)
}
