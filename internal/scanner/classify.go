package scanner

import "github.com/biggeezerdevelopment/simdmarks/internal/simd"

var (
	lowNibbleMask16  = simd.Splat16(0x0F)
	structuralMask16 = simd.Splat16(StructuralClasses)
	whitespaceMask16 = simd.Splat16(WhitespaceClasses)

	lowNibbleTable32  = simd.Broadcast(lowNibbleTable)
	highNibbleTable32 = simd.Broadcast(highNibbleTable)
	lowNibbleMask32   = simd.Splat32(0x0F)
	structuralMask32  = simd.Splat32(StructuralClasses)
	whitespaceMask32  = simd.Splat32(WhitespaceClasses)
)

type narrowBackend struct{}

func (narrowBackend) Level() Level { return LevelNarrow }

// Classify runs the shufti lookup on each 128-bit lane: two table lookups
// keyed by the low and high nibble, and-ed together, then tested against
// the structural and whitespace class masks.
func (narrowBackend) Classify(in *Block) (whitespace, structurals uint64) {
	lanes := loadNarrow(in)

	var ws, st narrowChunk
	for i, v := range lanes {
		lo := lowNibbleTable.Lookup(v.And(lowNibbleMask16))
		hi := highNibbleTable.Lookup(v.ShiftRight(4))
		class := lo.And(hi)
		ws[i] = class.Test(whitespaceMask16)
		st[i] = class.Test(structuralMask16)
	}
	whitespace = simd.MoveMask64x16(ws[0], ws[1], ws[2], ws[3])
	structurals = simd.MoveMask64x16(st[0], st[1], st[2], st[3])
	return whitespace, structurals
}

func (narrowBackend) CompareMask(in *Block, c byte) uint64 {
	lanes := loadNarrow(in)
	needle := simd.Splat16(c)

	var eq narrowChunk
	for i, v := range lanes {
		eq[i] = v.CmpEq(needle)
	}
	return simd.MoveMask64x16(eq[0], eq[1], eq[2], eq[3])
}

func (narrowBackend) QuoteMask(quoteBits uint64) uint64 {
	return simd.CarrylessMul(quoteBits, ^uint64(0))
}

func (narrowBackend) NewValidator() Validator {
	return &narrowValidator{}
}

type wideBackend struct{}

func (wideBackend) Level() Level { return LevelWide }

func (wideBackend) Classify(in *Block) (whitespace, structurals uint64) {
	lanes := loadWide(in)

	var ws, st wideChunk
	for i, v := range lanes {
		lo := lowNibbleTable32.Lookup(v.And(lowNibbleMask32))
		hi := highNibbleTable32.Lookup(v.ShiftRight(4))
		class := lo.And(hi)
		ws[i] = class.Test(whitespaceMask32)
		st[i] = class.Test(structuralMask32)
	}
	whitespace = simd.MoveMask64x32(ws[0], ws[1])
	structurals = simd.MoveMask64x32(st[0], st[1])
	return whitespace, structurals
}

func (wideBackend) CompareMask(in *Block, c byte) uint64 {
	lanes := loadWide(in)
	needle := simd.Splat32(c)
	return simd.MoveMask64x32(lanes[0].CmpEq(needle), lanes[1].CmpEq(needle))
}

func (wideBackend) QuoteMask(quoteBits uint64) uint64 {
	return simd.CarrylessMul(quoteBits, ^uint64(0))
}

func (wideBackend) NewValidator() Validator {
	return &wideValidator{}
}

type scalarBackend struct{}

func (scalarBackend) Level() Level { return LevelScalar }

// Classify looks every byte up in the same nibble tables, one at a time.
func (scalarBackend) Classify(in *Block) (whitespace, structurals uint64) {
	var ws, st Block
	for i, c := range in {
		class := lowNibbleTable[c&0x0F] & highNibbleTable[c>>4]
		if class&WhitespaceClasses != 0 {
			ws[i] = 0xFF
		}
		if class&StructuralClasses != 0 {
			st[i] = 0xFF
		}
	}
	return simd.MoveMaskBytes(ws[:]), simd.MoveMaskBytes(st[:])
}

func (scalarBackend) CompareMask(in *Block, c byte) uint64 {
	var m uint64
	for i, b := range in {
		if b == c {
			m |= 1 << i
		}
	}
	return m
}

// QuoteMask uses the shift-and-xor scan rather than a multiply.
func (scalarBackend) QuoteMask(quoteBits uint64) uint64 {
	return simd.PrefixXOR(quoteBits)
}

func (scalarBackend) NewValidator() Validator {
	return &scalarValidator{}
}
