package scanner

import "github.com/biggeezerdevelopment/simdmarks/internal/simd"

const (
	// ChunkSize is the number of input bytes every backend consumes per step,
	// whatever its register width. One chunk yields one word of every bit stream.
	ChunkSize = 64

	NarrowLaneSize = 16 // 128-bit lanes, four per chunk
	WideLaneSize   = 32 // 256-bit lanes, two per chunk
)

// Character classes produced by the shufti lookup. A byte's class is
// lowNibbleTable[b&0xF] & highNibbleTable[b>>4].
const (
	ClassBrackets   = 0x01 // [ ] { }
	ClassComma      = 0x02 // ,
	ClassColon      = 0x04 // :
	ClassTabNewline = 0x08 // \t \n \r
	ClassSpace      = 0x10 // ' '

	StructuralClasses = ClassBrackets | ClassComma | ClassColon // 0x07
	WhitespaceClasses = ClassTabNewline | ClassSpace            // 0x18
)

// Shufti tables. These are part of the classifier's contract: every byte
// value maps to exactly the classes listed above and nothing else.
//
//	low  0x0: space            high 0x0: \t \n \r
//	low 0x9: \t                high 0x2: space ,
//	low 0xA: \n :              high 0x3: :
//	low 0xB: [ {               high 0x5: [ ]
//	low 0xC: ,                 high 0x7: { }
//	low 0xD: \r ] }
//
// High-nibble rows 0x8-0xF are zero so that no byte outside ASCII is ever
// classified.
var (
	lowNibbleTable = simd.Uint8x16{
		ClassSpace, 0, 0, 0, 0, 0, 0, 0,
		0, ClassTabNewline, ClassTabNewline | ClassColon, ClassBrackets,
		ClassComma, ClassTabNewline | ClassBrackets, 0, 0,
	}
	highNibbleTable = simd.Uint8x16{
		ClassTabNewline, 0, ClassSpace | ClassComma, ClassColon,
		0, ClassBrackets, 0, ClassBrackets,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// UTF-8 validation tables, indexed by the high nibble of a byte.
var (
	// continuationLengths is the sequence length a byte starts: 1 for ASCII,
	// 0 for a continuation byte, 2-4 for leading bytes.
	continuationLengths = simd.Uint8x16{
		1, 1, 1, 1, 1, 1, 1, 1, // 0xxx
		0, 0, 0, 0, // 10xx
		2, 2, // 110x
		3, // 1110
		4, // 1111
	}

	// initialMins and secondMins flag overlong encodings: the leading byte
	// compares below initialMins and the following byte below secondMins.
	// 0x80 (-128 as int8) disables the check for that row.
	//
	//	C0, C1        any follower
	//	E0            follower < A0
	//	F0            follower < 90
	initialMins = simd.Uint8x16{
		0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0xC2, 0x80,
		0xE1,
		0xF1,
	}
	secondMins = simd.Uint8x16{
		0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80,
		0x80, 0x80, 0x80, 0x80,
		0x7F, 0x7F,
		0xA0,
		0x90,
	}

	// asciiCarryLimit is compared against the continuation carries left by
	// the previous lane when the current chunk is pure ASCII. Only the last
	// lane can still be owed continuation bytes; 9 exceeds any carry a
	// valid stream produces.
	asciiCarryLimit = simd.Uint8x16{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 1}
)

const (
	maxLeadingByte  = 0xF4
	surrogatePrefix = 0xED // next byte must be <= 0x9F
	maxPlanePrefix  = 0xF4 // next byte must be <= 0x8F
)
