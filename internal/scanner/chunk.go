package scanner

import (
	"encoding/binary"

	"github.com/biggeezerdevelopment/simdmarks/internal/simd"
)

// Block is one chunk of input.
type Block = [ChunkSize]byte

type narrowChunk [ChunkSize / NarrowLaneSize]simd.Uint8x16

type wideChunk [ChunkSize / WideLaneSize]simd.Uint8x32

func loadNarrow(in *Block) (c narrowChunk) {
	for i := range c {
		c[i] = simd.Load16(in[i*NarrowLaneSize:])
	}
	return c
}

func loadWide(in *Block) (c wideChunk) {
	for i := range c {
		c[i] = simd.Load32(in[i*WideLaneSize:])
	}
	return c
}

// isASCII reports whether no byte of the chunk has its top bit set.
func isASCII(in *Block) bool {
	var acc uint64
	for i := 0; i < ChunkSize; i += 8 {
		acc |= binary.LittleEndian.Uint64(in[i:])
	}
	return acc&0x8080808080808080 == 0
}
