package scanner

import (
	"math/rand"
	"unicode/utf8"
)

// alphabet is weighted towards the bytes stage 1 cares about.
var alphabet = [][]byte{
	[]byte(`"`), []byte(`"`), []byte(`\`), []byte(`\`),
	[]byte(`{`), []byte(`}`), []byte(`[`), []byte(`]`), []byte(`,`), []byte(`:`),
	[]byte(" "), []byte("\t"), []byte("\n"), []byte("\r"),
	[]byte("a"), []byte("0"), []byte("e"), []byte("-"),
	[]byte("é"), []byte("世"), []byte("😀"),
}

func randomDocument(r *rand.Rand, n int) []byte {
	out := make([]byte, 0, n+4)
	for len(out) < n {
		out = append(out, alphabet[r.Intn(len(alphabet))]...)
	}
	return out
}

func randomBytes(r *rand.Rand, n int) []byte {
	out := make([]byte, n)
	r.Read(out)
	return out
}

// randomText encodes random code points from every UTF-8 length class.
func randomText(r *rand.Rand, runes int) []byte {
	var out []byte
	for i := 0; i < runes; i++ {
		var c rune
		switch r.Intn(4) {
		case 0:
			c = rune(r.Intn(0x80))
		case 1:
			c = rune(0x80 + r.Intn(0x800-0x80))
		case 2:
			c = rune(0x800 + r.Intn(0x10000-0x800))
			if c >= 0xD800 && c <= 0xDFFF {
				c -= 0x800
			}
		default:
			c = rune(0x10000 + r.Intn(0x110000-0x10000))
		}
		out = utf8.AppendRune(out, c)
	}
	return out
}

type reference struct {
	whitespace  []uint64
	structurals []uint64
	quoteBits   []uint64
	quoteMask   []uint64
}

// referenceMarks computes every bit stream one byte at a time.
func referenceMarks(data []byte) reference {
	words := PaddedLen(len(data)) / ChunkSize
	ref := reference{
		whitespace:  make([]uint64, words),
		structurals: make([]uint64, words),
		quoteBits:   make([]uint64, words),
		quoteMask:   make([]uint64, words),
	}
	backslashes := 0
	inside := false
	for i, c := range data {
		w, bit := i/ChunkSize, uint64(1)<<(i%ChunkSize)
		switch c {
		case ' ', '\t', '\n', '\r':
			ref.whitespace[w] |= bit
		case '{', '}', '[', ']', ',', ':':
			ref.structurals[w] |= bit
		}
		if c == '"' && backslashes%2 == 0 {
			ref.quoteBits[w] |= bit
			ref.quoteMask[w] |= bit
			inside = !inside
		} else if inside {
			ref.quoteMask[w] |= bit
		}
		if c == '\\' {
			backslashes++
		} else {
			backslashes = 0
		}
	}
	// an unterminated string runs through the padding
	if inside {
		for i := len(data); i < words*ChunkSize; i++ {
			ref.quoteMask[i/ChunkSize] |= 1 << (i % ChunkSize)
		}
	}
	return ref
}

func block(s []byte) *Block {
	var b Block
	copy(b[:], s)
	return &b
}
