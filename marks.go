// Package simdmarks locates the characters that give a JSON document its
// shape and validates its UTF-8, 64 bytes at a time.
//
// Find returns one bit per input byte in each of four streams: whitespace,
// structural characters, unescaped quotes, and the bytes of quoted strings.
// Bit i of word w describes byte 64*w+i. The work is done by the widest
// vector backend the CPU supports; every backend produces identical results.
package simdmarks

import (
	"io"

	"github.com/biggeezerdevelopment/simdmarks/internal/index"
	"github.com/biggeezerdevelopment/simdmarks/internal/scanner"
)

var (
	// ErrInvalidUTF8 is returned, together with the marks, for input that is
	// not well-formed UTF-8.
	ErrInvalidUTF8 = scanner.ErrInvalidUTF8
)

// Level selects a backend.
type Level = scanner.Level

const (
	LevelScalar = scanner.LevelScalar
	LevelNarrow = scanner.LevelNarrow
	LevelWide   = scanner.LevelWide
	LevelDetect = scanner.LevelDetect
)

// ParseLevel parses a level name such as "scalar", "narrow", "wide" or "auto".
func ParseLevel(s string) (Level, error) {
	return scanner.ParseLevel(s)
}

// DefaultLevel returns the level picked for this machine at startup.
func DefaultLevel() Level {
	return scanner.DefaultLevel()
}

// Verdict is the UTF-8 outcome for a whole input.
type Verdict = scanner.Verdict

const (
	Success     = scanner.Success
	InvalidUTF8 = scanner.InvalidUTF8
)

// Marks holds the bit streams for one input, one word per 64-byte chunk.
type Marks struct {
	Len        int
	Whitespace []uint64
	Structural []uint64
	QuoteBits  []uint64
	// QuoteMask has every byte of a string set, both quotes included.
	QuoteMask []uint64
	Verdict   Verdict
}

// IsWhitespace reports whether byte i is a space, tab, line feed or carriage return.
func (m *Marks) IsWhitespace(i int) bool {
	return i < m.Len && index.TestBit(m.Whitespace, i)
}

// IsStructural reports whether byte i is one of { } [ ] , :.
func (m *Marks) IsStructural(i int) bool {
	return i < m.Len && index.TestBit(m.Structural, i)
}

// IsQuote reports whether byte i is an unescaped double quote.
func (m *Marks) IsQuote(i int) bool {
	return i < m.Len && index.TestBit(m.QuoteBits, i)
}

// InString reports whether byte i is part of a quoted string.
func (m *Marks) InString(i int) bool {
	return i < m.Len && index.TestBit(m.QuoteMask, i)
}

// StructuralIndices returns the offsets a parser visits, in order: every
// structural character outside strings, every opening quote, and the first
// byte of every number or literal.
func (m *Marks) StructuralIndices() []uint32 {
	return index.Build(m.Len, m.Whitespace, m.Structural, m.QuoteBits)
}

type options struct {
	level Level
}

// Option configures Find.
type Option func(*options)

// WithLevel runs a specific backend instead of the detected one.
func WithLevel(l Level) Option {
	return func(o *options) {
		o.level = l
	}
}

func newScanner(opts []Option) *scanner.Scanner {
	o := options{level: LevelDetect}
	for _, opt := range opts {
		opt(&o)
	}
	if o.level == LevelDetect {
		return scanner.New()
	}
	return scanner.NewLevel(o.level)
}

// Find runs stage 1 over data. The marks are complete even when data is not
// valid UTF-8, in which case the error is ErrInvalidUTF8.
func Find(data []byte, opts ...Option) (*Marks, error) {
	s := newScanner(opts)
	defer s.Release()

	err := s.Scan(data)
	return collect(s), err
}

// FindReader is Find over everything r yields. Errors from r are returned
// as is, with nil marks.
func FindReader(r io.Reader, opts ...Option) (*Marks, error) {
	s := newScanner(opts)
	defer s.Release()

	if _, err := io.Copy(s, r); err != nil {
		return nil, err
	}
	err := s.Finish()
	return collect(s), err
}

func collect(s *scanner.Scanner) *Marks {
	return &Marks{
		Len:        s.Len(),
		Whitespace: clone(s.Whitespace()),
		Structural: clone(s.Structurals()),
		QuoteBits:  clone(s.QuoteBits()),
		QuoteMask:  clone(s.QuoteMask()),
		Verdict:    s.Verdict(),
	}
}

func clone(words []uint64) []uint64 {
	return append(make([]uint64, 0, len(words)), words...)
}

// ValidUTF8 reports whether data is well-formed UTF-8.
func ValidUTF8(data []byte) bool {
	v := scanner.Default().NewValidator()
	end := len(data) &^ (scanner.ChunkSize - 1)
	for off := 0; off < end; off += scanner.ChunkSize {
		v.Check((*scanner.Block)(data[off : off+scanner.ChunkSize]))
	}
	if end < len(data) {
		var tail scanner.Block
		copy(tail[:], data[end:])
		v.Check(&tail)
	}
	return v.Finish() == Success
}

// ComputeQuoteMask returns the prefix parity of q: bit i is set iff an odd
// number of bits of q lie at or below i.
func ComputeQuoteMask(q uint64) uint64 {
	return scanner.Default().QuoteMask(q)
}

// QuoteInterior returns the string mask for a chunk's quote bits, quotes
// included, and the inside flag to pass with the next chunk. inside is all
// ones when the previous chunk ended inside a string and zero otherwise.
func QuoteInterior(quoteBits, inside uint64) (mask, insideOut uint64) {
	mask = scanner.QuoteInterior(scanner.Default(), quoteBits, &inside)
	return mask, inside
}
