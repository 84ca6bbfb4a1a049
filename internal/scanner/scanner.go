package scanner

// Scanner runs stage 1 over a byte stream: it feeds 64-byte chunks through a
// Backend in order and accumulates one word per chunk into each bit stream.
//
// A Scanner is not safe for concurrent use. The slices returned by its
// accessors are owned by the Scanner and are overwritten by the next Reset,
// Scan or Release.
type Scanner struct {
	backend   Backend
	validator Validator

	whitespace  []uint64
	structurals []uint64
	quoteBits   []uint64
	quoteMask   []uint64

	n        int
	pending  Block // head of the next chunk, filled across Write calls
	npending int

	prevEndsOddBackslash uint64
	prevInsideQuote      uint64

	verdict  Verdict
	finished bool
}

func newScanner(b Backend) *Scanner {
	return &Scanner{
		backend:     b,
		validator:   b.NewValidator(),
		whitespace:  make([]uint64, 0, 64),
		structurals: make([]uint64, 0, 64),
		quoteBits:   make([]uint64, 0, 64),
		quoteMask:   make([]uint64, 0, 64),
	}
}

// New returns a pooled Scanner using the default backend. Call Release
// when done with it.
func New() *Scanner {
	s := scannerPool.Get().(*Scanner)
	if s.backend.Level() != defaultLevel {
		s.SetLevel(defaultLevel)
	}
	return s
}

// NewLevel returns a Scanner using the backend for l.
func NewLevel(l Level) *Scanner {
	s := New()
	s.SetLevel(l)
	return s
}

// Release resets s and returns it to the pool.
func (s *Scanner) Release() {
	s.Reset()
	putScanner(s)
}

// SetLevel switches s to the backend for l and resets it.
func (s *Scanner) SetLevel(l Level) {
	b := ForLevel(l)
	if s.backend == nil || s.backend.Level() != b.Level() {
		s.backend = b
		s.validator = b.NewValidator()
	}
	s.Reset()
}

// Level returns the level of the backend s runs.
func (s *Scanner) Level() Level {
	return s.backend.Level()
}

// Reset discards all input and state so s can scan a new stream.
func (s *Scanner) Reset() {
	s.validator.Reset()
	s.whitespace = s.whitespace[:0]
	s.structurals = s.structurals[:0]
	s.quoteBits = s.quoteBits[:0]
	s.quoteMask = s.quoteMask[:0]
	s.n = 0
	s.npending = 0
	s.prevEndsOddBackslash = 0
	s.prevInsideQuote = 0
	s.verdict = Success
	s.finished = false
}

// Scan runs stage 1 over data as one complete stream. The bit streams are
// filled in even when data is not valid UTF-8; the error is then
// ErrInvalidUTF8.
func (s *Scanner) Scan(data []byte) error {
	s.Reset()
	s.grow(PaddedLen(len(data)) / ChunkSize)

	end := len(data) &^ (ChunkSize - 1)
	for off := 0; off < end; off += ChunkSize {
		s.step((*Block)(data[off : off+ChunkSize]))
	}
	s.n = end
	if tail, ok := paddedTail(data); ok {
		// the caller's buffer already carries zero padding
		s.n = len(data)
		s.step(tail)
	} else {
		s.Write(data[end:])
	}
	return s.Finish()
}

// Write feeds the next bytes of the stream. Input may be split at any
// offset; the result does not depend on how it was split. Write never
// fails before Finish.
func (s *Scanner) Write(p []byte) (int, error) {
	if s.finished {
		return 0, ErrFinished
	}
	n := len(p)
	s.n += n

	if s.npending > 0 {
		c := copy(s.pending[s.npending:], p)
		s.npending += c
		p = p[c:]
		if s.npending < ChunkSize {
			return n, nil
		}
		s.step(&s.pending)
		s.npending = 0
	}
	for len(p) >= ChunkSize {
		s.step((*Block)(p[:ChunkSize]))
		p = p[ChunkSize:]
	}
	s.npending = copy(s.pending[:], p)
	return n, nil
}

// Finish pads the last partial chunk with zeros, processes it and settles
// the verdict. Calling Finish again returns the same result.
func (s *Scanner) Finish() error {
	if !s.finished {
		if s.npending > 0 {
			clear(s.pending[s.npending:])
			s.step(&s.pending)
			s.npending = 0
		}
		s.verdict = s.validator.Finish()
		s.finished = true
	}
	return s.verdict.Err()
}

func (s *Scanner) step(in *Block) {
	ws, st := s.backend.Classify(in)
	s.validator.Check(in)

	quotes := unescapedQuotes(s.backend, in, &s.prevEndsOddBackslash)
	mask := QuoteInterior(s.backend, quotes, &s.prevInsideQuote)

	s.whitespace = append(s.whitespace, ws)
	s.structurals = append(s.structurals, st)
	s.quoteBits = append(s.quoteBits, quotes)
	s.quoteMask = append(s.quoteMask, mask)
}

func (s *Scanner) grow(words int) {
	if cap(s.structurals) >= words {
		return
	}
	s.whitespace = make([]uint64, 0, words)
	s.structurals = make([]uint64, 0, words)
	s.quoteBits = make([]uint64, 0, words)
	s.quoteMask = make([]uint64, 0, words)
}

// Len returns the number of input bytes seen so far.
func (s *Scanner) Len() int {
	return s.n
}

// Whitespace returns one word per chunk, bit i set iff byte i of the chunk
// is a space, tab, line feed or carriage return.
func (s *Scanner) Whitespace() []uint64 {
	return s.whitespace
}

// Structurals returns one word per chunk, bit i set iff byte i of the chunk
// is one of { } [ ] , :.
func (s *Scanner) Structurals() []uint64 {
	return s.structurals
}

// QuoteBits returns the positions of unescaped double quotes.
func (s *Scanner) QuoteBits() []uint64 {
	return s.quoteBits
}

// QuoteMask returns the string mask, quotes included; see QuoteInterior.
func (s *Scanner) QuoteMask() []uint64 {
	return s.quoteMask
}

// InsideString reports whether the input seen so far ends inside a string.
func (s *Scanner) InsideString() bool {
	return s.prevInsideQuote != 0
}

// Verdict returns the UTF-8 verdict. It is final only after Finish.
func (s *Scanner) Verdict() Verdict {
	return s.verdict
}
