package scanner

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	ErrInvalidUTF8 = errors.New("invalid UTF-8")
	ErrFinished    = errors.New("scanner: write after finish")
)

// Level names a backend by the vector width it is written for.
type Level uint8

const (
	// LevelScalar loops over bytes. Always available.
	LevelScalar Level = iota
	// LevelNarrow works on four 128-bit lanes per chunk (SSE4.2, NEON).
	LevelNarrow
	// LevelWide works on two 256-bit lanes per chunk (AVX2).
	LevelWide

	// LevelDetect picks the widest level the CPU supports, capped by
	// the SIMDMARKS_LEVEL environment variable.
	LevelDetect Level = 0xFF
)

const levelEnvVar = "SIMDMARKS_LEVEL"

func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelNarrow:
		return "narrow"
	case LevelWide:
		return "wide"
	case LevelDetect:
		return "detect"
	}
	return fmt.Sprintf("Level(%d)", uint8(l))
}

// ParseLevel accepts the names printed by Level.String and a few aliases
// for the instruction sets behind them.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "detect":
		return LevelDetect, nil
	case "scalar", "none", "generic":
		return LevelScalar, nil
	case "narrow", "sse", "sse4", "neon":
		return LevelNarrow, nil
	case "wide", "avx2":
		return LevelWide, nil
	}
	return LevelDetect, fmt.Errorf("unknown level %q", s)
}

// DetectLevel returns the level to use on this machine. SIMDMARKS_LEVEL can
// lower the detected level, which is how a wide-capable machine is made to
// run the narrow or scalar backend; it cannot raise it.
func DetectLevel() Level {
	detected := detectLevel()

	val, _ := os.LookupEnv(levelEnvVar)
	env, err := ParseLevel(val)
	if err != nil || env == LevelDetect {
		return detected
	}
	if env <= detected {
		return env
	}
	return detected
}

// Verdict is the whole-buffer UTF-8 outcome.
type Verdict uint8

const (
	Success Verdict = iota
	InvalidUTF8
)

func (v Verdict) String() string {
	if v == InvalidUTF8 {
		return "INVALID_UTF8"
	}
	return "SUCCESS"
}

// Err returns ErrInvalidUTF8 for InvalidUTF8 and nil otherwise.
func (v Verdict) Err() error {
	if v == InvalidUTF8 {
		return ErrInvalidUTF8
	}
	return nil
}

// Backend is one capability tier's implementation of the per-chunk work.
// Backends are stateless; everything carried between chunks lives in the
// Validator or the Scanner.
type Backend interface {
	Level() Level

	// Classify returns the whitespace and structural words of a chunk.
	Classify(in *Block) (whitespace, structurals uint64)

	// CompareMask returns a word with bit i set iff in[i] == c.
	CompareMask(in *Block, c byte) uint64

	// QuoteMask returns the running parity of quoteBits: bit i is set iff an
	// odd number of quote bits lie at or below i.
	QuoteMask(quoteBits uint64) uint64

	NewValidator() Validator
}

// Validator checks UTF-8 one chunk at a time. It owns the state carried
// from one chunk to the next and must see chunks in stream order.
type Validator interface {
	Check(in *Block)

	// Finish folds in the end of input and returns the verdict. A sequence
	// still waiting for continuation bytes is an error. Finish may be called
	// more than once.
	Finish() Verdict

	Reset()
}

var backends = [...]Backend{
	LevelScalar: scalarBackend{},
	LevelNarrow: narrowBackend{},
	LevelWide:   wideBackend{},
}

var defaultLevel = DetectLevel()

// ForLevel returns the backend for l. LevelDetect and unknown levels map to
// the detected default.
func ForLevel(l Level) Backend {
	if int(l) >= len(backends) {
		l = defaultLevel
	}
	return backends[l]
}

// Default returns the backend chosen at startup.
func Default() Backend {
	return backends[defaultLevel]
}

// DefaultLevel returns the level chosen at startup.
func DefaultLevel() Level {
	return defaultLevel
}

// Backends returns every backend compiled into the binary, narrowest first.
// All of them run on any CPU; detection only decides which one is the default.
func Backends() []Backend {
	out := make([]Backend, len(backends))
	copy(out, backends[:])
	return out
}

// HasSIMD reports whether the default backend is a vector one.
func HasSIMD() bool {
	return defaultLevel > LevelScalar
}
