package simdmarks

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSIMDAlgorithms checks the vector levels against the scalar one
func TestSIMDAlgorithms(t *testing.T) {
	t.Run("StructuralScanning", testSIMDStructuralScanning)
	t.Run("QuoteMasking", testSIMDQuoteMasking)
	t.Run("UTF8Validation", testSIMDUTF8Validation)
}

func testSIMDStructuralScanning(t *testing.T) {
	testCases := []struct {
		name string
		json string
	}{
		{"simple", `{"key":"value"}`},
		{"array", `[1,2,3,4,5]`},
		{"nested", `{"a":{"b":[1,2]}}`},
		{"complex", `{"users":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}],"count":2}`},
		{"large_string", `{"data":"` + string(bytes.Repeat([]byte("x\\\""), 300)) + `"}`},
		{"many_elements", generateManyElements(100)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			scalar, err := Find([]byte(tc.json), WithLevel(LevelScalar))
			require.NoError(t, err)

			for _, level := range []Level{LevelNarrow, LevelWide} {
				m, err := Find([]byte(tc.json), WithLevel(level))
				require.NoError(t, err)
				assert.Equal(t, scalar, m, level.String())
				assert.Equal(t, scalar.StructuralIndices(), m.StructuralIndices(), level.String())
			}
		})
	}
}

func testSIMDQuoteMasking(t *testing.T) {
	testCases := []struct {
		name   string
		q      uint64
		inside uint64
		mask   uint64
	}{
		{"no_quotes", 0, 0, 0},
		{"adjacent", 0b0110, 0, 0b0110},
		{"spaced", 0b1_0010, 0, 0b1_1110},
		{"continues", 0, ^uint64(0), ^uint64(0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mask, inside := QuoteInterior(tc.q, tc.inside)
			assert.Equal(t, tc.mask, mask)
			assert.Equal(t, uint64(int64(mask)>>63), inside)
		})
	}

	r := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		q := r.Uint64()
		var want, parity uint64
		for j := 0; j < 64; j++ {
			parity ^= q >> j & 1
			want |= parity << j
		}
		require.Equal(t, want, ComputeQuoteMask(q), "%064b", q)
	}
}

func testSIMDUTF8Validation(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		valid bool
	}{
		{"ascii", "hello world", true},
		{"empty", "", true},
		{"utf8", "hello 世界", true},
		{"emoji", "hello 😀", true},
		{"long_mixed", string(bytes.Repeat([]byte("aé世😀"), 50)), true},
		{"truncated", "hello \xe4\xb8", false},
		{"surrogate", "\xed\xbf\xbf", false},
		{"overlong", "\xe0\x9f\xbf", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidUTF8([]byte(tc.input)))
			for _, level := range levels {
				m, err := Find([]byte(tc.input), WithLevel(level))
				if tc.valid {
					assert.NoError(t, err, level.String())
					assert.Equal(t, Success, m.Verdict)
				} else {
					assert.ErrorIs(t, err, ErrInvalidUTF8, level.String())
					assert.Equal(t, InvalidUTF8, m.Verdict)
				}
			}
		})
	}
}

func TestLevels(t *testing.T) {
	l, err := ParseLevel("avx2")
	require.NoError(t, err)
	assert.Equal(t, LevelWide, l)

	assert.NotEqual(t, LevelDetect, DefaultLevel())

	m, err := Find([]byte(`[]`), WithLevel(LevelDetect))
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1}, m.StructuralIndices())
}

// TestSIMDConcurrency runs every level at once
func TestSIMDConcurrency(t *testing.T) {
	testJSON := []byte(`{"test":"concurrent","numbers":[1,2,3,4,5],"nested":{"value":42}}`)
	want, err := Find(testJSON)
	require.NoError(t, err)

	numGoroutines := 10
	numIterations := 100
	done := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			for j := 0; j < numIterations; j++ {
				level := levels[(id+j)%len(levels)]
				got, err := Find(testJSON, WithLevel(level))
				if err != nil {
					done <- fmt.Errorf("goroutine %d: %v", id, err)
					return
				}
				if !assert.ObjectsAreEqual(want, got) {
					done <- fmt.Errorf("goroutine %d: %s marks differ", id, level)
					return
				}
			}
			done <- nil
		}(i)
	}

	for i := 0; i < numGoroutines; i++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}

func generateManyElements(count int) string {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i := 0; i < count; i++ {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, `{"id":%d,"name":"item_%d","ok":true}`, i, i)
	}
	buf.WriteString("]")
	return buf.String()
}
