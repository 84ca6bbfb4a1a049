package index

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biggeezerdevelopment/simdmarks/internal/scanner"
)

func build(t *testing.T, input string) []uint32 {
	t.Helper()
	s := scanner.New()
	defer s.Release()

	require.NoError(t, s.Scan([]byte(input)))
	return Build(s.Len(), s.Whitespace(), s.Structurals(), s.QuoteBits())
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []uint32
	}{
		{
			name:     "simple object",
			input:    `{"key":"value"}`,
			expected: []uint32{0, 1, 6, 7, 14}, // { "key : "value }
		},
		{
			name:     "simple array",
			input:    `[1,2,3]`,
			expected: []uint32{0, 1, 2, 3, 4, 5, 6},
		},
		{
			name:     "nested structure",
			input:    `{"a":[1,2],"b":true}`,
			expected: []uint32{0, 1, 4, 5, 6, 7, 8, 9, 10, 11, 14, 15, 19},
		},
		{
			name:     "empty object",
			input:    `{}`,
			expected: []uint32{0, 1},
		},
		{
			name:     "bare literal",
			input:    `true`,
			expected: []uint32{0},
		},
		{
			name:     "whitespace",
			input:    " [ 1 ,\n22 ] ",
			expected: []uint32{1, 3, 5, 7, 10},
		},
		{
			name:     "structurals in strings",
			input:    `["{,}:", "a\"b"]`,
			expected: []uint32{0, 1, 7, 9, 15},
		},
		{
			name:  "empty",
			input: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, build(t, tt.input))
		})
	}
}

func TestBuild_AcrossChunks(t *testing.T) {
	input := strings.Repeat(" ", 62) + `["a b",1]`
	got := build(t, input)
	assert.Equal(t, []uint32{62, 63, 68, 69, 70}, got)

	input = strings.Repeat(" ", 63) + `1`
	assert.Equal(t, []uint32{63}, build(t, input))
}

func TestFinalize(t *testing.T) {
	// `"a" 1` with quote bits 0 and 2, whitespace at 3
	prev := uint64(1)
	got := Finalize(0, 0b1000, 0b0011, 0b0101, &prev)
	assert.Equal(t, uint64(0b1_0001), got)
	assert.Zero(t, prev)

	// only bit 0 follows a predecessor; the whitespace at bit 63 carries
	prev = 1
	got = Finalize(0, 1<<63, 0, 0, &prev)
	assert.Equal(t, uint64(1), got)
	assert.Equal(t, uint64(1), prev)
}

func TestFlatten(t *testing.T) {
	assert.Empty(t, Flatten(nil, 0, 0))
	assert.Equal(t, []uint32{0, 63}, Flatten(nil, 0, 1|1<<63))
	assert.Equal(t, []uint32{7, 64, 66}, Flatten([]uint32{7}, 64, 0b101))
}

func TestBuild_ShortStreams(t *testing.T) {
	assert.Panics(t, func() {
		Build(65, make([]uint64, 1), make([]uint64, 1), make([]uint64, 1))
	})
}
