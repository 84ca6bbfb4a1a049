package scanner

import (
	"math/bits"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteInterior(t *testing.T) {
	tests := []struct {
		name       string
		quotes     uint64
		inside     uint64
		want       uint64
		wantInside uint64
	}{
		{"no quotes", 0, 0, 0, 0},
		{"no quotes inside", 0, ^uint64(0), ^uint64(0), ^uint64(0)},
		{"adjacent pair", 0b0110, 0, 0b0110, 0},
		{"pair", 0b1001, 0, 0b1111, 0},
		{"open", 0b0010, 0, ^uint64(1), ^uint64(0)},
		{"close", 0b0100, ^uint64(0), 0b0111, 0},
		{"close then open", 0b1_0100, ^uint64(0), 0b0111 | ^uint64(0xF), ^uint64(0)},
		{"last byte opens", 1 << 63, 0, 1 << 63, ^uint64(0)},
	}

	for _, b := range Backends() {
		for _, tt := range tests {
			t.Run(b.Level().String()+"/"+tt.name, func(t *testing.T) {
				inside := tt.inside
				got := QuoteInterior(b, tt.quotes, &inside)
				assert.Equal(t, tt.want, got, "mask %064b", got)
				assert.Equal(t, tt.wantInside, inside)
			})
		}
	}
}

func TestQuoteMask_Parity(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		q := r.Uint64() & r.Uint64()
		var want uint64
		for j := 0; j < 64; j++ {
			if bits.OnesCount64(q<<(63-j))%2 == 1 {
				want |= 1 << j
			}
		}
		for _, b := range Backends() {
			assert.Equal(t, want, b.QuoteMask(q), "%s on %064b", b.Level(), q)
		}
	}
}

func TestFindOddBackslashSequences(t *testing.T) {
	tests := []struct {
		name        string
		backslashes uint64
		prevEndsOdd uint64
		want        uint64
		wantEndsOdd uint64
	}{
		{"none", 0, 0, 0, 0},
		{"single", 0b0010, 0, 0b0100, 0},
		{"single at zero", 0b0001, 0, 0b0010, 0},
		{"pair", 0b0110, 0, 0, 0},
		{"triple", 0b1110, 0, 0b1_0000, 0},
		{"two singles", 0b1_0001, 0, 0b10_0010, 0},
		{"ends odd", 1 << 63, 0, 0, 1},
		{"ends even", 3 << 62, 0, 0, 0},
		{"carried escapes bit zero", 0, 1, 0b0001, 0},
		{"carried run made even", 0b0001, 1, 0, 0},
		{"carried run made odd", 0b0011, 1, 0b0100, 0},
		{"all backslashes", ^uint64(0), 0, 0, 0},
		{"all backslashes carried", ^uint64(0), 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endsOdd := tt.prevEndsOdd
			got := findOddBackslashSequences(tt.backslashes, &endsOdd)
			assert.Equal(t, tt.want, got, "escaped %064b", got)
			assert.Equal(t, tt.wantEndsOdd, endsOdd)
		})
	}
}

func TestUnescapedQuotes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []int
	}{
		{"plain", `"a"`, []int{0, 2}},
		{"escaped", `"\""`, []int{0, 3}},
		{"escaped backslash", `"\\"`, []int{0, 3}},
		{"three backslashes", `"\\\""`, []int{0, 5}},
		{"backslash outside string", `\"`, nil},
	}

	for _, b := range Backends() {
		for _, tt := range tests {
			t.Run(b.Level().String()+"/"+tt.name, func(t *testing.T) {
				var prev uint64
				got := unescapedQuotes(b, block([]byte(tt.input)), &prev)
				assert.Equal(t, tt.want, positions([]uint64{got}))
			})
		}
	}
}

func TestUnescapedQuotes_AcrossChunks(t *testing.T) {
	for run := 1; run <= 3; run++ {
		data := []byte(strings.Repeat(" ", ChunkSize-run) + strings.Repeat(`\`, run) + `"x"`)
		padded := Pad(data)

		for _, b := range Backends() {
			var prev uint64
			first := unescapedQuotes(b, (*Block)(padded[:ChunkSize]), &prev)
			second := unescapedQuotes(b, (*Block)(padded[ChunkSize:]), &prev)

			assert.Zero(t, first)
			if run%2 == 1 {
				assert.Equal(t, uint64(0b100), second, "%s run %d", b.Level(), run)
			} else {
				assert.Equal(t, uint64(0b101), second, "%s run %d", b.Level(), run)
			}
			assert.Zero(t, prev)
		}
	}
}
