//go:build amd64 && !noasm

package simd

import "golang.org/x/sys/cpu"

// clmulPCLMULQDQ multiplies the low quadwords of a and b with PCLMULQDQ and
// returns the low 64 bits of the product.
func clmulPCLMULQDQ(a, b uint64) uint64

func init() {
	if cpu.X86.HasPCLMULQDQ {
		carrylessMul = clmulPCLMULQDQ
		hasCLMUL = true
	}
}
