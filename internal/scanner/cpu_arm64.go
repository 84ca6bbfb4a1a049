//go:build arm64

package scanner

import (
	"golang.org/x/sys/cpu"
)

// Advanced SIMD is mandatory on arm64, so it is assumed when the OS does
// not let cpu read the feature registers.
func hasASIMD() bool {
	return cpu.ARM64.HasASIMD || !cpu.Initialized
}
