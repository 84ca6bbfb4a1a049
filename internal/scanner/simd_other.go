//go:build (!amd64 && !arm64) || noasm

package scanner

// detectLevel falls back to the scalar backend on targets without a vector
// tier and in noasm builds.
func detectLevel() Level {
	return LevelScalar
}
