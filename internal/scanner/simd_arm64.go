//go:build arm64 && !noasm

package scanner

func detectLevel() Level {
	if hasASIMD() {
		return LevelNarrow
	}
	return LevelScalar
}
