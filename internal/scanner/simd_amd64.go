//go:build amd64 && !noasm

package scanner

func detectLevel() Level {
	switch {
	case hasAVX2():
		return LevelWide
	case hasSSE42():
		return LevelNarrow
	}
	return LevelScalar
}
