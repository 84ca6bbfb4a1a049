package scanner

import "sync"

// maxPooledWords bounds the bit streams kept alive by a pooled Scanner,
// in words per stream (1 MiB of input).
const maxPooledWords = 1 << 14

var scannerPool = sync.Pool{
	New: func() interface{} {
		return newScanner(Default())
	},
}

func putScanner(s *Scanner) {
	if cap(s.structurals) > maxPooledWords { // don't pool very large streams
		return
	}
	scannerPool.Put(s)
}
