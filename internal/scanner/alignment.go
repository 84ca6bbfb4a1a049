package scanner

// PaddedLen rounds n up to a whole number of chunks.
func PaddedLen(n int) int {
	return (n + ChunkSize - 1) &^ (ChunkSize - 1)
}

// Pad returns data extended with zero bytes to a multiple of ChunkSize.
// data is returned as is when it already is one, or when its spare capacity
// covers the padding and is already zero.
func Pad(data []byte) []byte {
	n := PaddedLen(len(data))
	if n == len(data) {
		return data
	}
	if _, ok := paddedTail(data); ok {
		return data[:n]
	}
	padded := make([]byte, n)
	copy(padded, data)
	return padded
}

// paddedTail returns the last partial chunk of data read in place, when the
// bytes between len(data) and the next chunk boundary are within capacity
// and all zero.
func paddedTail(data []byte) (*Block, bool) {
	end := len(data) &^ (ChunkSize - 1)
	if end == len(data) || cap(data) < end+ChunkSize {
		return nil, false
	}
	tail := (*Block)(data[end : end+ChunkSize])
	for _, c := range tail[len(data)-end:] {
		if c != 0 {
			return nil, false
		}
	}
	return tail, true
}
