package stream

import "github.com/qoifgo/qoif/format"

// Stats summarizes the last Encode call of an Encoder.
type Stats struct {
	// Pixels is the number of input pixels consumed.
	Pixels int
	// Bytes is the number of bytes written to the sink, header and end marker included.
	Bytes int64
	// Evictions counts cache stores that displaced a different pixel.
	Evictions int
	// Digest is the xxHash64 of every byte written to the sink.
	Digest uint64

	chunks [len(format.ChunkKinds) + 1]int
}

// ChunkCount returns how many chunks of the given kind were emitted.
func (s Stats) ChunkCount(kind format.ChunkKind) int {
	if int(kind) >= len(s.chunks) {
		return 0
	}

	return s.chunks[kind]
}

// TotalChunks returns the number of chunks of all kinds.
func (s Stats) TotalChunks() int {
	total := 0
	for _, n := range s.chunks {
		total += n
	}

	return total
}

func (s *Stats) count(kind format.ChunkKind) {
	s.chunks[kind]++
}
