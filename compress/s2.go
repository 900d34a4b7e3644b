package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor stores a stream as one S2 block.
//
// qoif output repeats short chunk sequences (runs of 0xFD, recurring
// literals) at small distances, so the better-mode match finder is used: it
// costs little on streams that are already a fraction of the raw pixels.
// The block header records the decoded length, which Decompress checks
// before allocating.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as a single S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.EncodeBetter(nil, data), nil
}

// Decompress decodes an S2 block of at most 128MB.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}
	if n > maxDecompressedSize {
		return nil, fmt.Errorf("s2 decompression failed: decoded size %d exceeds %d", n, maxDecompressedSize)
	}

	return s2.Decode(make([]byte, n), data)
}
