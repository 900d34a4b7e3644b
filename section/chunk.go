package section

import (
	"fmt"

	"github.com/qoifgo/qoif/errs"
	"github.com/qoifgo/qoif/format"
)

// ChunkKindOf classifies a chunk by its first byte and returns its total size
// in bytes. Tags in the reserved OpLuma range return kind 0 and size 0.
func ChunkKindOf(tag byte) (format.ChunkKind, int) {
	switch tag {
	case OpRGB:
		return format.ChunkRGB, 4
	case OpRGBA:
		return format.ChunkRGBA, 5
	}

	switch tag & OpMask {
	case OpIndex:
		return format.ChunkIndex, 1
	case OpDiff:
		return format.ChunkDiff, 1
	case OpRun:
		return format.ChunkRun, 1
	default:
		return 0, 0
	}
}

// RunLength returns the number of pixels a run chunk stands for.
func RunLength(tag byte) int {
	return int(tag&^OpMask) + RunBias
}

// ScanChunks calls fn for every chunk between the header and the end marker
// of a complete stream, in order. Chunk bytes are not interpreted beyond
// their tag.
//
// Returns:
//   - error: the header or end marker error, ErrReservedChunkTag, or
//     ErrTruncatedChunk, with the offending offset
func ScanChunks(stream []byte, fn func(kind format.ChunkKind, chunk []byte)) error {
	if _, err := ParseHeader(stream); err != nil {
		return err
	}
	if err := CheckEndMarker(stream); err != nil {
		return err
	}

	payload := stream[HeaderSize : len(stream)-EndMarkerSize]
	for offset := 0; offset < len(payload); {
		kind, size := ChunkKindOf(payload[offset])
		if size == 0 {
			return fmt.Errorf("%w: 0x%02X at offset %d", errs.ErrReservedChunkTag, payload[offset], HeaderSize+offset)
		}
		if offset+size > len(payload) {
			return fmt.Errorf("%w: %s at offset %d", errs.ErrTruncatedChunk, kind, HeaderSize+offset)
		}

		fn(kind, payload[offset:offset+size])
		offset += size
	}

	return nil
}
