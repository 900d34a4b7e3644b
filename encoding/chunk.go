package encoding

import (
	"github.com/qoifgo/qoif/endian"
	"github.com/qoifgo/qoif/format"
	"github.com/qoifgo/qoif/internal/cache"
	"github.com/qoifgo/qoif/pixel"
	"github.com/qoifgo/qoif/section"
)

// ChunkEncoder selects and appends the chunk for a pixel that differs from its
// predecessor. It owns the 64-slot pixel cache of one encoding session.
//
// Equal consecutive pixels are not its concern: the caller accumulates them
// into runs and emits them with AppendRun.
//
// Note: ChunkEncoder is NOT thread-safe.
type ChunkEncoder struct {
	channels format.Channels
	cache    cache.Cache
}

// NewChunkEncoder creates a chunk encoder for the given channel mode with its
// cache already seeded with pixel.Start.
func NewChunkEncoder(channels format.Channels) *ChunkEncoder {
	e := &ChunkEncoder{channels: channels}
	e.Reset()

	return e
}

// Reset empties the cache and seeds it with pixel.Start, the implicit
// previous pixel of a new stream.
func (e *ChunkEncoder) Reset() {
	e.cache.Reset()
	e.cache.Store(uint32(pixel.Start))
}

// Store records px in the cache, evicting whatever shared its slot.
func (e *ChunkEncoder) Store(px pixel.Pixel) {
	e.cache.Store(uint32(px))
}

// Evictions returns how many cache stores displaced a different pixel.
func (e *ChunkEncoder) Evictions() int {
	return e.cache.Evictions()
}

// Append appends the chunk for px given the previous pixel prev, and reports
// which kind it chose. The cache is not updated; call Store afterwards.
//
// Branches are tried in this order, first match wins:
//  1. px is cached: index chunk
//  2. alpha unchanged and every channel delta in [-2, 1]: diff chunk
//  3. RGB mode, or alpha unchanged: RGB literal
//  4. otherwise: RGBA literal
//
// px must differ from prev.
func (e *ChunkEncoder) Append(dst []byte, px, prev pixel.Pixel) ([]byte, format.ChunkKind) {
	if idx, ok := e.cache.Lookup(uint32(px)); ok {
		return AppendIndex(dst, idx), format.ChunkIndex
	}

	sameAlpha := px.A() == prev.A()
	if sameAlpha {
		if dr, dg, db, ok := Diff(px, prev); ok {
			return AppendDiff(dst, dr, dg, db), format.ChunkDiff
		}
	}

	if e.channels == format.ChannelsRGB || sameAlpha {
		return AppendRGB(dst, px), format.ChunkRGB
	}

	return AppendRGBA(dst, px), format.ChunkRGBA
}

// Diff returns the signed R, G and B deltas of px relative to prev and whether
// all three fit a diff chunk. Alpha is not considered.
func Diff(px, prev pixel.Pixel) (dr, dg, db int, ok bool) {
	dr = int(px.R()) - int(prev.R())
	dg = int(px.G()) - int(prev.G())
	db = int(px.B()) - int(prev.B())

	ok = inDiffRange(dr) && inDiffRange(dg) && inDiffRange(db)

	return dr, dg, db, ok
}

func inDiffRange(d int) bool {
	return d >= section.DiffMin && d <= section.DiffMax
}

// AppendRun appends a run chunk for run repetitions, 1 <= run <= 62.
func AppendRun(dst []byte, run int) []byte {
	return append(dst, byte(section.OpRun|(run-section.RunBias)))
}

// AppendIndex appends a cache index chunk.
func AppendIndex(dst []byte, idx uint8) []byte {
	return append(dst, section.OpIndex|idx)
}

// AppendDiff appends a diff chunk. Each delta must be within [-2, 1].
func AppendDiff(dst []byte, dr, dg, db int) []byte {
	b := section.OpDiff |
		(dr+section.DiffBias)<<4 |
		(dg+section.DiffBias)<<2 |
		(db + section.DiffBias)

	return append(dst, byte(b))
}

// AppendRGB appends an RGB literal chunk. Alpha is not transmitted.
func AppendRGB(dst []byte, px pixel.Pixel) []byte {
	return append(dst, section.OpRGB, px.R(), px.G(), px.B())
}

// AppendRGBA appends an RGBA literal chunk: the tag followed by px in big-endian order.
func AppendRGBA(dst []byte, px pixel.Pixel) []byte {
	dst = append(dst, section.OpRGBA)
	return endian.GetBigEndianEngine().AppendUint32(dst, uint32(px))
}
