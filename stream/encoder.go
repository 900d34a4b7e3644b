package stream

import (
	"io"

	"go.uber.org/zap"

	"github.com/qoifgo/qoif/encoding"
	"github.com/qoifgo/qoif/format"
	"github.com/qoifgo/qoif/internal/hash"
	"github.com/qoifgo/qoif/internal/options"
	"github.com/qoifgo/qoif/internal/pool"
	"github.com/qoifgo/qoif/pixel"
	"github.com/qoifgo/qoif/section"
)

// Encoder writes pixel sequences as qoif streams.
//
// Cache, run counter and previous pixel are reset at the start of every
// Encode call, so one Encoder can encode several images in turn.
//
// Note: The Encoder is NOT thread-safe. Use one instance per goroutine.
type Encoder struct {
	*EncoderConfig

	chunks *encoding.ChunkEncoder
	stats  Stats
}

// NewEncoder creates an encoder for a width x height image.
//
// Parameters:
//   - width, height: written to the header unchecked
//   - opts: see WithChannels, WithRGB, WithRGBA, WithFinalRunFlush, WithBufferSize, WithLogger
//
// Returns:
//   - *Encoder: the encoder
//   - error: an error if an option is invalid
func NewEncoder(width, height uint32, opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig(width, height)
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{
		EncoderConfig: config,
		chunks:        encoding.NewChunkEncoder(config.header.Channels),
	}, nil
}

// Stats returns the statistics of the last Encode call.
func (e *Encoder) Stats() Stats {
	return e.stats
}

// Encode writes the header, one chunk decision per pixel and the end marker
// to sink, then closes sink.
//
// The pixel count is not checked against the header. A write error from sink
// is returned unchanged and sink is left open; the error from Close is also
// returned unchanged.
func (e *Encoder) Encode(pixels []pixel.Pixel, sink io.WriteCloser) error {
	e.chunks.Reset()
	e.stats = Stats{}

	buf := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(buf)

	digest := hash.NewDigest()
	flush := func() error {
		n := buf.Len()
		_, _ = digest.Write(buf.B)
		if _, err := buf.WriteTo(sink); err != nil {
			return err
		}
		e.stats.Bytes += int64(n)

		return nil
	}

	e.logger.Debug("encoding stream",
		zap.Uint32("width", e.header.Width),
		zap.Uint32("height", e.header.Height),
		zap.Stringer("channels", e.header.Channels),
		zap.Int("pixels", len(pixels)),
	)

	buf.B = e.header.Append(buf.B)

	rgb := e.header.Channels == format.ChannelsRGB
	last := len(pixels) - 1
	prev := pixel.Start
	run := 0

	for i, px := range pixels {
		if rgb {
			px = px.Opaque()
		}

		if run > 0 && (px != prev || run == section.MaxRunLength || i == last) {
			buf.B = encoding.AppendRun(buf.B, run)
			e.stats.count(format.ChunkRun)
			run = 0
		}

		if px == prev {
			run++
		} else {
			var kind format.ChunkKind
			buf.B, kind = e.chunks.Append(buf.B, px, prev)
			e.stats.count(kind)
		}

		e.chunks.Store(px)
		prev = px

		if e.bufferSize > 0 && buf.Len() >= e.bufferSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}

	// run is non-zero here only when the last pixel repeated its predecessor
	if e.finalRunFlush && run > 0 {
		buf.B = encoding.AppendRun(buf.B, run)
		e.stats.count(format.ChunkRun)
	}

	buf.B = append(buf.B, section.EndMarker[:]...)
	if err := flush(); err != nil {
		return err
	}

	e.stats.Pixels = len(pixels)
	e.stats.Evictions = e.chunks.Evictions()
	e.stats.Digest = digest.Sum64()

	e.logger.Debug("stream encoded",
		zap.Int64("bytes", e.stats.Bytes),
		zap.Int("chunks", e.stats.TotalChunks()),
		zap.Int("runs", e.stats.ChunkCount(format.ChunkRun)),
		zap.Int("evictions", e.stats.Evictions),
		zap.Bool("final_run_flush", e.finalRunFlush),
	)

	return sink.Close()
}
