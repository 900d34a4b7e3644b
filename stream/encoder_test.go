package stream

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/qoifgo/qoif/errs"
	"github.com/qoifgo/qoif/format"
	"github.com/qoifgo/qoif/internal/hash"
	"github.com/qoifgo/qoif/pixel"
	"github.com/qoifgo/qoif/section"
)

// memSink records everything written and whether Close was called.
type memSink struct {
	buf    bytes.Buffer
	writes int
	closed bool

	writeErr error
	closeErr error
}

func (s *memSink) Write(p []byte) (int, error) {
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	s.writes++

	return s.buf.Write(p)
}

func (s *memSink) Close() error {
	s.closed = true
	return s.closeErr
}

func encode(t *testing.T, enc *Encoder, pixels []pixel.Pixel) []byte {
	t.Helper()

	sink := &memSink{}
	require.NoError(t, enc.Encode(pixels, sink))
	require.True(t, sink.closed, "sink must be closed after encoding")

	return sink.buf.Bytes()
}

func newEncoder(t *testing.T, width, height uint32, opts ...EncoderOption) *Encoder {
	t.Helper()

	enc, err := NewEncoder(width, height, opts...)
	require.NoError(t, err)

	return enc
}

// expected builds header + chunks + end marker.
func expected(width, height uint32, channels format.Channels, chunks ...byte) []byte {
	out := section.NewHeader(width, height, channels).Bytes()
	out = append(out, chunks...)

	return append(out, section.EndMarker[:]...)
}

func repeat(p pixel.Pixel, n int) []pixel.Pixel {
	out := make([]pixel.Pixel, n)
	for i := range out {
		out[i] = p
	}

	return out
}

func TestNewEncoder_Defaults(t *testing.T) {
	enc := newEncoder(t, 3, 2)

	require.Equal(t, format.ChannelsRGB, enc.Channels())
	require.False(t, enc.FinalRunFlush())
	require.Positive(t, enc.BufferSize())
	require.Equal(t, section.NewHeader(3, 2, format.ChannelsRGB), enc.Header())
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder(1, 1, WithBufferSize(-1))
	require.ErrorIs(t, err, errs.ErrInvalidBufferSize)

	_, err = NewEncoder(1, 1, WithLogger(nil))
	require.ErrorIs(t, err, errs.ErrNilLogger)
}

func TestEncode_SinglePixelExample(t *testing.T) {
	enc := newEncoder(t, 1, 1, WithRGBA())

	out := encode(t, enc, []pixel.Pixel{0x000000FF})

	want := []byte{
		'q', 'o', 'i', 'f', 0, 0, 0, 1, 0, 0, 0, 1, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 1,
	}
	require.Equal(t, want, out, "the trailing repeat of the start pixel produces no chunk")
	require.Equal(t, 0, enc.Stats().TotalChunks())
}

func TestEncode_SinglePixelFinalRunFlush(t *testing.T) {
	enc := newEncoder(t, 1, 1, WithRGBA(), WithFinalRunFlush(true))

	out := encode(t, enc, []pixel.Pixel{0x000000FF})

	require.Equal(t, expected(1, 1, format.ChannelsRGBA, 0xC0), out)
}

func TestEncode_Empty(t *testing.T) {
	enc := newEncoder(t, 0, 0, WithRGBA(), WithFinalRunFlush(true))

	out := encode(t, enc, nil)

	require.Equal(t, expected(0, 0, format.ChannelsRGBA), out)
}

func TestEncode_UniformStartPixel(t *testing.T) {
	tests := []struct {
		n          int
		reference  []byte
		finalFlush []byte
	}{
		{1, nil, []byte{0xC0}},
		{2, []byte{0xC0}, []byte{0xC0, 0xC0}},
		{5, []byte{0xC3}, []byte{0xC3, 0xC0}},
		{62, []byte{0xFC}, []byte{0xFC, 0xC0}},
		{63, []byte{0xFD}, []byte{0xFD, 0xC0}},
		{124, []byte{0xFD, 0xFC}, []byte{0xFD, 0xFC, 0xC0}},
		{125, []byte{0xFD, 0xFD}, []byte{0xFD, 0xFD, 0xC0}},
	}
	for _, tt := range tests {
		pixels := repeat(pixel.Start, tt.n)

		t.Run("reference", func(t *testing.T) {
			enc := newEncoder(t, uint32(tt.n), 1, WithRGBA())
			require.Equal(t, expected(uint32(tt.n), 1, format.ChannelsRGBA, tt.reference...), encode(t, enc, pixels))
		})

		t.Run("final run flush", func(t *testing.T) {
			enc := newEncoder(t, uint32(tt.n), 1, WithRGBA(), WithFinalRunFlush(true))
			out := encode(t, enc, pixels)
			require.Equal(t, expected(uint32(tt.n), 1, format.ChannelsRGBA, tt.finalFlush...), out)

			// every pixel is accounted for by the run chunks
			total := 0
			for _, b := range out[section.HeaderSize : len(out)-section.EndMarkerSize] {
				require.Equal(t, byte(section.OpRun), b&section.OpMask)
				require.LessOrEqual(t, b, byte(0xFD))
				total += int(b&^section.OpMask) + 1
			}
			require.Equal(t, tt.n, total)
		})
	}
}

func TestEncode_UniformLiteralPixel(t *testing.T) {
	p := pixel.Pack(10, 20, 30, 255)
	pixels := repeat(p, 5)

	enc := newEncoder(t, 5, 1, WithRGBA())
	require.Equal(t,
		expected(5, 1, format.ChannelsRGBA, 0xFE, 10, 20, 30, 0xC2),
		encode(t, enc, pixels),
		"literal covers one pixel, run covers three, last pixel is dropped")

	enc = newEncoder(t, 5, 1, WithRGBA(), WithFinalRunFlush(true))
	require.Equal(t,
		expected(5, 1, format.ChannelsRGBA, 0xFE, 10, 20, 30, 0xC2, 0xC0),
		encode(t, enc, pixels))
}

func TestEncode_RunFlushesAt62(t *testing.T) {
	x := pixel.Pack(200, 100, 50, 255)
	pixels := append(repeat(pixel.Start, 63), x)

	enc := newEncoder(t, 64, 1, WithRGBA())
	out := encode(t, enc, pixels)

	require.Equal(t, expected(64, 1, format.ChannelsRGBA, 0xFD, 0xC0, 0xFE, 200, 100, 50), out)
	require.Equal(t, 2, enc.Stats().ChunkCount(format.ChunkRun))
}

func TestEncode_TwoLiterals(t *testing.T) {
	a := pixel.Pack(10, 20, 30, 255)
	b := pixel.Pack(200, 100, 50, 128)

	t.Run("rgba", func(t *testing.T) {
		enc := newEncoder(t, 2, 1, WithRGBA())
		out := encode(t, enc, []pixel.Pixel{a, b})

		require.Equal(t, expected(2, 1, format.ChannelsRGBA,
			0xFE, 10, 20, 30,
			0xFF, 200, 100, 50, 128,
		), out)

		stats := enc.Stats()
		require.Equal(t, 1, stats.ChunkCount(format.ChunkRGB))
		require.Equal(t, 1, stats.ChunkCount(format.ChunkRGBA))
	})

	t.Run("rgb forces alpha", func(t *testing.T) {
		enc := newEncoder(t, 2, 1, WithRGB())
		out := encode(t, enc, []pixel.Pixel{a, b})

		require.Equal(t, expected(2, 1, format.ChannelsRGB,
			0xFE, 10, 20, 30,
			0xFE, 200, 100, 50,
		), out)
	})
}

func TestEncode_RGBForcesAlphaBeforeRunCheck(t *testing.T) {
	enc := newEncoder(t, 2, 1, WithRGB())

	// 0x00000000 becomes the start pixel once alpha is forced
	out := encode(t, enc, []pixel.Pixel{0x00000000, 0x0A141E00})

	require.Equal(t, expected(2, 1, format.ChannelsRGB, 0xC0, 0xFE, 10, 20, 30), out)
}

func TestEncode_CacheRoundTrip(t *testing.T) {
	a := pixel.Pack(10, 20, 30, 255)
	b := pixel.Pack(200, 100, 50, 255)
	require.NotEqual(t, hash.Index(uint32(a)), hash.Index(uint32(b)))

	enc := newEncoder(t, 3, 1)
	out := encode(t, enc, []pixel.Pixel{a, b, a})

	require.Equal(t, expected(3, 1, format.ChannelsRGB,
		0xFE, 10, 20, 30,
		0xFE, 200, 100, 50,
		hash.Index(uint32(a)),
	), out)
	require.Equal(t, 1, enc.Stats().ChunkCount(format.ChunkIndex))
}

func TestEncode_CacheCollisionMisses(t *testing.T) {
	// R=1 and R=65 share a slot
	a := pixel.Pack(1, 0, 0, 255)
	b := pixel.Pack(65, 0, 0, 255)
	c := pixel.Pack(130, 0, 0, 255)
	require.Equal(t, hash.Index(uint32(a)), hash.Index(uint32(b)))

	enc := newEncoder(t, 4, 1)
	out := encode(t, enc, []pixel.Pixel{a, b, c, a})

	// a is a diff from the start pixel, b and c are literals, a is evicted and
	// no longer within diff range of c
	require.Equal(t, expected(4, 1, format.ChannelsRGB,
		0b01111010,
		0xFE, 65, 0, 0,
		0xFE, 130, 0, 0,
		0xFE, 1, 0, 0,
	), out)
	require.Equal(t, 0, enc.Stats().ChunkCount(format.ChunkIndex))
	require.GreaterOrEqual(t, enc.Stats().Evictions, 2)
}

func TestEncode_DiffBoundary(t *testing.T) {
	base := pixel.Pack(100, 100, 100, 255)

	tests := []struct {
		name  string
		px    pixel.Pixel
		chunk []byte
	}{
		{"delta -2 and 1", pixel.Pack(98, 101, 100, 255), []byte{0x4E}},
		{"delta 1 and -2", pixel.Pack(101, 100, 98, 255), []byte{0b01111000}},
		{"delta -3", pixel.Pack(97, 100, 100, 255), []byte{0xFE, 97, 100, 100}},
		{"delta 2", pixel.Pack(100, 102, 100, 255), []byte{0xFE, 100, 102, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := newEncoder(t, 2, 1, WithRGBA())
			out := encode(t, enc, []pixel.Pixel{base, tt.px})

			chunks := append([]byte{0xFE, 100, 100, 100}, tt.chunk...)
			require.Equal(t, expected(2, 1, format.ChannelsRGBA, chunks...), out)
		})
	}
}

func TestEncode_MixedSequence(t *testing.T) {
	p1 := pixel.Pack(1, 1, 1, 255)
	p2 := pixel.Pack(1, 1, 1, 128)
	pixels := []pixel.Pixel{pixel.Start, pixel.Start, p1, p1, p1, pixel.Start, p2, p2}

	enc := newEncoder(t, 4, 2, WithRGBA())
	out := encode(t, enc, pixels)

	require.Equal(t, expected(4, 2, format.ChannelsRGBA,
		0xC1,                   // two start pixels
		0x7F,                   // p1 as diff +1 +1 +1
		0xC1,                   // two more p1
		hash.Index(0x000000FF), // start pixel from cache
		0xFF, 1, 1, 1, 128,     // p2, alpha changed
	), out)

	stats := enc.Stats()
	assert.Equal(t, 8, stats.Pixels)
	assert.Equal(t, 2, stats.ChunkCount(format.ChunkRun))
	assert.Equal(t, 1, stats.ChunkCount(format.ChunkIndex))
	assert.Equal(t, 1, stats.ChunkCount(format.ChunkDiff))
	assert.Equal(t, 0, stats.ChunkCount(format.ChunkRGB))
	assert.Equal(t, 1, stats.ChunkCount(format.ChunkRGBA))
	assert.Equal(t, 5, stats.TotalChunks())
	assert.Equal(t, int64(len(out)), stats.Bytes)
	assert.Equal(t, hash.Digest(out), stats.Digest)
}

func TestEncode_ChannelsOtherThanThreeActAsRGBA(t *testing.T) {
	enc := newEncoder(t, 1, 1, WithChannels(7))
	out := encode(t, enc, []pixel.Pixel{pixel.Pack(10, 20, 30, 40)})

	require.Equal(t, expected(1, 1, 7, 0xFF, 10, 20, 30, 40), out)
}

func TestEncode_BufferSizeDoesNotChangeOutput(t *testing.T) {
	pixels := make([]pixel.Pixel, 0, 4096)
	for i := 0; i < 4096; i++ {
		pixels = append(pixels, pixel.Pixel(uint32(i*2654435761)))
	}

	whole := &memSink{}
	enc := newEncoder(t, 64, 64, WithRGBA(), WithBufferSize(0))
	require.NoError(t, enc.Encode(pixels, whole))
	require.Equal(t, 1, whole.writes)

	chunked := &memSink{}
	enc = newEncoder(t, 64, 64, WithRGBA(), WithBufferSize(16))
	require.NoError(t, enc.Encode(pixels, chunked))
	require.Greater(t, chunked.writes, 1)

	require.Equal(t, whole.buf.Bytes(), chunked.buf.Bytes())
}

func TestEncode_EncoderIsReusable(t *testing.T) {
	pixels := []pixel.Pixel{pixel.Pack(10, 20, 30, 255), pixel.Pack(11, 21, 31, 255), pixel.Pack(10, 20, 30, 255)}
	enc := newEncoder(t, 3, 1)

	first := encode(t, enc, pixels)
	second := encode(t, enc, pixels)

	require.Equal(t, first, second, "state must not leak between calls")
}

func TestEncode_WriteErrorPropagates(t *testing.T) {
	writeErr := errors.New("broken pipe")
	sink := &memSink{writeErr: writeErr}

	enc := newEncoder(t, 1, 1)
	err := enc.Encode([]pixel.Pixel{pixel.Start}, sink)

	require.Same(t, writeErr, err)
	require.False(t, sink.closed, "sink is not closed after a failed write")
}

func TestEncode_CloseErrorPropagates(t *testing.T) {
	closeErr := errors.New("close failed")
	sink := &memSink{closeErr: closeErr}

	enc := newEncoder(t, 1, 1)
	err := enc.Encode([]pixel.Pixel{pixel.Start}, sink)

	require.Same(t, closeErr, err)
	require.True(t, sink.closed)
	require.Equal(t, section.HeaderSize+section.EndMarkerSize, sink.buf.Len())
}

func TestEncode_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	enc := newEncoder(t, 2, 1, WithLogger(zap.New(core)))

	encode(t, enc, []pixel.Pixel{pixel.Pack(10, 20, 30, 255), pixel.Start})

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "encoding stream", entries[0].Message)
	require.Equal(t, "stream encoded", entries[1].Message)
	require.Equal(t, int64(2), entries[0].ContextMap()["pixels"])
}

func BenchmarkEncode(b *testing.B) {
	pixels := make([]pixel.Pixel, 256*256)
	for i := range pixels {
		// gradients with repeated spans exercise every chunk kind
		x, y := i%256, i/256
		pixels[i] = pixel.Pack(uint8(x), uint8(y), uint8(x/8*8), uint8(255-y/64))
	}

	enc, err := NewEncoder(256, 256, WithRGBA())
	require.NoError(b, err)

	sink := &memSink{}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink.buf.Reset()
		if err := enc.Encode(pixels, sink); err != nil {
			b.Fatal(err)
		}
	}
}
