// Package qoif encodes pixel sequences into QOI-style lossless image streams.
//
// A stream is a 14-byte header, one variable-length chunk per pixel decision
// and an 8-byte end marker. Pixels are packed 32-bit values with red in the
// most significant byte:
//
//	0xRRGGBBAA
//
// The encoder compares every pixel with its predecessor and a 64-slot cache
// of recently seen pixels, and emits the shortest chunk it is allowed to:
//
//   - run: the pixel repeats its predecessor (up to 62 at a time)
//   - index: the pixel is in the cache
//   - diff: every color channel moved by -2..1 and alpha did not change
//   - RGB literal: alpha did not change, or the stream is RGB
//   - RGBA literal: anything else
//
// # Basic Usage
//
// Encoding a pixel slice into a file:
//
//	import "github.com/qoifgo/qoif"
//
//	f, _ := os.Create("image.qoi")
//	err := qoif.Encode(640, 480, pixels, f, stream.WithRGBA())
//
// Encoding an image.Image, compressed with zstd:
//
//	f, _ := os.Create("image.qoi.zst")
//	sink, _ := compress.NewWriter(format.CompressionZstd, f)
//	err := qoif.EncodeImage(img, sink, stream.WithRGBA())
//
// The sink is always closed by the encoder once the end marker has been
// written.
//
// # Package Structure
//
// This package wraps the stream package for the common cases. Use stream
// directly to reuse an Encoder or to read its Stats.
package qoif

import (
	"image"
	"io"

	"github.com/qoifgo/qoif/internal/pool"
	"github.com/qoifgo/qoif/pixel"
	"github.com/qoifgo/qoif/stream"
)

// NewEncoder creates a stream encoder for a width x height image.
//
// Without options the encoder writes 3-channel streams and reproduces the
// reference encoder byte for byte.
//
// Available options:
//   - stream.WithRGB() / stream.WithRGBA() / stream.WithChannels(c)
//   - stream.WithFinalRunFlush(true|false)
//   - stream.WithBufferSize(n)
//   - stream.WithLogger(logger)
//
// Returns:
//   - *stream.Encoder: The created encoder.
//   - error: An error if an option is invalid.
func NewEncoder(width, height uint32, opts ...stream.EncoderOption) (*stream.Encoder, error) {
	return stream.NewEncoder(width, height, opts...)
}

// NewRGBEncoder creates an encoder that writes 3-channel streams. Alpha of
// every input pixel is treated as 0xFF.
func NewRGBEncoder(width, height uint32, opts ...stream.EncoderOption) (*stream.Encoder, error) {
	return stream.NewEncoder(width, height, append(opts, stream.WithRGB())...)
}

// NewRGBAEncoder creates an encoder that writes 4-channel streams.
func NewRGBAEncoder(width, height uint32, opts ...stream.EncoderOption) (*stream.Encoder, error) {
	return stream.NewEncoder(width, height, append(opts, stream.WithRGBA())...)
}

// Encode writes pixels as a width x height stream to sink and closes sink.
//
// The pixel count is not checked against the dimensions.
func Encode(width, height uint32, pixels []pixel.Pixel, sink io.WriteCloser, opts ...stream.EncoderOption) error {
	encoder, err := stream.NewEncoder(width, height, opts...)
	if err != nil {
		return err
	}

	return encoder.Encode(pixels, sink)
}

// EncodeImage writes img as a stream to sink and closes sink.
//
// Dimensions come from img.Bounds(); the channel mode is left to opts and
// defaults to RGB like every other encoder.
func EncodeImage(img image.Image, sink io.WriteCloser, opts ...stream.EncoderOption) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	encoder, err := stream.NewEncoder(uint32(width), uint32(height), opts...) //nolint: gosec
	if err != nil {
		return err
	}

	buf, release := pool.GetPixelSlice(width * height)
	defer release()

	return encoder.Encode(pixel.AppendImage(buf[:0], img), sink)
}
