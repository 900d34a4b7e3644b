package stream

import (
	"go.uber.org/zap"

	"github.com/qoifgo/qoif/errs"
	"github.com/qoifgo/qoif/format"
	"github.com/qoifgo/qoif/internal/options"
	"github.com/qoifgo/qoif/internal/pool"
	"github.com/qoifgo/qoif/section"
)

// EncoderConfig holds the settings of an Encoder.
//
// Dimensions and channel mode are written to the header as given; nothing is
// validated against the pixels later passed to Encode.
type EncoderConfig struct {
	header        section.Header
	finalRunFlush bool
	bufferSize    int
	logger        *zap.Logger
}

// NewEncoderConfig creates a configuration with the defaults: RGB channel mode,
// reference run handling, a 16KiB flush threshold and a no-op logger.
func NewEncoderConfig(width, height uint32) *EncoderConfig {
	return &EncoderConfig{
		header:     section.NewHeader(width, height, format.ChannelsRGB),
		bufferSize: pool.StreamBufferDefaultSize,
		logger:     zap.NewNop(),
	}
}

// Header returns the header written at the start of every stream.
func (c *EncoderConfig) Header() section.Header {
	return c.header
}

// Channels returns the configured channel mode.
func (c *EncoderConfig) Channels() format.Channels {
	return c.header.Channels
}

// FinalRunFlush reports whether a run pending after the last pixel is emitted.
func (c *EncoderConfig) FinalRunFlush() bool {
	return c.finalRunFlush
}

// BufferSize returns the flush threshold in bytes; 0 means flush once at the end.
func (c *EncoderConfig) BufferSize() int {
	return c.bufferSize
}

// EncoderOption configures an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithChannels sets the channel mode byte. Only 3 changes behavior (alpha is
// forced to 0xFF); any other value is written as is and treated as RGBA.
func WithChannels(channels format.Channels) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.header.Channels = channels
	})
}

// WithRGB selects 3-channel input. It is the default.
func WithRGB() EncoderOption {
	return WithChannels(format.ChannelsRGB)
}

// WithRGBA selects 4-channel input.
func WithRGBA() EncoderOption {
	return WithChannels(format.ChannelsRGBA)
}

// WithFinalRunFlush controls the run still pending when the pixels run out.
//
// When false (the default) the stream matches the reference encoder byte for
// byte: if the last pixel repeats its predecessor, the pending run is flushed
// one pixel early and the last pixel produces no chunk. When true that final
// run is emitted, so the stream accounts for every input pixel.
func WithFinalRunFlush(enabled bool) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.finalRunFlush = enabled
	})
}

// WithBufferSize sets how many encoded bytes are buffered before they are
// written to the sink. Zero buffers the whole stream and writes it once.
func WithBufferSize(size int) EncoderOption {
	return options.Named("WithBufferSize", func(c *EncoderConfig) error {
		if size < 0 {
			return errs.ErrInvalidBufferSize
		}
		c.bufferSize = size

		return nil
	})
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) EncoderOption {
	return options.Named("WithLogger", func(c *EncoderConfig) error {
		if logger == nil {
			return errs.ErrNilLogger
		}
		c.logger = logger

		return nil
	})
}
