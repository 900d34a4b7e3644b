package section

import (
	"bytes"

	"github.com/qoifgo/qoif/endian"
	"github.com/qoifgo/qoif/errs"
	"github.com/qoifgo/qoif/format"
)

// Header represents the fixed 14-byte header at the start of a stream.
type Header struct {
	// Width is the image width in pixels. byte offset 4-7
	Width uint32
	// Height is the image height in pixels. byte offset 8-11
	Height uint32
	// Channels is the channel mode, 3 or 4. byte offset 12
	Channels format.Channels
	// Colorspace is always format.ColorspaceDefault. byte offset 13
	Colorspace format.Colorspace
}

// NewHeader creates a header for the given dimensions and channel mode.
// Values are not validated.
func NewHeader(width, height uint32, channels format.Channels) Header {
	return Header{
		Width:      width,
		Height:     height,
		Channels:   channels,
		Colorspace: format.ColorspaceDefault,
	}
}

// Append appends the serialized header to dst.
func (h Header) Append(dst []byte) []byte {
	engine := endian.GetBigEndianEngine()

	dst = append(dst, Magic...)
	dst = engine.AppendUint32(dst, h.Width)
	dst = engine.AppendUint32(dst, h.Height)

	return append(dst, byte(h.Channels), byte(h.Colorspace))
}

// Bytes serializes the header into a new 14-byte slice.
func (h Header) Bytes() []byte {
	return h.Append(make([]byte, 0, HeaderSize))
}

// Parse parses the header from the first 14 bytes of data.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than 14 bytes, ErrInvalidMagicNumber
//     if it does not start with "qoif"
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if string(data[:4]) != Magic {
		return errs.ErrInvalidMagicNumber
	}

	engine := endian.GetBigEndianEngine()
	h.Width = engine.Uint32(data[4:8])
	h.Height = engine.Uint32(data[8:12])
	h.Channels = format.Channels(data[12])
	h.Colorspace = format.Colorspace(data[13])

	return nil
}

// PixelCount returns Width*Height without overflow.
func (h Header) PixelCount() uint64 {
	return uint64(h.Width) * uint64(h.Height)
}

// ParseHeader parses a Header from the start of a stream.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if err := h.Parse(data); err != nil {
		return Header{}, err
	}

	return h, nil
}

// CheckEndMarker reports whether stream ends with EndMarker after a complete header.
func CheckEndMarker(stream []byte) error {
	if len(stream) < HeaderSize+EndMarkerSize {
		return errs.ErrMissingEndMarker
	}

	if !bytes.Equal(stream[len(stream)-EndMarkerSize:], EndMarker[:]) {
		return errs.ErrMissingEndMarker
	}

	return nil
}
