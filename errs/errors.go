// Package errs defines the sentinel errors shared across qoif packages.
//
// Errors are compared with errors.Is; callers may receive them wrapped with
// additional context.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize is returned when a header is parsed from fewer than 14 bytes.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagicNumber is returned when a stream does not start with "qoif".
	ErrInvalidMagicNumber = errors.New("invalid magic number")
	// ErrMissingEndMarker is returned when a stream does not end with the 8-byte end marker.
	ErrMissingEndMarker = errors.New("missing end marker")
	// ErrTruncatedChunk is returned when a chunk runs past the end of the chunk payload.
	ErrTruncatedChunk = errors.New("truncated chunk")
	// ErrReservedChunkTag is returned when the payload holds a tag no encoder emits.
	ErrReservedChunkTag = errors.New("reserved chunk tag")
	// ErrInvalidRawLength is returned when raw pixel input is not a whole number of 32-bit words.
	ErrInvalidRawLength = errors.New("raw pixel buffer length is not a multiple of 4")
	// ErrUnknownByteOrder is returned for a byte order name other than big, little or native.
	ErrUnknownByteOrder = errors.New("unknown byte order")
	// ErrInvalidBufferSize is returned for a negative output buffer size.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
	// ErrNilLogger is returned when a nil logger is passed as an option.
	ErrNilLogger = errors.New("logger must not be nil")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
	// ErrWriterClosed is returned when writing to a closed compressing writer.
	ErrWriterClosed = errors.New("writer already closed")
)
