package compress

import (
	"io"

	"github.com/qoifgo/qoif/errs"
	"github.com/qoifgo/qoif/format"
	"github.com/qoifgo/qoif/internal/pool"
)

// Writer is an io.WriteCloser that compresses everything written to it and
// hands the result to an underlying writer on Close.
//
// The codecs work on whole buffers, so the uncompressed stream is held in
// memory until Close. With CompressionNone writes go straight through.
type Writer struct {
	codec  Codec
	ctype  format.CompressionType
	dst    io.WriteCloser
	buf    *pool.ByteBuffer
	stats  CompressionStats
	closed bool
}

var _ io.WriteCloser = (*Writer)(nil)

// NewWriter creates a compressing writer in front of dst. Closing the Writer
// closes dst.
//
// Returns:
//   - *Writer: the writer
//   - error: ErrUnsupportedCompression for an unknown compression type
func NewWriter(compressionType format.CompressionType, dst io.WriteCloser) (*Writer, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, err
	}

	w := &Writer{
		codec: codec,
		ctype: compressionType,
		dst:   dst,
		stats: CompressionStats{Algorithm: compressionType},
	}
	if compressionType != format.CompressionNone {
		w.buf = pool.GetStreamBuffer()
	}

	return w, nil
}

// Write buffers p, or forwards it when no compression is configured.
func (w *Writer) Write(p []byte) (int, error) {
	if w.closed {
		return 0, errs.ErrWriterClosed
	}

	w.stats.OriginalSize += int64(len(p))

	if w.buf == nil {
		n, err := w.dst.Write(p)
		w.stats.CompressedSize += int64(n)

		return n, err
	}

	w.buf.Grow(len(p))

	return w.buf.Write(p)
}

// Close compresses the buffered stream, writes it to the underlying writer
// and closes it. Close is idempotent.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if w.buf != nil {
		defer func() {
			pool.PutStreamBuffer(w.buf)
			w.buf = nil
		}()

		compressed, err := w.codec.Compress(w.buf.Bytes())
		if err != nil {
			return err
		}

		n, err := w.dst.Write(compressed)
		w.stats.CompressedSize += int64(n)
		if err != nil {
			return err
		}
	}

	return w.dst.Close()
}

// Abort discards the buffered stream and releases the writer without
// writing to or closing the underlying writer. It is meant for a failed
// encode, where the caller disposes of the destination itself. Abort after
// Close, or a second Abort, does nothing.
func (w *Writer) Abort() {
	if w.closed {
		return
	}
	w.closed = true

	if w.buf != nil {
		pool.PutStreamBuffer(w.buf)
		w.buf = nil
	}
}

// Stats returns the sizes seen so far; they are final after Close.
func (w *Writer) Stats() CompressionStats {
	return w.stats
}

// Type returns the compression type of the writer.
func (w *Writer) Type() format.CompressionType {
	return w.ctype
}
