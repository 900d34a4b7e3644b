// Package stream writes complete qoif streams to an io.WriteCloser.
//
// An Encoder owns the state of one encoding session: previous pixel, pending
// run and the pixel cache through encoding.ChunkEncoder. For every pixel it
// either extends the pending run or emits one chunk, then stores the pixel in
// the cache. The header comes first and the end marker last, after which the
// sink is closed.
//
//	enc, err := stream.NewEncoder(640, 480, stream.WithRGBA())
//	if err != nil {
//	    return err
//	}
//	if err := enc.Encode(pixels, f); err != nil {
//	    return err
//	}
//	stats := enc.Stats()
//
// # Final Runs
//
// When the last pixel repeats its predecessor, the pending run is flushed one
// pixel early and the last pixel produces no chunk. This is the default and
// keeps streams identical to those of the reference encoder.
// WithFinalRunFlush(true) writes the remaining run instead, so every input
// pixel is represented.
//
// # Thread Safety
//
// An Encoder is not safe for concurrent use. Separate Encoders share nothing
// but the buffer pool.
package stream
