// Package compress provides optional whole-stream compression for qoif output.
//
// A qoif stream is already compact, but long literal sections still compress
// well with a general-purpose codec. The package offers the codecs
//
//   - None: bytes pass through untouched
//   - Zstd: best ratio
//   - S2: fast with a good ratio
//   - LZ4: fastest decompression
//
// behind one Codec interface, and a compressing sink that wraps any
// io.WriteCloser so it can be handed straight to an encoder:
//
//	f, _ := os.Create("image.qoi.zst")
//	sink, _ := compress.NewWriter(format.CompressionZstd, f)
//	err := encoder.Encode(pixels, sink) // closes sink, which compresses into f and closes f
//
// LZ4 and S2 use their block formats and Zstd uses standard frames, so a file
// produced with Zstd can be read by the zstd command line tool.
//
// # Thread Safety
//
// Codecs are stateless and safe for concurrent use. A Writer is not.
package compress
