// Package encoding selects and serializes the chunks of a qoif stream.
//
// ChunkEncoder holds the 64-slot pixel cache of one encoding session and
// decides, for a pixel that differs from its predecessor, which chunk
// represents it. The Append* functions write single chunks and are usable on
// their own:
//
//	buf = encoding.AppendRun(buf, 62)                 // 0xFD
//	buf = encoding.AppendDiff(buf, 1, -1, -2)         // 0x74
//	buf = encoding.AppendRGBA(buf, pixel.Pack(1, 2, 3, 4))
//
// Run accumulation is left to the caller, see the stream package.
//
// # Chunk Layout
//
//	index  00iiiiii          i: cache slot
//	diff   01rrggbb          r,g,b: channel delta + 2
//	run    11llllll          l: run length - 1, at most 61
//	rgb    11111110 r g b
//	rgba   11111111 r g b a
package encoding
