// Package section defines the low-level byte layout of a qoif stream.
//
// A stream is a fixed header, a sequence of variable-length chunks and a
// fixed end marker. All multi-byte integers are big-endian.
//
//	┌──────────────────────────────────────────────┐
//	│ Header (14 bytes, fixed)                     │
//	│  - magic "qoif" (4 bytes)                    │
//	│  - width (4 bytes), height (4 bytes)         │
//	│  - channels (1 byte), colorspace (1 byte)    │
//	├──────────────────────────────────────────────┤
//	│ Chunks (variable)                            │
//	│  - 00xxxxxx  cache index                     │
//	│  - 01rrggbb  diff                            │
//	│  - 11xxxxxx  run (length - 1, max 61)        │
//	│  - 0xFE r g b                                │
//	│  - 0xFF r g b a                              │
//	├──────────────────────────────────────────────┤
//	│ End marker (8 bytes): 00 00 00 00 00 00 00 01│
//	└──────────────────────────────────────────────┘
//
// Tag 10xxxxxx is reserved and never produced by the encoder.
package section
