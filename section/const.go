package section

// Chunk tags.
const (
	OpIndex = 0b00000000 // OpIndex tags a cache index chunk.
	OpDiff  = 0b01000000 // OpDiff tags a diff chunk.
	OpLuma  = 0b10000000 // OpLuma is reserved; the encoder never emits it.
	OpRun   = 0b11000000 // OpRun tags a run chunk.
	OpRGB   = 0b11111110 // OpRGB tags a 3-byte literal chunk.
	OpRGBA  = 0b11111111 // OpRGBA tags a 4-byte literal chunk.

	OpMask = 0b11000000 // OpMask selects the 2-bit tag of a chunk.
)

// Run limits. A run byte stores length-1, so the largest length 62 encodes as
// 0xFD and never collides with OpRGB or OpRGBA.
const (
	MaxRunLength = 62
	RunBias      = 1
)

// Diff chunk limits, inclusive, per channel.
const (
	DiffMin  = -2
	DiffMax  = 1
	DiffBias = 2
)

// Sizes in bytes.
const (
	HeaderSize    = 14
	EndMarkerSize = 8
	MaxChunkSize  = 5 // OpRGBA plus four channel bytes
)

// Magic is the stream's leading tag.
const Magic = "qoif"

// EndMarker terminates every stream.
var EndMarker = [EndMarkerSize]byte{0, 0, 0, 0, 0, 0, 0, 1}
