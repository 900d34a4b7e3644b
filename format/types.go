package format

type (
	Channels        uint8
	Colorspace      uint8
	ChunkKind       uint8
	CompressionType uint8
)

const (
	ChannelsRGB  Channels = 3 // ChannelsRGB represents 3-channel input; alpha is forced to 0xFF.
	ChannelsRGBA Channels = 4 // ChannelsRGBA represents 4-channel input.

	ColorspaceDefault Colorspace = 0 // ColorspaceDefault is the only colorspace marker ever written.

	ChunkRun   ChunkKind = 0x1 // ChunkRun represents a run-length chunk.
	ChunkIndex ChunkKind = 0x2 // ChunkIndex represents a cache index chunk.
	ChunkDiff  ChunkKind = 0x3 // ChunkDiff represents a small per-channel delta chunk.
	ChunkRGB   ChunkKind = 0x4 // ChunkRGB represents a 3-byte literal chunk.
	ChunkRGBA  ChunkKind = 0x5 // ChunkRGBA represents a 4-byte literal chunk.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ChunkKinds lists every chunk kind in tag order.
var ChunkKinds = [...]ChunkKind{ChunkRun, ChunkIndex, ChunkDiff, ChunkRGB, ChunkRGBA}

func (c Channels) String() string {
	switch c {
	case ChannelsRGB:
		return "RGB"
	case ChannelsRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

func (c Colorspace) String() string {
	if c == ColorspaceDefault {
		return "Default"
	}

	return "Unknown"
}

func (k ChunkKind) String() string {
	switch k {
	case ChunkRun:
		return "Run"
	case ChunkIndex:
		return "Index"
	case ChunkDiff:
		return "Diff"
	case ChunkRGB:
		return "RGB"
	case ChunkRGBA:
		return "RGBA"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType maps a lower-case name ("none", "zstd", "s2", "lz4")
// to its CompressionType. The second result is false for unknown names.
func ParseCompressionType(name string) (CompressionType, bool) {
	switch name {
	case "", "none":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
