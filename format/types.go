package format

type (
	CodecType       uint8
	CompressionType uint8
)

const (
	CodecSimple9   CodecType = 0x1 // CodecSimple9 represents the 9-selector word packing codec.
	CodecSimple16  CodecType = 0x2 // CodecSimple16 represents the 16-selector word packing codec.
	CodecPForDelta CodecType = 0x3 // CodecPForDelta represents the 128-value patched frame-of-reference codec.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CodecType) String() string {
	switch c {
	case CodecSimple9:
		return "Simple9"
	case CodecSimple16:
		return "Simple16"
	case CodecPForDelta:
		return "PForDelta"
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
