package compress

import "github.com/arloliu/intpack/format"

// NoOpCompressor stores payloads as-is.
//
// Posting payloads are already bit-packed, so for small lists the framing of a
// general-purpose compressor often costs more than it saves.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself; the result shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself after checking its length against size.
func (c NoOpCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if err := checkSize(format.CompressionNone, len(data), size); err != nil {
		return nil, err
	}

	return data, nil
}
