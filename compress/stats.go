package compress

import (
	"bytes"
	"fmt"
	"time"

	"github.com/arloliu/intpack/format"
)

// CompressionStats reports the effect of one compression algorithm on a payload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of the encoded payload before compression
	OriginalSize int64

	// CompressedSize is the size of the payload after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the payload
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to restore the payload
	DecompressionTimeNs int64
}

// CompressionRatio returns compressed size / original size.
//
// Values below 1.0 mean the algorithm saved space.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage of the original size.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// Measure compresses payload with the given algorithm, restores it, and reports
// sizes and timings. The round trip is verified byte for byte.
//
// Parameters:
//   - algorithm: Compression type to measure
//   - payload: Encoded posting payload
//
// Returns:
//   - CompressionStats: Sizes and timings of the round trip
//   - error: ErrInvalidCompression, a codec error, or a round-trip mismatch
func Measure(algorithm format.CompressionType, payload []byte) (CompressionStats, error) {
	codec, err := GetCodec(algorithm)
	if err != nil {
		return CompressionStats{}, err
	}

	stats := CompressionStats{
		Algorithm:    algorithm,
		OriginalSize: int64(len(payload)),
	}

	start := time.Now()
	compressed, err := codec.Compress(payload)
	stats.CompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, err
	}
	stats.CompressedSize = int64(len(compressed))

	start = time.Now()
	restored, err := codec.Decompress(compressed, len(payload))
	stats.DecompressionTimeNs = time.Since(start).Nanoseconds()
	if err != nil {
		return stats, err
	}

	if !bytes.Equal(restored, payload) {
		return stats, fmt.Errorf("%s round trip changed the payload", algorithm)
	}

	return stats, nil
}
