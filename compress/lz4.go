package compress

import (
	"fmt"
	"sync"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool reuses lz4.Compressor hash tables across calls.
// lz4MaxRatio bounds the expansion of an LZ4 block: one input byte extends a
// match by at most 255 bytes.
const lz4MaxRatio = 255

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps pierrec/lz4 block compression.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block using a pooled compressor.
//
// Returns:
//   - []byte: Compressed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decodes an LZ4 block into a buffer of exactly size bytes.
//
// LZ4 blocks do not record their decoded length, so size must come from the
// blob header; a block that needs more room fails instead of growing.
func (c LZ4Compressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize(format.CompressionLZ4, 0, size)
	}

	if size > len(data)*lz4MaxRatio {
		return nil, fmt.Errorf("%w: %d-byte lz4 block cannot expand to %d bytes",
			errs.ErrInvalidPayloadSize, len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	if err := checkSize(format.CompressionLZ4, n, size); err != nil {
		return nil, err
	}

	return buf, nil
}
