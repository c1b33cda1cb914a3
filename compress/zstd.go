package compress

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/klauspost/compress/zstd"
)

// zstdPreallocRatio caps the output buffer allocated up front at this multiple
// of the compressed size; larger payloads grow while decoding.
const zstdPreallocRatio = 8

// ZstdCompressor provides Zstandard compression, the best ratio of the built-in
// codecs for long posting lists.
//
// The default build uses the pure Go klauspost/compress/zstd implementation.
// Building with the gozstd tag and cgo enabled switches to valyala/gozstd.
// Both produce standard zstd frames, so blobs are interchangeable.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd codec.
//
// Example:
//
//	codec := compress.NewZstdCompressor()
//	compressed, err := codec.Compress(payload)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// zstdCapacity checks the frame header against the expected decoded size and
// returns the output capacity to allocate before decoding.
func zstdCapacity(data []byte, size int) (int, error) {
	var header zstd.Header
	if err := header.Decode(data); err != nil {
		return 0, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if header.HasFCS && header.FrameContentSize != uint64(size) { //nolint:gosec
		return 0, fmt.Errorf("%w: %s frame declares %d bytes, header says %d",
			errs.ErrInvalidPayloadSize, format.CompressionZstd, header.FrameContentSize, size)
	}

	return min(size, len(data)*zstdPreallocRatio), nil
}
