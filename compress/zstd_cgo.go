//go:build gozstd && cgo

package compress

import (
	"fmt"

	"github.com/arloliu/intpack/format"
	"github.com/valyala/gozstd"
)

// Compress compresses data into a single zstd frame at level 3.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decodes a zstd frame.
func (c ZstdCompressor) Decompress(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, checkSize(format.CompressionZstd, 0, size)
	}

	capacity, err := zstdCapacity(data, size)
	if err != nil {
		return nil, err
	}

	out, err := gozstd.Decompress(make([]byte, 0, capacity), data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if err := checkSize(format.CompressionZstd, len(out), size); err != nil {
		return nil, err
	}

	return out, nil
}
