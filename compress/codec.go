package compress

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// Compressor compresses an encoded posting payload.
//
// The input is the complete payload of a posting blob: a Simple9/Simple16 word
// stream, or PForDelta batch records followed by a Simple16 tail.
//
// Memory management:
//   - The returned slice is owned by the caller, except for the no-op codec
//     which returns its input
//   - The input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// The uncompressed size is always known from the blob header, so it is passed
// in: implementations allocate the output once and fail when the data does not
// expand to exactly that many bytes.
type Decompressor interface {
	// Decompress decompresses data into a new slice of exactly size bytes.
	//
	// Returns:
	//   - []byte: Decompressed payload
	//   - error: Algorithm error, or ErrInvalidPayloadSize if the output length differs from size
	Decompress(data []byte, size int) ([]byte, error)
}

// Codec combines compression and decompression.
//
// Every built-in codec is stateless at the value level and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for the specified compression type.
//
// Parameters:
//   - compressionType: One of None, Zstd, S2 or LZ4
//
// Returns:
//   - Codec: Shared codec instance
//   - error: ErrInvalidCompression for unknown types
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
}

func checkSize(algo format.CompressionType, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s payload expanded to %d bytes, header says %d",
			errs.ErrInvalidPayloadSize, algo, got, want)
	}

	return nil
}
