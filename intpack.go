// Package intpack compresses lists of unsigned 32-bit integers, such as the
// document ids of an inverted index posting list.
//
// Three codecs are provided:
//   - Simple9: self-describing 32-bit words, 9 uniform packing layouts
//   - Simple16: like Simple9 with 16 layouts, including mixed-width slots
//   - PForDelta: 128-value batches packed at one bit width, outliers patched in
//
// # Basic Usage
//
// Encoding a word stream:
//
//	data, err := intpack.EncodeSimple16(gaps)
//	if err != nil {
//	    return err
//	}
//	values, err := intpack.DecodeSimple16Bytes(data)
//	values = values[:len(gaps)] // drop padding of the last word
//
// Encoding one PForDelta batch:
//
//	data, err := intpack.EncodePForBatch(batch) // exactly 128 values
//	batch, err = intpack.DecodePForBatch(data)
//
// Encoding a complete posting list with its length, checksum and optional
// compression:
//
//	encoder, _ := intpack.NewPostingEncoder(
//	    blob.WithCodec(format.CodecPForDelta),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//	data, _ := encoder.Encode(gaps)
//	postings, _ := intpack.DecodePostingBlob(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding and
// blob packages. Use those packages directly for append-style APIs, selector
// table introspection and batch header parsing.
package intpack

import (
	"github.com/arloliu/intpack/blob"
	"github.com/arloliu/intpack/encoding"
	"github.com/arloliu/intpack/format"
)

// EncodeSimple9 packs values into a little-endian Simple9 word stream.
//
// Parameters:
//   - values: Values to encode, each at most 2^28-1
//
// Returns:
//   - []byte: Encoded stream, 4 bytes per word
//   - error: ErrValueOutOfRange if any value exceeds 2^28-1; no partial output is returned
func EncodeSimple9(values []uint32) ([]byte, error) {
	return encoding.NewSimple9().Encode(values)
}

// DecodeSimple9 unpacks Simple9 words. The result may end with padding; callers
// truncate it to the number of values they encoded.
func DecodeSimple9(words []uint32) ([]uint32, error) {
	return encoding.NewSimple9().Decode(words)
}

// DecodeSimple9Bytes unpacks a little-endian Simple9 word stream.
func DecodeSimple9Bytes(data []byte) ([]uint32, error) {
	return encoding.NewSimple9().DecodeBytes(data)
}

// EncodeSimple16 packs values into a little-endian Simple16 word stream.
//
// Parameters:
//   - values: Values to encode, each at most 2^28-1
//
// Returns:
//   - []byte: Encoded stream, 4 bytes per word
//   - error: ErrValueOutOfRange if any value exceeds 2^28-1; no partial output is returned
func EncodeSimple16(values []uint32) ([]byte, error) {
	return encoding.NewSimple16().Encode(values)
}

// DecodeSimple16 unpacks Simple16 words. The result may end with padding; callers
// truncate it to the number of values they encoded.
func DecodeSimple16(words []uint32) ([]uint32, error) {
	return encoding.NewSimple16().Decode(words)
}

// DecodeSimple16Bytes unpacks a little-endian Simple16 word stream.
func DecodeSimple16Bytes(data []byte) ([]uint32, error) {
	return encoding.NewSimple16().DecodeBytes(data)
}

// EncodePForBatch packs exactly 128 values, ideally sorted ascending, into one PForDelta batch.
//
// Returns:
//   - []byte: Encoded batch
//   - error: ErrInvalidBatchSize if len(values) != 128
func EncodePForBatch(values []uint32) ([]byte, error) {
	return encoding.NewPForDelta().EncodeBatch(values)
}

// DecodePForBatch unpacks one PForDelta batch into its 128 values.
// data must hold exactly one batch.
func DecodePForBatch(data []byte) ([]uint32, error) {
	return encoding.NewPForDelta().DecodeBatch(data)
}

// MustEncodeSimple9 is like EncodeSimple9 but panics if a value is out of range.
func MustEncodeSimple9(values []uint32) []byte {
	return must(EncodeSimple9(values))
}

// MustEncodeSimple16 is like EncodeSimple16 but panics if a value is out of range.
func MustEncodeSimple16(values []uint32) []byte {
	return must(EncodeSimple16(values))
}

// MustEncodePForBatch is like EncodePForBatch but panics unless len(values) == 128.
func MustEncodePForBatch(values []uint32) []byte {
	return must(EncodePForBatch(values))
}

func must(data []byte, err error) []byte {
	if err != nil {
		panic(err)
	}

	return data
}

// NewPostingEncoder creates a posting blob encoder with custom options.
//
// Available options:
//   - blob.WithCodec(format.CodecSimple9|CodecSimple16|CodecPForDelta)
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithChecksum(true|false)
//   - blob.WithParallelism(n)
//
// Returns an error if the configuration is invalid.
func NewPostingEncoder(opts ...blob.PostingEncoderOption) (*blob.PostingEncoder, error) {
	return blob.NewPostingEncoder(opts...)
}

// NewDefaultPostingEncoder creates a PForDelta posting encoder with checksums and no compression.
//
// Returns:
//   - *blob.PostingEncoder: The created encoder
//   - error: Never non-nil with the default options, kept for API symmetry
func NewDefaultPostingEncoder() (*blob.PostingEncoder, error) {
	return blob.NewPostingEncoder(
		blob.WithCodec(format.CodecPForDelta),
		blob.WithCompression(format.CompressionNone),
		blob.WithChecksum(true),
	)
}

// DecodePostingBlob decodes a posting blob produced by a posting encoder.
func DecodePostingBlob(data []byte) (blob.PostingBlob, error) {
	return blob.DecodePostingBlob(data)
}
