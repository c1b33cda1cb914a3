package blob

import (
	"iter"
	"slices"

	"github.com/arloliu/intpack/format"
)

// PostingBlob is a decoded posting list.
type PostingBlob struct {
	codec       format.CodecType
	compression format.CompressionType
	checksum    bool
	values      []uint32
}

// Len returns the number of values in the list.
func (b PostingBlob) Len() int {
	return len(b.values)
}

// Codec returns the integer codec the blob was encoded with.
func (b PostingBlob) Codec() format.CodecType {
	return b.codec
}

// Compression returns the block compression of the blob payload.
func (b PostingBlob) Compression() format.CompressionType {
	return b.compression
}

// HasChecksum reports whether the payload was verified against a stored checksum.
func (b PostingBlob) HasChecksum() bool {
	return b.checksum
}

// Values returns a copy of all values.
func (b PostingBlob) Values() []uint32 {
	return slices.Clone(b.values)
}

// At returns the value at index, or false if index is out of range.
func (b PostingBlob) At(index int) (uint32, bool) {
	if index < 0 || index >= len(b.values) {
		return 0, false
	}

	return b.values[index], true
}

// All returns a sequence over the values in order.
//
// Example:
//
//	for v := range postings.All() {
//	    fmt.Println(v)
//	}
func (b PostingBlob) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, v := range b.values {
			if !yield(v) {
				return
			}
		}
	}
}
