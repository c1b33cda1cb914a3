package encoding

import "github.com/arloliu/intpack/format"

// WordCodec packs integer sequences into self-describing 32-bit words.
//
// Implementations are stateless and safe for concurrent use. Encoded output is
// a little-endian word stream with no length prefix: decoding yields every slot
// of every word, so the result may carry trailing zero padding and callers must
// truncate it to the number of values they encoded.
type WordCodec interface {
	// Type returns the codec identifier.
	Type() format.CodecType

	// Encode packs values into a newly allocated little-endian byte stream.
	// It returns ErrValueOutOfRange, and no partial output, if any value exceeds MaxValue.
	Encode(values []uint32) ([]byte, error)

	// AppendEncode is like Encode but appends the byte stream to dst.
	AppendEncode(dst []byte, values []uint32) ([]byte, error)

	// EncodeWords packs values into 32-bit words.
	EncodeWords(values []uint32) ([]uint32, error)

	// Decode unpacks words. The result may be longer than the encoded input.
	Decode(words []uint32) ([]uint32, error)

	// AppendDecode is like Decode but appends the values to dst.
	AppendDecode(dst []uint32, words []uint32) ([]uint32, error)

	// DecodeBytes unpacks a little-endian byte stream produced by Encode.
	DecodeBytes(data []byte) ([]uint32, error)
}

// BatchCodec packs fixed-size batches of integers into byte buffers.
//
// Implementations are stateless and safe for concurrent use, so independent
// batches can be encoded and decoded in parallel.
type BatchCodec interface {
	// Type returns the codec identifier.
	Type() format.CodecType

	// BatchSize returns the exact number of values per batch.
	BatchSize() int

	// EncodeBatch packs exactly BatchSize values into a new buffer.
	EncodeBatch(values []uint32) ([]byte, error)

	// AppendEncodeBatch is like EncodeBatch but appends the batch to dst.
	AppendEncodeBatch(dst []byte, values []uint32) ([]byte, error)

	// DecodeBatch unpacks one batch into a newly allocated slice of BatchSize values.
	DecodeBatch(src []byte) ([]uint32, error)

	// DecodeBatchInto unpacks one batch into dst, which must hold at least BatchSize values.
	DecodeBatchInto(dst []uint32, src []byte) error
}
