package encoding

import (
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/format"
)

// SimpleCodec implements the Simple9 and Simple16 word codecs.
//
// Both codecs share one greedy algorithm and differ only in their selector
// table. Each encoded word carries its selector index in bits 0-3 and up to
// 28 bits of packed values above it, so every word decodes independently.
//
// The two instances returned by NewSimple9 and NewSimple16 are immutable and
// safe for concurrent use.
type SimpleCodec struct {
	codec format.CodecType
	table selectorTable
}

var (
	_ WordCodec = (*SimpleCodec)(nil)

	simple9  = &SimpleCodec{codec: format.CodecSimple9, table: simple9Selectors}
	simple16 = &SimpleCodec{codec: format.CodecSimple16, table: simple16Selectors}
)

// NewSimple9 returns the Simple9 codec.
//
// Simple9 has 9 uniform selectors, from 28 one-bit values down to a single
// 28-bit value per word.
func NewSimple9() *SimpleCodec {
	return simple9
}

// NewSimple16 returns the Simple16 codec.
//
// Simple16 extends Simple9 with heterogeneous selectors whose slots have
// different widths within the same word, which packs mixed-magnitude runs
// more tightly.
func NewSimple16() *SimpleCodec {
	return simple16
}

// Type returns the codec identifier.
func (c *SimpleCodec) Type() format.CodecType {
	return c.codec
}

// Selectors returns a copy of the codec's selector table, indexed by selector tag.
func (c *SimpleCodec) Selectors() []Selector {
	return c.table.clone()
}

// Encode packs values into a little-endian word stream.
//
// Parameters:
//   - values: Values to encode, each at most MaxValue
//
// Returns:
//   - []byte: Encoded stream, 4 bytes per word (empty for empty input)
//   - error: ErrValueOutOfRange if any value exceeds MaxValue
func (c *SimpleCodec) Encode(values []uint32) ([]byte, error) {
	return c.AppendEncode(make([]byte, 0, len(values)), values)
}

// AppendEncode packs values and appends the little-endian word stream to dst.
// On error dst is returned unchanged.
func (c *SimpleCodec) AppendEncode(dst []byte, values []uint32) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()
	out := dst

	err := c.table.encode(values, func(word uint32) {
		out = engine.AppendUint32(out, word)
	})
	if err != nil {
		return dst, err
	}

	return out, nil
}

// EncodeWords packs values into 32-bit words.
func (c *SimpleCodec) EncodeWords(values []uint32) ([]uint32, error) {
	words := make([]uint32, 0, len(values)/4+1)

	err := c.table.encode(values, func(word uint32) {
		words = append(words, word)
	})
	if err != nil {
		return nil, err
	}

	return words, nil
}

// Decode unpacks words into values.
//
// Every word yields its selector's full item count, so the result can be
// longer than the encoded input; callers truncate it to the true length.
//
// Returns:
//   - []uint32: Decoded values
//   - error: ErrInvalidSelector if a word carries a tag outside the selector table
func (c *SimpleCodec) Decode(words []uint32) ([]uint32, error) {
	return c.AppendDecode(make([]uint32, 0, c.table.decodedLen(words)), words)
}

// AppendDecode unpacks words and appends the values to dst.
func (c *SimpleCodec) AppendDecode(dst []uint32, words []uint32) ([]uint32, error) {
	return c.table.decode(dst, words)
}

// DecodeBytes unpacks a little-endian word stream produced by Encode.
//
// Returns:
//   - []uint32: Decoded values, possibly with trailing padding
//   - error: ErrInvalidWordStream if len(data) is not a multiple of 4, or ErrInvalidSelector
func (c *SimpleCodec) DecodeBytes(data []byte) ([]uint32, error) {
	words, err := endian.Words(data)
	if err != nil {
		return nil, err
	}

	return c.Decode(words)
}
