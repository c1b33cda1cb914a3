package encoding

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/internal/bitpack"
)

// Word layout shared by Simple9 and Simple16.
const (
	// SelectorBits is the width of the selector tag in the low bits of every word.
	SelectorBits = 4
	// PayloadBits is the number of bits above the selector available for values.
	PayloadBits = 32 - SelectorBits
	// MaxValue is the largest value a Simple9/Simple16 word can hold.
	MaxValue = 1<<PayloadBits - 1

	selectorMask = 1<<SelectorBits - 1
)

// Selector describes one packing layout of a Simple9/Simple16 word.
//
// A uniform selector packs Items values of Bits bits each and leaves Wasted
// payload bits unused. A heterogeneous selector has a Layout listing the width
// of every slot in consumption order; Bits and Wasted are zero.
type Selector struct {
	Items  int
	Bits   int
	Wasted int
	Layout []uint8
}

// IsUniform reports whether every slot of the selector has the same width.
func (s Selector) IsUniform() bool {
	return s.Layout == nil
}

// SlotWidth returns the bit width of the given slot.
func (s Selector) SlotWidth(slot int) int {
	if s.Layout != nil {
		return int(s.Layout[slot])
	}

	return s.Bits
}

// PayloadWidth returns the number of payload bits the selector accounts for,
// including wasted bits. It is PayloadBits for every valid table entry.
func (s Selector) PayloadWidth() int {
	if s.Layout == nil {
		return s.Items*s.Bits + s.Wasted
	}

	sum := 0
	for _, w := range s.Layout {
		sum += int(w)
	}

	return sum
}

func (s Selector) clone() Selector {
	if s.Layout != nil {
		s.Layout = append([]uint8(nil), s.Layout...)
	}

	return s
}

// pack greedily packs values[start:] into one word under this selector.
// It stops at capacity, at the first value that does not fit its slot, or at
// the end of input, and returns the payload and the number of values consumed.
func (s *Selector) pack(values []uint32, start int) (uint32, int) {
	var word uint32
	shift := SelectorBits
	idx := start

	for idx < len(values) && idx-start < s.Items {
		w := s.SlotWidth(idx - start)
		if values[idx] > bitpack.Mask(w) {
			break
		}

		word |= values[idx] << shift
		shift += w
		idx++
	}

	return word, idx - start
}

// unpack appends the Items values held in payload to dst.
func (s *Selector) unpack(dst []uint32, payload uint32) []uint32 {
	if s.Layout == nil {
		mask := bitpack.Mask(s.Bits)
		for range s.Items {
			dst = append(dst, payload&mask)
			payload >>= s.Bits
		}

		return dst
	}

	for _, w := range s.Layout {
		dst = append(dst, payload&bitpack.Mask(int(w)))
		payload >>= w
	}

	return dst
}

// selectorTable is an immutable, tag-indexed list of selectors.
type selectorTable []Selector

// encode runs the greedy packing state machine and hands every finished word to emit.
//
// Selectors are tried in table order. An attempt is committed when it filled the
// selector's capacity or consumed the rest of the input; otherwise the next
// selector is tried. The last selector of every table holds one 28-bit value,
// so a validated input always makes progress.
func (t selectorTable) encode(values []uint32, emit func(word uint32)) error {
	for i, v := range values {
		if v > MaxValue {
			return fmt.Errorf("%w: values[%d]=%d, max %d", errs.ErrValueOutOfRange, i, v, MaxValue)
		}
	}

	n := len(values)
	for i := 0; i < n; {
		for tag := range t {
			sel := &t[tag]

			payload, consumed := sel.pack(values, i)
			if consumed == sel.Items || i+consumed == n {
				emit(payload | uint32(tag)) //nolint:gosec
				i += consumed

				break
			}
		}
	}

	return nil
}

// decode appends the values of every word to dst.
func (t selectorTable) decode(dst []uint32, words []uint32) ([]uint32, error) {
	for i, word := range words {
		tag := int(word & selectorMask)
		if tag >= len(t) {
			return nil, fmt.Errorf("%w: word %d has selector %d, table has %d entries",
				errs.ErrInvalidSelector, i, tag, len(t))
		}

		dst = t[tag].unpack(dst, word>>SelectorBits)
	}

	return dst, nil
}

// decodedLen returns the number of values decode would produce for words.
func (t selectorTable) decodedLen(words []uint32) int {
	n := 0
	for _, word := range words {
		if tag := int(word & selectorMask); tag < len(t) {
			n += t[tag].Items
		}
	}

	return n
}

func (t selectorTable) clone() []Selector {
	out := make([]Selector, len(t))
	for i, s := range t {
		out[i] = s.clone()
	}

	return out
}
