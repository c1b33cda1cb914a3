package encoding

import (
	"fmt"
	"slices"

	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/bitpack"
	"github.com/arloliu/intpack/internal/pool"
)

// PForDelta batch layout.
const (
	// PForBatchSize is the exact number of values in one PForDelta batch.
	PForBatchSize = 128
	// PForHeaderSize is the size of the batch header: bit width, exception size, first exception.
	PForHeaderSize = 3
	// PForMaxBitWidth is the widest slot the batch decoder supports.
	PForMaxBitWidth = bitpack.MaxKernelWidth
	// PForNoException is the first-exception index written when a batch has no exceptions.
	PForNoException = PForBatchSize - 1

	// pforSampleIndex is the 90th-percentile position, floor(128*0.9)-1.
	pforSampleIndex = PForBatchSize*9/10 - 1
	// pforMaxSlotBytes is the slot array size at the maximum bit width.
	pforMaxSlotBytes = PForBatchSize * PForMaxBitWidth / 8
)

// ExceptionSize is the per-value width, in bits, of a batch's exception array.
type ExceptionSize uint8

const (
	ExceptionBits8  ExceptionSize = 8
	ExceptionBits16 ExceptionSize = 16
	ExceptionBits32 ExceptionSize = 32
)

// exceptionSizeFor returns the smallest exception class that holds maxVal.
func exceptionSizeFor(maxVal uint32) ExceptionSize {
	switch {
	case maxVal <= 0xFF:
		return ExceptionBits8
	case maxVal <= 0xFFFF:
		return ExceptionBits16
	default:
		return ExceptionBits32
	}
}

// Bytes returns the number of bytes one exception value occupies.
func (s ExceptionSize) Bytes() int {
	return int(s) / 8
}

// Valid reports whether s is one of the three exception classes.
func (s ExceptionSize) Valid() bool {
	return s == ExceptionBits8 || s == ExceptionBits16 || s == ExceptionBits32
}

// PForHeader is the decoded 3-byte header of a PForDelta batch.
type PForHeader struct {
	// BitWidth is the slot width b, 1..16.
	BitWidth int
	// ExceptionSize is the width of every exception value.
	ExceptionSize ExceptionSize
	// FirstException is the slot index where the exception chain starts,
	// or PForNoException when the batch carries no exception values.
	FirstException int
}

// SlotBytes returns the size of the packed slot array that follows the header.
func (h PForHeader) SlotBytes() int {
	return bitpack.PackedSize(PForBatchSize, h.BitWidth)
}

// ParsePForHeader parses and validates the header at the start of a batch.
//
// Returns:
//   - PForHeader: Parsed header
//   - error: ErrShortBuffer, ErrInvalidBitWidth, ErrInvalidExceptionSize or ErrCorruptExceptionChain
func ParsePForHeader(src []byte) (PForHeader, error) {
	if len(src) < PForHeaderSize {
		return PForHeader{}, fmt.Errorf("%w: batch header needs %d bytes, have %d",
			errs.ErrShortBuffer, PForHeaderSize, len(src))
	}

	h := PForHeader{
		BitWidth:       int(src[0]),
		ExceptionSize:  ExceptionSize(src[1]),
		FirstException: int(src[2]),
	}

	if h.BitWidth < 1 || h.BitWidth > PForMaxBitWidth {
		return PForHeader{}, fmt.Errorf("%w: %d", errs.ErrInvalidBitWidth, h.BitWidth)
	}

	if !h.ExceptionSize.Valid() {
		return PForHeader{}, fmt.Errorf("%w: %d", errs.ErrInvalidExceptionSize, h.ExceptionSize)
	}

	if h.FirstException >= PForBatchSize {
		return PForHeader{}, fmt.Errorf("%w: first exception index %d", errs.ErrCorruptExceptionChain, h.FirstException)
	}

	return h, nil
}

// PForBitWidth returns the slot width b chosen for a batch.
//
// The width is the bit length of the value at the 90th-percentile position of
// the batch, which assumes ascending order. A zero sample yields 1, and the
// result is capped at PForMaxBitWidth so the decoder's kernel bank always
// applies; larger values become exceptions.
func PForBitWidth(values []uint32) int {
	b := bitpack.BitLen(values[pforSampleIndex])

	switch {
	case b == 0:
		return 1
	case b > PForMaxBitWidth:
		return PForMaxBitWidth
	default:
		return b
	}
}

// PForDelta implements the 128-value patched frame-of-reference batch codec.
//
// A batch is packed at a uniform width b; values that do not fit are stored
// out of band as exceptions. The slot of each exception holds the distance to
// the next one, forming a chain that starts at the header's first-exception
// index. When two exceptions are further apart than a b-bit offset can say,
// intermediate positions are promoted to exceptions to keep the chain walkable.
//
// Wire form:
//
//	byte 0      b, 1..16
//	byte 1      exception size in bits: 8, 16 or 32
//	byte 2      first exception index, 127 when there are none
//	3..3+16*b   128 packed b-bit slots, little-endian
//	remainder   exception values in chain order, little-endian
//
// The number of exceptions is implied by the length of the trailing array, so
// a batch must be decoded from a buffer holding exactly that batch. This also
// disambiguates index 127: with no trailing values it means "no exceptions",
// with one value it is a real exception at slot 127.
//
// PForDelta is stateless and safe for concurrent use.
type PForDelta struct{}

var _ BatchCodec = (*PForDelta)(nil)

// NewPForDelta returns a PForDelta batch codec.
func NewPForDelta() *PForDelta {
	return &PForDelta{}
}

// Type returns the codec identifier.
func (c *PForDelta) Type() format.CodecType {
	return format.CodecPForDelta
}

// BatchSize returns PForBatchSize.
func (c *PForDelta) BatchSize() int {
	return PForBatchSize
}

// EncodeBatch packs exactly 128 values into a new buffer.
//
// Values should be sorted ascending: the width heuristic samples the 90th
// percentile position. Unsorted input still round-trips, only less compactly.
//
// Parameters:
//   - values: Exactly PForBatchSize values
//
// Returns:
//   - []byte: Encoded batch
//   - error: ErrInvalidBatchSize if len(values) != 128
func (c *PForDelta) EncodeBatch(values []uint32) ([]byte, error) {
	return c.AppendEncodeBatch(nil, values)
}

// AppendEncodeBatch packs exactly 128 values and appends the batch to dst.
// On error dst is returned unchanged.
func (c *PForDelta) AppendEncodeBatch(dst []byte, values []uint32) ([]byte, error) {
	if len(values) != PForBatchSize {
		return dst, fmt.Errorf("%w: PForDelta batch needs %d values, got %d",
			errs.ErrInvalidBatchSize, PForBatchSize, len(values))
	}

	b := PForBitWidth(values)

	var chain exceptionChain
	chain.build(values, b)

	var maxVal uint32
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	excSize := exceptionSizeFor(maxVal)

	slots, cleanup := pool.GetUint32Slice(PForBatchSize)
	defer cleanup()

	copy(slots, values)
	chain.thread(slots)

	dst = slices.Grow(dst, PForHeaderSize+bitpack.PackedSize(PForBatchSize, b)+chain.n*excSize.Bytes())

	dst = append(dst, byte(b), byte(excSize), chain.first())
	dst = bitpack.Pack(dst, slots, b)

	engine := endian.GetLittleEndianEngine()
	for _, pos := range chain.positions() {
		v := values[pos]
		switch excSize {
		case ExceptionBits8:
			dst = append(dst, byte(v))
		case ExceptionBits16:
			dst = engine.AppendUint16(dst, uint16(v)) //nolint:gosec
		default:
			dst = engine.AppendUint32(dst, v)
		}
	}

	return dst, nil
}

// DecodeBatch unpacks one encoded batch into a new slice of 128 values.
func (c *PForDelta) DecodeBatch(src []byte) ([]uint32, error) {
	dst := make([]uint32, PForBatchSize)
	if err := c.DecodeBatchInto(dst, src); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeBatchInto unpacks one encoded batch into dst.
//
// src must hold exactly one batch: trailing bytes are read as exception values.
//
// Parameters:
//   - dst: Destination, at least PForBatchSize values
//   - src: One encoded batch
//
// Returns:
//   - error: Header validation errors, ErrShortBuffer, or ErrCorruptExceptionChain
func (c *PForDelta) DecodeBatchInto(dst []uint32, src []byte) error {
	if len(dst) < PForBatchSize {
		return fmt.Errorf("%w: destination holds %d values, need %d", errs.ErrShortBuffer, len(dst), PForBatchSize)
	}

	h, err := ParsePForHeader(src)
	if err != nil {
		return err
	}

	slotEnd := PForHeaderSize + h.SlotBytes()
	if len(src) < slotEnd {
		return fmt.Errorf("%w: slot array needs %d bytes, have %d",
			errs.ErrShortBuffer, h.SlotBytes(), len(src)-PForHeaderSize)
	}

	exceptions := src[slotEnd:]
	excBytes := h.ExceptionSize.Bytes()
	if len(exceptions)%excBytes != 0 {
		return fmt.Errorf("%w: %d trailing bytes for %d-bit exceptions",
			errs.ErrCorruptExceptionChain, len(exceptions), h.ExceptionSize)
	}

	var words [pforMaxSlotBytes / endian.WordSize]uint32
	b := h.BitWidth
	endian.PutWords(words[:h.SlotBytes()/endian.WordSize], src[PForHeaderSize:slotEnd])

	for g := range PForBatchSize / bitpack.GroupSize {
		bitpack.Unpack32(dst[g*bitpack.GroupSize:], words[g*bitpack.KernelWords(b):], b)
	}

	return patchExceptions(dst[:PForBatchSize], h, exceptions)
}

// patchExceptions walks the chain from the header's first index and overwrites
// each visited slot with the next exception value.
func patchExceptions(dst []uint32, h PForHeader, exceptions []byte) error {
	engine := endian.GetLittleEndianEngine()
	excBytes := h.ExceptionSize.Bytes()
	count := len(exceptions) / excBytes

	pos := h.FirstException
	for i := range count {
		if pos >= PForBatchSize {
			return fmt.Errorf("%w: exception %d of %d points at slot %d",
				errs.ErrCorruptExceptionChain, i, count, pos)
		}

		var v uint32
		switch h.ExceptionSize {
		case ExceptionBits8:
			v = uint32(exceptions[i])
		case ExceptionBits16:
			v = uint32(engine.Uint16(exceptions[i*2:]))
		default:
			v = engine.Uint32(exceptions[i*4:])
		}

		offset := dst[pos]
		dst[pos] = v
		pos += 1 + int(offset)
	}

	return nil
}
