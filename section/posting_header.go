package section

import (
	"fmt"

	"github.com/arloliu/intpack/encoding"
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// PostingHeader is the fixed-size header at the start of a posting blob.
//
// All fields are little-endian.
type PostingHeader struct {
	// Count is the logical number of values in the posting list.
	Count uint32 // byte offset 4-7
	// BatchCount is the number of full 128-value PForDelta batch records, 0 for word codecs.
	BatchCount uint32 // byte offset 8-11
	// PayloadSize is the size of the payload as stored, after compression.
	PayloadSize uint32 // byte offset 12-15
	// RawSize is the size of the payload before compression.
	RawSize uint32 // byte offset 16-19
	// Checksum is the xxHash64 of the uncompressed payload, 0 when the checksum flag is clear.
	Checksum uint64 // byte offset 24-31

	// Flag is a packed field for options, magic number, codec and compression.
	Flag PostingFlag // byte offset 0-3
}

// NewPostingHeader creates a header for the given codec and compression.
// Count, BatchCount, PayloadSize, RawSize and Checksum are filled in by the encoder.
func NewPostingHeader(codec format.CodecType, compression format.CompressionType) *PostingHeader {
	return &PostingHeader{
		Flag: NewPostingFlag(codec, compression),
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *PostingHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return fmt.Errorf("%w: %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	engine := endian.GetLittleEndianEngine()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.Codec = format.CodecType(data[2])
	h.Flag.Compression = format.CompressionType(data[3])
	h.Count = engine.Uint32(data[4:8])
	h.BatchCount = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[24:32])

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if reserved := engine.Uint32(data[20:24]); reserved != 0 {
		return fmt.Errorf("%w: reserved field is 0x%08X", errs.ErrInvalidHeaderFlags, reserved)
	}

	if h.Flag.Compression == format.CompressionNone && h.PayloadSize != h.RawSize {
		return fmt.Errorf("%w: uncompressed payload stored as %d bytes, raw size %d",
			errs.ErrInvalidPayloadSize, h.PayloadSize, h.RawSize)
	}

	if err := h.validateBatches(); err != nil {
		return err
	}

	return h.validateCount()
}

// validateBatches checks that the batch count is consistent with the codec and count.
func (h *PostingHeader) validateBatches() error {
	if h.Flag.Codec != format.CodecPForDelta {
		if h.BatchCount != 0 {
			return fmt.Errorf("%w: %s blob declares %d batches", errs.ErrInvalidHeaderFlags, h.Flag.Codec, h.BatchCount)
		}

		return nil
	}

	if uint64(h.BatchCount)*encoding.PForBatchSize > uint64(h.Count) {
		return fmt.Errorf("%w: %d batches exceed %d values", errs.ErrValueCountMismatch, h.BatchCount, h.Count)
	}

	if uint64(h.BatchCount)*MinBatchRecordSize > uint64(h.RawSize) {
		return fmt.Errorf("%w: %d batches cannot fit in %d payload bytes", errs.ErrInvalidPayloadSize, h.BatchCount, h.RawSize)
	}

	return nil
}

// validateCount checks that the raw payload can hold Count values: every word
// yields at most PayloadBits values and every batch record holds PForBatchSize.
func (h *PostingHeader) validateCount() error {
	words := (uint64(h.RawSize) - uint64(h.BatchCount)*MinBatchRecordSize) / endian.WordSize
	maxCount := words*encoding.PayloadBits + uint64(h.BatchCount)*encoding.PForBatchSize

	if uint64(h.Count) > maxCount {
		return fmt.Errorf("%w: %d values cannot fit in %d payload bytes", errs.ErrValueCountMismatch, h.Count, h.RawSize)
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *PostingHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to dst.
func (h *PostingHeader) AppendTo(dst []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	dst = engine.AppendUint16(dst, h.Flag.Options)
	dst = append(dst, byte(h.Flag.Codec), byte(h.Flag.Compression))
	dst = engine.AppendUint32(dst, h.Count)
	dst = engine.AppendUint32(dst, h.BatchCount)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint32(dst, h.RawSize)
	dst = engine.AppendUint32(dst, 0) // reserved
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// ParsePostingHeader parses a PostingHeader from the start of a blob.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - PostingHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or validation errors
func ParsePostingHeader(data []byte) (PostingHeader, error) {
	if len(data) < HeaderSize {
		return PostingHeader{}, fmt.Errorf("%w: %d bytes, want %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	h := PostingHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return PostingHeader{}, err
	}

	return h, nil
}
