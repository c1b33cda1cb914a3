package section

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
)

// PostingFlag is the packed descriptor at the start of the posting header.
type PostingFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 1 means the header carries an xxHash64 of the payload.
	// Bit 1-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the format:
	//   - 0xEC10 (0b1110_1100_0001_0000): posting blob format v1
	Options uint16

	// Codec identifies the integer codec of the payload.
	Codec format.CodecType
	// Compression identifies the block compression applied after encoding.
	Compression format.CompressionType
}

// NewPostingFlag creates a flag for the given codec and compression, checksum enabled.
func NewPostingFlag(codec format.CodecType, compression format.CompressionType) PostingFlag {
	flag := PostingFlag{
		Options:     MagicPostingV1Opt,
		Codec:       codec,
		Compression: compression,
	}
	flag.SetChecksum(true)

	return flag
}

// HasChecksum returns whether the header checksum field is meaningful.
func (f PostingFlag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// SetChecksum enables or disables the payload checksum.
func (f *PostingFlag) SetChecksum(enabled bool) {
	if enabled {
		f.Options |= ChecksumMask
	} else {
		f.Options &^= ChecksumMask
	}
}

// GetMagicNumber returns the magic number from the Options field.
func (f PostingFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f PostingFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicPostingV1Opt
}

// IsValidCodec checks if the codec byte names a known codec.
func (f PostingFlag) IsValidCodec() bool {
	switch f.Codec {
	case format.CodecSimple9, format.CodecSimple16, format.CodecPForDelta:
		return true
	default:
		return false
	}
}

// IsValidCompression checks if the compression byte names a known algorithm.
func (f PostingFlag) IsValidCompression() bool {
	switch f.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return true
	default:
		return false
	}
}

// Validate checks if the flag contains valid values.
func (f PostingFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: magic 0x%04X", errs.ErrInvalidHeaderFlags, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}

	if !f.IsValidCodec() {
		return fmt.Errorf("%w: codec %d", errs.ErrInvalidCodec, f.Codec)
	}

	if !f.IsValidCompression() {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidCompression, f.Compression)
	}

	return nil
}
