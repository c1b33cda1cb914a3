package section

import (
	"math"

	"github.com/arloliu/intpack/encoding"
)

const (
	// Bit masks of the flag word
	ChecksumMask     = 0x0001 // Mask for checksum-present bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicPostingV1Opt is the version 1 magic number of the posting blob format.
	MagicPostingV1Opt = 0xEC10
)

// offset and section sizes in the posting blob
const (
	HeaderSize       = 32             // fixed header size in bytes
	PayloadOffset    = HeaderSize     // byte offset where the payload starts
	BatchLengthSize  = 2              // size of the length prefix of each PForDelta batch record
	MaxBatchLength   = math.MaxUint16 // maximum encoded size of one batch record
	MaxPayloadLength = math.MaxUint32 // maximum payload size

	// MinBatchRecordSize is the smallest PForDelta batch record: length prefix,
	// batch header and a slot array at width 1.
	MinBatchRecordSize = BatchLengthSize + encoding.PForHeaderSize + encoding.PForBatchSize/8
)
