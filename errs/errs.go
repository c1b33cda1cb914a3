// Package errs defines the sentinel errors returned by intpack packages.
//
// Callers match them with errors.Is; the returned errors usually wrap the
// sentinel with positional context such as the offending index or value.
package errs

import "errors"

// Encoding errors.
var (
	// ErrValueOutOfRange is returned when a value exceeds the 28-bit payload of a Simple9/Simple16 word.
	ErrValueOutOfRange = errors.New("value exceeds codec maximum")
	// ErrInvalidBatchSize is returned when a PForDelta batch does not hold exactly 128 values.
	ErrInvalidBatchSize = errors.New("invalid batch size")
)

// Decoding errors.
var (
	ErrInvalidSelector       = errors.New("invalid selector")
	ErrInvalidWordStream     = errors.New("word stream length is not a multiple of 4")
	ErrShortBuffer           = errors.New("buffer too short")
	ErrInvalidBitWidth       = errors.New("invalid bit width")
	ErrInvalidExceptionSize  = errors.New("invalid exception size")
	ErrCorruptExceptionChain = errors.New("corrupt exception chain")
	ErrInvalidHeaderSize     = errors.New("invalid header size")
	ErrInvalidHeaderFlags    = errors.New("invalid header flags")
	ErrInvalidPayloadSize    = errors.New("invalid payload size")
	ErrChecksumMismatch      = errors.New("checksum mismatch")
	ErrValueCountMismatch    = errors.New("decoded value count mismatch")
)

// Configuration errors.
var (
	ErrInvalidCodec       = errors.New("invalid codec")
	ErrInvalidCompression = errors.New("invalid compression")
	ErrInvalidParallelism = errors.New("invalid parallelism")
)
