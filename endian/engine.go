// Package endian provides byte order utilities for the intpack wire formats.
//
// Every intpack wire format is little-endian: Simple9/Simple16 word streams,
// the PForDelta slot array and exception values, and the posting blob header.
// The EndianEngine interface combines binary.ByteOrder and binary.AppendByteOrder
// so encoders can append fixed-width integers without temporary buffers.
//
// # Word Streams
//
// Simple9 and Simple16 operate on 32-bit words. AppendWords and Words convert
// between a []uint32 word sequence and its little-endian byte form:
//
//	buf := endian.AppendWords(nil, words)
//	words, err := endian.Words(buf)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/arloliu/intpack/errs"
)

// WordSize is the size in bytes of one Simple9/Simple16 word.
const WordSize = 4

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine used by all intpack formats.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// AppendWords appends the little-endian encoding of each word to dst.
//
// Parameters:
//   - dst: Destination buffer (may be nil)
//   - words: 32-bit words to append
//
// Returns:
//   - []byte: dst extended by 4*len(words) bytes
func AppendWords(dst []byte, words []uint32) []byte {
	dst = slices.Grow(dst, len(words)*WordSize)
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint32(dst, w)
	}

	return dst
}

// Words reinterprets a little-endian byte stream as 32-bit words.
//
// Returns:
//   - []uint32: Newly allocated word slice
//   - error: ErrInvalidWordStream if len(data) is not a multiple of 4
func Words(data []byte) ([]uint32, error) {
	if len(data)%WordSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidWordStream, len(data))
	}

	words := make([]uint32, len(data)/WordSize)
	PutWords(words, data)

	return words, nil
}

// PutWords decodes len(dst) little-endian words from src into dst.
// src must hold at least 4*len(dst) bytes.
func PutWords(dst []uint32, src []byte) {
	if len(dst) == 0 {
		return
	}

	_ = src[len(dst)*WordSize-1]
	for i := range dst {
		dst[i] = binary.LittleEndian.Uint32(src[i*WordSize:])
	}
}
