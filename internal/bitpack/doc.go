// Package bitpack provides the bit-level packing primitives shared by the intpack codecs.
//
// Two families of routines live here:
//
//   - Generic primitives: Pack and Unpack handle any value count and any width
//     from 1 to 32 bits. Values are laid out low-bit-first in a little-endian
//     byte stream with no padding between values, so the output of Pack can be
//     read back as 32-bit little-endian words.
//   - Fixed-width kernels: Unpack32 decodes exactly 32 values of width 1..16 from
//     exactly width 32-bit words using a fully unrolled shift/mask sequence. The
//     kernels are generated by gen_kernels.go and checked against Unpack32Generic.
//
// All routines trust their inputs: callers size the buffers. A width outside the
// supported range is a programming error and panics.
package bitpack
