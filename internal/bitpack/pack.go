package bitpack

import (
	"fmt"
	"slices"
)

// Pack appends values to dst, each truncated to width bits, low bits first.
//
// Packing proceeds value by value and emits whole bytes as soon as they fill up;
// the bits that do not complete a byte are carried into the next value. A final
// partial byte is zero-padded.
//
// Parameters:
//   - dst: Destination buffer (may be nil)
//   - values: Values to pack
//   - width: Bit width in [1, 32]
//
// Returns:
//   - []byte: dst extended by PackedSize(len(values), width) bytes
func Pack(dst []byte, values []uint32, width int) []byte {
	checkWidth(width)

	dst = slices.Grow(dst, PackedSize(len(values), width))

	mask := Mask(width)

	var carry uint64 // pending bits, at most 7 + 32
	var pending uint

	for _, v := range values {
		carry |= uint64(v&mask) << pending
		pending += uint(width) //nolint:gosec

		for pending >= 8 {
			dst = append(dst, byte(carry))
			carry >>= 8
			pending -= 8
		}
	}

	if pending > 0 {
		dst = append(dst, byte(carry))
	}

	return dst
}

// Unpack decodes len(dst) values of the given width from src, mirroring Pack bit for bit.
//
// The batch decoder uses the Unpack32 kernel bank for widths 1..16. Unpack is the
// general form for any width up to 32 and the reference decoder for widths above
// 16, which the kernel bank does not cover.
//
// src must hold at least PackedSize(len(dst), width) bytes.
func Unpack(dst []uint32, src []byte, width int) {
	checkWidth(width)

	mask := Mask(width)
	w := uint(width) //nolint:gosec

	var carry uint64
	var pending uint
	pos := 0

	for i := range dst {
		for pending < w {
			carry |= uint64(src[pos]) << pending
			pos++
			pending += 8
		}

		dst[i] = uint32(carry) & mask
		carry >>= w
		pending -= w
	}
}

func checkWidth(width int) {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bitpack: width %d out of range [1, %d]", width, MaxWidth))
	}
}
