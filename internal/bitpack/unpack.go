package bitpack

import "fmt"

//go:generate go run gen_kernels.go

// Unpack32 decodes 32 values of the given width from the first width words of src.
//
// Values are packed low-bit-first with no padding and may straddle a word boundary.
// Each width has a dedicated unrolled kernel; width must be in [1, 16].
//
// Parameters:
//   - dst: Destination, at least 32 entries
//   - src: Packed words, at least width entries
//   - width: Bit width in [1, 16]
func Unpack32(dst, src []uint32, width int) {
	if width < 1 || width > MaxKernelWidth {
		panic(fmt.Sprintf("bitpack: kernel width %d out of range [1, %d]", width, MaxKernelWidth))
	}

	unpackKernels[width](dst, src)
}

// Unpack32Generic is the parameterized form of Unpack32. It accepts any width in [1, 32]
// and serves as the reference the unrolled kernels are validated against.
func Unpack32Generic(dst, src []uint32, width int) {
	checkWidth(width)

	mask := Mask(width)
	_ = dst[GroupSize-1]

	for i := range GroupSize {
		bit := i * width
		k := bit / 32
		s := uint(bit % 32) //nolint:gosec

		v := src[k] >> s
		if s+uint(width) > 32 { //nolint:gosec
			v |= src[k+1] << (32 - s)
		}

		dst[i] = v & mask
	}
}
