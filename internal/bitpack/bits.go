package bitpack

import "math/bits"

const (
	// MaxWidth is the widest value the generic primitives accept.
	MaxWidth = 32
	// MaxKernelWidth is the widest value covered by the fixed-width kernel bank.
	MaxKernelWidth = 16
	// GroupSize is the number of values decoded by one kernel call.
	GroupSize = 32
)

// BitLen returns the number of bits needed to represent v. BitLen(0) is 0.
func BitLen(v uint32) int {
	return bits.Len32(v)
}

// Mask returns a mask with the low width bits set.
func Mask(width int) uint32 {
	return uint32(uint64(1)<<uint(width) - 1) //nolint:gosec
}

// PackedSize returns the number of bytes needed to store n values of the given width.
func PackedSize(n, width int) int {
	return (n*width + 7) / 8
}

// KernelWords returns the number of 32-bit words one kernel call consumes at the given width.
func KernelWords(width int) int {
	return GroupSize * width / 32
}
