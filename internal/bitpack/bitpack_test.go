package bitpack

import (
	"encoding/binary"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomValues(rng *rand.Rand, n, width int) []uint32 {
	mask := Mask(width)
	values := make([]uint32, n)
	for i := range values {
		values[i] = rng.Uint32() & mask
	}

	return values
}

func bytesToWords(b []byte) []uint32 {
	words := make([]uint32, (len(b)+3)/4)
	padded := make([]byte, len(words)*4)
	copy(padded, b)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(padded[i*4:])
	}

	return words
}

func TestBitLen(t *testing.T) {
	tests := []struct {
		v    uint32
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{63, 6},
		{64, 7},
		{1<<16 - 1, 16},
		{1 << 16, 17},
		{1<<28 - 1, 28},
		{^uint32(0), 32},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BitLen(tt.v), "BitLen(%d)", tt.v)
	}
}

func TestMask(t *testing.T) {
	require.Equal(t, uint32(0x1), Mask(1))
	require.Equal(t, uint32(0x7), Mask(3))
	require.Equal(t, uint32(0xFFFF), Mask(16))
	require.Equal(t, uint32(0xFFFFFFF), Mask(28))
	require.Equal(t, uint32(0xFFFFFFFF), Mask(32))
}

func TestPackedSize(t *testing.T) {
	require.Equal(t, 0, PackedSize(0, 7))
	require.Equal(t, 1, PackedSize(1, 1))
	require.Equal(t, 1, PackedSize(8, 1))
	require.Equal(t, 2, PackedSize(9, 1))
	require.Equal(t, 16*7, PackedSize(128, 7))
	require.Equal(t, 512, PackedSize(128, 32))
}

func TestKernelWords(t *testing.T) {
	for w := 1; w <= MaxKernelWidth; w++ {
		require.Equal(t, w, KernelWords(w))
	}
}

func TestPack_ByteLayout(t *testing.T) {
	// 1 | 2<<2 | 3<<4 = 0b00111001
	require.Equal(t, []byte{0x39}, Pack(nil, []uint32{1, 2, 3}, 2))

	// 12-bit values straddle bytes: 0xABC, 0x123 -> BC 3A 12
	require.Equal(t, []byte{0xBC, 0x3A, 0x12}, Pack(nil, []uint32{0xABC, 0x123}, 12))

	// values are truncated to width
	require.Equal(t, []byte{0x0F}, Pack(nil, []uint32{0xFF}, 4))

	// appends to existing content
	require.Equal(t, []byte{0xAA, 0x01}, Pack([]byte{0xAA}, []uint32{1}, 1))
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	counts := []int{0, 1, 3, 7, 8, 31, 32, 33, 100, 128, 129}

	for width := 1; width <= MaxWidth; width++ {
		for _, n := range counts {
			values := randomValues(rng, n, width)
			packed := Pack(nil, values, width)
			require.Len(t, packed, PackedSize(n, width))

			decoded := make([]uint32, n)
			Unpack(decoded, packed, width)
			require.Equal(t, values, decoded, "width=%d n=%d", width, n)
		}
	}
}

func TestPack_InvalidWidth(t *testing.T) {
	require.Panics(t, func() { Pack(nil, []uint32{1}, 0) })
	require.Panics(t, func() { Pack(nil, []uint32{1}, 33) })
	require.Panics(t, func() { Unpack(make([]uint32, 1), []byte{1}, 0) })
}

func TestUnpack32_MatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for width := 1; width <= MaxKernelWidth; width++ {
		for range 20 {
			src := make([]uint32, width)
			for i := range src {
				src[i] = rng.Uint32()
			}

			want := make([]uint32, GroupSize)
			got := make([]uint32, GroupSize)
			Unpack32Generic(want, src, width)
			Unpack32(got, src, width)
			require.Equal(t, want, got, "width=%d", width)
		}
	}
}

func TestUnpack32_DecodesPackedGroups(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for width := 1; width <= MaxKernelWidth; width++ {
		values := randomValues(rng, GroupSize, width)
		words := bytesToWords(Pack(nil, values, width))
		require.Len(t, words, KernelWords(width))

		got := make([]uint32, GroupSize)
		Unpack32(got, words, width)
		require.Equal(t, values, got, "width=%d", width)
	}
}

func TestUnpack32_AllOnes(t *testing.T) {
	for width := 1; width <= MaxKernelWidth; width++ {
		src := make([]uint32, width)
		for i := range src {
			src[i] = ^uint32(0)
		}

		got := make([]uint32, GroupSize)
		Unpack32(got, src, width)
		for i, v := range got {
			require.Equal(t, Mask(width), v, "width=%d index=%d", width, i)
		}
	}
}

func TestUnpack32_StraddlingValue(t *testing.T) {
	// value 10 at width 3 occupies bits 30..32: two bits from word 0, one from word 1
	src := []uint32{0b11 << 30, 0b1, 0}
	got := make([]uint32, GroupSize)
	Unpack32(got, src, 3)

	require.Equal(t, uint32(0b111), got[10])
	require.Equal(t, uint32(0), got[9])
	require.Equal(t, uint32(0), got[11])
}

func TestUnpack32Generic_WideWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for width := MaxKernelWidth + 1; width <= MaxWidth; width++ {
		values := randomValues(rng, GroupSize, width)
		words := bytesToWords(Pack(nil, values, width))

		got := make([]uint32, GroupSize)
		Unpack32Generic(got, words, width)
		require.Equal(t, values, got, "width=%d", width)
	}
}

func TestUnpack32_InvalidWidth(t *testing.T) {
	dst := make([]uint32, GroupSize)
	src := make([]uint32, 32)
	require.Panics(t, func() { Unpack32(dst, src, 0) })
	require.Panics(t, func() { Unpack32(dst, src, MaxKernelWidth+1) })
}

func TestPack_AppendsToPrefix(t *testing.T) {
	values := []uint32{1, 2, 3, 4, 5, 6, 7}

	t.Run("keeps prefix", func(t *testing.T) {
		out := Pack([]byte{0xAA, 0xBB}, values, 5)
		require.Len(t, out, 2+PackedSize(len(values), 5))
		require.Equal(t, []byte{0xAA, 0xBB}, out[:2])
		require.Equal(t, Pack(nil, values, 5), out[2:])
	})

	t.Run("reuses spare capacity", func(t *testing.T) {
		dst := make([]byte, 1, 64)
		out := Pack(dst, values, 5)
		require.Same(t, &dst[0], &out[0])
	})
}
