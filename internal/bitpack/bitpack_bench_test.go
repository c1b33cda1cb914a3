package bitpack

import (
	"fmt"
	"math/rand"
	"testing"
)

var benchWidths = []int{1, 3, 7, 12, 16}

func BenchmarkUnpack32(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	dst := make([]uint32, GroupSize)

	for _, width := range benchWidths {
		words := bytesToWords(Pack(nil, randomValues(rng, GroupSize, width), width))

		b.Run(fmt.Sprintf("kernel_%d", width), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Unpack32(dst, words, width)
			}
		})

		b.Run(fmt.Sprintf("generic_%d", width), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				Unpack32Generic(dst, words, width)
			}
		})
	}
}

func BenchmarkPack128(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	buf := make([]byte, 0, PackedSize(128, MaxWidth))

	for _, width := range benchWidths {
		values := randomValues(rng, 128, width)

		b.Run(fmt.Sprintf("width_%d", width), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				buf = Pack(buf[:0], values, width)
			}
		})
	}
}
