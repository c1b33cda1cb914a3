package compress

import (
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	payload := postingPayload(b, 50000, func(i int) uint32 { return uint32(i%17 + 1) }) //nolint:gosec

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Compress(payload)
			}
		})
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	payload := postingPayload(b, 50000, func(i int) uint32 { return uint32(i%17 + 1) }) //nolint:gosec

	for name, codec := range getAllCodecs() {
		b.Run(name, func(b *testing.B) {
			compressed, err := codec.Compress(payload)
			if err != nil {
				b.Fatal(err)
			}

			b.SetBytes(int64(len(payload)))
			b.ReportAllocs()
			for b.Loop() {
				_, _ = codec.Decompress(compressed, len(payload))
			}
		})
	}
}
