package blob

import (
	"math"
	"math/rand"
	"testing"

	"github.com/arloliu/intpack/encoding"
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/section"
	"github.com/stretchr/testify/require"
)

var (
	allCodecs = []format.CodecType{
		format.CodecSimple9, format.CodecSimple16, format.CodecPForDelta,
	}
	allCompressions = []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	}
)

// docGaps returns gaps between ascending document ids: mostly small, with rare long jumps.
func docGaps(n int, seed int64) []uint32 {
	rng := rand.New(rand.NewSource(seed))
	gaps := make([]uint32, n)
	for i := range gaps {
		gaps[i] = uint32(1 + rng.Intn(40)) //nolint:gosec
		if rng.Intn(100) == 0 {
			gaps[i] = uint32(rng.Intn(1 << 24)) //nolint:gosec
		}
	}

	return gaps
}

func mustEncoder(t *testing.T, opts ...PostingEncoderOption) *PostingEncoder {
	t.Helper()

	encoder, err := NewPostingEncoder(opts...)
	require.NoError(t, err)

	return encoder
}

func TestNewPostingEncoder_Defaults(t *testing.T) {
	encoder := mustEncoder(t)
	require.Equal(t, format.CodecSimple16, encoder.Codec())
	require.Equal(t, format.CompressionNone, encoder.Compression())

	data, err := encoder.Encode([]uint32{1, 2, 3})
	require.NoError(t, err)

	header, err := section.ParsePostingHeader(data)
	require.NoError(t, err)
	require.True(t, header.Flag.HasChecksum())
	require.Equal(t, uint32(3), header.Count)
	require.Zero(t, header.BatchCount)
}

func TestNewPostingEncoder_InvalidOptions(t *testing.T) {
	_, err := NewPostingEncoder(WithCodec(format.CodecType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCodec)

	_, err = NewPostingEncoder(WithCompression(format.CompressionType(9)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)

	_, err = NewPostingEncoder(WithParallelism(0))
	require.ErrorIs(t, err, errs.ErrInvalidParallelism)

	_, err = NewPostingDecoder(nil, WithDecoderParallelism(-1))
	require.ErrorIs(t, err, errs.ErrInvalidParallelism)
}

func TestPostingBlob_RoundTrip(t *testing.T) {
	sizes := []int{0, 1, 27, 127, 128, 129, 1000, 4096}

	for _, codec := range allCodecs {
		for _, comp := range allCompressions {
			t.Run(codec.String()+"/"+comp.String(), func(t *testing.T) {
				encoder := mustEncoder(t, WithCodec(codec), WithCompression(comp))

				for _, n := range sizes {
					values := docGaps(n, int64(n))

					data, err := encoder.Encode(values)
					require.NoError(t, err, "n=%d", n)

					postings, err := DecodePostingBlob(data)
					require.NoError(t, err, "n=%d", n)
					require.Equal(t, n, postings.Len())
					require.Equal(t, codec, postings.Codec())
					require.Equal(t, comp, postings.Compression())
					require.True(t, postings.HasChecksum())

					if n == 0 {
						require.Empty(t, postings.Values())
					} else {
						require.Equal(t, values, postings.Values())
					}
				}
			})
		}
	}
}

func TestPostingBlob_PForHeader(t *testing.T) {
	encoder := mustEncoder(t, WithCodec(format.CodecPForDelta))

	data, err := encoder.Encode(docGaps(1000, 1))
	require.NoError(t, err)

	decoder, err := NewPostingDecoder(data)
	require.NoError(t, err)

	header := decoder.Header()
	require.Equal(t, uint32(1000), header.Count)
	require.Equal(t, uint32(7), header.BatchCount)
	require.Equal(t, header.RawSize, header.PayloadSize)
	require.Len(t, data, section.HeaderSize+int(header.PayloadSize))
}

func TestPostingBlob_PForFullRange(t *testing.T) {
	values := docGaps(256+5, 3)
	values[0] = math.MaxUint32
	values[200] = 1 << 31

	encoder := mustEncoder(t, WithCodec(format.CodecPForDelta))

	data, err := encoder.Encode(values)
	require.NoError(t, err)

	postings, err := DecodePostingBlob(data)
	require.NoError(t, err)
	require.Equal(t, values, postings.Values())

	// the tail is Simple16-coded
	values[len(values)-1] = encoding.MaxValue + 1
	_, err = encoder.Encode(values)
	require.ErrorIs(t, err, errs.ErrValueOutOfRange)
}

func TestPostingEncoder_ValueOutOfRange(t *testing.T) {
	for _, codec := range []format.CodecType{format.CodecSimple9, format.CodecSimple16} {
		data, err := mustEncoder(t, WithCodec(codec)).Encode([]uint32{1, encoding.MaxValue + 1})
		require.ErrorIs(t, err, errs.ErrValueOutOfRange)
		require.Nil(t, data)
	}
}

func TestPostingEncoder_ParallelMatchesSequential(t *testing.T) {
	values := docGaps(128*37+50, 9)

	for _, comp := range allCompressions {
		sequential, err := mustEncoder(t, WithCodec(format.CodecPForDelta), WithCompression(comp)).Encode(values)
		require.NoError(t, err)

		for _, p := range []int{2, 3, 8, 64} {
			parallel, err := mustEncoder(t,
				WithCodec(format.CodecPForDelta),
				WithCompression(comp),
				WithParallelism(p),
			).Encode(values)
			require.NoError(t, err)
			require.Equal(t, sequential, parallel, "parallelism %d", p)

			decoder, err := NewPostingDecoder(parallel, WithDecoderParallelism(p))
			require.NoError(t, err)

			postings, err := decoder.Decode()
			require.NoError(t, err)
			require.Equal(t, values, postings.Values())
		}
	}
}

func TestPostingEncoder_LargeList(t *testing.T) {
	require.Equal(t, 1280+10*section.MinBatchRecordSize, estimatePayloadSize(1280))
	require.Zero(t, estimatePayloadSize(0))

	// larger than the pooled payload buffers, so the buffer grows past its pool size
	values := docGaps(400_000, 11)
	for _, codec := range []format.CodecType{format.CodecSimple16, format.CodecPForDelta} {
		data, err := mustEncoder(t, WithCodec(codec)).Encode(values)
		require.NoError(t, err)

		postings, err := DecodePostingBlob(data)
		require.NoError(t, err)
		require.Equal(t, values, postings.Values(), codec.String())
	}
}

func TestPostingEncoder_ChecksumDisabled(t *testing.T) {
	data, err := mustEncoder(t, WithChecksum(false)).Encode([]uint32{5, 6, 7})
	require.NoError(t, err)

	header, err := section.ParsePostingHeader(data)
	require.NoError(t, err)
	require.False(t, header.Flag.HasChecksum())
	require.Zero(t, header.Checksum)

	postings, err := DecodePostingBlob(data)
	require.NoError(t, err)
	require.False(t, postings.HasChecksum())
	require.Equal(t, []uint32{5, 6, 7}, postings.Values())
}

func TestDecodePostingBlob_Corrupt(t *testing.T) {
	values := docGaps(1000, 5)

	t.Run("short header", func(t *testing.T) {
		_, err := DecodePostingBlob(make([]byte, section.HeaderSize-1))
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("truncated payload", func(t *testing.T) {
		data, err := mustEncoder(t).Encode(values)
		require.NoError(t, err)

		_, err = DecodePostingBlob(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

		_, err = DecodePostingBlob(append(data, 0))
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("payload bit flip", func(t *testing.T) {
		data, err := mustEncoder(t).Encode(values)
		require.NoError(t, err)

		data[section.HeaderSize+10] ^= 0x40
		_, err = DecodePostingBlob(data)
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("count too large", func(t *testing.T) {
		data, err := mustEncoder(t).Encode(values)
		require.NoError(t, err)

		data[4], data[5] = 0x00, 0x10 // 4096 values
		_, err = DecodePostingBlob(data)
		require.ErrorIs(t, err, errs.ErrValueCountMismatch)
	})

	t.Run("count too small", func(t *testing.T) {
		data, err := mustEncoder(t).Encode(values)
		require.NoError(t, err)

		data[4], data[5] = 0x84, 0x03 // 900 values
		_, err = DecodePostingBlob(data)
		require.ErrorIs(t, err, errs.ErrValueCountMismatch)
	})

	t.Run("batch length overruns payload", func(t *testing.T) {
		data, err := mustEncoder(t, WithCodec(format.CodecPForDelta), WithChecksum(false)).Encode(values)
		require.NoError(t, err)

		data[section.HeaderSize], data[section.HeaderSize+1] = 0xFF, 0xFF
		_, err = DecodePostingBlob(data)
		require.ErrorIs(t, err, errs.ErrShortBuffer)
	})

	t.Run("batch count exceeds payload", func(t *testing.T) {
		header := section.NewPostingHeader(format.CodecPForDelta, format.CompressionNone)
		header.Count = 128 << 20
		header.BatchCount = 1 << 20

		_, err := NewPostingDecoder(header.Bytes())
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)
	})

	t.Run("count exceeds empty payload", func(t *testing.T) {
		header := section.NewPostingHeader(format.CodecSimple9, format.CompressionNone)
		header.Count = 1 << 30

		_, err := NewPostingDecoder(header.Bytes())
		require.ErrorIs(t, err, errs.ErrValueCountMismatch)
	})

	t.Run("inflated raw size", func(t *testing.T) {
		for _, comp := range []format.CompressionType{format.CompressionLZ4, format.CompressionZstd} {
			data, err := mustEncoder(t, WithCodec(format.CodecPForDelta), WithCompression(comp)).Encode(values)
			require.NoError(t, err)

			endian.GetLittleEndianEngine().PutUint32(data[16:20], 1<<30)
			_, err = DecodePostingBlob(data)
			require.ErrorIs(t, err, errs.ErrInvalidPayloadSize, comp.String())
		}
	})

	t.Run("corrupt compressed payload", func(t *testing.T) {
		data, err := mustEncoder(t, WithCompression(format.CompressionZstd)).Encode(values)
		require.NoError(t, err)

		_, err = DecodePostingBlob(data[:section.HeaderSize+4])
		require.ErrorIs(t, err, errs.ErrInvalidPayloadSize)

		for i := section.HeaderSize; i < len(data); i++ {
			data[i] = 0xA5
		}
		_, err = DecodePostingBlob(data)
		require.Error(t, err)
	})
}

func TestPostingBlob_Accessors(t *testing.T) {
	data, err := mustEncoder(t, WithCodec(format.CodecSimple9)).Encode([]uint32{10, 20, 30, 40})
	require.NoError(t, err)

	postings, err := DecodePostingBlob(data)
	require.NoError(t, err)

	v, ok := postings.At(2)
	require.True(t, ok)
	require.Equal(t, uint32(30), v)

	_, ok = postings.At(4)
	require.False(t, ok)
	_, ok = postings.At(-1)
	require.False(t, ok)

	var seen []uint32
	for v := range postings.All() {
		seen = append(seen, v)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []uint32{10, 20}, seen)

	copied := postings.Values()
	copied[0] = 99
	first, _ := postings.At(0)
	require.Equal(t, uint32(10), first)
}

func TestPostingEncoder_ConcurrentUse(t *testing.T) {
	encoder := mustEncoder(t, WithCodec(format.CodecPForDelta), WithCompression(format.CompressionS2))
	values := docGaps(3000, 11)

	want, err := encoder.Encode(values)
	require.NoError(t, err)

	results := make(chan []byte, 8)
	for range 8 {
		go func() {
			data, err := encoder.Encode(values)
			if err != nil {
				results <- nil
				return
			}
			results <- data
		}()
	}

	for range 8 {
		require.Equal(t, want, <-results)
	}
}
