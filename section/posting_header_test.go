package section

import (
	"testing"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/stretchr/testify/require"
)

func TestNewPostingHeader(t *testing.T) {
	header := NewPostingHeader(format.CodecSimple16, format.CompressionZstd)

	require.NotNil(t, header)
	require.True(t, header.Flag.IsValidMagicNumber())
	require.True(t, header.Flag.HasChecksum())
	require.Equal(t, format.CodecSimple16, header.Flag.Codec)
	require.Equal(t, format.CompressionZstd, header.Flag.Compression)
	require.Zero(t, header.Count)
	require.NoError(t, header.Flag.Validate())
}

func TestPostingFlag_Checksum(t *testing.T) {
	flag := NewPostingFlag(format.CodecSimple9, format.CompressionNone)
	require.Equal(t, uint16(0xEC11), flag.Options)

	flag.SetChecksum(false)
	require.False(t, flag.HasChecksum())
	require.Equal(t, uint16(MagicPostingV1Opt), flag.Options)

	flag.SetChecksum(true)
	require.True(t, flag.HasChecksum())
}

func TestPostingHeader_Bytes(t *testing.T) {
	header := NewPostingHeader(format.CodecPForDelta, format.CompressionLZ4)
	header.Count = 300
	header.BatchCount = 2
	header.PayloadSize = 0x01020304
	header.RawSize = 0x0A0B0C0D
	header.Checksum = 0x1122334455667788

	data := header.Bytes()
	require.Len(t, data, HeaderSize)
	require.Equal(t, []byte{
		0x11, 0xEC,                                     // options
		0x03, 0x04,                                     // codec, compression
		0x2C, 0x01, 0x00, 0x00,                         // count
		0x02, 0x00, 0x00, 0x00,                         // batch count
		0x04, 0x03, 0x02, 0x01,                         // payload size
		0x0D, 0x0C, 0x0B, 0x0A,                         // raw size
		0x00, 0x00, 0x00, 0x00,                         // reserved
		0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11, // checksum
	}, data)

	require.Equal(t, append([]byte{0xAA}, data...), header.AppendTo([]byte{0xAA}))
}

func TestPostingHeader_Parse(t *testing.T) {
	t.Run("Valid header", func(t *testing.T) {
		original := NewPostingHeader(format.CodecPForDelta, format.CompressionS2)
		original.Count = 1000
		original.BatchCount = 7
		original.PayloadSize = 4321
		original.RawSize = 9000
		original.Checksum = 42

		parsed := &PostingHeader{}
		require.NoError(t, parsed.Parse(original.Bytes()))
		require.Equal(t, *original, *parsed)
	})

	t.Run("Invalid size", func(t *testing.T) {
		header := &PostingHeader{}
		require.ErrorIs(t, header.Parse([]byte{1, 2, 3}), errs.ErrInvalidHeaderSize)
		require.ErrorIs(t, header.Parse(make([]byte, HeaderSize+1)), errs.ErrInvalidHeaderSize)
	})

	tests := []struct {
		name   string
		mutate func(data []byte)
		err    error
	}{
		{"bad magic", func(d []byte) { d[1] = 0xEA }, errs.ErrInvalidHeaderFlags},
		{"reserved bit", func(d []byte) { d[0] |= 0x02 }, errs.ErrInvalidHeaderFlags},
		{"unknown codec", func(d []byte) { d[2] = 0x09 }, errs.ErrInvalidCodec},
		{"zero codec", func(d []byte) { d[2] = 0x00 }, errs.ErrInvalidCodec},
		{"unknown compression", func(d []byte) { d[3] = 0x07 }, errs.ErrInvalidCompression},
		{"batches on word codec", func(d []byte) { d[2] = 0x02 }, errs.ErrInvalidHeaderFlags},
		{"too many batches", func(d []byte) { d[8] = 0x09 }, errs.ErrValueCountMismatch},
		{"reserved field", func(d []byte) { d[21] = 0x01 }, errs.ErrInvalidHeaderFlags},
		{"raw size differs without compression", func(d []byte) { d[16] = 0x05 }, errs.ErrInvalidPayloadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewPostingHeader(format.CodecPForDelta, format.CompressionNone)
			header.Count = 1000
			header.BatchCount = 7

			data := header.Bytes()
			tt.mutate(data)

			_, err := ParsePostingHeader(data)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParsePostingHeader(t *testing.T) {
	header := NewPostingHeader(format.CodecSimple9, format.CompressionNone)
	header.Count = 5
	header.PayloadSize = 4
	header.RawSize = 4

	blob := append(header.Bytes(), 0x10, 0x00, 0x00, 0x00)

	parsed, err := ParsePostingHeader(blob)
	require.NoError(t, err)
	require.Equal(t, *header, parsed)

	_, err = ParsePostingHeader(blob[:HeaderSize-1])
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestPostingHeader_PayloadBounds(t *testing.T) {
	tests := []struct {
		name       string
		codec      format.CodecType
		count      uint32
		batchCount uint32
		rawSize    uint32
		err        error
	}{
		{"word stream fits", format.CodecSimple16, 28, 0, 4, nil},
		{"word stream overflows", format.CodecSimple16, 29, 0, 4, errs.ErrValueCountMismatch},
		{"empty payload", format.CodecSimple9, 1, 0, 0, errs.ErrValueCountMismatch},
		{"minimal batches", format.CodecPForDelta, 256, 2, 2 * MinBatchRecordSize, nil},
		{"batches need more bytes", format.CodecPForDelta, 256, 2, 2*MinBatchRecordSize - 1, errs.ErrInvalidPayloadSize},
		{"batches plus tail word", format.CodecPForDelta, 256 + 28, 2, 2*MinBatchRecordSize + 4, nil},
		{"tail overflows", format.CodecPForDelta, 256 + 29, 2, 2*MinBatchRecordSize + 4, errs.ErrValueCountMismatch},
		{"huge batch count", format.CodecPForDelta, 128 << 20, 1 << 20, 0, errs.ErrInvalidPayloadSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewPostingHeader(tt.codec, format.CompressionS2)
			header.Count = tt.count
			header.BatchCount = tt.batchCount
			header.RawSize = tt.rawSize

			_, err := ParsePostingHeader(header.Bytes())
			if tt.err == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.err)
			}
		})
	}
}
