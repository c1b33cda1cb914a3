package blob

import (
	"fmt"
	"math"

	"github.com/arloliu/intpack/compress"
	"github.com/arloliu/intpack/encoding"
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/hash"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/internal/pool"
	"github.com/arloliu/intpack/section"
	"golang.org/x/sync/errgroup"
)

// PostingEncoder encodes posting lists into posting blobs.
//
// The encoder keeps no per-call state: one instance can encode any number of
// lists, from any number of goroutines.
type PostingEncoder struct {
	*PostingEncoderConfig

	compressor compress.Codec
}

// NewPostingEncoder creates a PostingEncoder.
//
// Parameters:
//   - opts: Codec, compression, checksum and parallelism options
//
// Returns:
//   - *PostingEncoder: Configured encoder
//   - error: ErrInvalidCodec, ErrInvalidCompression or ErrInvalidParallelism
func NewPostingEncoder(opts ...PostingEncoderOption) (*PostingEncoder, error) {
	config := newPostingEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	compressor, err := compress.GetCodec(config.compression)
	if err != nil {
		return nil, err
	}

	return &PostingEncoder{
		PostingEncoderConfig: config,
		compressor:           compressor,
	}, nil
}

// Encode encodes values into a new posting blob.
//
// Values are stored exactly as given; callers that want gap encoding compute
// the gaps first. Simple9 and Simple16 accept values up to encoding.MaxValue.
// PForDelta accepts the full uint32 range inside full 128-value batches; the
// tail of fewer than 128 values is Simple16-coded and limited to MaxValue.
//
// Parameters:
//   - values: Posting list to encode
//
// Returns:
//   - []byte: Header followed by the (optionally compressed) payload
//   - error: ErrValueOutOfRange, or a compression error
func (e *PostingEncoder) Encode(values []uint32) ([]byte, error) {
	if uint64(len(values)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d values exceed the header count field", errs.ErrValueCountMismatch, len(values))
	}

	buf := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(buf)
	buf.Grow(estimatePayloadSize(len(values)))

	header := section.NewPostingHeader(e.codec, e.compression)
	header.Flag.SetChecksum(e.checksum)
	header.Count = uint32(len(values)) //nolint:gosec

	var err error
	switch e.codec {
	case format.CodecSimple9:
		buf.B, err = encoding.NewSimple9().AppendEncode(buf.B, values)
	case format.CodecSimple16:
		buf.B, err = encoding.NewSimple16().AppendEncode(buf.B, values)
	default:
		header.BatchCount = uint32(len(values) / encoding.PForBatchSize) //nolint:gosec
		buf.B, err = e.appendPForPayload(buf.B, values)
	}
	if err != nil {
		return nil, err
	}

	payload := buf.Bytes()
	if e.checksum {
		header.Checksum = hash.Checksum(payload)
	}

	stored, err := e.compressor.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress %s payload: %w", e.compression, err)
	}

	if uint64(len(stored)) > section.MaxPayloadLength || uint64(buf.Len()) > section.MaxPayloadLength {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrInvalidPayloadSize, buf.Len())
	}
	header.RawSize = uint32(len(payload))    //nolint:gosec
	header.PayloadSize = uint32(len(stored)) //nolint:gosec

	out := make([]byte, 0, section.HeaderSize+len(stored))
	out = header.AppendTo(out)
	out = append(out, stored...)

	return out, nil
}

// estimatePayloadSize guesses the encoded size of n gaps at about one byte each,
// plus the batch record overhead.
func estimatePayloadSize(n int) int {
	return n + n/encoding.PForBatchSize*section.MinBatchRecordSize
}

// appendPForPayload appends the batch records and the Simple16 tail.
func (e *PostingEncoder) appendPForPayload(dst []byte, values []uint32) ([]byte, error) {
	batchCount := len(values) / encoding.PForBatchSize
	full := batchCount * encoding.PForBatchSize

	var err error
	if e.parallelism > 1 && batchCount > 1 {
		dst, err = appendBatchesParallel(dst, values[:full], e.parallelism)
	} else {
		dst, err = appendBatches(dst, values[:full])
	}
	if err != nil {
		return dst, err
	}

	return encoding.NewSimple16().AppendEncode(dst, values[full:])
}

// appendBatches encodes batches in place, back-filling each length prefix.
func appendBatches(dst []byte, values []uint32) ([]byte, error) {
	codec := encoding.NewPForDelta()
	engine := endian.GetLittleEndianEngine()

	for start := 0; start < len(values); start += encoding.PForBatchSize {
		lenPos := len(dst)
		dst = append(dst, 0, 0)

		var err error
		dst, err = codec.AppendEncodeBatch(dst, values[start:start+encoding.PForBatchSize])
		if err != nil {
			return dst, err
		}

		n := len(dst) - lenPos - section.BatchLengthSize
		if n > section.MaxBatchLength {
			return dst, fmt.Errorf("%w: batch %d encodes to %d bytes",
				errs.ErrInvalidPayloadSize, start/encoding.PForBatchSize, n)
		}
		engine.PutUint16(dst[lenPos:], uint16(n)) //nolint:gosec
	}

	return dst, nil
}

// appendBatchesParallel encodes batches on up to parallelism goroutines and
// appends the records in batch order.
func appendBatchesParallel(dst []byte, values []uint32, parallelism int) ([]byte, error) {
	batchCount := len(values) / encoding.PForBatchSize
	chunk := (batchCount + parallelism - 1) / parallelism
	records := make([][]byte, (batchCount+chunk-1)/chunk)

	var g errgroup.Group
	g.SetLimit(parallelism)

	for lo := 0; lo < batchCount; lo += chunk {
		hi := min(lo+chunk, batchCount)
		g.Go(func() error {
			start, end := lo*encoding.PForBatchSize, hi*encoding.PForBatchSize
			rec, err := appendBatches(nil, values[start:end])
			if err != nil {
				return fmt.Errorf("batches %d-%d: %w", lo, hi-1, err)
			}
			records[lo/chunk] = rec

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return dst, err
	}

	for _, rec := range records {
		dst = append(dst, rec...)
	}

	return dst, nil
}
