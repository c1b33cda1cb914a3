package blob

import (
	"fmt"

	"github.com/arloliu/intpack/compress"
	"github.com/arloliu/intpack/encoding"
	"github.com/arloliu/intpack/endian"
	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/hash"
	"github.com/arloliu/intpack/internal/options"
	"github.com/arloliu/intpack/section"
	"golang.org/x/sync/errgroup"
)

// maxPaddingValues bounds the trailing padding of a word stream: the last word
// holds at least one real value.
const maxPaddingValues = encoding.PayloadBits - 1

// PostingDecoder decodes a posting blob.
//
// Note: The PostingDecoder is NOT reusable. After calling Decode, a new decoder must be created for further decoding.
type PostingDecoder struct {
	data   []byte
	header section.PostingHeader
	config PostingDecoderConfig
}

// NewPostingDecoder creates a decoder for the given blob.
//
// The header is parsed and validated, and the stored payload size is checked
// against the blob length; the payload itself is decoded by Decode.
//
// Parameters:
//   - data: Encoded posting blob
//   - opts: Decoder options
//
// Returns:
//   - *PostingDecoder: Decoder ready for Decode
//   - error: Header validation errors or ErrInvalidPayloadSize
func NewPostingDecoder(data []byte, opts ...PostingDecoderOption) (*PostingDecoder, error) {
	decoder := &PostingDecoder{
		data:   data,
		config: PostingDecoderConfig{parallelism: 1},
	}

	if err := options.Apply(&decoder.config, opts...); err != nil {
		return nil, err
	}

	header, err := section.ParsePostingHeader(data)
	if err != nil {
		return nil, err
	}
	decoder.header = header

	if got := len(data) - section.PayloadOffset; got != int(header.PayloadSize) {
		return nil, fmt.Errorf("%w: header says %d payload bytes, blob has %d",
			errs.ErrInvalidPayloadSize, header.PayloadSize, got)
	}

	return decoder, nil
}

// Header returns the parsed blob header.
func (d *PostingDecoder) Header() section.PostingHeader {
	return d.header
}

// Decode decompresses and verifies the payload and decodes every value.
//
// Returns:
//   - PostingBlob: Decoded posting list
//   - error: Decompression errors, ErrChecksumMismatch, codec errors, or ErrValueCountMismatch
func (d *PostingDecoder) Decode() (PostingBlob, error) {
	h := d.header

	codec, err := compress.GetCodec(h.Flag.Compression)
	if err != nil {
		return PostingBlob{}, err
	}

	payload, err := codec.Decompress(d.data[section.PayloadOffset:], int(h.RawSize))
	if err != nil {
		return PostingBlob{}, fmt.Errorf("failed to decompress %s payload: %w", h.Flag.Compression, err)
	}

	if h.Flag.HasChecksum() {
		if sum := hash.Checksum(payload); sum != h.Checksum {
			return PostingBlob{}, fmt.Errorf("%w: header 0x%016X, payload 0x%016X", errs.ErrChecksumMismatch, h.Checksum, sum)
		}
	}

	// the header bounded Count by RawSize, and the payload now holds exactly RawSize bytes
	values := make([]uint32, int(h.Count))

	switch h.Flag.Codec {
	case format.CodecSimple9:
		err = decodeWordStream(values, encoding.NewSimple9(), payload)
	case format.CodecSimple16:
		err = decodeWordStream(values, encoding.NewSimple16(), payload)
	default:
		err = d.decodePFor(values, payload)
	}
	if err != nil {
		return PostingBlob{}, err
	}

	return PostingBlob{
		codec:       h.Flag.Codec,
		compression: h.Flag.Compression,
		checksum:    h.Flag.HasChecksum(),
		values:      values,
	}, nil
}

// decodeWordStream decodes a word stream into dst, which has the exact logical length.
func decodeWordStream(dst []uint32, codec *encoding.SimpleCodec, payload []byte) error {
	words, err := endian.Words(payload)
	if err != nil {
		return err
	}

	decoded, err := codec.Decode(words)
	if err != nil {
		return err
	}

	if len(decoded) < len(dst) || len(decoded)-len(dst) > maxPaddingValues {
		return fmt.Errorf("%w: %s stream holds %d values, header says %d",
			errs.ErrValueCountMismatch, codec.Type(), len(decoded), len(dst))
	}
	copy(dst, decoded)

	return nil
}

// decodePFor splits the payload into batch records and the tail, then decodes both.
func (d *PostingDecoder) decodePFor(dst []uint32, payload []byte) error {
	batchCount := int(d.header.BatchCount)
	batches := make([][]byte, batchCount)
	engine := endian.GetLittleEndianEngine()

	off := 0
	for i := range batches {
		if len(payload)-off < section.BatchLengthSize {
			return fmt.Errorf("%w: batch %d length prefix", errs.ErrShortBuffer, i)
		}
		n := int(engine.Uint16(payload[off:]))
		off += section.BatchLengthSize

		if len(payload)-off < n {
			return fmt.Errorf("%w: batch %d needs %d bytes, have %d", errs.ErrShortBuffer, i, n, len(payload)-off)
		}
		batches[i] = payload[off : off+n]
		off += n
	}

	full := batchCount * encoding.PForBatchSize
	if err := decodeBatches(dst[:full], batches, d.config.parallelism); err != nil {
		return err
	}

	if err := decodeWordStream(dst[full:], encoding.NewSimple16(), payload[off:]); err != nil {
		return fmt.Errorf("tail: %w", err)
	}

	return nil
}

// decodeBatches decodes batch records into consecutive 128-value windows of dst.
func decodeBatches(dst []uint32, batches [][]byte, parallelism int) error {
	codec := encoding.NewPForDelta()

	decodeRange := func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			window := dst[i*encoding.PForBatchSize : (i+1)*encoding.PForBatchSize]
			if err := codec.DecodeBatchInto(window, batches[i]); err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
		}

		return nil
	}

	if parallelism <= 1 || len(batches) < 2 {
		return decodeRange(0, len(batches))
	}

	chunk := (len(batches) + parallelism - 1) / parallelism

	var g errgroup.Group
	g.SetLimit(parallelism)
	for lo := 0; lo < len(batches); lo += chunk {
		hi := min(lo+chunk, len(batches))
		g.Go(func() error {
			return decodeRange(lo, hi)
		})
	}

	return g.Wait()
}

// DecodePostingBlob decodes a posting blob on the calling goroutine.
//
// Parameters:
//   - data: Encoded posting blob
//
// Returns:
//   - PostingBlob: Decoded posting list
//   - error: Header, payload, checksum or codec errors
func DecodePostingBlob(data []byte) (PostingBlob, error) {
	decoder, err := NewPostingDecoder(data)
	if err != nil {
		return PostingBlob{}, err
	}

	return decoder.Decode()
}
