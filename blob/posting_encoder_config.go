package blob

import (
	"fmt"

	"github.com/arloliu/intpack/errs"
	"github.com/arloliu/intpack/format"
	"github.com/arloliu/intpack/internal/options"
)

// PostingEncoderConfig holds the settings of a PostingEncoder.
type PostingEncoderConfig struct {
	codec       format.CodecType
	compression format.CompressionType
	checksum    bool
	parallelism int
}

func newPostingEncoderConfig() *PostingEncoderConfig {
	return &PostingEncoderConfig{
		codec:       format.CodecSimple16,
		compression: format.CompressionNone,
		checksum:    true,
		parallelism: 1,
	}
}

func (c *PostingEncoderConfig) setCodec(codec format.CodecType) error {
	switch codec {
	case format.CodecSimple9, format.CodecSimple16, format.CodecPForDelta:
		c.codec = codec
		return nil
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidCodec, codec)
	}
}

func (c *PostingEncoderConfig) setCompression(comp format.CompressionType) error {
	switch comp {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		c.compression = comp
		return nil
	default:
		return fmt.Errorf("%w: %d", errs.ErrInvalidCompression, comp)
	}
}

func setParallelism(target *int, n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d, must be at least 1", errs.ErrInvalidParallelism, n)
	}
	*target = n

	return nil
}

// Codec returns the configured integer codec.
func (c *PostingEncoderConfig) Codec() format.CodecType {
	return c.codec
}

// Compression returns the configured block compression.
func (c *PostingEncoderConfig) Compression() format.CompressionType {
	return c.compression
}

// PostingEncoderOption configures a PostingEncoder.
type PostingEncoderOption = options.Option[*PostingEncoderConfig]

// WithCodec selects the integer codec. Default: Simple16.
func WithCodec(codec format.CodecType) PostingEncoderOption {
	return options.New(func(c *PostingEncoderConfig) error {
		return c.setCodec(codec)
	})
}

// WithCompression selects the block compression applied to the encoded payload. Default: None.
func WithCompression(comp format.CompressionType) PostingEncoderOption {
	return options.New(func(c *PostingEncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum. Default: enabled.
func WithChecksum(enabled bool) PostingEncoderOption {
	return options.NoError(func(c *PostingEncoderConfig) {
		c.checksum = enabled
	})
}

// WithParallelism sets how many goroutines encode PForDelta batches. Default: 1.
// Word codecs are always encoded on the calling goroutine.
func WithParallelism(n int) PostingEncoderOption {
	return options.New(func(c *PostingEncoderConfig) error {
		return setParallelism(&c.parallelism, n)
	})
}

// PostingDecoderConfig holds the settings of a PostingDecoder.
type PostingDecoderConfig struct {
	parallelism int
}

// PostingDecoderOption configures a PostingDecoder.
type PostingDecoderOption = options.Option[*PostingDecoderConfig]

// WithDecoderParallelism sets how many goroutines decode PForDelta batches. Default: 1.
func WithDecoderParallelism(n int) PostingDecoderOption {
	return options.New(func(c *PostingDecoderConfig) error {
		return setParallelism(&c.parallelism, n)
	})
}
