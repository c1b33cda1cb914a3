// Package compress provides the optional second stage applied to posting payloads.
//
// The encoding package already removes most redundancy from a posting list by
// bit-packing its values. A general-purpose compressor on top still helps when
// the list has long runs of identical words, such as dense ranges of document
// ids whose gaps are all 1.
//
// Supported algorithms:
//   - None: payload stored as-is
//   - Zstd: best ratio, klauspost/compress/zstd or valyala/gozstd with the gozstd tag
//   - S2: fast, klauspost/compress/s2
//   - LZ4: fastest decompression, pierrec/lz4
//
// The blob package picks a codec from the header's compression byte:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	restored, err := codec.Decompress(compressed, len(payload))
//
// Decompress takes the uncompressed size recorded in the blob header and rejects
// output of any other length.
//
// Measure runs a full round trip and reports a CompressionStats, which the
// codec_demo example uses to compare algorithms on the same posting list.
package compress
