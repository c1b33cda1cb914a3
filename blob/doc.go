// Package blob encodes complete posting lists into self-describing binary blobs.
//
// A posting blob wraps the output of one codec from the encoding package with a
// fixed header (see the section package) recording the codec, the optional
// block compression, the logical value count and an xxHash64 checksum. Decoding
// needs nothing but the blob bytes.
//
// # Encoding Workflow
//
//	encoder, err := blob.NewPostingEncoder(
//	    blob.WithCodec(format.CodecPForDelta),
//	    blob.WithCompression(format.CompressionZstd),
//	    blob.WithParallelism(4),
//	)
//	if err != nil {
//	    return err
//	}
//
//	data, err := encoder.Encode(docGaps)
//
// # Decoding Workflow
//
//	postings, err := blob.DecodePostingBlob(data)
//	if err != nil {
//	    return err
//	}
//
//	for v := range postings.All() {
//	    // ...
//	}
//
// # Codecs
//
// Simple9 and Simple16 payloads are a single word stream. The decoder drops the
// trailing padding of the last word using the header count.
//
// PForDelta payloads hold every full 128-value batch as a record of a 2-byte
// little-endian length followed by the batch bytes, so each batch can be handed
// to the batch decoder with its exact extent. The remaining values (fewer than
// 128) are appended as a Simple16 word stream. Batches are independent, and
// both encoder and decoder can process them on several goroutines.
//
// # Thread Safety
//
// PostingEncoder holds only immutable configuration after construction and is
// safe for concurrent use. PostingBlob is immutable.
package blob
