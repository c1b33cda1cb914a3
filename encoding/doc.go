// Package encoding implements the integer list codecs of intpack.
//
// Two families are provided:
//
// Word codecs pack a list of values into self-describing 32-bit words. Each
// word stores a 4-bit selector in its low bits and up to 28 bits of values
// above it, so a stream can be decoded word by word without any framing:
//   - Simple9 - 9 uniform layouts, from 28 one-bit values to one 28-bit value
//   - Simple16 - 16 layouts, adding slots of mixed width within one word
//
// Batch codecs pack a fixed number of values at once:
//   - PForDelta - patched frame of reference over exactly 128 values, with
//     outliers stored out of band as a chained exception list
//
// Values handed to the word codecs must be at most MaxValue (2^28-1). PForDelta
// accepts the full uint32 range and works best on ascending input, such as the
// sorted document ids or gaps of a posting list.
//
// # Usage
//
//	codec := encoding.NewSimple16()
//	data, err := codec.Encode([]uint32{3, 7, 200, 1})
//	if err != nil {
//	    return err
//	}
//
//	values, err := codec.DecodeBytes(data)
//	// values may carry trailing zero padding; keep the first 4
//
// Word codecs emit whole words only, so decoding can return more values than were
// encoded. Callers store the true count alongside the data; the blob package does
// this for complete posting lists.
//
// All codec instances are immutable and safe for concurrent use.
package encoding
