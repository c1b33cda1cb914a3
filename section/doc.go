// Package section defines the binary header of the intpack posting blob.
//
// # Blob Structure
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes, optionally compressed)      │
//	│  Simple9/Simple16: the word stream                      │
//	│  PForDelta: BatchCount records of                       │
//	│    uint16 length + encoded 128-value batch              │
//	│  followed by the tail (< 128 values) as Simple16 words  │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Bytes  | Field       | Type   | Description
//	-------|-------------|--------|----------------------------------------
//	0-1    | Options     | uint16 | Checksum bit, reserved bits, magic
//	2      | Codec       | uint8  | 0x1=Simple9, 0x2=Simple16, 0x3=PForDelta
//	3      | Compression | uint8  | 0x1=None, 0x2=Zstd, 0x3=S2, 0x4=LZ4
//	4-7    | Count       | uint32 | Logical number of values
//	8-11   | BatchCount  | uint32 | Full PForDelta batches (0 otherwise)
//	12-15  | PayloadSize | uint32 | Stored payload size
//	16-19  | RawSize     | uint32 | Payload size before compression
//	20-23  | Reserved    | uint32 | Must be 0
//	24-31  | Checksum    | uint64 | xxHash64 of the uncompressed payload
//
// Options bits:
//
//	Bit 0:     Checksum present
//	Bits 1-3:  Reserved (must be 0)
//	Bits 4-15: Magic number (0xEC10)
//
// Every field is little-endian, like the payload itself.
//
// Most users should use the blob package instead of this one.
package section
