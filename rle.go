// Package rle implements a lossless, threshold-gated run-length encoding
// for byte streams.
//
// The encoder scans its input for maximal runs of a repeated byte. Runs
// shorter than six bytes are copied through untouched; longer runs are
// replaced by a six-byte "run-block" starting with the ASCII
// End-of-Transmission character (0x04), followed by the run length as a
// big-endian unsigned 32-bit integer and then the repeated byte:
//
//	0x04 | len[0] | len[1] | len[2] | len[3] | value
//
// Six is the break-even point: a run-block is always six bytes, so
// encoding a five-byte run would gain nothing and a shorter run would
// actively expand the output. For example:
//
//	helllllllllllllllllo
//	he <EOT, 0, 0, 0, 16, 'l'> o
//
// Data with no qualifying runs passes through completely unchanged, so
// the worst case for incompressible input is zero overhead rather than
// expansion.
//
// Runs longer than 4,294,967,295 bytes don't fit in the length field and
// are split across consecutive run-blocks. Runs of the sentinel byte
// itself are always encoded as run-blocks, whatever their length, so a
// 0x04 in encoded output only ever means "run-block starts here" and
// decoding is never ambiguous.
package rle

import "math"

// Sentinel is the ASCII End-of-Transmission character, used as the escape
// marker that introduces a run-block in encoded output.
const Sentinel byte = 0x04

// MinRunLength is the shortest run that gets encoded as a run-block.
// Anything shorter is emitted as plain literal bytes, except runs of
// [Sentinel] which are always encoded.
const MinRunLength = 6

// runBlockSize is the encoded size of one run-block: the sentinel, four
// length bytes, and the repeated value.
const runBlockSize = 6

// maxBlockRunLength is the largest run length one run-block can carry.
// Longer runs are split across multiple blocks.
const maxBlockRunLength = math.MaxUint32
