package rle

import "encoding/binary"

// Compress encodes data, replacing every run of [MinRunLength] or more
// identical bytes with a run-block. It never fails; every input, the
// empty slice included, has a well-defined encoding.
//
// Runs of the sentinel byte 0x04 are always emitted as run-blocks even
// when shorter than the threshold. This costs up to five bytes per
// stray 0x04 but keeps the encoding unambiguous: Decompress inverts
// Compress exactly for every possible input.
func Compress(data []byte) []byte {
	output := make([]byte, 0, len(data))

	grouper := NewRunGrouper(data)
	for {
		run, ok := grouper.GetNextRun()
		if !ok {
			return output
		}
		output = appendRun(output, run)
	}
}

// appendRun encodes a single run onto output, splitting runs too long
// for one run-block's 32-bit length field across several blocks.
func appendRun(output []byte, run ByteRun) []byte {
	if run.RunLength < MinRunLength && run.Byte != Sentinel {
		for i := int64(0); i < run.RunLength; i++ {
			output = append(output, run.Byte)
		}
		return output
	}

	for run.RunLength > 0 {
		count := run.RunLength
		if count > maxBlockRunLength {
			count = maxBlockRunLength
		}

		var lengthField [4]byte
		binary.BigEndian.PutUint32(lengthField[:], uint32(count))

		output = append(output, Sentinel)
		output = append(output, lengthField[:]...)
		output = append(output, run.Byte)

		run.RunLength -= count
	}
	return output
}
