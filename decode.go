package rle

import (
	"bytes"
	"encoding/binary"
)

// Decompress decodes data previously produced by [Compress] and returns
// the original bytes. Bytes other than the sentinel are copied through;
// a sentinel introduces a six-byte run-block that gets expanded in
// place. A run-block with a length field of zero is accepted and
// contributes nothing.
//
// If a sentinel is not followed by a complete run-block the stream is
// malformed and Decompress returns a [*TruncatedBlockError] with no
// partial output.
func Decompress(data []byte) ([]byte, error) {
	output := make([]byte, 0, len(data))

	for pos := 0; pos < len(data); {
		if data[pos] != Sentinel {
			output = append(output, data[pos])
			pos++
			continue
		}

		if len(data)-pos < runBlockSize {
			return nil, &TruncatedBlockError{Offset: pos}
		}

		runLength := binary.BigEndian.Uint32(data[pos+1 : pos+5])
		value := data[pos+5]
		output = append(output, bytes.Repeat([]byte{value}, int(runLength))...)
		pos += runBlockSize
	}
	return output, nil
}
