package rle

import (
	"fmt"
	"io"
)

// TruncatedBlockError is returned by [Decompress] when a sentinel byte is
// not followed by the five bytes completing its run-block. It is the only
// error kind the decoder produces.
type TruncatedBlockError struct {
	// Offset is the position of the offending sentinel in the input.
	Offset int
}

// Error implements the `error` interface. When called, it returns a
// string describing where the stream was cut short.
func (e *TruncatedBlockError) Error() string {
	return fmt.Sprintf(
		"truncated run-block: sentinel at offset %d is missing part of its %d-byte block",
		e.Offset,
		runBlockSize,
	)
}

// Unwrap returns [io.ErrUnexpectedEOF] so callers can match truncation
// with errors.Is without depending on the concrete type.
func (e *TruncatedBlockError) Unwrap() error {
	return io.ErrUnexpectedEOF
}
