package rle

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run. A
	// valid run always has this be 1 or greater. It's an int64 so that a
	// single run longer than 4 GiB is representable even on 32-bit
	// platforms.
	RunLength int64
}

// RunGrouper partitions a byte slice into maximal runs, left to right.
type RunGrouper struct {
	data []byte
	pos  int
}

func NewRunGrouper(data []byte) RunGrouper {
	return RunGrouper{data: data}
}

// GetNextRun returns a [ByteRun] for the next run of byte values in the
// input. The second return value is false once the input is exhausted.
func (grouper *RunGrouper) GetNextRun() (ByteRun, bool) {
	if grouper.pos >= len(grouper.data) {
		return ByteRun{}, false
	}

	firstByte := grouper.data[grouper.pos]
	start := grouper.pos
	for grouper.pos < len(grouper.data) && grouper.data[grouper.pos] == firstByte {
		grouper.pos++
	}
	return ByteRun{Byte: firstByte, RunLength: int64(grouper.pos - start)}, true
}
