package lengthlimit

import (
	"io"
)

// CountingSink is an io.Writer implementation that discards all incoming
// data but tracks how many bytes were "written".
//
// When draining a length-limited stream it answers "how much of the
// budget did this stream actually use" without buffering any of the data.
//
// A Write to a CountingSink cannot fail.
// A CountingSink is not safe for concurrent use.
type CountingSink int64

var _ io.Writer = (*CountingSink)(nil)

func (cs *CountingSink) Write(buf []byte) (int, error) {
	*cs += CountingSink(len(buf))
	return len(buf), nil
}

// BytesWritten returns the number of bytes counted so far.
func (cs CountingSink) BytesWritten() int64 {
	return int64(cs)
}
