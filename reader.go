package lengthlimit

import (
	"errors"
	"io"
)

// ErrLengthLimitExceeded is the error returned by Reader when a read is
// attempted after the byte budget dropped to zero.
//
// It deliberately carries no byte counts or other context;
// the caller already knows the limit it configured.
// Use errors.Is to tell it apart from failures raised by the wrapped
// source, which are always passed through unchanged.
var ErrLengthLimitExceeded = errors.New("lengthlimit: length limit exceeded")

// Make sure Reader and ReadCloser satisfy the io interfaces.
var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ReadCloser = (*ReadCloser)(nil)
)

// Reader wraps an io.Reader and fails reads once a byte budget is used up.
//
// It's similar to io.LimitReader,
// but the limit is an exclusive upper bound:
// a source whose length is exactly the limit still fails with
// ErrLengthLimitExceeded on its final read,
// instead of being silently truncated and reported as EOF success.
// A source that ends before the limit is read transparently.
//
// This makes it suitable for guarding streamed inputs,
// for example chunked HTTP request bodies,
// against denial-of-service via unboundedly long data.
//
// A Reader is not safe for concurrent use.
// There should be at most one Read in flight at any time.
type Reader struct {
	src       io.Reader
	remaining int64
}

// New wraps src with a budget of maxBytes bytes.
//
// The Reader takes over src:
// nothing else should read from src directly until it's reclaimed via Inner.
// A non-positive maxBytes means the very first Read fails.
func New(src io.Reader, maxBytes int64) *Reader {
	return &Reader{
		src:       src,
		remaining: maxBytes,
	}
}

// NewKB is New with the budget given in kilobytes (1024 bytes each).
func NewKB(src io.Reader, maxKB int64) *Reader {
	return New(src, maxKB*int64(Kilobyte))
}

// NewMB is New with the budget given in megabytes (1024 kilobytes each).
func NewMB(src io.Reader, maxMB int64) *Reader {
	return New(src, maxMB*int64(Megabyte))
}

// NewGB is New with the budget given in gigabytes (1024 megabytes each).
func NewGB(src io.Reader, maxGB int64) *Reader {
	return New(src, maxGB*int64(Gigabyte))
}

// Read implements io.Reader.
//
// When the budget is already zero it returns ErrLengthLimitExceeded
// without touching the wrapped source.
// That failure is terminal: every subsequent Read fails the same way.
//
// Otherwise it narrows p to at most the remaining budget,
// delegates a single read to the source,
// and subtracts however many bytes were actually produced.
// Any error from the source, including io.EOF when it ends before the
// limit, is returned unchanged.
func (r *Reader) Read(p []byte) (int, error) {
	if r.remaining <= 0 {
		return 0, ErrLengthLimitExceeded
	}
	if int64(len(p)) > r.remaining {
		p = p[:r.remaining]
	}
	n, err := r.src.Read(p)
	r.remaining -= int64(n)
	return n, err
}

// BytesRemaining returns the number of additional bytes allowed before
// the limit is reached.
func (r *Reader) BytesRemaining() int64 {
	if r.remaining < 0 {
		return 0
	}
	return r.remaining
}

// Inner returns the wrapped source, positioned exactly where its read
// cursor currently sits.
//
// It can be used either to inspect the source,
// or to reclaim it and read it to completion without the limit;
// any unused budget is simply forfeited.
// After reclaiming the source the caller should stop using the Reader,
// as both would otherwise consume from the same cursor.
func (r *Reader) Inner() io.Reader {
	return r.src
}

// ReadCloser is a Reader over an io.ReadCloser, forwarding Close to the
// wrapped source.
//
// It's the shape needed to swap in for an HTTP request or response body.
type ReadCloser struct {
	Reader

	closer io.Closer
}

// NewReadCloser wraps src with a budget of maxBytes bytes.
func NewReadCloser(src io.ReadCloser, maxBytes int64) *ReadCloser {
	return &ReadCloser{
		Reader: Reader{
			src:       src,
			remaining: maxBytes,
		},
		closer: src,
	}
}

// Close closes the wrapped source.
//
// Unread bytes are not drained.
func (rc *ReadCloser) Close() error {
	return rc.closer.Close()
}
