// Package lengthlimit guards streamed inputs against unboundedly long
// data.
//
// It wraps any io.Reader with a hard upper bound on the total number of
// bytes that may be read through it.
// The bound is exclusive:
// a stream exactly as long as the limit is treated as a violation,
// so a caller reading to completion can never be fooled into accepting a
// silently truncated payload as success.
// A stream that ends before the limit is read transparently.
//
// The typical use is protecting services that read streamed bodies,
// such as chunked HTTP uploads,
// from denial-of-service attacks via unboundedly long input.
// See the httplimit subpackage for ready-made net/http wiring.
package lengthlimit
