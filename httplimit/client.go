package httplimit

import (
	"net/http"

	"github.com/streamguard/lengthlimit"
)

// ClientMiddleware is used to build HTTP client middleware by implementing
// http.RoundTripper which http.Client accepts as Transport.
type ClientMiddleware func(next http.RoundTripper) http.RoundTripper

// roundTripperFunc adapts closures and functions to implement http.RoundTripper.
type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// MaxResponseBody returns a ClientMiddleware that caps response body sizes
// at max, exclusive.
//
// Reading a response body that reaches max fails with
// lengthlimit.ErrLengthLimitExceeded (see IsLimitExceeded),
// so a misbehaving upstream cannot feed the client unbounded data.
// Transport-level errors are returned unchanged.
func MaxResponseBody(max lengthlimit.Size) ClientMiddleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			resp, err := next.RoundTrip(req)
			if err != nil || resp.Body == nil {
				return resp, err
			}
			resp.Body = lengthlimit.NewReadCloser(resp.Body, max.Bytes())
			return resp, nil
		})
	}
}

// WrapTransport takes a list of client middleware and wraps them around the
// given transport.
//
// A nil transport means http.DefaultTransport.
// Middlewares will be applied in the order that they are defined.
func WrapTransport(transport http.RoundTripper, middleware ...ClientMiddleware) http.RoundTripper {
	if transport == nil {
		transport = http.DefaultTransport
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		transport = middleware[i](transport)
	}
	return transport
}
