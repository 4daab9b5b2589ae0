package httplimit

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/streamguard/lengthlimit"
)

// Config provides the configuration for the request body guard.
type Config struct {
	// MaxRequestBody is the exclusive upper bound on request body sizes.
	// A request whose body reaches this size fails mid-read with
	// lengthlimit.ErrLengthLimitExceeded.
	//
	// Zero means the very first body read fails.
	// To leave bodies unguarded, don't install the middleware.
	MaxRequestBody lengthlimit.Size `yaml:"maxRequestBody"`

	// Logger is called when a request body hits the limit. Optional.
	Logger LogWrapper `yaml:"-"`
}

// Middleware returns a middleware that replaces the body of every request
// with one guarded by cfg.MaxRequestBody.
//
// The wrapped handler observes a violation as a read error on the body;
// use IsLimitExceeded to map it to a 413 response
// (see RespondEntityTooLarge).
// The first violation per request increments the prometheus counter
// httplimit_request_body_limit_hit_total and logs through cfg.Logger,
// with name as the endpoint label.
func Middleware(name string, cfg Config) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil {
				r.Body = &guardedBody{
					body:   lengthlimit.NewReadCloser(r.Body, cfg.MaxRequestBody.Bytes()),
					max:    cfg.MaxRequestBody,
					name:   name,
					logger: cfg.Logger,
					ctx:    r.Context(),
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

type guardedBody struct {
	body   *lengthlimit.ReadCloser
	max    lengthlimit.Size
	name   string
	logger LogWrapper
	ctx    context.Context

	reported bool
}

func (b *guardedBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	if err != nil && !b.reported && errors.Is(err, lengthlimit.ErrLengthLimitExceeded) {
		b.reported = true
		limitHitCounter.With(prometheus.Labels{
			endpointLabel: b.name,
		}).Inc()
		b.logger.Log(b.ctx, fmt.Sprintf(
			"httplimit: request body hit the %v limit on endpoint %q",
			b.max,
			b.name,
		))
	}
	return n, err
}

func (b *guardedBody) Close() error {
	return b.body.Close()
}

// IsLimitExceeded reports whether err indicates that a guarded body hit
// its configured limit,
// as opposed to the underlying connection failing.
func IsLimitExceeded(err error) bool {
	return errors.Is(err, lengthlimit.ErrLengthLimitExceeded)
}

// RespondEntityTooLarge writes a plain 413 Request Entity Too Large
// response.
func RespondEntityTooLarge(w http.ResponseWriter) {
	http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
}
