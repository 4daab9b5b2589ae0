package httplimit

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

// LogWrapper is a simple wrapper of a logging function.
//
// Different services use different logging libraries,
// and they are not always compatible with each other.
// LogWrapper is a simple common ground that it's easy to wrap whatever
// logging library the service uses into.
type LogWrapper func(ctx context.Context, msg string)

// Log calls the wrapped function, handling nil safely.
func (w LogWrapper) Log(ctx context.Context, msg string) {
	if w != nil {
		w(ctx, msg)
	}
}

// NopLogWrapper is a LogWrapper implementation that does nothing.
func NopLogWrapper(ctx context.Context, msg string) {}

// ZapLogWrapper wraps a zap sugared logger into a LogWrapper,
// logging at warn level.
func ZapLogWrapper(logger *zap.SugaredLogger) LogWrapper {
	if logger == nil {
		return NopLogWrapper
	}
	return func(_ context.Context, msg string) {
		logger.Warn(msg)
	}
}

// TestLogWrapper is a LogWrapper that can be used in test codes.
//
// It fails the test when called.
func TestLogWrapper(tb testing.TB) LogWrapper {
	return func(_ context.Context, msg string) {
		tb.Errorf("logger called with msg: %q", msg)
	}
}
