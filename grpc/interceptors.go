// Package grpc provides the dial path and interceptors for talking to a
// robot's unary gRPC surface, plus the api.Client implementation backed by it.
package grpc

import (
	"context"
	"time"

	googlegrpc "google.golang.org/grpc"
)

// DefaultMethodTimeout is the default context timeout for all outbound
// methods, only used when no deadline is set on the context.
var DefaultMethodTimeout = 5 * time.Second

// EnsureTimeoutUnaryClientInterceptor returns an interceptor that sets the
// given default timeout on the context if one is not already set. A caller
// deadline always wins. To be installed as the first unary client
// interceptor.
func EnsureTimeoutUnaryClientInterceptor(defaultTimeout time.Duration) googlegrpc.UnaryClientInterceptor {
	if defaultTimeout <= 0 {
		defaultTimeout = DefaultMethodTimeout
	}
	return func(
		ctx context.Context,
		method string, req, reply interface{},
		cc *googlegrpc.ClientConn,
		invoker googlegrpc.UnaryInvoker,
		opts ...googlegrpc.CallOption,
	) error {
		if _, deadlineSet := ctx.Deadline(); !deadlineSet {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
			defer cancel()
		}

		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
