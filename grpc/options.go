package grpc

import (
	"time"

	googlegrpc "google.golang.org/grpc"
)

type dialOptions struct {
	defaultTimeout    time.Duration
	unaryInterceptors []googlegrpc.UnaryClientInterceptor
}

// DialOption configures how we set up the connection.
type DialOption interface {
	apply(*dialOptions)
}

type funcDialOption struct {
	f func(*dialOptions)
}

func (fdo *funcDialOption) apply(do *dialOptions) {
	fdo.f(do)
}

func newFuncDialOption(f func(*dialOptions)) *funcDialOption {
	return &funcDialOption{f: f}
}

// WithDefaultTimeout sets the per-call timeout injected when the caller's
// context has no deadline.
func WithDefaultTimeout(timeout time.Duration) DialOption {
	return newFuncDialOption(func(do *dialOptions) {
		do.defaultTimeout = timeout
	})
}

// WithUnaryClientInterceptor appends an interceptor after the deadline
// injector.
func WithUnaryClientInterceptor(interceptor googlegrpc.UnaryClientInterceptor) DialOption {
	return newFuncDialOption(func(do *dialOptions) {
		do.unaryInterceptors = append(do.unaryInterceptors, interceptor)
	})
}
