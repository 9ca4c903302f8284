package grpc

import (
	"github.com/edaniels/golog"
	googlegrpc "google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Dial opens a client connection to the robot at the given "host:port"
// address. The transport is plaintext; robots expose the API on the local
// network only. The returned connection performs no I/O until the first RPC.
func Dial(address string, logger golog.Logger, opts ...DialOption) (*googlegrpc.ClientConn, error) {
	var dOpts dialOptions
	for _, opt := range opts {
		opt.apply(&dOpts)
	}
	timeout := dOpts.defaultTimeout
	if timeout <= 0 {
		timeout = DefaultMethodTimeout
	}

	logger.Debugw("dialing robot", "address", address, "default_timeout", timeout)

	interceptors := []googlegrpc.UnaryClientInterceptor{
		EnsureTimeoutUnaryClientInterceptor(timeout),
	}
	interceptors = append(interceptors, dOpts.unaryInterceptors...)

	return googlegrpc.NewClient(
		address,
		googlegrpc.WithTransportCredentials(insecure.NewCredentials()),
		googlegrpc.WithChainUnaryInterceptor(interceptors...),
	)
}
