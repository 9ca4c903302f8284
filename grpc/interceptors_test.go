package grpc_test

import (
	"context"
	"testing"
	"time"

	"go.viam.com/test"
	googlegrpc "google.golang.org/grpc"

	rpc "github.com/Sigma-Snaken/kachaka-sdk-toolkit/grpc"
)

func TestEnsureTimeoutInjectsDefault(t *testing.T) {
	interceptor := rpc.EnsureTimeoutUnaryClientInterceptor(5 * time.Second)

	var seenDeadline time.Time
	var hadDeadline bool
	invoker := func(ctx context.Context, method string, req, reply interface{},
		cc *googlegrpc.ClientConn, opts ...googlegrpc.CallOption,
	) error {
		seenDeadline, hadDeadline = ctx.Deadline()
		return nil
	}

	err := interceptor(context.Background(), "/kachaka_api.KachakaApi/GetRobotPose", nil, nil, nil, invoker)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, hadDeadline, test.ShouldBeTrue)

	remaining := time.Until(seenDeadline)
	test.That(t, remaining, test.ShouldBeGreaterThan, 4*time.Second)
	test.That(t, remaining, test.ShouldBeLessThanOrEqualTo, 5*time.Second)
}

func TestEnsureTimeoutKeepsCallerDeadline(t *testing.T) {
	interceptor := rpc.EnsureTimeoutUnaryClientInterceptor(5 * time.Second)

	callerCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	want, _ := callerCtx.Deadline()

	var seenDeadline time.Time
	invoker := func(ctx context.Context, method string, req, reply interface{},
		cc *googlegrpc.ClientConn, opts ...googlegrpc.CallOption,
	) error {
		seenDeadline, _ = ctx.Deadline()
		return nil
	}

	err := interceptor(callerCtx, "/kachaka_api.KachakaApi/GetRobotPose", nil, nil, nil, invoker)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, seenDeadline, test.ShouldEqual, want)
}
