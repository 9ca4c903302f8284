package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"go.viam.com/test"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/retry"
)

func TestRetryable(t *testing.T) {
	test.That(t, retry.Retryable(nil), test.ShouldBeFalse)
	test.That(t, retry.Retryable(status.Error(codes.Unavailable, "down")), test.ShouldBeTrue)
	test.That(t, retry.Retryable(status.Error(codes.DeadlineExceeded, "slow")), test.ShouldBeTrue)
	test.That(t, retry.Retryable(status.Error(codes.ResourceExhausted, "busy")), test.ShouldBeTrue)
	test.That(t, retry.Retryable(status.Error(codes.InvalidArgument, "bad")), test.ShouldBeFalse)
	test.That(t, retry.Retryable(status.Error(codes.NotFound, "missing")), test.ShouldBeFalse)
	test.That(t, retry.Retryable(errors.New("not an rpc error")), test.ShouldBeFalse)
}

func TestDoCountModeExhaustion(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
	}, func(ctx context.Context) error {
		attempts++
		return status.Error(codes.Unavailable, "down")
	})
	test.That(t, attempts, test.ShouldEqual, 3)

	var exhausted *retry.ExhaustedError
	test.That(t, errors.As(err, &exhausted), test.ShouldBeTrue)
	test.That(t, exhausted.Attempts, test.ShouldEqual, 3)
	test.That(t, status.Code(exhausted.Last), test.ShouldEqual, codes.Unavailable)
}

func TestDoSucceedsAfterTransientFailures(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		MaxAttempts: 3,
		BaseDelay:   time.Millisecond,
	}, func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return status.Error(codes.Unavailable, "down")
		}
		return nil
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, attempts, test.ShouldEqual, 3)
}

func TestDoPermanentFaultReturnsImmediately(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
	}, func(ctx context.Context) error {
		attempts++
		return status.Error(codes.InvalidArgument, "bad request")
	})
	test.That(t, attempts, test.ShouldEqual, 1)
	test.That(t, status.Code(err), test.ShouldEqual, codes.InvalidArgument)
}

func TestDoNonRPCErrorReturnsImmediately(t *testing.T) {
	boom := errors.New("boom")
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		MaxAttempts: 5,
		BaseDelay:   time.Millisecond,
	}, func(ctx context.Context) error {
		attempts++
		return boom
	})
	test.That(t, attempts, test.ShouldEqual, 1)
	test.That(t, err, test.ShouldBeError, boom)
}

func TestDoDeadlineModeExpiredBudgetDoesNotAttempt(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		BaseDelay: time.Millisecond,
		Deadline:  time.Now().Add(-time.Second),
	}, func(ctx context.Context) error {
		attempts++
		return status.Error(codes.Unavailable, "down")
	})
	test.That(t, attempts, test.ShouldEqual, 0)

	var exhausted *retry.ExhaustedError
	test.That(t, errors.As(err, &exhausted), test.ShouldBeTrue)
	test.That(t, exhausted.Attempts, test.ShouldEqual, 0)
	test.That(t, errors.Is(exhausted.Last, context.DeadlineExceeded), test.ShouldBeTrue)
}

func TestDoDeadlineModeLiveBudgetAttempts(t *testing.T) {
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		BaseDelay: time.Millisecond,
		Deadline:  time.Now().Add(time.Second),
	}, func(ctx context.Context) error {
		attempts++
		return nil
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, attempts, test.ShouldEqual, 1)
}

func TestDoDeadlineModeStopsAtDeadline(t *testing.T) {
	start := time.Now()
	attempts := 0
	err := retry.Do(context.Background(), retry.Options{
		BaseDelay: 10 * time.Millisecond,
		MaxDelay:  10 * time.Millisecond,
		Deadline:  start.Add(60 * time.Millisecond),
	}, func(ctx context.Context) error {
		attempts++
		return status.Error(codes.Unavailable, "down")
	})
	elapsed := time.Since(start)

	var exhausted *retry.ExhaustedError
	test.That(t, errors.As(err, &exhausted), test.ShouldBeTrue)
	test.That(t, attempts, test.ShouldBeGreaterThanOrEqualTo, 2)
	test.That(t, elapsed, test.ShouldBeLessThan, time.Second)
}

func TestDoContextCancellationAbortsBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	errCh := make(chan error)
	go func() {
		errCh <- retry.Do(ctx, retry.Options{
			MaxAttempts: 100,
			BaseDelay:   time.Hour,
		}, func(ctx context.Context) error {
			attempts++
			return status.Error(codes.Unavailable, "down")
		})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	err := <-errCh
	test.That(t, err, test.ShouldBeError, context.Canceled)
	test.That(t, attempts, test.ShouldEqual, 1)
}
