// Package retry implements the retry policy shared by every RPC-facing layer:
// a small taxonomy of transient gRPC faults, exponential backoff between
// attempts, and two budget modes (a fixed attempt count or a wall-clock
// deadline).
package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.viam.com/utils"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Defaults applied when an Options field is zero.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
	DefaultMaxDelay    = 10 * time.Second
)

// Options bound one retry loop. A zero Deadline selects count mode: exactly
// MaxAttempts attempts. A non-zero Deadline selects deadline mode: attempts
// start only while the deadline has not passed, and a deadline already spent
// when Do is called buys no attempt at all.
type Options struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Deadline    time.Time
}

func (o Options) withDefaults() Options {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.BaseDelay <= 0 {
		o.BaseDelay = DefaultBaseDelay
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = DefaultMaxDelay
	}
	return o
}

// ExhaustedError reports that every attempt in the budget failed with a
// transient fault. Last is the error from the final attempt.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retry budget exhausted after %d attempts: %v", e.Attempts, e.Last)
}

// Unwrap exposes the final attempt's error.
func (e *ExhaustedError) Unwrap() error {
	return e.Last
}

// Retryable reports whether the error is a transient RPC fault worth another
// attempt. Only gRPC status errors with codes Unavailable, DeadlineExceeded,
// or ResourceExhausted qualify; everything else is permanent.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return true
	default:
		return false
	}
}

// Do runs fn under the retry policy. Permanent faults are returned
// immediately; an exhausted budget returns *ExhaustedError wrapping the last
// transient fault. Context cancellation aborts the loop between attempts.
func Do(ctx context.Context, opts Options, fn func(ctx context.Context) error) error {
	opts = opts.withDefaults()

	sched := backoff.NewExponentialBackOff()
	sched.InitialInterval = opts.BaseDelay
	sched.MaxInterval = opts.MaxDelay
	sched.Multiplier = 2
	sched.RandomizationFactor = 0
	sched.MaxElapsedTime = 0
	sched.Reset()

	deadlineMode := !opts.Deadline.IsZero()
	if deadlineMode && !time.Now().Before(opts.Deadline) {
		// An already-spent budget buys no attempt at all.
		return &ExhaustedError{Attempts: 0, Last: context.DeadlineExceeded}
	}

	var last error
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if !Retryable(err) {
			return err
		}
		last = err

		if deadlineMode {
			if !time.Now().Before(opts.Deadline) {
				return &ExhaustedError{Attempts: attempt, Last: last}
			}
		} else if attempt >= opts.MaxAttempts {
			return &ExhaustedError{Attempts: attempt, Last: last}
		}

		delay := sched.NextBackOff()
		if delay > opts.MaxDelay {
			delay = opts.MaxDelay
		}
		if deadlineMode {
			if remaining := time.Until(opts.Deadline); delay > remaining {
				delay = remaining
			}
		}
		if delay > 0 {
			if !utils.SelectContextOrWait(ctx, delay) {
				return ctx.Err()
			}
		}
	}
}
