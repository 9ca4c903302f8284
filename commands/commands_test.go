package commands_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"go.viam.com/test"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/commands"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/retry"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/testutils/inject"
)

func acquireTest(t *testing.T, client *inject.Client) *connection.Connection {
	t.Helper()
	target := "cmd-" + t.Name()
	conn := connection.Acquire(target,
		connection.WithAPIClient(client),
		connection.WithTimeout(250*time.Millisecond),
		connection.WithLogger(golog.NewTestLogger(t)),
	)
	t.Cleanup(func() {
		test.That(t, connection.Remove(target), test.ShouldBeNil)
	})
	return conn
}

func TestSetVelocityClamps(t *testing.T) {
	var gotLinear, gotAngular float64
	client := &inject.Client{
		SetRobotVelocityFunc: func(ctx context.Context, linear, angular float64) (api.Result, error) {
			gotLinear, gotAngular = linear, angular
			return api.Result{Success: true}, nil
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	result, err := c.SetVelocity(context.Background(), 5.0, -100.0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Success, test.ShouldBeTrue)
	test.That(t, gotLinear, test.ShouldEqual, 0.3)
	test.That(t, gotAngular, test.ShouldEqual, -1.57)

	_, err = c.SetVelocity(context.Background(), -0.1, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gotLinear, test.ShouldEqual, -0.1)
	test.That(t, gotAngular, test.ShouldEqual, 0.5)
}

func TestSetSpeakerVolumeClamps(t *testing.T) {
	var gotVolume int
	client := &inject.Client{
		StartCommandFunc: func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
			gotVolume = cmd.(api.SetSpeakerVolume).Volume
			return api.Result{Success: true}, "cmd-1", nil
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	_, _, err := c.SetSpeakerVolume(context.Background(), 99)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gotVolume, test.ShouldEqual, 10)

	_, _, err = c.SetSpeakerVolume(context.Background(), -3)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, gotVolume, test.ShouldEqual, 0)
}

func TestMoveShelfResolvesNames(t *testing.T) {
	client := &inject.Client{
		GetShelvesFunc: func(ctx context.Context) ([]api.Shelf, error) {
			return []api.Shelf{{ID: "S01", Name: "pantry shelf"}}, nil
		},
		GetLocationsFunc: func(ctx context.Context) ([]api.Location, error) {
			return []api.Location{{ID: "L01", Name: "kitchen"}}, nil
		},
		StartCommandFunc: func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
			move := cmd.(api.MoveShelf)
			test.That(t, move.TargetShelfID, test.ShouldEqual, "S01")
			test.That(t, move.DestinationLocationID, test.ShouldEqual, "L01")
			return api.Result{Success: true}, "cmd-1", nil
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	result, commandID, err := c.MoveShelf(context.Background(), "pantry shelf", "kitchen")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Success, test.ShouldBeTrue)
	test.That(t, commandID, test.ShouldEqual, "cmd-1")
}

func TestStartRetriesTransientFaults(t *testing.T) {
	var attempts int64
	client := &inject.Client{
		StartCommandFunc: func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
			if atomic.AddInt64(&attempts, 1) < 3 {
				return api.Result{}, "", status.Error(codes.Unavailable, "down")
			}
			return api.Result{Success: true}, "cmd-1", nil
		},
	}
	c := commands.New(acquireTest(t, client),
		commands.WithLogger(golog.NewTestLogger(t)),
		commands.WithRetryOptions(retry.Options{MaxAttempts: 3, BaseDelay: time.Millisecond}),
	)

	result, _, err := c.ReturnHome(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Success, test.ShouldBeTrue)
	test.That(t, atomic.LoadInt64(&attempts), test.ShouldEqual, 3)
}

func TestEmergencyStopNeverRetriesAndReturnsFast(t *testing.T) {
	var attempts int64
	client := &inject.Client{
		SetRobotStopFunc: func(ctx context.Context) (api.Result, error) {
			atomic.AddInt64(&attempts, 1)
			// Simulate an unroutable robot: block until the deadline.
			<-ctx.Done()
			return api.Result{}, ctx.Err()
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	start := time.Now()
	_, err := c.EmergencyStop(context.Background())
	elapsed := time.Since(start)

	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, atomic.LoadInt64(&attempts), test.ShouldEqual, 1)
	test.That(t, elapsed, test.ShouldBeLessThan, time.Second)
}

func TestPollUntilComplete(t *testing.T) {
	var polls int64
	client := &inject.Client{
		IsCommandRunningFunc: func(ctx context.Context) (bool, error) {
			return atomic.AddInt64(&polls, 1) < 3, nil
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	err := c.PollUntilComplete(context.Background(), time.Second, time.Millisecond)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, atomic.LoadInt64(&polls), test.ShouldEqual, 3)
}

func TestPollUntilCompleteTimesOut(t *testing.T) {
	client := &inject.Client{
		IsCommandRunningFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	err := c.PollUntilComplete(context.Background(), 20*time.Millisecond, time.Millisecond)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "still running")
}

func TestResetShelfPose(t *testing.T) {
	client := &inject.Client{
		GetShelvesFunc: func(ctx context.Context) ([]api.Shelf, error) {
			return []api.Shelf{{ID: "S01", Name: "pantry shelf"}}, nil
		},
		GetLocationsFunc: func(ctx context.Context) ([]api.Location, error) {
			return nil, nil
		},
		ResetShelfPoseFunc: func(ctx context.Context, shelfID string) (api.Result, error) {
			test.That(t, shelfID, test.ShouldEqual, "S01")
			return api.Result{Success: true}, nil
		},
	}
	c := commands.New(acquireTest(t, client), commands.WithLogger(golog.NewTestLogger(t)))

	result, err := c.ResetShelfPose(context.Background(), "pantry shelf")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, result.Success, test.ShouldBeTrue)
}
