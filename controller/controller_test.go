package controller_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/test"
	"go.viam.com/utils/testutils"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/controller"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/testutils/inject"
)

func reachableClient() *inject.Client {
	return &inject.Client{
		GetRobotSerialNumberFunc: func(ctx context.Context) (string, error) {
			return "KACHAKA-001", nil
		},
		GetRobotVersionFunc: func(ctx context.Context) (string, error) {
			return "3.2.1", nil
		},
		GetRobotPoseFunc: func(ctx context.Context) (api.Pose, error) {
			return api.Pose{X: 1, Y: 2, Theta: 0.5}, nil
		},
	}
}

func acquireTest(t *testing.T, client *inject.Client) *connection.Connection {
	t.Helper()
	target := "ctl-" + t.Name()
	conn := connection.Acquire(target,
		connection.WithAPIClient(client),
		connection.WithTimeout(100*time.Millisecond),
		connection.WithLogger(golog.NewTestLogger(t)),
	)
	t.Cleanup(func() {
		test.That(t, connection.Remove(target), test.ShouldBeNil)
	})
	return conn
}

func fastConfig() controller.Config {
	return controller.Config{
		FastInterval:   5 * time.Millisecond,
		SlowInterval:   20 * time.Millisecond,
		PollInterval:   5 * time.Millisecond,
		RetryDelay:     5 * time.Millisecond,
		HealthInterval: 5 * time.Millisecond,
		CommandTimeout: 2 * time.Second,
	}
}

func newTestController(t *testing.T, client *inject.Client) *controller.Controller {
	t.Helper()
	return controller.NewController(
		acquireTest(t, client),
		fastConfig(),
		controller.WithLogger(golog.NewTestLogger(t)),
	)
}

func TestExecuteSuccess(t *testing.T) {
	client := reachableClient()
	var statePolls int64
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		test.That(t, opts.CancelAll, test.ShouldBeTrue)
		return api.Result{Success: true}, "cmd-1", nil
	}
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) < 4 {
			return api.CommandStateRunning, "cmd-1", nil
		}
		return api.CommandStateUnspecified, "", nil
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}

	ctl := newTestController(t, client)
	result := ctl.MoveToPose(context.Background(), 1, 2, 0.5, time.Second)

	test.That(t, result.OK, test.ShouldBeTrue)
	test.That(t, result.Action, test.ShouldEqual, "move_to_pose")
	test.That(t, result.Error, test.ShouldBeEmpty)
	test.That(t, result.Elapsed, test.ShouldBeGreaterThan, 0.0)

	metrics := ctl.Metrics()
	test.That(t, metrics.CommandsStarted, test.ShouldEqual, 1)
	test.That(t, metrics.CommandsSucceeded, test.ShouldEqual, 1)
	test.That(t, metrics.Polls, test.ShouldBeGreaterThan, 0)
	test.That(t, metrics.PollSuccesses, test.ShouldEqual, metrics.Polls)
	test.That(t, metrics.PollFailures, test.ShouldEqual, 0)
	test.That(t, len(metrics.PollRTTs), test.ShouldEqual, metrics.Polls)
}

func TestExecuteStartRejected(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: false, ErrorCode: 42}, "", nil
	}
	client.GetRobotErrorCodeFunc = func(ctx context.Context) (map[int]api.ErrorDefinition, error) {
		return map[int]api.ErrorDefinition{
			42: {Code: 42, Title: "車輪が動きません", TitleEn: "Wheel stuck"},
		}, nil
	}

	ctl := newTestController(t, client)
	result := ctl.ReturnHome(context.Background(), time.Second)

	test.That(t, result.OK, test.ShouldBeFalse)
	test.That(t, result.ErrorCode, test.ShouldEqual, 42)
	test.That(t, result.Error, test.ShouldEqual, "error_code=42: Wheel stuck")
	test.That(t, ctl.Metrics().CommandsFailed, test.ShouldEqual, 1)
}

func TestExecuteDisconnectedGate(t *testing.T) {
	client := reachableClient()
	client.GetRobotSerialNumberFunc = func(ctx context.Context) (string, error) {
		return "", errors.New("no route to host")
	}
	var started int64
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		atomic.AddInt64(&started, 1)
		return api.Result{Success: true}, "cmd-1", nil
	}

	conn := acquireTest(t, client)
	conn.StartMonitoring(5 * time.Millisecond)
	defer conn.StopMonitoring()
	test.That(t, conn.WaitForState(connection.Disconnected, time.Second), test.ShouldBeTrue)

	ctl := controller.NewController(conn, fastConfig(), controller.WithLogger(golog.NewTestLogger(t)))
	result := ctl.ReturnHome(context.Background(), 100*time.Millisecond)

	test.That(t, result.OK, test.ShouldBeFalse)
	test.That(t, result.Error, test.ShouldEqual, controller.ErrDisconnected)
	test.That(t, atomic.LoadInt64(&started), test.ShouldEqual, 0)
	test.That(t, ctl.Metrics().CommandsStarted, test.ShouldEqual, 0)
}

func TestExecuteWaitsOutDisconnect(t *testing.T) {
	var healthy atomic.Bool
	client := reachableClient()
	client.GetRobotSerialNumberFunc = func(ctx context.Context) (string, error) {
		if !healthy.Load() {
			return "", errors.New("no route to host")
		}
		return "KACHAKA-001", nil
	}
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) < 3 {
			return api.CommandStateRunning, "cmd-1", nil
		}
		return api.CommandStateUnspecified, "", nil
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}

	conn := acquireTest(t, client)
	conn.StartMonitoring(5 * time.Millisecond)
	defer conn.StopMonitoring()
	test.That(t, conn.WaitForState(connection.Disconnected, time.Second), test.ShouldBeTrue)

	// The robot comes back while the command budget is still live; the gate
	// waits it out instead of refusing.
	go func() {
		time.Sleep(50 * time.Millisecond)
		healthy.Store(true)
	}()

	ctl := controller.NewController(conn, fastConfig(), controller.WithLogger(golog.NewTestLogger(t)))
	result := ctl.ReturnHome(context.Background(), 2*time.Second)

	test.That(t, result.OK, test.ShouldBeTrue)
	test.That(t, ctl.Metrics().CommandsStarted, test.ShouldEqual, 1)
	test.That(t, ctl.Metrics().CommandsSucceeded, test.ShouldEqual, 1)
}

func TestExecuteStaleResultRecovery(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-2", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) < 3 {
			return api.CommandStateRunning, "cmd-2", nil
		}
		return api.CommandStateUnspecified, "cmd-2", nil
	}
	var resultFetches int64
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		if atomic.AddInt64(&resultFetches, 1) < 3 {
			return api.Result{Success: false, ErrorCode: 9}, "cmd-1", nil
		}
		return api.Result{Success: true}, "cmd-2", nil
	}

	ctl := newTestController(t, client)
	result := ctl.DockShelf(context.Background(), time.Second)

	test.That(t, result.OK, test.ShouldBeTrue)
	test.That(t, atomic.LoadInt64(&resultFetches), test.ShouldBeGreaterThanOrEqualTo, 3)
}

func TestExecuteDisplacedCommand(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) == 1 {
			return api.CommandStateRunning, "cmd-1", nil
		}
		// Another caller's command displaced ours.
		return api.CommandStateRunning, "cmd-9", nil
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: false, ErrorCode: 13}, "cmd-1", nil
	}
	client.GetRobotErrorCodeFunc = func(ctx context.Context) (map[int]api.ErrorDefinition, error) {
		return map[int]api.ErrorDefinition{13: {Code: 13, TitleEn: "Command preempted"}}, nil
	}

	ctl := newTestController(t, client)
	result := ctl.ReturnHome(context.Background(), time.Second)

	test.That(t, result.OK, test.ShouldBeFalse)
	test.That(t, result.ErrorCode, test.ShouldEqual, 13)
	test.That(t, result.Error, test.ShouldEqual, "error_code=13: Command preempted")
}

func TestExecuteTimeout(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		return api.CommandStateRunning, "cmd-1", nil
	}

	ctl := newTestController(t, client)
	result := ctl.ReturnHome(context.Background(), 100*time.Millisecond)

	test.That(t, result.OK, test.ShouldBeFalse)
	test.That(t, result.Error, test.ShouldEqual, controller.ErrTimeout)
	test.That(t, result.Timeout, test.ShouldEqual, 0.1)
	test.That(t, ctl.Metrics().CommandsTimedOut, test.ShouldEqual, 1)
}

func TestMoveShelfDropDetection(t *testing.T) {
	client := reachableClient()
	client.GetShelvesFunc = func(ctx context.Context) ([]api.Shelf, error) {
		return []api.Shelf{{ID: "S01", Name: "pantry shelf"}}, nil
	}
	client.GetLocationsFunc = func(ctx context.Context) ([]api.Location, error) {
		return []api.Location{{ID: "L01", Name: "kitchen"}}, nil
	}
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		move, ok := cmd.(api.MoveShelf)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, move.TargetShelfID, test.ShouldEqual, "S01")
		test.That(t, move.DestinationLocationID, test.ShouldEqual, "L01")
		return api.Result{Success: true}, "cmd-1", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) < 6 {
			return api.CommandStateRunning, "cmd-1", nil
		}
		return api.CommandStateUnspecified, "", nil
	}
	client.GetMovingShelfIDFunc = func(ctx context.Context) (string, error) {
		// The shelf vanishes mid-transit.
		return "", nil
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: false, ErrorCode: 21}, "cmd-1", nil
	}
	client.GetRobotErrorCodeFunc = func(ctx context.Context) (map[int]api.ErrorDefinition, error) {
		return map[int]api.ErrorDefinition{21: {Code: 21, TitleEn: "Lost shelf"}}, nil
	}

	var droppedMu sync.Mutex
	var dropped []string
	conn := acquireTest(t, client)
	ctl := controller.NewController(conn, fastConfig(),
		controller.WithLogger(golog.NewTestLogger(t)),
		controller.WithShelfDropHandler(func(shelfID string) {
			droppedMu.Lock()
			dropped = append(dropped, shelfID)
			droppedMu.Unlock()
		}),
	)

	result := ctl.MoveShelf(context.Background(), "pantry shelf", "kitchen", time.Second)
	test.That(t, result.OK, test.ShouldBeFalse)
	test.That(t, result.Error, test.ShouldEqual, "error_code=21: Lost shelf")

	// The handler fired exactly once even though every poll saw no shelf.
	droppedMu.Lock()
	test.That(t, dropped, test.ShouldResemble, []string{"S01"})
	droppedMu.Unlock()

	// The drop is latched in the state until explicitly reset.
	test.That(t, ctl.State().ShelfDropped, test.ShouldBeTrue)
	ctl.ResetShelfMonitor()
	test.That(t, ctl.State().ShelfDropped, test.ShouldBeFalse)
}

func TestPollFailuresCounted(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		switch atomic.AddInt64(&statePolls, 1) {
		case 1:
			return api.CommandStateRunning, "cmd-1", nil
		case 2:
			return api.CommandStateUnspecified, "", errors.New("poll glitch")
		default:
			return api.CommandStateUnspecified, "", nil
		}
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}

	ctl := newTestController(t, client)
	result := ctl.ReturnHome(context.Background(), time.Second)
	test.That(t, result.OK, test.ShouldBeTrue)

	metrics := ctl.Metrics()
	test.That(t, metrics.PollFailures, test.ShouldBeGreaterThanOrEqualTo, 1)
	test.That(t, metrics.PollSuccesses, test.ShouldBeGreaterThanOrEqualTo, 1)
	test.That(t, metrics.Polls, test.ShouldEqual, metrics.PollSuccesses+metrics.PollFailures)
}

func TestResetMetrics(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) < 3 {
			return api.CommandStateRunning, "cmd-1", nil
		}
		return api.CommandStateUnspecified, "", nil
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}

	ctl := newTestController(t, client)
	ctl.ReturnHome(context.Background(), time.Second)

	metrics := ctl.Metrics()
	test.That(t, metrics.CommandsStarted, test.ShouldEqual, 1)
	test.That(t, metrics.Polls, test.ShouldBeGreaterThan, 0)

	ctl.ResetMetrics()
	test.That(t, ctl.Metrics(), test.ShouldResemble, controller.Metrics{})
}

func TestRegistrationWaitsForActiveState(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	// The robot briefly reports our id with a stale terminal state before the
	// command actually starts running.
	var sawRunning atomic.Bool
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		switch atomic.AddInt64(&statePolls, 1) {
		case 1, 2:
			return api.CommandStateUnspecified, "cmd-1", nil
		case 3, 4:
			sawRunning.Store(true)
			return api.CommandStateRunning, "cmd-1", nil
		default:
			return api.CommandStateUnspecified, "", nil
		}
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		// The executor must not conclude before the command was seen running.
		test.That(t, sawRunning.Load(), test.ShouldBeTrue)
		return api.Result{Success: true}, "cmd-1", nil
	}

	ctl := newTestController(t, client)
	result := ctl.ReturnHome(context.Background(), 2*time.Second)
	test.That(t, result.OK, test.ShouldBeTrue)
}

func TestStateTracksConnection(t *testing.T) {
	ctl := newTestController(t, reachableClient())

	// A fresh controller inherits the connection's presumed-healthy state.
	test.That(t, ctl.State().ConnectionState, test.ShouldEqual, connection.Connected)

	ctl.ConnectionStateChanged(connection.Disconnected)
	test.That(t, ctl.State().ConnectionState, test.ShouldEqual, connection.Disconnected)

	ctl.ConnectionStateChanged(connection.Connected)
	test.That(t, ctl.State().ConnectionState, test.ShouldEqual, connection.Connected)
}

func TestMetricsSnapshotIndependence(t *testing.T) {
	client := reachableClient()
	client.StartCommandFunc = func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}
	var statePolls int64
	client.GetCommandStateFunc = func(ctx context.Context) (api.CommandState, string, error) {
		if atomic.AddInt64(&statePolls, 1) < 3 {
			return api.CommandStateRunning, "cmd-1", nil
		}
		return api.CommandStateUnspecified, "cmd-1", nil
	}
	client.GetLastCommandResultFunc = func(ctx context.Context) (api.Result, string, error) {
		return api.Result{Success: true}, "cmd-1", nil
	}

	ctl := newTestController(t, client)
	ctl.ReturnHome(context.Background(), time.Second)

	first := ctl.Metrics()
	test.That(t, len(first.PollRTTs), test.ShouldBeGreaterThan, 0)
	first.PollRTTs[0] = -1

	second := ctl.Metrics()
	test.That(t, second.PollRTTs[0], test.ShouldBeGreaterThanOrEqualTo, 0.0)
}

func TestConnectionStateChanged(t *testing.T) {
	client := reachableClient()
	clk := clock.NewMock()
	clk.Set(time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC))

	ctl := controller.NewController(
		acquireTest(t, client),
		fastConfig(),
		controller.WithLogger(golog.NewTestLogger(t)),
		controller.WithClock(clk),
	)

	ctl.ConnectionStateChanged(connection.Disconnected)
	test.That(t, ctl.State().DisconnectedAt.Equal(clk.Now()), test.ShouldBeTrue)

	clk.Add(time.Minute)
	ctl.ConnectionStateChanged(connection.Connected)
	test.That(t, ctl.State().LastReconnectAt.Equal(clk.Now()), test.ShouldBeTrue)

	// Identity refresh runs off the listener thread.
	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		state := ctl.State()
		test.That(tb, state.Serial, test.ShouldEqual, "KACHAKA-001")
		test.That(tb, state.Version, test.ShouldEqual, "3.2.1")
	})
}

func TestSamplerFieldIsolation(t *testing.T) {
	client := reachableClient()
	client.GetRobotPoseFunc = func(ctx context.Context) (api.Pose, error) {
		return api.Pose{}, errors.New("lidar glitch")
	}
	client.IsCommandRunningFunc = func(ctx context.Context) (bool, error) {
		return true, nil
	}
	client.GetMovingShelfIDFunc = func(ctx context.Context) (string, error) {
		return "S01", nil
	}
	client.GetBatteryInfoFunc = func(ctx context.Context) (api.BatteryInfo, error) {
		return api.BatteryInfo{Percent: 87, PowerStatus: api.PowerSupplyStatusDischarging}, nil
	}

	ctl := newTestController(t, client)
	ctl.Start()
	defer ctl.Stop()

	testutils.WaitForAssertion(t, func(tb testing.TB) {
		tb.Helper()
		state := ctl.State()
		test.That(tb, state.CommandRunning, test.ShouldBeTrue)
		test.That(tb, state.MovingShelfID, test.ShouldEqual, "S01")
		test.That(tb, state.Battery.Percent, test.ShouldEqual, 87)
		test.That(tb, state.UpdatedAt.IsZero(), test.ShouldBeFalse)
	})

	// The failing pose getter never blocked the rest.
	test.That(t, ctl.State().Pose, test.ShouldResemble, api.Pose{})
}
