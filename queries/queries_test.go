package queries_test

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
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/queries"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/retry"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/testutils/inject"
)

func acquireTest(t *testing.T, client *inject.Client) *connection.Connection {
	t.Helper()
	target := "qry-" + t.Name()
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

func TestPoseRetriesTransientFaults(t *testing.T) {
	var attempts int64
	client := &inject.Client{
		GetRobotPoseFunc: func(ctx context.Context) (api.Pose, error) {
			if atomic.AddInt64(&attempts, 1) < 2 {
				return api.Pose{}, status.Error(codes.Unavailable, "down")
			}
			return api.Pose{X: 3.5, Y: -1, Theta: 1.57}, nil
		},
	}
	q := queries.New(acquireTest(t, client),
		queries.WithRetryOptions(retry.Options{MaxAttempts: 3, BaseDelay: time.Millisecond}),
	)

	pose, err := q.Pose(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pose.X, test.ShouldEqual, 3.5)
	test.That(t, atomic.LoadInt64(&attempts), test.ShouldEqual, 2)
}

func TestStatusAggregates(t *testing.T) {
	client := &inject.Client{
		GetRobotSerialNumberFunc: func(ctx context.Context) (string, error) {
			return "KACHAKA-001", nil
		},
		GetRobotVersionFunc: func(ctx context.Context) (string, error) {
			return "3.2.1", nil
		},
		GetRobotPoseFunc: func(ctx context.Context) (api.Pose, error) {
			return api.Pose{X: 1}, nil
		},
		GetBatteryInfoFunc: func(ctx context.Context) (api.BatteryInfo, error) {
			return api.BatteryInfo{Percent: 64, PowerStatus: api.PowerSupplyStatusCharging}, nil
		},
		IsCommandRunningFunc: func(ctx context.Context) (bool, error) {
			return true, nil
		},
		GetMovingShelfIDFunc: func(ctx context.Context) (string, error) {
			return "S01", nil
		},
	}
	q := queries.New(acquireTest(t, client))

	view, err := q.Status(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, view.Serial, test.ShouldEqual, "KACHAKA-001")
	test.That(t, view.Version, test.ShouldEqual, "3.2.1")
	test.That(t, view.Pose.X, test.ShouldEqual, 1)
	test.That(t, view.Battery.Percent, test.ShouldEqual, 64)
	test.That(t, view.CommandRunning, test.ShouldBeTrue)
	test.That(t, view.MovingShelfID, test.ShouldEqual, "S01")
}

func TestCameraImageSelectsCamera(t *testing.T) {
	client := &inject.Client{
		GetFrontCameraRosCompressedImageFunc: func(ctx context.Context) (api.RosCompressedImage, error) {
			return api.RosCompressedImage{Format: "jpeg", Data: []byte("front")}, nil
		},
		GetBackCameraRosCompressedImageFunc: func(ctx context.Context) (api.RosCompressedImage, error) {
			return api.RosCompressedImage{Format: "jpeg", Data: []byte("back")}, nil
		},
	}
	q := queries.New(acquireTest(t, client))

	img, err := q.CameraImage(context.Background(), api.CameraFront)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(img.Data), test.ShouldEqual, "front")

	img, err = q.CameraImage(context.Background(), api.CameraBack)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(img.Data), test.ShouldEqual, "back")
}

func TestActiveErrorsAndDefinitions(t *testing.T) {
	client := &inject.Client{
		GetActiveErrorsFunc: func(ctx context.Context) ([]int, error) {
			return []int{42, 7}, nil
		},
		GetRobotErrorCodeFunc: func(ctx context.Context) (map[int]api.ErrorDefinition, error) {
			return map[int]api.ErrorDefinition{42: {Code: 42, TitleEn: "Wheel stuck"}}, nil
		},
	}
	q := queries.New(acquireTest(t, client))

	active, err := q.ActiveErrors(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, active, test.ShouldResemble, []int{42, 7})

	defs, err := q.ErrorDefinitions(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, defs[42].TitleEn, test.ShouldEqual, "Wheel stuck")
}

func TestPermanentFaultNotRetried(t *testing.T) {
	var attempts int64
	client := &inject.Client{
		GetSpeakerVolumeFunc: func(ctx context.Context) (int, error) {
			atomic.AddInt64(&attempts, 1)
			return 0, status.Error(codes.PermissionDenied, "nope")
		},
	}
	q := queries.New(acquireTest(t, client))

	_, err := q.SpeakerVolume(context.Background())
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, atomic.LoadInt64(&attempts), test.ShouldEqual, 1)
}
