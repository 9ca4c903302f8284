package api

import "context"

// Client binds the robot's unary RPC surface. The gRPC-backed implementation
// lives in the grpc package; tests substitute testutils/inject.Client.
//
// Every call is expected to respect the context deadline; the gRPC
// implementation additionally injects a per-connection default deadline when
// the caller sets none.
type Client interface {
	// Identity.
	GetRobotSerialNumber(ctx context.Context) (string, error)
	GetRobotVersion(ctx context.Context) (string, error)

	// Pose and battery.
	GetRobotPose(ctx context.Context) (Pose, error)
	GetBatteryInfo(ctx context.Context) (BatteryInfo, error)

	// Registered entities.
	GetShelves(ctx context.Context) ([]Shelf, error)
	GetLocations(ctx context.Context) ([]Location, error)
	GetMapList(ctx context.Context) ([]MapInfo, error)
	GetCurrentMapID(ctx context.Context) (string, error)
	GetShortcuts(ctx context.Context) ([]Shortcut, error)

	// Command lifecycle.
	StartCommand(ctx context.Context, cmd Command, opts CommandOptions) (Result, string, error)
	GetCommandState(ctx context.Context) (CommandState, string, error)
	GetLastCommandResult(ctx context.Context) (Result, string, error)
	IsCommandRunning(ctx context.Context) (bool, error)
	CancelCommand(ctx context.Context) (Result, error)
	Proceed(ctx context.Context) (Result, error)
	GetHistoryList(ctx context.Context) ([]HistoryEntry, error)

	// Shelf in transit.
	GetMovingShelfID(ctx context.Context) (string, error)
	ResetShelfPose(ctx context.Context, shelfID string) (Result, error)

	// Error catalog and active errors.
	GetRobotErrorCode(ctx context.Context) (map[int]ErrorDefinition, error)
	GetActiveErrors(ctx context.Context) ([]int, error)

	// Media.
	GetFrontCameraRosCompressedImage(ctx context.Context) (RosCompressedImage, error)
	GetBackCameraRosCompressedImage(ctx context.Context) (RosCompressedImage, error)
	GetObjectDetection(ctx context.Context) ([]ObjectDetection, error)
	GetPngMap(ctx context.Context) (PngMap, error)

	// Speaker.
	GetSpeakerVolume(ctx context.Context) (int, error)

	// Manual control.
	SetManualControlEnabled(ctx context.Context, enable bool) (Result, error)
	SetRobotVelocity(ctx context.Context, linear, angular float64) (Result, error)
	SetRobotStop(ctx context.Context) (Result, error)
}
