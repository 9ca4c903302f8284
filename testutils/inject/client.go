// Package inject provides injectable fakes for testing: an api.Client whose
// behavior is a set of function fields, and an Annotator counterpart.
package inject

import (
	"context"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
)

// Client is an injectable api.Client. Set the function fields a test cares
// about; unset fields fall through to the embedded Client, panicking with a
// nil embed as real inject fakes do.
type Client struct {
	api.Client
	GetRobotSerialNumberFunc             func(ctx context.Context) (string, error)
	GetRobotVersionFunc                  func(ctx context.Context) (string, error)
	GetRobotPoseFunc                     func(ctx context.Context) (api.Pose, error)
	GetBatteryInfoFunc                   func(ctx context.Context) (api.BatteryInfo, error)
	GetShelvesFunc                       func(ctx context.Context) ([]api.Shelf, error)
	GetLocationsFunc                     func(ctx context.Context) ([]api.Location, error)
	GetMapListFunc                       func(ctx context.Context) ([]api.MapInfo, error)
	GetCurrentMapIDFunc                  func(ctx context.Context) (string, error)
	GetShortcutsFunc                     func(ctx context.Context) ([]api.Shortcut, error)
	StartCommandFunc                     func(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error)
	GetCommandStateFunc                  func(ctx context.Context) (api.CommandState, string, error)
	GetLastCommandResultFunc             func(ctx context.Context) (api.Result, string, error)
	IsCommandRunningFunc                 func(ctx context.Context) (bool, error)
	CancelCommandFunc                    func(ctx context.Context) (api.Result, error)
	ProceedFunc                          func(ctx context.Context) (api.Result, error)
	GetHistoryListFunc                   func(ctx context.Context) ([]api.HistoryEntry, error)
	GetMovingShelfIDFunc                 func(ctx context.Context) (string, error)
	ResetShelfPoseFunc                   func(ctx context.Context, shelfID string) (api.Result, error)
	GetRobotErrorCodeFunc                func(ctx context.Context) (map[int]api.ErrorDefinition, error)
	GetActiveErrorsFunc                  func(ctx context.Context) ([]int, error)
	GetFrontCameraRosCompressedImageFunc func(ctx context.Context) (api.RosCompressedImage, error)
	GetBackCameraRosCompressedImageFunc  func(ctx context.Context) (api.RosCompressedImage, error)
	GetObjectDetectionFunc               func(ctx context.Context) ([]api.ObjectDetection, error)
	GetPngMapFunc                        func(ctx context.Context) (api.PngMap, error)
	GetSpeakerVolumeFunc                 func(ctx context.Context) (int, error)
	SetManualControlEnabledFunc          func(ctx context.Context, enable bool) (api.Result, error)
	SetRobotVelocityFunc                 func(ctx context.Context, linear, angular float64) (api.Result, error)
	SetRobotStopFunc                     func(ctx context.Context) (api.Result, error)
}

// GetRobotSerialNumber calls the injected func or the embedded Client.
func (c *Client) GetRobotSerialNumber(ctx context.Context) (string, error) {
	if c.GetRobotSerialNumberFunc == nil {
		return c.Client.GetRobotSerialNumber(ctx)
	}
	return c.GetRobotSerialNumberFunc(ctx)
}

// GetRobotVersion calls the injected func or the embedded Client.
func (c *Client) GetRobotVersion(ctx context.Context) (string, error) {
	if c.GetRobotVersionFunc == nil {
		return c.Client.GetRobotVersion(ctx)
	}
	return c.GetRobotVersionFunc(ctx)
}

// GetRobotPose calls the injected func or the embedded Client.
func (c *Client) GetRobotPose(ctx context.Context) (api.Pose, error) {
	if c.GetRobotPoseFunc == nil {
		return c.Client.GetRobotPose(ctx)
	}
	return c.GetRobotPoseFunc(ctx)
}

// GetBatteryInfo calls the injected func or the embedded Client.
func (c *Client) GetBatteryInfo(ctx context.Context) (api.BatteryInfo, error) {
	if c.GetBatteryInfoFunc == nil {
		return c.Client.GetBatteryInfo(ctx)
	}
	return c.GetBatteryInfoFunc(ctx)
}

// GetShelves calls the injected func or the embedded Client.
func (c *Client) GetShelves(ctx context.Context) ([]api.Shelf, error) {
	if c.GetShelvesFunc == nil {
		return c.Client.GetShelves(ctx)
	}
	return c.GetShelvesFunc(ctx)
}

// GetLocations calls the injected func or the embedded Client.
func (c *Client) GetLocations(ctx context.Context) ([]api.Location, error) {
	if c.GetLocationsFunc == nil {
		return c.Client.GetLocations(ctx)
	}
	return c.GetLocationsFunc(ctx)
}

// GetMapList calls the injected func or the embedded Client.
func (c *Client) GetMapList(ctx context.Context) ([]api.MapInfo, error) {
	if c.GetMapListFunc == nil {
		return c.Client.GetMapList(ctx)
	}
	return c.GetMapListFunc(ctx)
}

// GetCurrentMapID calls the injected func or the embedded Client.
func (c *Client) GetCurrentMapID(ctx context.Context) (string, error) {
	if c.GetCurrentMapIDFunc == nil {
		return c.Client.GetCurrentMapID(ctx)
	}
	return c.GetCurrentMapIDFunc(ctx)
}

// GetShortcuts calls the injected func or the embedded Client.
func (c *Client) GetShortcuts(ctx context.Context) ([]api.Shortcut, error) {
	if c.GetShortcutsFunc == nil {
		return c.Client.GetShortcuts(ctx)
	}
	return c.GetShortcutsFunc(ctx)
}

// StartCommand calls the injected func or the embedded Client.
func (c *Client) StartCommand(ctx context.Context, cmd api.Command, opts api.CommandOptions) (api.Result, string, error) {
	if c.StartCommandFunc == nil {
		return c.Client.StartCommand(ctx, cmd, opts)
	}
	return c.StartCommandFunc(ctx, cmd, opts)
}

// GetCommandState calls the injected func or the embedded Client.
func (c *Client) GetCommandState(ctx context.Context) (api.CommandState, string, error) {
	if c.GetCommandStateFunc == nil {
		return c.Client.GetCommandState(ctx)
	}
	return c.GetCommandStateFunc(ctx)
}

// GetLastCommandResult calls the injected func or the embedded Client.
func (c *Client) GetLastCommandResult(ctx context.Context) (api.Result, string, error) {
	if c.GetLastCommandResultFunc == nil {
		return c.Client.GetLastCommandResult(ctx)
	}
	return c.GetLastCommandResultFunc(ctx)
}

// IsCommandRunning calls the injected func or the embedded Client.
func (c *Client) IsCommandRunning(ctx context.Context) (bool, error) {
	if c.IsCommandRunningFunc == nil {
		return c.Client.IsCommandRunning(ctx)
	}
	return c.IsCommandRunningFunc(ctx)
}

// CancelCommand calls the injected func or the embedded Client.
func (c *Client) CancelCommand(ctx context.Context) (api.Result, error) {
	if c.CancelCommandFunc == nil {
		return c.Client.CancelCommand(ctx)
	}
	return c.CancelCommandFunc(ctx)
}

// Proceed calls the injected func or the embedded Client.
func (c *Client) Proceed(ctx context.Context) (api.Result, error) {
	if c.ProceedFunc == nil {
		return c.Client.Proceed(ctx)
	}
	return c.ProceedFunc(ctx)
}

// GetHistoryList calls the injected func or the embedded Client.
func (c *Client) GetHistoryList(ctx context.Context) ([]api.HistoryEntry, error) {
	if c.GetHistoryListFunc == nil {
		return c.Client.GetHistoryList(ctx)
	}
	return c.GetHistoryListFunc(ctx)
}

// GetMovingShelfID calls the injected func or the embedded Client.
func (c *Client) GetMovingShelfID(ctx context.Context) (string, error) {
	if c.GetMovingShelfIDFunc == nil {
		return c.Client.GetMovingShelfID(ctx)
	}
	return c.GetMovingShelfIDFunc(ctx)
}

// ResetShelfPose calls the injected func or the embedded Client.
func (c *Client) ResetShelfPose(ctx context.Context, shelfID string) (api.Result, error) {
	if c.ResetShelfPoseFunc == nil {
		return c.Client.ResetShelfPose(ctx, shelfID)
	}
	return c.ResetShelfPoseFunc(ctx, shelfID)
}

// GetRobotErrorCode calls the injected func or the embedded Client.
func (c *Client) GetRobotErrorCode(ctx context.Context) (map[int]api.ErrorDefinition, error) {
	if c.GetRobotErrorCodeFunc == nil {
		return c.Client.GetRobotErrorCode(ctx)
	}
	return c.GetRobotErrorCodeFunc(ctx)
}

// GetActiveErrors calls the injected func or the embedded Client.
func (c *Client) GetActiveErrors(ctx context.Context) ([]int, error) {
	if c.GetActiveErrorsFunc == nil {
		return c.Client.GetActiveErrors(ctx)
	}
	return c.GetActiveErrorsFunc(ctx)
}

// GetFrontCameraRosCompressedImage calls the injected func or the embedded Client.
func (c *Client) GetFrontCameraRosCompressedImage(ctx context.Context) (api.RosCompressedImage, error) {
	if c.GetFrontCameraRosCompressedImageFunc == nil {
		return c.Client.GetFrontCameraRosCompressedImage(ctx)
	}
	return c.GetFrontCameraRosCompressedImageFunc(ctx)
}

// GetBackCameraRosCompressedImage calls the injected func or the embedded Client.
func (c *Client) GetBackCameraRosCompressedImage(ctx context.Context) (api.RosCompressedImage, error) {
	if c.GetBackCameraRosCompressedImageFunc == nil {
		return c.Client.GetBackCameraRosCompressedImage(ctx)
	}
	return c.GetBackCameraRosCompressedImageFunc(ctx)
}

// GetObjectDetection calls the injected func or the embedded Client.
func (c *Client) GetObjectDetection(ctx context.Context) ([]api.ObjectDetection, error) {
	if c.GetObjectDetectionFunc == nil {
		return c.Client.GetObjectDetection(ctx)
	}
	return c.GetObjectDetectionFunc(ctx)
}

// GetPngMap calls the injected func or the embedded Client.
func (c *Client) GetPngMap(ctx context.Context) (api.PngMap, error) {
	if c.GetPngMapFunc == nil {
		return c.Client.GetPngMap(ctx)
	}
	return c.GetPngMapFunc(ctx)
}

// GetSpeakerVolume calls the injected func or the embedded Client.
func (c *Client) GetSpeakerVolume(ctx context.Context) (int, error) {
	if c.GetSpeakerVolumeFunc == nil {
		return c.Client.GetSpeakerVolume(ctx)
	}
	return c.GetSpeakerVolumeFunc(ctx)
}

// SetManualControlEnabled calls the injected func or the embedded Client.
func (c *Client) SetManualControlEnabled(ctx context.Context, enable bool) (api.Result, error) {
	if c.SetManualControlEnabledFunc == nil {
		return c.Client.SetManualControlEnabled(ctx, enable)
	}
	return c.SetManualControlEnabledFunc(ctx, enable)
}

// SetRobotVelocity calls the injected func or the embedded Client.
func (c *Client) SetRobotVelocity(ctx context.Context, linear, angular float64) (api.Result, error) {
	if c.SetRobotVelocityFunc == nil {
		return c.Client.SetRobotVelocity(ctx, linear, angular)
	}
	return c.SetRobotVelocityFunc(ctx, linear, angular)
}

// SetRobotStop calls the injected func or the embedded Client.
func (c *Client) SetRobotStop(ctx context.Context) (api.Result, error) {
	if c.SetRobotStopFunc == nil {
		return c.Client.SetRobotStop(ctx)
	}
	return c.SetRobotStopFunc(ctx)
}
