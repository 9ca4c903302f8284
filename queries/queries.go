// Package queries is the read-only caller surface: every getter of the RPC
// surface wrapped in the count-mode retry policy.
package queries

import (
	"context"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/retry"
)

// Queries answers read requests against one robot.
type Queries struct {
	conn  *connection.Connection
	retry retry.Options
}

// Option configures Queries.
type Option func(*Queries)

// WithRetryOptions overrides the retry budget for every query.
func WithRetryOptions(opts retry.Options) Option {
	return func(q *Queries) { q.retry = opts }
}

// New returns a query surface over the connection.
func New(conn *connection.Connection, opts ...Option) *Queries {
	q := &Queries{conn: conn}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Status is the aggregate quick view of the robot.
type Status struct {
	Serial         string
	Version        string
	Pose           api.Pose
	Battery        api.BatteryInfo
	CommandRunning bool
	MovingShelfID  string
}

func (q *Queries) do(ctx context.Context, fn func(ctx context.Context, client api.Client) error) error {
	client, err := q.conn.Client(ctx)
	if err != nil {
		return err
	}
	return retry.Do(ctx, q.retry, func(ctx context.Context) error {
		return fn(ctx, client)
	})
}

// SerialNumber returns the robot's serial number.
func (q *Queries) SerialNumber(ctx context.Context) (string, error) {
	var out string
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetRobotSerialNumber(ctx)
		return err
	})
	return out, err
}

// Version returns the robot's software version.
func (q *Queries) Version(ctx context.Context) (string, error) {
	var out string
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetRobotVersion(ctx)
		return err
	})
	return out, err
}

// Pose returns the robot's current map pose.
func (q *Queries) Pose(ctx context.Context) (api.Pose, error) {
	var out api.Pose
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetRobotPose(ctx)
		return err
	})
	return out, err
}

// Battery returns the battery charge and power status.
func (q *Queries) Battery(ctx context.Context) (api.BatteryInfo, error) {
	var out api.BatteryInfo
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetBatteryInfo(ctx)
		return err
	})
	return out, err
}

// Status aggregates the quick getters into one view. Partial failure fails
// the whole query; callers wanting per-field tolerance use the controller's
// sampled state instead.
func (q *Queries) Status(ctx context.Context) (Status, error) {
	var out Status
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		if out.Serial, err = client.GetRobotSerialNumber(ctx); err != nil {
			return err
		}
		if out.Version, err = client.GetRobotVersion(ctx); err != nil {
			return err
		}
		if out.Pose, err = client.GetRobotPose(ctx); err != nil {
			return err
		}
		if out.Battery, err = client.GetBatteryInfo(ctx); err != nil {
			return err
		}
		if out.CommandRunning, err = client.IsCommandRunning(ctx); err != nil {
			return err
		}
		out.MovingShelfID, err = client.GetMovingShelfID(ctx)
		return err
	})
	return out, err
}

// Shelves returns the registered shelves.
func (q *Queries) Shelves(ctx context.Context) ([]api.Shelf, error) {
	var out []api.Shelf
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetShelves(ctx)
		return err
	})
	return out, err
}

// Locations returns the registered locations.
func (q *Queries) Locations(ctx context.Context) ([]api.Location, error) {
	var out []api.Location
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetLocations(ctx)
		return err
	})
	return out, err
}

// MovingShelf returns the id of the shelf in transit, empty when none.
func (q *Queries) MovingShelf(ctx context.Context) (string, error) {
	var out string
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetMovingShelfID(ctx)
		return err
	})
	return out, err
}

// CommandState returns the current command state and id.
func (q *Queries) CommandState(ctx context.Context) (api.CommandState, string, error) {
	var state api.CommandState
	var id string
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		state, id, err = client.GetCommandState(ctx)
		return err
	})
	return state, id, err
}

// LastCommandResult returns the result and id of the last finished command.
func (q *Queries) LastCommandResult(ctx context.Context) (api.Result, string, error) {
	var result api.Result
	var id string
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		result, id, err = client.GetLastCommandResult(ctx)
		return err
	})
	return result, id, err
}

// IsCommandRunning reports whether a command is in flight.
func (q *Queries) IsCommandRunning(ctx context.Context) (bool, error) {
	var out bool
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.IsCommandRunning(ctx)
		return err
	})
	return out, err
}

// CameraImage returns one compressed frame from the given camera.
func (q *Queries) CameraImage(ctx context.Context, camera api.CameraID) (api.RosCompressedImage, error) {
	var out api.RosCompressedImage
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		switch camera {
		case api.CameraBack:
			out, err = client.GetBackCameraRosCompressedImage(ctx)
		default:
			out, err = client.GetFrontCameraRosCompressedImage(ctx)
		}
		return err
	})
	return out, err
}

// Map returns the current map as a PNG.
func (q *Queries) Map(ctx context.Context) (api.PngMap, error) {
	var out api.PngMap
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetPngMap(ctx)
		return err
	})
	return out, err
}

// MapList returns the stored maps.
func (q *Queries) MapList(ctx context.Context) ([]api.MapInfo, error) {
	var out []api.MapInfo
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetMapList(ctx)
		return err
	})
	return out, err
}

// CurrentMapID returns the id of the active map.
func (q *Queries) CurrentMapID(ctx context.Context) (string, error) {
	var out string
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetCurrentMapID(ctx)
		return err
	})
	return out, err
}

// ActiveErrors returns the codes of the errors currently raised on the robot.
func (q *Queries) ActiveErrors(ctx context.Context) ([]int, error) {
	var out []int
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetActiveErrors(ctx)
		return err
	})
	return out, err
}

// ErrorDefinitions returns the robot's error catalog keyed by code.
func (q *Queries) ErrorDefinitions(ctx context.Context) (map[int]api.ErrorDefinition, error) {
	var out map[int]api.ErrorDefinition
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetRobotErrorCode(ctx)
		return err
	})
	return out, err
}

// SpeakerVolume returns the speaker volume (0..10).
func (q *Queries) SpeakerVolume(ctx context.Context) (int, error) {
	var out int
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetSpeakerVolume(ctx)
		return err
	})
	return out, err
}

// Shortcuts returns the user-defined shortcuts.
func (q *Queries) Shortcuts(ctx context.Context) ([]api.Shortcut, error) {
	var out []api.Shortcut
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetShortcuts(ctx)
		return err
	})
	return out, err
}

// History returns the command history.
func (q *Queries) History(ctx context.Context) ([]api.HistoryEntry, error) {
	var out []api.HistoryEntry
	err := q.do(ctx, func(ctx context.Context, client api.Client) error {
		var err error
		out, err = client.GetHistoryList(ctx)
		return err
	})
	return out, err
}
