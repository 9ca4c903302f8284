// Package commands is the one-shot caller surface: fire a command and return
// the robot's acceptance, without the controller's completion tracking.
package commands

import (
	"context"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/retry"
)

// Safety clamps on manual control.
const (
	MaxLinearVelocity  = 0.3  // m/s
	MaxAngularVelocity = 1.57 // rad/s
	MaxSpeakerVolume   = 10
)

// Commands answers one-shot command requests against one robot.
type Commands struct {
	conn   *connection.Connection
	retry  retry.Options
	logger golog.Logger
}

// Option configures Commands.
type Option func(*Commands)

// WithRetryOptions overrides the retry budget for retried calls.
func WithRetryOptions(opts retry.Options) Option {
	return func(c *Commands) { c.retry = opts }
}

// WithLogger sets the logger.
func WithLogger(logger golog.Logger) Option {
	return func(c *Commands) { c.logger = logger }
}

// New returns a command surface over the connection.
func New(conn *connection.Connection, opts ...Option) *Commands {
	c := &Commands{conn: conn, logger: golog.Global()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func clamp(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return v
}

// start fires one command under the count-mode retry policy and returns the
// robot's acceptance verdict and command id.
func (c *Commands) start(ctx context.Context, cmd api.Command, opts ...api.CommandOption) (api.Result, string, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, "", err
	}
	cmdOpts := api.ApplyCommandOptions(opts...)
	var result api.Result
	var commandID string
	err = retry.Do(ctx, c.retry, func(ctx context.Context) error {
		var err error
		result, commandID, err = client.StartCommand(ctx, cmd, cmdOpts)
		return err
	})
	return result, commandID, err
}

// MoveToLocation starts a move to a location named by name or id.
func (c *Commands) MoveToLocation(ctx context.Context, location string, opts ...api.CommandOption) (api.Result, string, error) {
	id := c.conn.ResolveLocation(ctx, location)
	return c.start(ctx, api.MoveToLocation{TargetLocationID: id}, opts...)
}

// MoveToPose starts a move to an absolute map pose.
func (c *Commands) MoveToPose(ctx context.Context, x, y, yaw float64, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.MoveToPose{X: x, Y: y, Yaw: yaw}, opts...)
}

// MoveForward starts a signed straight-line move.
func (c *Commands) MoveForward(ctx context.Context, distanceMeter, speed float64, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.MoveForward{DistanceMeter: distanceMeter, Speed: speed}, opts...)
}

// RotateInPlace starts an in-place rotation.
func (c *Commands) RotateInPlace(ctx context.Context, angleRadian float64, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.RotateInPlace{AngleRadian: angleRadian}, opts...)
}

// ReturnHome sends the robot to its charger.
func (c *Commands) ReturnHome(ctx context.Context, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.ReturnHome{}, opts...)
}

// MoveShelf starts a shelf delivery.
func (c *Commands) MoveShelf(ctx context.Context, shelf, location string, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.MoveShelf{
		TargetShelfID:         c.conn.ResolveShelf(ctx, shelf),
		DestinationLocationID: c.conn.ResolveLocation(ctx, location),
	}, opts...)
}

// ReturnShelf starts returning a shelf to its home. Empty shelf means the
// one currently carried.
func (c *Commands) ReturnShelf(ctx context.Context, shelf string, opts ...api.CommandOption) (api.Result, string, error) {
	shelfID := ""
	if shelf != "" {
		shelfID = c.conn.ResolveShelf(ctx, shelf)
	}
	return c.start(ctx, api.ReturnShelf{TargetShelfID: shelfID}, opts...)
}

// DockShelf docks the shelf under the robot.
func (c *Commands) DockShelf(ctx context.Context, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.DockShelf{}, opts...)
}

// UndockShelf releases the docked shelf.
func (c *Commands) UndockShelf(ctx context.Context, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.UndockShelf{}, opts...)
}

// Speak plays text on the speaker.
func (c *Commands) Speak(ctx context.Context, text string, opts ...api.CommandOption) (api.Result, string, error) {
	return c.start(ctx, api.Speak{Text: text}, opts...)
}

// SetSpeakerVolume sets the speaker volume, clamped to 0..10.
func (c *Commands) SetSpeakerVolume(ctx context.Context, volume int, opts ...api.CommandOption) (api.Result, string, error) {
	if volume < 0 {
		volume = 0
	}
	if volume > MaxSpeakerVolume {
		volume = MaxSpeakerVolume
	}
	return c.start(ctx, api.SetSpeakerVolume{Volume: volume}, opts...)
}

// ResetShelfPose tells the robot a shelf was manually moved back to a known
// pose.
func (c *Commands) ResetShelfPose(ctx context.Context, shelf string) (api.Result, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, err
	}
	shelfID := c.conn.ResolveShelf(ctx, shelf)
	var result api.Result
	err = retry.Do(ctx, c.retry, func(ctx context.Context) error {
		var err error
		result, err = client.ResetShelfPose(ctx, shelfID)
		return err
	})
	return result, err
}

// Cancel cancels the running command.
func (c *Commands) Cancel(ctx context.Context) (api.Result, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, err
	}
	var result api.Result
	err = retry.Do(ctx, c.retry, func(ctx context.Context) error {
		var err error
		result, err = client.CancelCommand(ctx)
		return err
	})
	return result, err
}

// Proceed resumes a command waiting for confirmation.
func (c *Commands) Proceed(ctx context.Context) (api.Result, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, err
	}
	var result api.Result
	err = retry.Do(ctx, c.retry, func(ctx context.Context) error {
		var err error
		result, err = client.Proceed(ctx)
		return err
	})
	return result, err
}

// SetManualControl enables or disables manual velocity control.
func (c *Commands) SetManualControl(ctx context.Context, enable bool) (api.Result, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, err
	}
	var result api.Result
	err = retry.Do(ctx, c.retry, func(ctx context.Context) error {
		var err error
		result, err = client.SetManualControlEnabled(ctx, enable)
		return err
	})
	return result, err
}

// SetVelocity commands a manual velocity, clamped to the robot's safe range.
func (c *Commands) SetVelocity(ctx context.Context, linear, angular float64) (api.Result, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, err
	}
	linear = clamp(linear, MaxLinearVelocity)
	angular = clamp(angular, MaxAngularVelocity)
	var result api.Result
	err = retry.Do(ctx, c.retry, func(ctx context.Context) error {
		var err error
		result, err = client.SetRobotVelocity(ctx, linear, angular)
		return err
	})
	return result, err
}

// EmergencyStop halts the robot with a single attempt, never retried; a
// stop must either land fast or fail fast so the caller can act. The call is
// bounded by the connection's per-call timeout even when the parent context
// has no deadline.
func (c *Commands) EmergencyStop(ctx context.Context) (api.Result, error) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return api.Result{}, err
	}
	stopCtx, cancel := context.WithTimeout(ctx, c.conn.Timeout())
	defer cancel()
	return client.SetRobotStop(stopCtx)
}

// PollUntilComplete waits until no command is running or the timeout passes.
// RPC errors during polling count as "still running".
func (c *Commands) PollUntilComplete(ctx context.Context, timeout, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}
	client, err := c.conn.Client(ctx)
	if err != nil {
		return err
	}
	deadline := time.Now().Add(timeout)
	for {
		running, err := client.IsCommandRunning(ctx)
		if err == nil && !running {
			return nil
		}
		if err != nil {
			c.logger.Debugw("completion poll failed", "error", err)
		}
		if !time.Now().Before(deadline) {
			return errors.Errorf("command still running after %v", timeout)
		}
		if !utils.SelectContextOrWait(ctx, interval) {
			return ctx.Err()
		}
	}
}
