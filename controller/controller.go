// Package controller runs the client-side control loop for one robot: a
// background state sampler, a health-integrated command executor with a
// shelf-drop monitor, and typed movement wrappers.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/retry"
)

// Defaults for Config fields left zero.
const (
	DefaultFastInterval   = time.Second
	DefaultSlowInterval   = 30 * time.Second
	DefaultPollInterval   = time.Second
	DefaultRetryDelay     = time.Second
	DefaultHealthInterval = 5 * time.Second
	DefaultCommandTimeout = 60 * time.Second
)

// Registration wait: how long and how often to poll until the robot reports
// the command id we just started.
const (
	registrationWait = 5 * time.Second
	registrationPoll = 200 * time.Millisecond
)

// Sentinel error strings surfaced in CommandResult.Error.
const (
	// ErrDisconnected is returned without touching the robot when the
	// connection is known to be down.
	ErrDisconnected = "DISCONNECTED"
	// ErrTimeout is returned when a command does not complete within its
	// budget.
	ErrTimeout = "TIMEOUT"
)

// Config shapes a Controller's cadences.
type Config struct {
	FastInterval   time.Duration
	SlowInterval   time.Duration
	PollInterval   time.Duration
	RetryDelay     time.Duration
	HealthInterval time.Duration
	CommandTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.FastInterval <= 0 {
		c.FastInterval = DefaultFastInterval
	}
	if c.SlowInterval <= 0 {
		c.SlowInterval = DefaultSlowInterval
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
	if c.HealthInterval <= 0 {
		c.HealthInterval = DefaultHealthInterval
	}
	if c.CommandTimeout <= 0 {
		c.CommandTimeout = DefaultCommandTimeout
	}
	return c
}

// Controller drives one robot.
type Controller struct {
	conn   *connection.Connection
	cfg    Config
	logger golog.Logger
	clock  clock.Clock

	stateMu sync.Mutex
	state   RobotState
	metrics Metrics

	shelfMu       sync.Mutex
	shelfArmed    bool
	movingShelfID string
	onShelfDrop   func(shelfID string)

	// cmdMu serializes command execution; the robot runs one command at a
	// time anyway.
	cmdMu sync.Mutex

	workerMu sync.Mutex
	cancel   func()
	wg       sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger.
func WithLogger(logger golog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithClock injects the clock used for state timestamps.
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) { c.clock = clk }
}

// WithShelfDropHandler registers a callback fired once when a monitored
// shelf goes missing mid-command.
func WithShelfDropHandler(fn func(shelfID string)) Option {
	return func(c *Controller) { c.onShelfDrop = fn }
}

// NewController returns a stopped controller for the connection.
func NewController(conn *connection.Connection, cfg Config, opts ...Option) *Controller {
	c := &Controller{
		conn:   conn,
		cfg:    cfg.withDefaults(),
		logger: golog.Global(),
		clock:  clock.New(),
	}
	c.state.ConnectionState = conn.State()
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start launches the state sampler and subscribes the controller to health
// transitions.
func (c *Controller) Start() {
	c.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	c.workerMu.Lock()
	c.cancel = cancel
	c.wg.Add(1)
	c.workerMu.Unlock()

	c.conn.StartMonitoring(c.cfg.HealthInterval, c)

	utils.ManagedGo(func() {
		c.sampleLoop(ctx)
	}, c.wg.Done)
}

// Stop halts the sampler and health monitoring and waits for both.
func (c *Controller) Stop() {
	c.workerMu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.workerMu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
	c.conn.StopMonitoring()
}

// State returns a copy of the sampled robot state.
func (c *Controller) State() RobotState {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state
}

// Metrics returns an independent snapshot of the cumulative metrics.
func (c *Controller) Metrics() Metrics {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.metrics.clone()
}

// ConnectionStateChanged implements connection.StateListener. A reconnect
// stamps the state and refreshes identity off-thread; a disconnect stamps
// when the robot went away.
func (c *Controller) ConnectionStateChanged(s connection.State) {
	now := c.clock.Now()
	c.stateMu.Lock()
	c.state.ConnectionState = s
	if s == connection.Connected {
		c.state.LastReconnectAt = now
	} else {
		c.state.DisconnectedAt = now
	}
	c.stateMu.Unlock()

	if s == connection.Connected {
		utils.PanicCapturingGo(func() {
			ctx, cancel := context.WithTimeout(context.Background(), c.conn.Timeout())
			defer cancel()
			c.refreshIdentity(ctx)
		})
	}
}

func (c *Controller) refreshIdentity(ctx context.Context) {
	client, err := c.conn.Client(ctx)
	if err != nil {
		return
	}
	serial, serialErr := client.GetRobotSerialNumber(ctx)
	version, versionErr := client.GetRobotVersion(ctx)
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if serialErr == nil {
		c.state.Serial = serial
	}
	if versionErr == nil {
		c.state.Version = version
	}
}

// sampleLoop drives the fast cycle every FastInterval and folds the slow
// cycle in when due. Field failures are isolated: one bad getter never
// blocks the others.
func (c *Controller) sampleLoop(ctx context.Context) {
	var lastSlow time.Time
	for {
		slow := lastSlow.IsZero() || c.clock.Now().Sub(lastSlow) >= c.cfg.SlowInterval
		c.sampleOnce(ctx, slow)
		if slow {
			lastSlow = c.clock.Now()
		}
		if !utils.SelectContextOrWait(ctx, c.cfg.FastInterval) {
			return
		}
	}
}

func (c *Controller) sampleOnce(ctx context.Context, slow bool) {
	callCtx, cancel := context.WithTimeout(ctx, c.conn.Timeout())
	defer cancel()

	client, err := c.conn.Client(callCtx)
	if err != nil {
		c.logger.Debugw("sampler has no client", "error", err)
		return
	}

	if pose, err := client.GetRobotPose(callCtx); err != nil {
		c.logger.Debugw("pose sample failed", "error", err)
	} else {
		c.stateMu.Lock()
		c.state.Pose = pose
		c.stateMu.Unlock()
	}

	if running, err := client.IsCommandRunning(callCtx); err != nil {
		c.logger.Debugw("running sample failed", "error", err)
	} else {
		c.stateMu.Lock()
		c.state.CommandRunning = running
		c.stateMu.Unlock()
	}

	if shelfID, err := client.GetMovingShelfID(callCtx); err != nil {
		c.logger.Debugw("moving shelf sample failed", "error", err)
	} else {
		c.stateMu.Lock()
		c.state.MovingShelfID = shelfID
		c.stateMu.Unlock()
	}

	if slow {
		if battery, err := client.GetBatteryInfo(callCtx); err != nil {
			c.logger.Debugw("battery sample failed", "error", err)
		} else {
			c.stateMu.Lock()
			c.state.Battery = battery
			c.stateMu.Unlock()
		}
	}

	c.stateMu.Lock()
	c.state.UpdatedAt = c.clock.Now()
	c.stateMu.Unlock()
}

// Execute runs one command to completion. The timeout bounds the whole
// lifecycle: start retries, registration, and polling. A zero timeout uses
// the configured default.
func (c *Controller) Execute(
	ctx context.Context,
	cmd api.Command,
	target string,
	timeout time.Duration,
	opts ...api.CommandOption,
) api.CommandResult {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	if timeout <= 0 {
		timeout = c.cfg.CommandTimeout
	}
	start := time.Now()
	deadline := start.Add(timeout)
	result := api.CommandResult{Action: cmd.Action(), Target: target}

	finish := func(r api.CommandResult) api.CommandResult {
		r.Elapsed = time.Since(start).Seconds()
		c.stateMu.Lock()
		switch {
		case r.OK:
			c.metrics.CommandsSucceeded++
		case r.Error == ErrTimeout:
			c.metrics.CommandsTimedOut++
		default:
			c.metrics.CommandsFailed++
		}
		c.stateMu.Unlock()
		return r
	}

	// Disconnect gate: a connection the health machine knows is down gets
	// the remaining budget to recover before the command is refused.
	if !c.conn.Connected() {
		if !c.conn.WaitForState(connection.Connected, time.Until(deadline)) {
			c.logger.Warnw("command refused, robot disconnected",
				"action", result.Action, "target", target, "waited", timeout)
			result.Error = ErrDisconnected
			return finish(result)
		}
	}

	c.stateMu.Lock()
	c.metrics.CommandsStarted++
	c.stateMu.Unlock()

	client, err := c.conn.Client(ctx)
	if err != nil {
		result.Error = err.Error()
		return finish(result)
	}

	// Start under retry with a fixed delay, bounded by the command deadline.
	cmdOpts := api.ApplyCommandOptions(opts...)
	var startResult api.Result
	var commandID string
	err = retry.Do(ctx, retry.Options{
		BaseDelay: c.cfg.RetryDelay,
		MaxDelay:  c.cfg.RetryDelay,
		Deadline:  deadline,
	}, func(ctx context.Context) error {
		var err error
		startResult, commandID, err = client.StartCommand(ctx, cmd, cmdOpts)
		return err
	})
	if err != nil {
		result.Error = err.Error()
		return finish(result)
	}
	if !startResult.Success {
		result.ErrorCode = startResult.ErrorCode
		result.Error = c.conn.ErrorDescription(ctx, startResult.ErrorCode)
		return finish(result)
	}

	c.logger.Infow("command started",
		"action", result.Action, "target", target, "command_id", commandID)

	c.waitForRegistration(ctx, client, commandID)

	return finish(c.pollUntilDone(ctx, client, commandID, result, deadline, timeout))
}

// waitForRegistration polls until the robot reports the started command id
// in an in-flight state. Giving up is fine; the main loop copes with a
// command that was never seen.
func (c *Controller) waitForRegistration(ctx context.Context, client api.Client, commandID string) {
	waitUntil := time.Now().Add(registrationWait)
	for time.Now().Before(waitUntil) {
		state, id, err := client.GetCommandState(ctx)
		if err == nil && id == commandID && state.Active() {
			return
		}
		if !utils.SelectContextOrWait(ctx, registrationPoll) {
			return
		}
	}
	c.logger.Debugw("command never showed up in state polls", "command_id", commandID)
}

func (c *Controller) pollUntilDone(
	ctx context.Context,
	client api.Client,
	commandID string,
	result api.CommandResult,
	deadline time.Time,
	timeout time.Duration,
) api.CommandResult {
	for time.Now().Before(deadline) {
		pollStart := time.Now()
		state, id, err := client.GetCommandState(ctx)
		rtt := time.Since(pollStart)

		c.stateMu.Lock()
		c.metrics.Polls++
		if err != nil {
			c.metrics.PollFailures++
		} else {
			c.metrics.PollSuccesses++
		}
		c.metrics.PollRTTs = append(c.metrics.PollRTTs, rtt.Seconds())
		c.stateMu.Unlock()

		if err != nil {
			c.logger.Debugw("state poll failed", "command_id", commandID, "error", err)
		} else {
			c.checkShelfMonitor(ctx, client)
			if !state.Active() || id != commandID {
				return c.fetchResult(ctx, client, commandID, result, deadline, timeout)
			}
		}

		if !utils.SelectContextOrWait(ctx, c.cfg.PollInterval) {
			break
		}
	}

	c.logger.Warnw("command timed out",
		"action", result.Action, "command_id", commandID, "timeout", timeout)
	result.Error = ErrTimeout
	result.Timeout = timeout.Seconds()
	return result
}

// fetchResult reads the last command result, tolerating a stale id for a
// while; the robot publishes the result slightly after the state flips.
func (c *Controller) fetchResult(
	ctx context.Context,
	client api.Client,
	commandID string,
	result api.CommandResult,
	deadline time.Time,
	timeout time.Duration,
) api.CommandResult {
	for {
		var last api.Result
		var id string
		err := retry.Do(ctx, retry.Options{
			BaseDelay: c.cfg.RetryDelay,
			MaxDelay:  c.cfg.RetryDelay,
			Deadline:  deadline,
		}, func(ctx context.Context) error {
			var err error
			last, id, err = client.GetLastCommandResult(ctx)
			return err
		})
		if err != nil {
			result.Error = err.Error()
			return result
		}
		if id == commandID {
			result.OK = last.Success
			result.ErrorCode = last.ErrorCode
			if !last.Success {
				result.Error = c.conn.ErrorDescription(ctx, last.ErrorCode)
			}
			return result
		}

		c.logger.Debugw("stale command result, retrying",
			"want", commandID, "got", id)
		if !time.Now().Before(deadline) || !utils.SelectContextOrWait(ctx, c.cfg.PollInterval) {
			break
		}
	}

	result.Error = ErrTimeout
	result.Timeout = timeout.Seconds()
	return result
}

// armShelfMonitor starts watching for the shelf disappearing mid-transit.
func (c *Controller) armShelfMonitor(shelfID string) {
	c.shelfMu.Lock()
	c.shelfArmed = true
	c.movingShelfID = shelfID
	c.shelfMu.Unlock()
}

// disarmShelfMonitor stops watching.
func (c *Controller) disarmShelfMonitor() {
	c.shelfMu.Lock()
	c.shelfArmed = false
	c.movingShelfID = ""
	c.shelfMu.Unlock()
}

// checkShelfMonitor fires the drop handler once if the monitored shelf is no
// longer in transit while its command still runs.
func (c *Controller) checkShelfMonitor(ctx context.Context, client api.Client) {
	c.shelfMu.Lock()
	armed := c.shelfArmed
	expected := c.movingShelfID
	c.shelfMu.Unlock()
	if !armed || expected == "" {
		return
	}

	current, err := client.GetMovingShelfID(ctx)
	if err != nil {
		c.logger.Debugw("shelf monitor poll failed", "error", err)
		return
	}
	if current == "" {
		c.logger.Warnw("shelf dropped in transit", "shelf_id", expected)
		c.disarmShelfMonitor()
		c.stateMu.Lock()
		c.state.ShelfDropped = true
		c.stateMu.Unlock()
		if c.onShelfDrop != nil {
			c.onShelfDrop(expected)
		}
	}
}

// ResetShelfMonitor clears a latched shelf drop and disarms the monitor.
func (c *Controller) ResetShelfMonitor() {
	c.disarmShelfMonitor()
	c.stateMu.Lock()
	c.state.ShelfDropped = false
	c.stateMu.Unlock()
}

// ResetMetrics zeroes the cumulative counters.
func (c *Controller) ResetMetrics() {
	c.stateMu.Lock()
	c.metrics = Metrics{}
	c.stateMu.Unlock()
}

// MoveToLocation resolves the location and drives the robot there.
func (c *Controller) MoveToLocation(
	ctx context.Context, location string, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	id := c.conn.ResolveLocation(ctx, location)
	return c.Execute(ctx, api.MoveToLocation{TargetLocationID: id}, location, timeout, opts...)
}

// MoveToPose drives the robot to an absolute map pose.
func (c *Controller) MoveToPose(
	ctx context.Context, x, y, yaw float64, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	return c.Execute(ctx, api.MoveToPose{X: x, Y: y, Yaw: yaw}, "", timeout, opts...)
}

// MoveForward moves the robot by a signed distance in metres.
func (c *Controller) MoveForward(
	ctx context.Context, distanceMeter, speed float64, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	return c.Execute(ctx, api.MoveForward{DistanceMeter: distanceMeter, Speed: speed}, "", timeout, opts...)
}

// RotateInPlace rotates the robot by an angle in radians.
func (c *Controller) RotateInPlace(
	ctx context.Context, angleRadian float64, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	return c.Execute(ctx, api.RotateInPlace{AngleRadian: angleRadian}, "", timeout, opts...)
}

// ReturnHome sends the robot back to its charger.
func (c *Controller) ReturnHome(
	ctx context.Context, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	return c.Execute(ctx, api.ReturnHome{}, "", timeout, opts...)
}

// MoveShelf delivers a shelf to a location. The shelf monitor is armed
// before the command starts so an early drop is never missed.
func (c *Controller) MoveShelf(
	ctx context.Context, shelf, location string, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	shelfID := c.conn.ResolveShelf(ctx, shelf)
	locationID := c.conn.ResolveLocation(ctx, location)
	c.armShelfMonitor(shelfID)
	defer c.disarmShelfMonitor()
	return c.Execute(ctx, api.MoveShelf{
		TargetShelfID:         shelfID,
		DestinationLocationID: locationID,
	}, shelf, timeout, opts...)
}

// ReturnShelf returns a shelf to its home location. Empty shelf means the
// one currently carried.
func (c *Controller) ReturnShelf(
	ctx context.Context, shelf string, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	shelfID := ""
	if shelf != "" {
		shelfID = c.conn.ResolveShelf(ctx, shelf)
	}
	defer c.disarmShelfMonitor()
	return c.Execute(ctx, api.ReturnShelf{TargetShelfID: shelfID}, shelf, timeout, opts...)
}

// DockShelf docks the shelf under the robot.
func (c *Controller) DockShelf(
	ctx context.Context, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	return c.Execute(ctx, api.DockShelf{}, "", timeout, opts...)
}

// UndockShelf releases the docked shelf.
func (c *Controller) UndockShelf(
	ctx context.Context, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	defer c.disarmShelfMonitor()
	return c.Execute(ctx, api.UndockShelf{}, "", timeout, opts...)
}

// Speak plays text on the robot's speaker.
func (c *Controller) Speak(
	ctx context.Context, text string, timeout time.Duration, opts ...api.CommandOption,
) api.CommandResult {
	return c.Execute(ctx, api.Speak{Text: text}, text, timeout, opts...)
}
