// Package connection manages pooled robot connections: lazy transport setup,
// name resolution for shelves and locations, and a two-state health machine
// driven by a periodic ping.
package connection

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"go.uber.org/multierr"
	"go.viam.com/utils"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	rpc "github.com/Sigma-Snaken/kachaka-sdk-toolkit/grpc"
)

// DefaultTimeout is the per-call deadline injected when a caller's context
// carries none.
const DefaultTimeout = 5 * time.Second

// DefaultHealthInterval is the ping cadence used by StartMonitoring when the
// caller passes no interval.
const DefaultHealthInterval = 5 * time.Second

// State is the health of a connection as judged by the ping oracle.
type State int

// Connection states.
const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "CONNECTED"
	}
	return "DISCONNECTED"
}

// StateListener is notified on every health transition. Callbacks run on the
// monitoring goroutine; panics are contained and logged.
type StateListener interface {
	ConnectionStateChanged(s State)
}

// PingResult is one health probe outcome. Error carries the probe failure
// text when OK is false.
type PingResult struct {
	OK     bool
	Serial string
	Pose   api.Pose
	Error  string
}

// Connection is one pooled robot handle. The zero value is not usable; go
// through Acquire.
type Connection struct {
	target  string
	timeout time.Duration
	logger  golog.Logger

	clientMu sync.Mutex
	conn     closerConn
	client   api.Client
	injected bool

	resolverMu     sync.RWMutex
	resolverReady  bool
	shelfByName    map[string]string
	locationByName map[string]string
	shelfIDs       map[string]struct{}
	locationIDs    map[string]struct{}

	stateMu      sync.Mutex
	state        State
	stateChanged chan struct{}

	listenerMu sync.Mutex
	listeners  []StateListener

	catalogMu sync.Mutex
	catalog   map[int]api.ErrorDefinition

	monitorMu     sync.Mutex
	monitorCancel func()
	monitorWG     sync.WaitGroup
}

type closerConn interface {
	Close() error
}

// Option configures a Connection at creation.
type Option func(*Connection)

// WithTimeout sets the default per-call deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Connection) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets the connection logger.
func WithLogger(logger golog.Logger) Option {
	return func(c *Connection) { c.logger = logger }
}

// WithAPIClient injects a ready api.Client and skips dialing. Used by tests.
func WithAPIClient(client api.Client) Option {
	return func(c *Connection) {
		c.client = client
		c.injected = true
	}
}

func newConnection(target string, opts ...Option) *Connection {
	// A fresh connection is presumed healthy until a probe says otherwise;
	// unmonitored handles therefore never refuse work.
	c := &Connection{
		target:       target,
		timeout:      DefaultTimeout,
		logger:       golog.Global(),
		state:        Connected,
		stateChanged: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Target returns the canonical "host:port" this connection is keyed by.
func (c *Connection) Target() string {
	return c.target
}

// Timeout returns the default per-call deadline.
func (c *Connection) Timeout() time.Duration {
	return c.timeout
}

// Client returns the api.Client for this connection, dialing on first use.
// The dial itself performs no I/O; a best-effort serial probe surfaces
// obvious misconfiguration early without failing the call.
func (c *Connection) Client(ctx context.Context) (api.Client, error) {
	c.clientMu.Lock()
	defer c.clientMu.Unlock()
	if c.client != nil {
		return c.client, nil
	}

	conn, err := rpc.Dial(c.target, c.logger, rpc.WithDefaultTimeout(c.timeout))
	if err != nil {
		return nil, err
	}
	client := rpc.NewClient(conn)
	c.conn = client
	c.client = client

	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	if serial, err := client.GetRobotSerialNumber(probeCtx); err != nil {
		c.logger.Warnw("robot not reachable yet", "target", c.target, "error", err)
	} else {
		c.logger.Infow("connected to robot", "target", c.target, "serial", serial)
	}

	return c.client, nil
}

// Ping probes the robot with the two cheapest getters. It never returns a Go
// error; failures land in the result so health polling stays allocation-free
// on the caller side.
func (c *Connection) Ping(ctx context.Context) PingResult {
	client, err := c.Client(ctx)
	if err != nil {
		return PingResult{Error: err.Error()}
	}
	serial, err := client.GetRobotSerialNumber(ctx)
	if err != nil {
		return PingResult{Error: err.Error()}
	}
	pose, err := client.GetRobotPose(ctx)
	if err != nil {
		return PingResult{Error: err.Error()}
	}
	return PingResult{OK: true, Serial: serial, Pose: pose}
}

// EnsureResolver loads the shelf and location name maps once. Callers that
// only ever pass raw ids never trigger the fetch.
func (c *Connection) EnsureResolver(ctx context.Context) error {
	c.resolverMu.RLock()
	ready := c.resolverReady
	c.resolverMu.RUnlock()
	if ready {
		return nil
	}

	client, err := c.Client(ctx)
	if err != nil {
		return err
	}
	shelves, err := client.GetShelves(ctx)
	if err != nil {
		return err
	}
	locations, err := client.GetLocations(ctx)
	if err != nil {
		return err
	}

	c.resolverMu.Lock()
	defer c.resolverMu.Unlock()
	c.shelfByName = make(map[string]string, len(shelves))
	c.shelfIDs = make(map[string]struct{}, len(shelves))
	for _, s := range shelves {
		c.shelfByName[s.Name] = s.ID
		c.shelfIDs[s.ID] = struct{}{}
	}
	c.locationByName = make(map[string]string, len(locations))
	c.locationIDs = make(map[string]struct{}, len(locations))
	for _, l := range locations {
		c.locationByName[l.Name] = l.ID
		c.locationIDs[l.ID] = struct{}{}
	}
	c.resolverReady = true
	return nil
}

// InvalidateResolver drops the cached name maps so the next resolve refetches
// them. Called after reconnects; the map may have changed while we were away.
func (c *Connection) InvalidateResolver() {
	c.resolverMu.Lock()
	c.resolverReady = false
	c.resolverMu.Unlock()
}

// ResolveShelf maps a shelf name to its id. A string already known as an id
// passes through; an unknown string passes through with a warning so the
// server produces the authoritative rejection.
func (c *Connection) ResolveShelf(ctx context.Context, nameOrID string) string {
	if err := c.EnsureResolver(ctx); err != nil {
		c.logger.Warnw("resolver unavailable, passing shelf through", "value", nameOrID, "error", err)
		return nameOrID
	}
	c.resolverMu.RLock()
	defer c.resolverMu.RUnlock()
	if id, ok := c.shelfByName[nameOrID]; ok {
		return id
	}
	if _, ok := c.shelfIDs[nameOrID]; ok {
		return nameOrID
	}
	c.logger.Warnw("unknown shelf, passing through", "value", nameOrID)
	return nameOrID
}

// ResolveLocation maps a location name to its id, with the same pass-through
// rules as ResolveShelf.
func (c *Connection) ResolveLocation(ctx context.Context, nameOrID string) string {
	if err := c.EnsureResolver(ctx); err != nil {
		c.logger.Warnw("resolver unavailable, passing location through", "value", nameOrID, "error", err)
		return nameOrID
	}
	c.resolverMu.RLock()
	defer c.resolverMu.RUnlock()
	if id, ok := c.locationByName[nameOrID]; ok {
		return id
	}
	if _, ok := c.locationIDs[nameOrID]; ok {
		return nameOrID
	}
	c.logger.Warnw("unknown location, passing through", "value", nameOrID)
	return nameOrID
}

// State returns the current health state.
func (c *Connection) State() State {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	return c.state
}

// Connected reports whether the last probe succeeded.
func (c *Connection) Connected() bool {
	return c.State() == Connected
}

// setState records a transition and wakes WaitForState callers. Returns
// whether the state actually changed.
func (c *Connection) setState(s State) bool {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	if c.state == s {
		return false
	}
	c.state = s
	close(c.stateChanged)
	c.stateChanged = make(chan struct{})
	return true
}

// WaitForState blocks until the connection reaches the target state or the
// timeout passes, reporting which happened.
func (c *Connection) WaitForState(target State, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		c.stateMu.Lock()
		if c.state == target {
			c.stateMu.Unlock()
			return true
		}
		changed := c.stateChanged
		c.stateMu.Unlock()

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		timer := time.NewTimer(remaining)
		select {
		case <-changed:
			timer.Stop()
		case <-timer.C:
			return false
		}
	}
}

// StartMonitoring launches the health prober at the given interval (the
// default when zero). Listeners are notified on every transition, in order,
// on the prober goroutine. Listeners accumulate on the connection: starting
// again while the prober runs only registers the new ones, never restarts
// the prober or drops earlier registrations.
func (c *Connection) StartMonitoring(interval time.Duration, listeners ...StateListener) {
	if interval <= 0 {
		interval = DefaultHealthInterval
	}
	c.addListeners(listeners...)

	c.monitorMu.Lock()
	if c.monitorCancel != nil {
		c.monitorMu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	c.monitorCancel = cancel
	c.monitorWG.Add(1)
	c.monitorMu.Unlock()

	utils.ManagedGo(func() {
		for {
			probeCtx, probeCancel := context.WithTimeout(ctx, c.timeout)
			result := c.Ping(probeCtx)
			probeCancel()
			if ctx.Err() != nil {
				return
			}

			newState := Disconnected
			if result.OK {
				newState = Connected
			}
			if c.setState(newState) {
				c.logger.Infow("connection state changed",
					"target", c.target, "state", newState.String(), "error", result.Error)
				if newState == Connected {
					c.InvalidateResolver()
				}
				for _, l := range c.snapshotListeners() {
					c.notify(l, newState)
				}
			}

			if !utils.SelectContextOrWait(ctx, interval) {
				return
			}
		}
	}, c.monitorWG.Done)
}

// addListeners registers listeners, skipping ones already registered so a
// re-subscription never doubles notifications.
func (c *Connection) addListeners(listeners ...StateListener) {
	c.listenerMu.Lock()
	defer c.listenerMu.Unlock()
outer:
	for _, l := range listeners {
		for _, existing := range c.listeners {
			if existing == l {
				continue outer
			}
		}
		c.listeners = append(c.listeners, l)
	}
}

func (c *Connection) snapshotListeners() []StateListener {
	c.listenerMu.Lock()
	defer c.listenerMu.Unlock()
	return append([]StateListener(nil), c.listeners...)
}

func (c *Connection) notify(l StateListener, s State) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Errorw("state listener panicked", "target", c.target, "panic", r)
		}
	}()
	l.ConnectionStateChanged(s)
}

// StopMonitoring stops the prober and waits for it to exit. Registered
// listeners stay registered for a later start.
func (c *Connection) StopMonitoring() {
	c.monitorMu.Lock()
	cancel := c.monitorCancel
	c.monitorCancel = nil
	c.monitorMu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.monitorWG.Wait()
}

// ErrorDescription resolves an error code against the robot's catalog,
// fetching and caching it on first use. When the catalog is unreachable or
// the code unknown, the bare "error_code=N" form is returned.
func (c *Connection) ErrorDescription(ctx context.Context, code int) string {
	c.catalogMu.Lock()
	catalog := c.catalog
	c.catalogMu.Unlock()

	if catalog == nil {
		client, err := c.Client(ctx)
		if err == nil {
			catalog, err = client.GetRobotErrorCode(ctx)
		}
		if err != nil {
			c.logger.Debugw("error catalog unavailable", "target", c.target, "error", err)
			return fmt.Sprintf("error_code=%d", code)
		}
		c.catalogMu.Lock()
		c.catalog = catalog
		c.catalogMu.Unlock()
	}

	def, ok := catalog[code]
	if !ok {
		return fmt.Sprintf("error_code=%d", code)
	}
	title := def.TitleEn
	if title == "" {
		title = def.Title
	}
	if title == "" {
		return fmt.Sprintf("error_code=%d", code)
	}
	return fmt.Sprintf("error_code=%d: %s", code, title)
}

// Close stops monitoring and tears down the transport. The handle must not
// be used afterwards; Acquire creates a fresh one.
func (c *Connection) Close() error {
	c.StopMonitoring()
	c.clientMu.Lock()
	defer c.clientMu.Unlock()
	var err error
	if c.conn != nil {
		err = multierr.Combine(err, c.conn.Close())
		c.conn = nil
	}
	if !c.injected {
		c.client = nil
	}
	return err
}
