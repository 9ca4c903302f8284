// Package camera implements the periodic camera sampler: a background
// goroutine that captures compressed frames at a fixed cadence, optionally
// attaches detections and overlays, keeps the latest frame, and tracks
// stream statistics.
package camera

import (
	"context"
	"encoding/base64"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/detection"
)

// DefaultInterval is the capture cadence used when the config leaves it zero.
const DefaultInterval = time.Second

// Config shapes one Streamer.
type Config struct {
	// Camera selects the front or back camera.
	Camera api.CameraID
	// Interval is the capture cadence.
	Interval time.Duration
	// Detect attaches shaped detections to every frame.
	Detect bool
	// Annotate draws the detections onto the frame. Implies Detect.
	Annotate detection.Annotator
	// OnFrame, when set, receives every successful frame on the sampler
	// goroutine.
	OnFrame func(api.Frame)
}

// Streamer samples one camera in the background.
type Streamer struct {
	conn     *connection.Connection
	cfg      Config
	detector *detection.Detector
	logger   golog.Logger
	clock    clock.Clock

	mu              sync.Mutex
	latest          *api.Frame
	total           int
	dropped         int
	longestGap      time.Duration
	lastSuccess     time.Time
	reconnectMark   time.Time
	recoveryLatency *time.Duration

	workerMu sync.Mutex
	cancel   func()
	wg       sync.WaitGroup
}

// StreamerOption configures a Streamer beyond its Config.
type StreamerOption func(*Streamer)

// WithLogger sets the sampler logger.
func WithLogger(logger golog.Logger) StreamerOption {
	return func(s *Streamer) { s.logger = logger }
}

// WithClock injects the clock used for timestamps and gap accounting.
func WithClock(c clock.Clock) StreamerOption {
	return func(s *Streamer) { s.clock = c }
}

// NewStreamer validates the config and returns a stopped Streamer.
func NewStreamer(conn *connection.Connection, cfg Config, opts ...StreamerOption) (*Streamer, error) {
	if !cfg.Camera.Valid() {
		return nil, errors.Errorf("unknown camera %q", cfg.Camera)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	if cfg.Annotate != nil {
		cfg.Detect = true
	}
	s := &Streamer{
		conn:     conn,
		cfg:      cfg,
		detector: detection.NewDetector(conn),
		logger:   golog.Global(),
		clock:    clock.New(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Start launches the sampler. Starting twice restarts it.
func (s *Streamer) Start() {
	s.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	s.workerMu.Lock()
	s.cancel = cancel
	s.wg.Add(1)
	s.workerMu.Unlock()

	utils.ManagedGo(func() {
		for {
			s.sampleOnce(ctx)
			select {
			case <-ctx.Done():
				return
			case <-s.clock.After(s.cfg.Interval):
			}
		}
	}, s.wg.Done)
}

// Stop halts the sampler and waits for it to exit.
func (s *Streamer) Stop() {
	s.workerMu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.workerMu.Unlock()
	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// sampleOnce performs one tick: every tick counts toward the total, and a
// capture failure counts as a drop.
func (s *Streamer) sampleOnce(ctx context.Context) {
	s.mu.Lock()
	s.total++
	s.mu.Unlock()

	captureCtx, cancel := context.WithTimeout(ctx, s.conn.Timeout())
	defer cancel()

	frame, err := s.capture(captureCtx)
	if err != nil {
		s.mu.Lock()
		s.dropped++
		s.mu.Unlock()
		s.logger.Debugw("frame dropped", "camera", s.cfg.Camera, "error", err)
		return
	}

	now := s.clock.Now()
	frame.Timestamp = now

	s.mu.Lock()
	if !s.lastSuccess.IsZero() {
		if gap := now.Sub(s.lastSuccess); gap > s.longestGap {
			s.longestGap = gap
		}
	}
	s.lastSuccess = now
	if !s.reconnectMark.IsZero() {
		// Only the first recovery is recorded.
		if s.recoveryLatency == nil {
			latency := now.Sub(s.reconnectMark)
			s.recoveryLatency = &latency
		}
		s.reconnectMark = time.Time{}
	}
	s.latest = &frame
	onFrame := s.cfg.OnFrame
	s.mu.Unlock()

	if onFrame != nil {
		onFrame(frame)
	}
}

// capture grabs one frame, then detections when enabled. Detection and
// annotation faults never cost the frame; only a failed image capture does.
func (s *Streamer) capture(ctx context.Context) (api.Frame, error) {
	client, err := s.conn.Client(ctx)
	if err != nil {
		return api.Frame{}, err
	}
	var img api.RosCompressedImage
	if s.cfg.Camera == api.CameraFront {
		img, err = client.GetFrontCameraRosCompressedImage(ctx)
	} else {
		img, err = client.GetBackCameraRosCompressedImage(ctx)
	}
	if err != nil {
		return api.Frame{}, err
	}

	var records []api.DetectionRecord
	if s.cfg.Detect {
		if records, err = s.detector.Detect(ctx); err != nil {
			s.logger.Debugw("detection failed, keeping frame", "camera", s.cfg.Camera, "error", err)
			records = nil
		}
	}

	data := img.Data
	if s.cfg.Annotate != nil && len(records) > 0 {
		annotated, annErr := s.cfg.Annotate.Annotate(data, records)
		if annErr != nil {
			s.logger.Warnw("annotation failed, keeping raw frame", "camera", s.cfg.Camera, "error", annErr)
		} else {
			data = annotated
		}
	}

	return api.Frame{
		OK:          true,
		ImageBase64: base64.StdEncoding.EncodeToString(data),
		Format:      img.Format,
		Objects:     records,
	}, nil
}

// LatestFrame returns the most recent successful frame, if any.
func (s *Streamer) LatestFrame() (api.Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latest == nil {
		return api.Frame{}, false
	}
	return *s.latest, true
}

// Stats returns a snapshot of the cumulative stream statistics.
func (s *Streamer) Stats() api.StreamStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := api.StreamStats{
		TotalFrames:       s.total,
		Dropped:           s.dropped,
		LongestGapSeconds: s.longestGap.Seconds(),
	}
	if s.total > 0 {
		stats.DropRatePercent = float64(s.dropped) / float64(s.total) * 100
	}
	if s.recoveryLatency != nil {
		ms := s.recoveryLatency.Seconds() * 1000
		stats.RecoveryLatencyMS = &ms
	}
	return stats
}

// ConnectionStateChanged implements connection.StateListener. A reconnect
// marks the moment so the next successful frame records recovery latency.
func (s *Streamer) ConnectionStateChanged(state connection.State) {
	if state != connection.Connected {
		return
	}
	s.mu.Lock()
	s.reconnectMark = s.clock.Now()
	s.mu.Unlock()
}
