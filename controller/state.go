package controller

import (
	"time"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
)

// RobotState is the sampled view of the robot. Zero time values mean the
// event has not happened yet. ShelfDropped latches once the monitor sees a
// shelf vanish mid-transit and stays set until ResetShelfMonitor.
type RobotState struct {
	Serial          string
	Version         string
	Pose            api.Pose
	Battery         api.BatteryInfo
	CommandRunning  bool
	MovingShelfID   string
	ConnectionState connection.State
	ShelfDropped    bool
	UpdatedAt       time.Time
	DisconnectedAt  time.Time
	LastReconnectAt time.Time
}

// Metrics are cumulative executor and sampler counters. Every state poll is
// counted in Polls and classified into exactly one of PollSuccesses or
// PollFailures; PollRTTs holds the round-trip time of each poll, in seconds.
type Metrics struct {
	CommandsStarted   int
	CommandsSucceeded int
	CommandsFailed    int
	CommandsTimedOut  int
	Polls             int
	PollSuccesses     int
	PollFailures      int
	PollRTTs          []float64
}

func (m Metrics) clone() Metrics {
	out := m
	out.PollRTTs = append([]float64(nil), m.PollRTTs...)
	return out
}
