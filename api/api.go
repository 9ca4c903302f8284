// Package api contains the data model shared by every layer of the toolkit
// and the client interface binding the robot's RPC surface.
package api

import "time"

// Pose is a 2D pose on the robot's map. Theta is in radians.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// PowerSupplyStatus reports the charging state of the robot battery.
type PowerSupplyStatus int32

// Power supply statuses.
const (
	PowerSupplyStatusUnspecified PowerSupplyStatus = iota
	PowerSupplyStatusCharging
	PowerSupplyStatusDischarging
	PowerSupplyStatusNotCharging
	PowerSupplyStatusFull
)

func (s PowerSupplyStatus) String() string {
	switch s {
	case PowerSupplyStatusCharging:
		return "CHARGING"
	case PowerSupplyStatusDischarging:
		return "DISCHARGING"
	case PowerSupplyStatusNotCharging:
		return "NOT_CHARGING"
	case PowerSupplyStatusFull:
		return "FULL"
	default:
		return "UNSPECIFIED"
	}
}

// BatteryInfo is the remaining battery charge and its power supply status.
type BatteryInfo struct {
	Percent     int
	PowerStatus PowerSupplyStatus
}

// Shelf is a registered shelf the robot can carry.
type Shelf struct {
	ID             string
	Name           string
	HomeLocationID string
}

// Location is a registered destination on the current map.
type Location struct {
	ID   string
	Name string
	Type int
	Pose Pose
}

// MapInfo identifies one stored map.
type MapInfo struct {
	ID   string
	Name string
}

// PngMap is the current map rendered as a PNG.
type PngMap struct {
	Data       []byte
	Name       string
	Resolution float64
	Width      int
	Height     int
}

// Result is the server's accept/complete verdict for a command.
type Result struct {
	Success   bool
	ErrorCode int
}

// CommandState is the server-side state of the current command.
type CommandState int32

// Command states as reported by the robot.
const (
	CommandStateUnspecified CommandState = 0
	CommandStatePending     CommandState = 1
	CommandStateRunning     CommandState = 2
)

func (s CommandState) String() string {
	switch s {
	case CommandStatePending:
		return "PENDING"
	case CommandStateRunning:
		return "RUNNING"
	default:
		return "UNSPECIFIED"
	}
}

// Active reports whether the state means a command is still in flight.
func (s CommandState) Active() bool {
	return s == CommandStatePending || s == CommandStateRunning
}

// CommandResult is the normalized outcome of one executed command.
type CommandResult struct {
	OK        bool
	Action    string
	Target    string
	Elapsed   float64 // seconds
	ErrorCode int
	Error     string
	Timeout   float64 // seconds, set only on TIMEOUT results
}

// RosCompressedImage is a compressed camera frame as produced by the robot.
type RosCompressedImage struct {
	Format string
	Data   []byte
}

// ROI is a detection bounding box in pixel coordinates.
type ROI struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ObjectDetection is one raw detection as reported by the on-device detector.
type ObjectDetection struct {
	Label          int
	ROI            ROI
	Score          float64
	DistanceMedian float64
}

// DetectionRecord is a shaped detection with a human-readable label.
// Distance is nil when the sensor reported no positive median.
type DetectionRecord struct {
	Label    string
	LabelID  int
	ROI      ROI
	Score    float64
	Distance *float64
}

// Frame is one captured camera frame, optionally with detections attached.
type Frame struct {
	OK          bool
	ImageBase64 string
	Format      string
	Timestamp   time.Time
	Objects     []DetectionRecord
}

// StreamStats are cumulative statistics for a camera stream.
type StreamStats struct {
	TotalFrames       int
	Dropped           int
	DropRatePercent   float64
	LongestGapSeconds float64
	RecoveryLatencyMS *float64
}

// ErrorDefinition is one entry of the robot's error-code catalog.
type ErrorDefinition struct {
	Code        int
	Title       string
	TitleEn     string
	Description string
}

// Shortcut is a user-defined shortcut registered on the robot.
type Shortcut struct {
	ID   string
	Name string
}

// HistoryEntry is one entry of the robot's command history.
type HistoryEntry struct {
	ID         string
	Command    string
	Success    bool
	ErrorCode  int
	ExecutedAt time.Time
}

// CameraID selects one of the robot's cameras.
type CameraID string

// Cameras available on the robot.
const (
	CameraFront CameraID = "front"
	CameraBack  CameraID = "back"
)

// Valid reports whether the camera id names a real camera.
func (c CameraID) Valid() bool {
	return c == CameraFront || c == CameraBack
}

// ObjectLabelNames maps detector label ids to human-readable names.
var ObjectLabelNames = map[int]string{
	0: "unknown",
	1: "person",
	2: "shelf",
	3: "charger",
	4: "door",
}

// LabelName returns the human-readable name for a detector label id,
// falling back to "unknown".
func LabelName(label int) string {
	if name, ok := ObjectLabelNames[label]; ok {
		return name
	}
	return "unknown"
}
