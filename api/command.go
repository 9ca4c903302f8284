package api

// Command is the tagged union of commands the robot can execute. All shelf and
// location payloads carry ids, never names; resolution happens before a
// Command is constructed.
type Command interface {
	isCommand()
	// Action is the caller-facing name for the command variant.
	Action() string
}

// MoveToLocation drives the robot to a registered location.
type MoveToLocation struct {
	TargetLocationID string
}

// MoveToPose drives the robot to an absolute map coordinate. Yaw is in
// radians.
type MoveToPose struct {
	X   float64
	Y   float64
	Yaw float64
}

// MoveForward moves the robot forward (positive) or backward (negative) by a
// distance in metres. Speed of zero lets the robot decide.
type MoveForward struct {
	DistanceMeter float64
	Speed         float64
}

// RotateInPlace rotates the robot by an angle in radians, counter-clockwise
// positive.
type RotateInPlace struct {
	AngleRadian float64
}

// ReturnHome sends the robot back to its charger.
type ReturnHome struct{}

// MoveShelf picks up a shelf and delivers it to a location.
type MoveShelf struct {
	TargetShelfID         string
	DestinationLocationID string
}

// ReturnShelf returns a shelf to its home location. An empty shelf id means
// the shelf currently being carried.
type ReturnShelf struct {
	TargetShelfID string
}

// DockShelf docks the shelf the robot is under.
type DockShelf struct{}

// UndockShelf releases the currently docked shelf.
type UndockShelf struct{}

// Speak plays text on the robot's speaker.
type Speak struct {
	Text string
}

// SetSpeakerVolume sets the speaker volume (0..10).
type SetSpeakerVolume struct {
	Volume int
}

func (MoveToLocation) isCommand()   {}
func (MoveToPose) isCommand()       {}
func (MoveForward) isCommand()      {}
func (RotateInPlace) isCommand()    {}
func (ReturnHome) isCommand()       {}
func (MoveShelf) isCommand()        {}
func (ReturnShelf) isCommand()      {}
func (DockShelf) isCommand()        {}
func (UndockShelf) isCommand()      {}
func (Speak) isCommand()            {}
func (SetSpeakerVolume) isCommand() {}

// Action implements Command.
func (MoveToLocation) Action() string { return "move_to_location" }

// Action implements Command.
func (MoveToPose) Action() string { return "move_to_pose" }

// Action implements Command.
func (MoveForward) Action() string { return "move_forward" }

// Action implements Command.
func (RotateInPlace) Action() string { return "rotate_in_place" }

// Action implements Command.
func (ReturnHome) Action() string { return "return_home" }

// Action implements Command.
func (MoveShelf) Action() string { return "move_shelf" }

// Action implements Command.
func (ReturnShelf) Action() string { return "return_shelf" }

// Action implements Command.
func (DockShelf) Action() string { return "dock_shelf" }

// Action implements Command.
func (UndockShelf) Action() string { return "undock_shelf" }

// Action implements Command.
func (Speak) Action() string { return "speak" }

// Action implements Command.
func (SetSpeakerVolume) Action() string { return "set_speaker_volume" }

// CommandOptions carry the server-side options accepted by StartCommand.
type CommandOptions struct {
	CancelAll    bool
	TTSOnSuccess string
	Title        string
}

// DefaultCommandOptions returns the options used when a caller passes none:
// cancel any currently running command, no TTS, no title.
func DefaultCommandOptions() CommandOptions {
	return CommandOptions{CancelAll: true}
}

// CommandOption mutates CommandOptions.
type CommandOption func(*CommandOptions)

// WithoutCancelAll makes the new command queue behind a running one instead of
// cancelling it.
func WithoutCancelAll() CommandOption {
	return func(o *CommandOptions) { o.CancelAll = false }
}

// WithTTSOnSuccess makes the robot speak the given text when the command
// completes successfully.
func WithTTSOnSuccess(text string) CommandOption {
	return func(o *CommandOptions) { o.TTSOnSuccess = text }
}

// WithTitle attaches a display title to the command.
func WithTitle(title string) CommandOption {
	return func(o *CommandOptions) { o.Title = title }
}

// ApplyCommandOptions folds options over the defaults.
func ApplyCommandOptions(opts ...CommandOption) CommandOptions {
	o := DefaultCommandOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
