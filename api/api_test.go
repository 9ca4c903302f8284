package api_test

import (
	"testing"

	"go.viam.com/test"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
)

func TestCommandStateActive(t *testing.T) {
	test.That(t, api.CommandStatePending.Active(), test.ShouldBeTrue)
	test.That(t, api.CommandStateRunning.Active(), test.ShouldBeTrue)
	test.That(t, api.CommandStateUnspecified.Active(), test.ShouldBeFalse)
}

func TestCommandStateString(t *testing.T) {
	test.That(t, api.CommandStatePending.String(), test.ShouldEqual, "PENDING")
	test.That(t, api.CommandStateRunning.String(), test.ShouldEqual, "RUNNING")
	test.That(t, api.CommandStateUnspecified.String(), test.ShouldEqual, "UNSPECIFIED")
}

func TestLabelName(t *testing.T) {
	test.That(t, api.LabelName(0), test.ShouldEqual, "unknown")
	test.That(t, api.LabelName(1), test.ShouldEqual, "person")
	test.That(t, api.LabelName(2), test.ShouldEqual, "shelf")
	test.That(t, api.LabelName(3), test.ShouldEqual, "charger")
	test.That(t, api.LabelName(4), test.ShouldEqual, "door")
	test.That(t, api.LabelName(99), test.ShouldEqual, "unknown")
}

func TestCameraIDValid(t *testing.T) {
	test.That(t, api.CameraFront.Valid(), test.ShouldBeTrue)
	test.That(t, api.CameraBack.Valid(), test.ShouldBeTrue)
	test.That(t, api.CameraID("side").Valid(), test.ShouldBeFalse)
}

func TestApplyCommandOptions(t *testing.T) {
	opts := api.ApplyCommandOptions()
	test.That(t, opts, test.ShouldResemble, api.CommandOptions{CancelAll: true})

	opts = api.ApplyCommandOptions(
		api.WithoutCancelAll(),
		api.WithTTSOnSuccess("done"),
		api.WithTitle("kitchen run"),
	)
	test.That(t, opts, test.ShouldResemble, api.CommandOptions{
		CancelAll:    false,
		TTSOnSuccess: "done",
		Title:        "kitchen run",
	})
}

func TestCommandActions(t *testing.T) {
	cases := map[string]api.Command{
		"move_to_location":   api.MoveToLocation{},
		"move_to_pose":       api.MoveToPose{},
		"move_forward":       api.MoveForward{},
		"rotate_in_place":    api.RotateInPlace{},
		"return_home":        api.ReturnHome{},
		"move_shelf":         api.MoveShelf{},
		"return_shelf":       api.ReturnShelf{},
		"dock_shelf":         api.DockShelf{},
		"undock_shelf":       api.UndockShelf{},
		"speak":              api.Speak{},
		"set_speaker_volume": api.SetSpeakerVolume{},
	}
	for want, cmd := range cases {
		test.That(t, cmd.Action(), test.ShouldEqual, want)
	}
}
