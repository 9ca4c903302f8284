// Package detection shapes the robot's raw object detections into records a
// caller can log or overlay on a frame.
package detection

import (
	"context"
	"math"

	"github.com/pkg/errors"

	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"
	"github.com/Sigma-Snaken/kachaka-sdk-toolkit/connection"
)

// Annotator draws detection overlays onto a compressed frame. Implementations
// must not modify the input slice.
type Annotator interface {
	Annotate(jpeg []byte, objects []api.DetectionRecord) ([]byte, error)
}

// Detector fetches and shapes detections for one connection.
type Detector struct {
	conn *connection.Connection
}

// NewDetector returns a detector bound to the connection.
func NewDetector(conn *connection.Connection) *Detector {
	return &Detector{conn: conn}
}

// Shape converts a raw detection into a record: human-readable label, score
// rounded to four digits, and distance present only when the sensor reported
// a positive median.
func Shape(o api.ObjectDetection) api.DetectionRecord {
	rec := api.DetectionRecord{
		Label:   api.LabelName(o.Label),
		LabelID: o.Label,
		ROI:     o.ROI,
		Score:   math.Round(o.Score*1e4) / 1e4,
	}
	if o.DistanceMedian > 0 {
		d := o.DistanceMedian
		rec.Distance = &d
	}
	return rec
}

// Detect fetches the current detections and shapes them.
func (d *Detector) Detect(ctx context.Context) ([]api.DetectionRecord, error) {
	client, err := d.conn.Client(ctx)
	if err != nil {
		return nil, err
	}
	objects, err := client.GetObjectDetection(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]api.DetectionRecord, 0, len(objects))
	for _, o := range objects {
		records = append(records, Shape(o))
	}
	return records, nil
}

// CaptureWithDetection grabs a frame from the given camera and the current
// detections together, so the overlay corresponds to the image as closely as
// the unary API allows. Detections are fetched first; the image follows
// immediately.
func (d *Detector) CaptureWithDetection(
	ctx context.Context,
	camera api.CameraID,
) (api.RosCompressedImage, []api.DetectionRecord, error) {
	if !camera.Valid() {
		return api.RosCompressedImage{}, nil, errors.Errorf("unknown camera %q", camera)
	}
	client, err := d.conn.Client(ctx)
	if err != nil {
		return api.RosCompressedImage{}, nil, err
	}
	records, err := d.Detect(ctx)
	if err != nil {
		return api.RosCompressedImage{}, nil, err
	}
	var img api.RosCompressedImage
	if camera == api.CameraFront {
		img, err = client.GetFrontCameraRosCompressedImage(ctx)
	} else {
		img, err = client.GetBackCameraRosCompressedImage(ctx)
	}
	if err != nil {
		return api.RosCompressedImage{}, nil, err
	}
	return img, records, nil
}
