package inject

import "github.com/Sigma-Snaken/kachaka-sdk-toolkit/api"

// Annotator is an injectable detection.Annotator.
type Annotator struct {
	AnnotateFunc func(jpeg []byte, objects []api.DetectionRecord) ([]byte, error)
}

// Annotate calls the injected func.
func (a *Annotator) Annotate(jpeg []byte, objects []api.DetectionRecord) ([]byte, error) {
	return a.AnnotateFunc(jpeg, objects)
}
