package window

import (
	"math"

	"github.com/intcatch/platymeta/schema"
)

// PoseWindow fits easting and northing against a shared time basis and
// combines the two slopes into speed over ground. Coordinates are
// translated by the first non-zero pose seen; raw UTM coordinates are
// too large to square safely in the normal equations.
type PoseWindow struct {
	east      *Window
	north     *Window
	origin    schema.Pose
	hasOrigin bool
}

// NewPoseWindow returns a placeholder-prefilled pose window holding at
// most capacity samples per axis.
func NewPoseWindow(capacity int) *PoseWindow {
	return &PoseWindow{
		east:  NewPrefilled(capacity),
		north: NewPrefilled(capacity),
	}
}

// Push adds one pose observed at ts seconds.
func (w *PoseWindow) Push(ts float64, p schema.Pose) {
	if !w.hasOrigin && !p.IsZero() {
		w.origin = p
		w.hasOrigin = true
	}
	w.east.Push(schema.Point{Val: p.Easting - w.origin.Easting, Ts: ts})
	w.north.Push(schema.Point{Val: p.Northing - w.origin.Northing, Ts: ts})
}

// Speed returns the estimated speed over ground in meters per second,
// the Euclidean norm of the per-axis fitted slopes. ok is false until
// both axis fits are ready.
func (w *PoseWindow) Speed() (speed float64, ok bool) {
	se, _, okE := w.east.Fit()
	sn, _, okN := w.north.Fit()
	if !okE || !okN {
		return 0, false
	}
	return math.Hypot(se, sn), true
}
