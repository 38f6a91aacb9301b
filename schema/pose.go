package schema

import (
	"fmt"
	"math"

	"github.com/intcatch/platymeta/errors"
)

// Pose is a 2D position in a local UTM-like frame, meters.
type Pose struct {
	Easting  float64
	Northing float64
}

// IsZero reports whether the pose is the zero value, which the engine
// treats as "no fix yet".
func (p Pose) IsZero() bool {
	return p.Easting == 0 && p.Northing == 0
}

// Distance returns the Euclidean distance to o.
func (p Pose) Distance(o Pose) float64 {
	return math.Hypot(p.Easting-o.Easting, p.Northing-o.Northing)
}

// Distance returns the Euclidean distance between two coordinate
// vectors of equal dimension.
func Distance(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewDimensionMismatch(fmt.Sprintf("%d vs %d", len(a), len(b)))
	}
	var sq float64
	for i := range a {
		d := a[i] - b[i]
		sq += d * d
	}
	return math.Sqrt(sq), nil
}
