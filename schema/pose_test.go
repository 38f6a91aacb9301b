package schema

import (
	"testing"

	"github.com/intcatch/platymeta/errors"
)

func TestPoseDistance(t *testing.T) {
	a := Pose{Easting: 100, Northing: 100}
	b := Pose{Easting: 103, Northing: 104}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance: got %f, want 5", got)
	}
	if got := a.Distance(a); got != 0 {
		t.Errorf("Distance to self: got %f, want 0", got)
	}
}

func TestDistanceDimensionMismatch(t *testing.T) {
	if _, err := Distance([]float64{1, 2}, []float64{1, 2, 3}); err == nil {
		t.Fatal("unequal dimensions did not fail")
	} else if _, ok := err.(errors.DimensionMismatch); !ok {
		t.Fatalf("got %T, want DimensionMismatch", err)
	}

	got, err := Distance([]float64{0, 0, 0}, []float64{2, 3, 6})
	if err != nil {
		t.Fatal(err)
	}
	if got != 7 {
		t.Errorf("Distance: got %f, want 7", got)
	}
}
