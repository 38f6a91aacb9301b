package window

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/intcatch/platymeta/schema"
)

func TestMedian(t *testing.T) {
	Convey("When pushing 1..5 into a window of capacity 5", t, func(c C) {
		w := New(5)
		for i, v := range []float64{1, 2, 3, 4, 5} {
			w.Push(schema.Point{Val: v, Ts: float64(i)})
		}
		med, err := w.Median()
		c.So(err, ShouldBeNil)
		c.So(med, ShouldEqual, 3)
	})

	Convey("When the window is empty", t, func(c C) {
		w := New(5)
		_, err := w.Median()
		c.So(err, ShouldNotBeNil)
	})

	Convey("When a prefilled window still holds placeholders", t, func(c C) {
		w := NewPrefilled(3)
		w.Push(schema.Point{Val: 9, Ts: 1})
		med, err := w.Median()
		c.So(err, ShouldBeNil)
		// two placeholder zeros and one real sample
		c.So(med, ShouldEqual, 0)
	})
}

func TestFit(t *testing.T) {
	Convey("When fitting a clean linear signal", t, func(c C) {
		w := New(5)
		w.Push(schema.Point{Val: 10, Ts: 0})
		w.Push(schema.Point{Val: 12, Ts: 1})
		w.Push(schema.Point{Val: 14, Ts: 2})
		slope, intercept, ok := w.Fit()
		c.So(ok, ShouldBeTrue)
		c.So(slope, ShouldAlmostEqual, 2.0, 1e-9)
		c.So(intercept, ShouldAlmostEqual, 10.0, 1e-9)
	})

	Convey("When no real sample has been pushed", t, func(c C) {
		w := NewPrefilled(5)
		_, _, ok := w.Fit()
		c.So(ok, ShouldBeFalse)
		c.So(w.Ready(), ShouldBeFalse)
	})

	Convey("When the window holds fewer than two samples", t, func(c C) {
		w := New(5)
		w.Push(schema.Point{Val: 1, Ts: 1})
		_, _, ok := w.Fit()
		c.So(ok, ShouldBeFalse)
	})

	Convey("When every sample shares one timestamp", t, func(c C) {
		w := New(5)
		w.Push(schema.Point{Val: 1, Ts: 3})
		w.Push(schema.Point{Val: 2, Ts: 3})
		_, _, ok := w.Fit()
		c.So(ok, ShouldBeFalse)
	})

	Convey("When a prefilled window opens its gate on the first real sample", t, func(c C) {
		w := NewPrefilled(4)
		w.Push(schema.Point{Val: 8, Ts: 2})
		c.So(w.Ready(), ShouldBeTrue)
		c.So(w.Real(), ShouldEqual, 1)
		w.Push(schema.Point{Val: 8, Ts: 4})
		slope, _, ok := w.Fit()
		c.So(ok, ShouldBeTrue)
		// the real signal is flat, the two leftover zero placeholders
		// at t=0 tilt the fit: points (0,0),(0,0),(2,8),(4,8)
		c.So(slope, ShouldAlmostEqual, 24.0/11.0, 1e-9)
	})
}

func TestEviction(t *testing.T) {
	Convey("When pushing past capacity", t, func(c C) {
		w := New(2)
		w.Push(schema.Point{Val: 1, Ts: 0})
		w.Push(schema.Point{Val: 2, Ts: 1})
		w.Push(schema.Point{Val: 3, Ts: 2})
		c.So(w.Len(), ShouldEqual, 2)
		c.So(w.Values(), ShouldContain, 2.0)
		c.So(w.Values(), ShouldContain, 3.0)
		c.So(w.Values(), ShouldNotContain, 1.0)
	})

	Convey("When real samples cycle out a prefilled window", t, func(c C) {
		w := NewPrefilled(2)
		w.Push(schema.Point{Val: 5, Ts: 0})
		w.Push(schema.Point{Val: 6, Ts: 1})
		w.Push(schema.Point{Val: 7, Ts: 2})
		c.So(w.Real(), ShouldEqual, 2)
		c.So(w.Values(), ShouldNotContain, 0.0)
	})
}

func TestPoseWindowSpeed(t *testing.T) {
	Convey("When the boat moves east at a steady 3 m/s", t, func(c C) {
		w := NewPoseWindow(3)
		w.Push(0, schema.Pose{Easting: 500100, Northing: 4600200})
		w.Push(1, schema.Pose{Easting: 500103, Northing: 4600200})
		w.Push(2, schema.Pose{Easting: 500106, Northing: 4600200})
		speed, ok := w.Speed()
		c.So(ok, ShouldBeTrue)
		c.So(speed, ShouldAlmostEqual, 3.0, 1e-6)
	})

	Convey("When the boat moves diagonally", t, func(c C) {
		w := NewPoseWindow(3)
		w.Push(0, schema.Pose{Easting: 100, Northing: 100})
		w.Push(1, schema.Pose{Easting: 103, Northing: 104})
		w.Push(2, schema.Pose{Easting: 106, Northing: 108})
		speed, ok := w.Speed()
		c.So(ok, ShouldBeTrue)
		c.So(speed, ShouldAlmostEqual, 5.0, 1e-6)
	})

	Convey("When no pose has been pushed", t, func(c C) {
		w := NewPoseWindow(3)
		_, ok := w.Speed()
		c.So(ok, ShouldBeFalse)
	})
}
