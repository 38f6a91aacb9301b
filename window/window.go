// Package window implements the bounded sliding windows the engine
// uses to smooth sensor readings and estimate rates of change.
package window

import (
	"github.com/montanaflynn/stats"

	"github.com/intcatch/platymeta/schema"
)

// Window is a fixed-capacity ring buffer of timestamped samples. Once
// the buffer is full, each push evicts the oldest sample.
//
// NewPrefilled seeds the buffer with zero-valued placeholders, matching
// how the firmware logs were historically post-processed: medians and
// fits then run over a mix of placeholders and real samples until the
// real data has cycled the placeholders out. The real-sample counter
// makes that contamination explicit instead of guessing from the
// oldest slot's value.
type Window struct {
	points []schema.Point
	head   int // next slot to overwrite once full
	real   int // samples pushed by callers, as opposed to placeholders
}

// New returns an empty window holding at most capacity samples.
func New(capacity int) *Window {
	return &Window{points: make([]schema.Point, 0, capacity)}
}

// NewPrefilled returns a window already filled to capacity with
// zero-valued samples at t=0.
func NewPrefilled(capacity int) *Window {
	w := New(capacity)
	w.points = w.points[:capacity]
	return w
}

// Push adds one sample, evicting the oldest if the window is full.
func (w *Window) Push(p schema.Point) {
	if len(w.points) < cap(w.points) {
		w.points = append(w.points, p)
	} else {
		w.points[w.head] = p
		w.head = (w.head + 1) % len(w.points)
	}
	if w.real < cap(w.points) {
		w.real++
	}
}

// Len returns the number of buffered samples, placeholders included.
func (w *Window) Len() int {
	return len(w.points)
}

// Real returns how many of the buffered samples were pushed by callers.
func (w *Window) Real() int {
	if w.real > len(w.points) {
		return len(w.points)
	}
	return w.real
}

// Ready reports whether the window holds at least one real sample, the
// gate for rate estimation.
func (w *Window) Ready() bool {
	return w.real > 0
}

// Values returns the buffered values, in no particular order.
func (w *Window) Values() []float64 {
	vals := make([]float64, len(w.points))
	for i, p := range w.points {
		vals[i] = p.Val
	}
	return vals
}

// Median returns the median of the buffered values, placeholders
// included. Errors on an empty window.
func (w *Window) Median() (float64, error) {
	return stats.Median(w.Values())
}

// Fit returns the least-squares slope and intercept of value against
// time over the full buffer contents. ok is false until the window is
// Ready and holds two or more samples, or when every sample shares one
// timestamp.
func (w *Window) Fit() (slope, intercept float64, ok bool) {
	if !w.Ready() || len(w.points) < 2 {
		return 0, 0, false
	}
	var n, sumT, sumTT, sumV, sumTV float64
	for _, p := range w.points {
		n++
		sumT += p.Ts
		sumTT += p.Ts * p.Ts
		sumV += p.Val
		sumTV += p.Ts * p.Val
	}
	denominator := n*sumTT - sumT*sumT
	if denominator == 0 {
		return 0, 0, false
	}
	slope = (n*sumTV - sumT*sumV) / denominator
	intercept = (sumV - slope*sumT) / n
	return slope, intercept, true
}
