// Package schema holds the primitive value types shared by the decoder,
// the sliding windows and the aggregation engine.
package schema

// Point is one timestamped sample. Ts is in seconds since the start of
// the log, fractional milliseconds preserved.
type Point struct {
	Val float64
	Ts  float64
}
