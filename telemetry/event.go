// Package telemetry decodes raw platypus boat log lines into typed
// events. One line holds a millisecond offset, a severity level and a
// JSON payload; each recognized payload key becomes one event.
package telemetry

import (
	"encoding/json"

	"github.com/intcatch/platymeta/schema"
)

// Sensor types acted upon by the aggregation engine. Readings of any
// other type are decoded but ignored downstream.
const (
	SensorEC      = "EC_GOSYS"
	SensorBattery = "BATTERY"
)

// Event is one decoded payload entry. Timestamps are seconds since the
// start of the log and non-decreasing across the stream.
type Event interface {
	Timestamp() float64
}

// FirstGpsFlag signals that the boat has (or has lost) its first GPS
// fix. Pose events are meaningless before the first fix.
type FirstGpsFlag struct {
	Ts  float64
	Val bool
}

func (e FirstGpsFlag) Timestamp() float64 { return e.Ts }

// AutonomousFlag signals a switch in or out of autonomous navigation.
type AutonomousFlag struct {
	Ts  float64
	Val bool
}

func (e AutonomousFlag) Timestamp() float64 { return e.Ts }

// RcOverrideFlag signals a switch in or out of manual RC control.
// RC takes priority over autonomous when both are set.
type RcOverrideFlag struct {
	Ts  float64
	Val bool
}

func (e RcOverrideFlag) Timestamp() float64 { return e.Ts }

// Pose is a position update.
type Pose struct {
	Ts float64
	P  schema.Pose
}

func (e Pose) Timestamp() float64 { return e.Ts }

// HomePose sets the reference origin that "distance from home" is
// measured against.
type HomePose struct {
	Ts float64
	P  schema.Pose
}

func (e HomePose) Timestamp() float64 { return e.Ts }

// SensorReading is one sample from a named onboard sensor.
type SensorReading struct {
	Ts    float64
	Type  string
	Value float64
}

func (e SensorReading) Timestamp() float64 { return e.Ts }

// MotorCommand is a raw motor actuation message. Reserved: decoded so
// the cumulative_motor_action series can be populated later, currently
// a no-op in the engine.
type MotorCommand struct {
	Ts  float64
	Raw json.RawMessage
}

func (e MotorCommand) Timestamp() float64 { return e.Ts }
