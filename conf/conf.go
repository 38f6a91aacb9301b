// Package conf holds the tunables of the aggregation engine, with the
// defaults the boat logs were recorded against. A setting is *always*
// found: zero-value fields are replaced by their defaults on Validate.
package conf

import (
	"fmt"

	"github.com/raintank/dur"
)

const (
	// DefaultGridStep is the width of one output sample interval, seconds.
	DefaultGridStep = 10.0

	// DefaultECWaterCutoff: EC readings above this count as in-water,
	// at or below as out of water. No hysteresis band.
	DefaultECWaterCutoff = 100.0

	// DefaultDangerVoltage is subtracted from raw battery readings, so
	// the stored series is headroom above the danger threshold.
	DefaultDangerVoltage = 14.0

	// DefaultVoltageWindow is how many battery samples feed the median
	// and drain-rate regression.
	DefaultVoltageWindow = 500

	// DefaultPositionWindow is how many pose samples feed the velocity
	// regression.
	DefaultPositionWindow = 50
)

// Engine configures one aggregation run. A zero-value field means "use
// the default": Validate fills it in, so an explicit zero cutoff or
// threshold is not representable.
type Engine struct {
	GridStep       float64 // seconds between grid ticks
	ECWaterCutoff  float64
	DangerVoltage  float64
	VoltageWindow  int
	PositionWindow int
}

// NewEngine returns the baseline configuration.
func NewEngine() Engine {
	return Engine{
		GridStep:       DefaultGridStep,
		ECWaterCutoff:  DefaultECWaterCutoff,
		DangerVoltage:  DefaultDangerVoltage,
		VoltageWindow:  DefaultVoltageWindow,
		PositionWindow: DefaultPositionWindow,
	}
}

// SetGridStep parses a duration like "10s", "1min" or a plain number of
// seconds and stores it as the grid step.
func (e *Engine) SetGridStep(s string) error {
	secs, err := dur.ParseNDuration(s)
	if err != nil {
		return fmt.Errorf("invalid grid-step %q: %s", s, err)
	}
	e.GridStep = float64(secs)
	return nil
}

// Validate fills in defaults for zero-value fields and rejects settings
// the engine cannot run with.
func (e *Engine) Validate() error {
	if e.GridStep == 0 {
		e.GridStep = DefaultGridStep
	}
	if e.GridStep < 0 {
		return fmt.Errorf("grid-step must be positive, got %f", e.GridStep)
	}
	if e.ECWaterCutoff == 0 {
		e.ECWaterCutoff = DefaultECWaterCutoff
	}
	if e.DangerVoltage == 0 {
		e.DangerVoltage = DefaultDangerVoltage
	}
	if e.VoltageWindow == 0 {
		e.VoltageWindow = DefaultVoltageWindow
	}
	if e.VoltageWindow < 2 {
		return fmt.Errorf("voltage-window must hold at least 2 samples, got %d", e.VoltageWindow)
	}
	if e.PositionWindow == 0 {
		e.PositionWindow = DefaultPositionWindow
	}
	if e.PositionWindow < 2 {
		return fmt.Errorf("position-window must hold at least 2 samples, got %d", e.PositionWindow)
	}
	return nil
}
