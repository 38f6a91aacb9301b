// Package aggregate implements the single-pass reducer that folds a
// telemetry event stream into grid-sampled operational series.
package aggregate

import (
	log "github.com/sirupsen/logrus"

	"github.com/intcatch/platymeta/conf"
	"github.com/intcatch/platymeta/schema"
	"github.com/intcatch/platymeta/series"
	"github.com/intcatch/platymeta/telemetry"
	"github.com/intcatch/platymeta/window"
)

const secondsPerHour = 3600

// Aggregator owns the full parse state: mode flags, positions, the
// sliding windows and the output store. It is single-owner; one
// goroutine applies events in stream order for the life of the parse.
type Aggregator struct {
	cfg conf.Engine

	hasFirstGps  bool
	inWater      bool
	rcOverride   bool
	isAutonomous bool

	homePose    schema.Pose
	currentPose schema.Pose

	currentTime     float64 // seconds since log start
	sinceLastSample float64 // accumulates toward the next grid tick

	voltage  *window.Window
	position *window.PoseWindow

	store *series.Store
}

// New returns an aggregator ready to consume events from time zero.
func New(cfg conf.Engine) *Aggregator {
	return &Aggregator{
		cfg:      cfg,
		voltage:  window.NewPrefilled(cfg.VoltageWindow),
		position: window.NewPoseWindow(cfg.PositionWindow),
		store:    series.New(),
	}
}

// Apply folds one event into the state. Events must arrive with
// non-decreasing timestamps.
func (a *Aggregator) Apply(ev telemetry.Event) {
	dt := a.step(ev.Timestamp())
	traveled := a.dispatch(ev)
	a.account(dt, traveled)
}

// Advance moves the clock to ts without dispatching a payload, so that
// lines carrying only unrecognized keys still account for elapsed time.
func (a *Aggregator) Advance(ts float64) {
	dt := a.step(ts)
	a.account(dt, 0)
}

// Series returns the output store. Valid at any point during the
// parse; the caller owns interpretation of a store from an aborted run.
func (a *Aggregator) Series() *series.Store {
	return a.store
}

// step advances the clock and fires the grid tick when the accumulated
// interval exceeds the configured step.
func (a *Aggregator) step(ts float64) (dt float64) {
	dt = ts - a.currentTime
	a.currentTime = ts
	a.sinceLastSample += dt
	if a.sinceLastSample > a.cfg.GridStep {
		a.sinceLastSample = 0
		a.store.Tick()
	}
	return dt
}

// dispatch applies the event's field updates and returns the distance
// covered by this event, if any.
func (a *Aggregator) dispatch(ev telemetry.Event) (traveled float64) {
	switch e := ev.(type) {
	case telemetry.FirstGpsFlag:
		a.hasFirstGps = e.Val
	case telemetry.AutonomousFlag:
		a.isAutonomous = e.Val
	case telemetry.RcOverrideFlag:
		a.rcOverride = e.Val
	case telemetry.HomePose:
		a.homePose = e.P
		a.currentPose = e.P
	case telemetry.Pose:
		if a.hasFirstGps {
			traveled = a.applyPose(e)
		}
	case telemetry.SensorReading:
		switch e.Type {
		case telemetry.SensorEC:
			a.applyEC(e)
		case telemetry.SensorBattery:
			a.applyBattery(e)
		}
	case telemetry.MotorCommand:
		// reserved, the cumulative_motor_action series stay seeded
	}
	return traveled
}

func (a *Aggregator) applyPose(e telemetry.Pose) (traveled float64) {
	a.store.SetLast(series.DistanceFromHomeLocation, e.P.Distance(a.homePose))
	traveled = e.P.Distance(a.currentPose)
	a.currentPose = e.P
	a.position.Push(e.Ts, e.P)
	if speed, ok := a.position.Speed(); ok {
		a.store.SetLast(series.VelocityOverGround, speed)
	}
	return traveled
}

func (a *Aggregator) applyEC(e telemetry.SensorReading) {
	inWater := e.Value > a.cfg.ECWaterCutoff
	if inWater != a.inWater {
		if inWater {
			log.Infof("boat entered the water at t=%.1fs (EC %.0f)", e.Ts, e.Value)
		} else {
			log.Infof("boat left the water at t=%.1fs (EC %.0f)", e.Ts, e.Value)
		}
	}
	a.inWater = inWater
}

func (a *Aggregator) applyBattery(e telemetry.SensorReading) {
	voltage := e.Value - a.cfg.DangerVoltage
	a.store.SetLast(series.BatteryVoltage, voltage)
	a.voltage.Push(schema.Point{Val: voltage, Ts: e.Ts})
	if median, err := a.voltage.Median(); err == nil {
		a.store.SetLast(series.BatteryVoltageMedian, median)
	}
	if slope, _, ok := a.voltage.Fit(); ok {
		a.store.SetLast(series.BatteryVoltageDrainRate, slope*secondsPerHour)
	}
}

// account books dt and traveled distance into the accumulator series.
// RC override wins over autonomous; in-water and out-of-water split the
// total exactly.
func (a *Aggregator) account(dt, traveled float64) {
	a.store.AddToLast(series.TimeElapsedTotal, dt)
	a.store.AddToLast(series.DistanceTraveledTotal, traveled)
	if a.rcOverride {
		a.store.AddToLast(series.TimeElapsedRc, dt)
		a.store.AddToLast(series.DistanceTraveledRc, traveled)
	} else if a.isAutonomous {
		a.store.AddToLast(series.TimeElapsedAuto, dt)
		a.store.AddToLast(series.DistanceTraveledAuto, traveled)
	}
	if a.inWater {
		a.store.AddToLast(series.TimeElapsedInWater, dt)
	} else {
		a.store.AddToLast(series.TimeElapsedOutWater, dt)
	}
}
