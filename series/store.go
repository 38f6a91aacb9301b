// Package series implements the append-only store of grid-sampled
// output series, the one artifact that outlives a parse.
package series

import "fmt"

// The full set of output series. Every store holds all of them, always
// at equal length: one seed sample plus one sample per grid tick.
const (
	TimeElapsedTotal         = "time_elapsed_total"
	TimeElapsedRc            = "time_elapsed_rc"
	TimeElapsedAuto          = "time_elapsed_auto"
	TimeElapsedInWater       = "time_elapsed_in_water"
	TimeElapsedOutWater      = "time_elapsed_out_water"
	DistanceTraveledTotal    = "distance_traveled_total"
	DistanceTraveledRc       = "distance_traveled_rc"
	DistanceTraveledAuto     = "distance_traveled_auto"
	DistanceFromHomeLocation = "distance_from_home_location"
	VelocityOverGround       = "velocity_over_ground"
	BatteryVoltage           = "battery_voltage"
	BatteryVoltageMedian     = "battery_voltage_median"
	BatteryVoltageDrainRate  = "battery_voltage_drain_rate"

	// Reserved: seeded but never written, kept for output compatibility
	// until motor command payloads are processed.
	CumulativeMotorActionTotal = "cumulative_motor_action_total"
	CumulativeMotorActionRc    = "cumulative_motor_action_rc"
	CumulativeMotorActionAuto  = "cumulative_motor_action_auto"
	RcOverrideSwitchCount      = "rc_override_switch_count"
)

// Names lists every series in output order.
var Names = []string{
	TimeElapsedTotal,
	TimeElapsedRc,
	TimeElapsedAuto,
	TimeElapsedInWater,
	TimeElapsedOutWater,
	DistanceTraveledTotal,
	DistanceTraveledRc,
	DistanceTraveledAuto,
	DistanceFromHomeLocation,
	VelocityOverGround,
	BatteryVoltage,
	BatteryVoltageMedian,
	BatteryVoltageDrainRate,
	CumulativeMotorActionTotal,
	CumulativeMotorActionRc,
	CumulativeMotorActionAuto,
	RcOverrideSwitchCount,
}

// Store maps series names to their sampled values. All mutation goes
// through Tick, SetLast and AddToLast, which is what keeps the
// lock-step length invariant intact.
type Store struct {
	data map[string][]float64
}

// New returns a store with every series seeded with a single 0 sample.
func New() *Store {
	s := &Store{data: make(map[string][]float64, len(Names))}
	for _, name := range Names {
		s.data[name] = []float64{0}
	}
	return s
}

// Tick opens a new grid slot: every series gets its last value appended
// again, and updates within the new interval mutate that copy in place.
func (s *Store) Tick() {
	for _, name := range Names {
		vals := s.data[name]
		s.data[name] = append(vals, vals[len(vals)-1])
	}
}

// SetLast overwrites the newest sample of the named series.
func (s *Store) SetLast(name string, v float64) {
	vals := s.mustGet(name)
	vals[len(vals)-1] = v
}

// AddToLast adds v to the newest sample of the named series.
func (s *Store) AddToLast(name string, v float64) {
	vals := s.mustGet(name)
	vals[len(vals)-1] += v
}

// Last returns the newest sample of the named series.
func (s *Store) Last(name string) float64 {
	vals := s.mustGet(name)
	return vals[len(vals)-1]
}

// Get returns the sampled values of the named series. The slice is
// owned by the store; callers must not modify it.
func (s *Store) Get(name string) []float64 {
	return s.mustGet(name)
}

// Len returns the common length of all series.
func (s *Store) Len() int {
	return len(s.data[TimeElapsedTotal])
}

func (s *Store) mustGet(name string) []float64 {
	vals, ok := s.data[name]
	if !ok {
		panic(fmt.Sprintf("series: unknown name %q", name))
	}
	return vals
}
