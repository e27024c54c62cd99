package sim

import "math"

// MeasurementDays is the length of the reported occupancy window, days 1..365.
const MeasurementDays = 365

// dischargeUnset marks a stay whose discharge has not been decided yet.
// Day indices can go negative during warm-up, so -1 is not a safe sentinel.
const dischargeUnset = math.MinInt32

// Stay is one patient's continuous occupation of a bed, from admission day to
// discharge day. DischargeDay is set exactly once, by the daily stepper, and
// is always >= AdmissionDay.
type Stay struct {
	UnitID       int
	AdmissionDay int
	DischargeDay int
}

func newStay(unit, day int) *Stay {
	return &Stay{UnitID: unit, AdmissionDay: day, DischargeDay: dischargeUnset}
}

// Discharged reports whether the stay's discharge day has been set.
func (s *Stay) Discharged() bool {
	return s.DischargeDay != dischargeUnset
}

// RunState is the mutable state of a single replication. It is created fresh
// per replication and discarded afterwards; nothing in it crosses replication
// boundaries. The per-day series cover the measurement window only and are
// indexed by day-1.
type RunState struct {
	Active []*Stay

	Occupancy        []int
	Discharges       []int
	ModelArrivals    []int
	AdjustedArrivals []int

	// Completed lengths of stay, recorded only when both the admission day
	// and the discharge day fall inside the measurement window. Partially
	// observed warm-up and cool-down stays would bias the estimate.
	LengthsOfStay []int
}

// NewRunState allocates the fixed-size day series for one replication.
func NewRunState() *RunState {
	return &RunState{
		Occupancy:        make([]int, MeasurementDays),
		Discharges:       make([]int, MeasurementDays),
		ModelArrivals:    make([]int, MeasurementDays),
		AdjustedArrivals: make([]int, MeasurementDays),
	}
}

// inWindow reports whether a day lies in the measurement window [1, 365].
func inWindow(day int) bool {
	return day >= 1 && day <= MeasurementDays
}
