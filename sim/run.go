package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"
)

// RunSimulator drives the daily stepper across one full replication window:
// warm-up days (negative indices through 0), the measurement window [1, 365],
// and cool-down days beyond 365.
type RunSimulator struct {
	stepper      *DailyStepper
	warmupDays   int
	cooldownDays int
}

// NewRunSimulator creates a run simulator; it holds no per-replication state
// and may be shared across concurrent replications.
func NewRunSimulator(stepper *DailyStepper, warmupDays, cooldownDays int) *RunSimulator {
	return &RunSimulator{
		stepper:      stepper,
		warmupDays:   warmupDays,
		cooldownDays: cooldownDays,
	}
}

// Run executes one replication against a fresh RunState and returns it
// together with the annual mean occupancy over days [1, 365].
func (r *RunSimulator) Run(rng *rand.Rand) (*RunState, float64) {
	state := NewRunState()
	start := 1 - r.warmupDays
	end := MeasurementDays + r.cooldownDays
	for day := start; day <= end; day++ {
		r.stepper.Step(rng, state, day)
	}

	occ := make([]float64, MeasurementDays)
	for i, v := range state.Occupancy {
		occ[i] = float64(v)
	}
	mean := stat.Mean(occ, nil)
	logrus.Debugf("replication finished: days %d..%d, mean occupancy %.2f, %d LOS samples",
		start, end, mean, len(state.LengthsOfStay))
	return state, mean
}
