package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// bedReleaseProb is the chance that a bed vacated by a morning discharge is
// available for same-day reuse.
const bedReleaseProb = 0.5

// DailyStepper advances one replication by one simulated day.
type DailyStepper struct {
	admissions AdmissionSource
	discharges DischargePolicy
	totalBeds  int
}

// NewDailyStepper wires the admission and discharge models to a fixed total
// bed capacity (summed over the merged-unit set).
func NewDailyStepper(admissions AdmissionSource, discharges DischargePolicy, totalBeds int) *DailyStepper {
	return &DailyStepper{
		admissions: admissions,
		discharges: discharges,
		totalBeds:  totalBeds,
	}
}

// Step runs the day transition. The ordering is observable through the
// recorded series and must not change: occupancy is recorded before
// discharges, discharges before admissions, admissions before the capacity
// ceiling.
func (d *DailyStepper) Step(rng *rand.Rand, state *RunState, day int) {
	measured := inWindow(day)

	// Pre-step occupancy.
	if measured {
		state.Occupancy[day-1] = len(state.Active)
	}

	// Discharge decisions. LOS is sampled only for stays fully observed
	// inside the measurement window.
	dischargedToday := 0
	for _, stay := range state.Active {
		if !d.discharges.Evaluate(rng, stay, day) {
			continue
		}
		stay.DischargeDay = day
		dischargedToday++
		if measured && inWindow(stay.AdmissionDay) {
			state.LengthsOfStay = append(state.LengthsOfStay, day-stay.AdmissionDay)
		}
	}
	if measured {
		state.Discharges[day-1] = dischargedToday
	}

	// Drop discharged stays at the end of the day they were decided.
	kept := state.Active[:0]
	for _, stay := range state.Active {
		if !stay.Discharged() {
			kept = append(kept, stay)
		}
	}
	state.Active = kept

	// Today's admissions, appended in generator-randomized order.
	batch := d.admissions.Generate(rng, day)
	generated := len(batch)
	if measured {
		state.ModelArrivals[day-1] = generated
	}
	state.Active = append(state.Active, batch...)

	// Bed-release heuristic: past warm-up, each bed vacated this morning is
	// assumed available for same-day reuse with probability bedReleaseProb.
	released := 0
	if measured {
		released = binomialDraw(rng, dischargedToday, bedReleaseProb)
	}

	// Admission ceiling. Truncation acts on the whole collection in its
	// current order, so a shrunken ceiling can evict stays admitted on
	// earlier days, not just today's batch. Turned-away stays are discarded,
	// never deferred.
	ceiling := d.totalBeds - released
	if ceiling < 0 {
		ceiling = 0
	}
	turnedAway := 0
	if len(state.Active) > ceiling {
		turnedAway = len(state.Active) - ceiling
		state.Active = state.Active[:ceiling]
		logrus.Debugf("[day %4d] ceiling=%d turned away %d", day, ceiling, turnedAway)
	}

	// Admissions actually accepted today.
	if measured {
		state.AdjustedArrivals[day-1] = generated - turnedAway
	}
}
