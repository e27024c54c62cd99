package sim

import (
	"math/rand"
	"time"
)

const testVariant = "sep"

// testCalendar anchors day 0 on Sunday 2013-03-31, so day 1 is a Monday in
// April.
func testCalendar() Calendar {
	return NewCalendar(time.Date(2013, time.March, 31, 0, 0, 0, 0, time.UTC))
}

// testStore builds a structurally complete store where the admission linear
// predictor is flat at admissionRate and the discharge predictor flat at
// dischargeLogit for every given unit.
func testStore(units []int, admissionRate, dischargeLogit float64) *CoefficientStore {
	var admission, discharge []CoefficientRow
	for _, u := range units {
		admission = append(admission, CoefficientRow{UnitID: u, Term: TermIntercept, Value: admissionRate})
		discharge = append(discharge, CoefficientRow{UnitID: u, Variant: testVariant, Term: TermIntercept, Value: dischargeLogit})
		for w := time.Monday; w <= time.Saturday; w++ {
			admission = append(admission, CoefficientRow{UnitID: u, Term: WeekdayTerm(w)})
			discharge = append(discharge, CoefficientRow{UnitID: u, Variant: testVariant, Term: WeekdayTerm(w)})
		}
		for m := time.February; m <= time.December; m++ {
			admission = append(admission, CoefficientRow{UnitID: u, Term: MonthTerm(m)})
		}
	}
	return NewCoefficientStore(admission, discharge)
}

// fixedSampler returns the same admission count on every draw.
type fixedSampler struct{ n int }

func (s fixedSampler) SampleCount(*rand.Rand, float64) int { return s.n }

// dischargeFromDay discharges every stay deterministically from a given day
// onward.
type dischargeFromDay struct{ day int }

func (p dischargeFromDay) Evaluate(_ *rand.Rand, _ *Stay, day int) bool { return day >= p.day }

// testStepper wires deterministic per-unit admission counts to the
// model-driven discharge policy.
func testStepper(units []int, beds, admissionsPerDay int, dischargeLogit float64) *DailyStepper {
	store := testStore(units, 1.0, dischargeLogit)
	cal := testCalendar()
	gen := NewAdmissionGenerator(store, cal, units)
	gen.sampler = fixedSampler{n: admissionsPerDay}
	disc := NewDischargeEvaluator(store, cal, testVariant, false)
	return NewDailyStepper(gen, disc, beds)
}

func testRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
