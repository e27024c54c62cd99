package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmissionGenerator_Rate_TermAssembly(t *testing.T) {
	admission := []CoefficientRow{
		{UnitID: 4, Term: TermIntercept, Value: 2.0},
		{UnitID: 4, Term: "weekday-1", Value: 0.5},
		{UnitID: 4, Term: "month-4", Value: 0.25},
	}
	gen := NewAdmissionGenerator(NewCoefficientStore(admission, nil), testCalendar(), []int{4})

	// Day 1 is Monday 2013-04-01: intercept + weekday + month.
	assert.InDelta(t, 2.75, gen.Rate(4, 1), 1e-12)
	// Day 7 is a Sunday: the weekday reference contributes zero.
	assert.InDelta(t, 2.25, gen.Rate(4, 7), 1e-12)
	// Day 276 is Wednesday 2014-01-01: January is the month reference and
	// this table has no Wednesday row.
	assert.InDelta(t, 2.0, gen.Rate(4, 276), 1e-12)
}

func TestAdmissionGenerator_Rate_ClampsNegativePredictor(t *testing.T) {
	store := testStore([]int{4}, -5.0, 0)
	gen := NewAdmissionGenerator(store, testCalendar(), []int{4})

	// A negative fitted expectation means near-zero arrivals, not an error.
	assert.Equal(t, rateFloor, gen.Rate(4, 1))
}

func TestAdmissionGenerator_Generate_StampsAdmissionDay(t *testing.T) {
	store := testStore([]int{4, 5}, 1.0, 0)
	gen := NewAdmissionGenerator(store, testCalendar(), []int{4, 5})
	gen.sampler = fixedSampler{n: 3}

	batch := gen.Generate(testRNG(1), 42)

	require.Len(t, batch, 6)
	for _, stay := range batch {
		assert.Equal(t, 42, stay.AdmissionDay)
		assert.False(t, stay.Discharged())
	}
}

func TestAdmissionGenerator_Generate_ShufflesAcrossUnits(t *testing.T) {
	// GIVEN two units admitting 5 stays each per day
	store := testStore([]int{1, 2}, 1.0, 0)
	gen := NewAdmissionGenerator(store, testCalendar(), []int{1, 2})
	gen.sampler = fixedSampler{n: 5}
	rng := testRNG(7)

	// WHEN many batches are generated
	leadsWithSecondUnit := 0
	trials := 200
	for i := 0; i < trials; i++ {
		batch := gen.Generate(rng, 1)
		require.Len(t, batch, 10)
		if batch[0].UnitID == 2 {
			leadsWithSecondUnit++
		}
	}

	// THEN unit iteration order does not decide batch order; the capacity
	// ceiling must not systematically favor one unit's admissions
	if leadsWithSecondUnit < trials/5 || leadsWithSecondUnit > trials*4/5 {
		t.Errorf("unit 2 led %d/%d batches; shuffle looks biased", leadsWithSecondUnit, trials)
	}
}
