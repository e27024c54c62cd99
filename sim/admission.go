package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// rateFloor is the minimum admission rate. A fitted linear predictor can go
// non-positive on quiet weekday/month combinations; the model treats that as
// near-zero arrivals, not as an error.
const rateFloor = 1e-4

// AdmissionSource produces a day's batch of new stays.
type AdmissionSource interface {
	Generate(rng *rand.Rand, day int) []*Stay
}

// AdmissionGenerator turns the fitted admission model into a batch of new
// stays for one simulated day, independently per unit.
type AdmissionGenerator struct {
	coeffs   *CoefficientStore
	calendar Calendar
	units    []int
	sampler  CountSampler
}

// NewAdmissionGenerator creates a generator drawing Poisson counts for the
// given unit set.
func NewAdmissionGenerator(coeffs *CoefficientStore, calendar Calendar, units []int) *AdmissionGenerator {
	return &AdmissionGenerator{
		coeffs:   coeffs,
		calendar: calendar,
		units:    units,
		sampler:  PoissonSampler{},
	}
}

// Rate returns the clamped Poisson rate for one unit on one day: intercept
// plus weekday and month effects, with the reference categories contributing
// zero.
func (g *AdmissionGenerator) Rate(unit, day int) float64 {
	y := g.coeffs.AdmissionCoefficient(unit, TermIntercept)
	if term := WeekdayTerm(g.calendar.Weekday(day)); term != "" {
		y += g.coeffs.AdmissionCoefficient(unit, term)
	}
	if term := MonthTerm(g.calendar.Month(day)); term != "" {
		y += g.coeffs.AdmissionCoefficient(unit, term)
	}
	if y < rateFloor {
		return rateFloor
	}
	return y
}

// Generate draws the day's admissions for every simulated unit and returns
// them in random order. The shuffle is a fairness contract, not cosmetics:
// batch order decides which stays a binding capacity ceiling turns away, and
// it must not correlate with unit iteration order.
func (g *AdmissionGenerator) Generate(rng *rand.Rand, day int) []*Stay {
	var batch []*Stay
	for _, unit := range g.units {
		rate := g.Rate(unit, day)
		n := g.sampler.SampleCount(rng, rate)
		logrus.Debugf("[day %4d] unit %d: rate=%.4f admissions=%d", day, unit, rate, n)
		for i := 0; i < n; i++ {
			batch = append(batch, newStay(unit, day))
		}
	}
	rng.Shuffle(len(batch), func(i, j int) {
		batch[i], batch[j] = batch[j], batch[i]
	})
	return batch
}
