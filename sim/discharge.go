package sim

import (
	"math"
	"math/rand"
)

// DischargePolicy decides whether one active stay ends on the given day.
type DischargePolicy interface {
	Evaluate(rng *rand.Rand, stay *Stay, day int) bool
}

// DischargeEvaluator draws daily discharge decisions from the fitted
// discharge model under a fixed model variant.
type DischargeEvaluator struct {
	coeffs   *CoefficientStore
	calendar Calendar
	variant  string
	// includeMonth enables the seasonal term of the model family. The
	// shipped variants are fitted without it, so it defaults to off.
	includeMonth bool
}

// NewDischargeEvaluator creates an evaluator for the given model variant.
func NewDischargeEvaluator(coeffs *CoefficientStore, calendar Calendar, variant string, includeMonth bool) *DischargeEvaluator {
	return &DischargeEvaluator{
		coeffs:       coeffs,
		calendar:     calendar,
		variant:      variant,
		includeMonth: includeMonth,
	}
}

// Probability returns the discharge probability for a stay of the given unit
// on the given day: logistic link over intercept plus weekday effect (plus
// the month effect when enabled).
func (e *DischargeEvaluator) Probability(unit, day int) float64 {
	y := e.coeffs.DischargeCoefficient(unit, e.variant, TermIntercept)
	if term := WeekdayTerm(e.calendar.Weekday(day)); term != "" {
		y += e.coeffs.DischargeCoefficient(unit, e.variant, term)
	}
	if e.includeMonth {
		if term := MonthTerm(e.calendar.Month(day)); term != "" {
			y += e.coeffs.DischargeCoefficient(unit, e.variant, term)
		}
	}
	// p = exp(y) / (1 + exp(y)), written so large |y| cannot overflow to NaN.
	if y >= 0 {
		return 1 / (1 + math.Exp(-y))
	}
	ey := math.Exp(y)
	return ey / (1 + ey)
}

// Evaluate draws the day's discharge decision for one active stay.
// Independent across stays and days conditional on the covariates.
func (e *DischargeEvaluator) Evaluate(rng *rand.Rand, stay *Stay, day int) bool {
	return rng.Float64() < e.Probability(stay.UnitID, day)
}
