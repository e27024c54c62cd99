package sim

import (
	"errors"
	"fmt"
	"time"
)

// TermIntercept is the intercept term of both regression models. The
// reference categories (Sunday, January) carry no term of their own; their
// effect is folded into the intercept.
const TermIntercept = "intercept"

// ErrMissingCoefficient reports a (unit, term) lookup with no row behind it
// where one is required. Distinct from the reference-category case, which
// legitimately contributes zero.
var ErrMissingCoefficient = errors.New("missing coefficient")

// WeekdayTerm returns the model term for a weekday, or "" for the Sunday
// reference category.
func WeekdayTerm(w time.Weekday) string {
	if w == time.Sunday {
		return ""
	}
	return fmt.Sprintf("weekday-%d", int(w))
}

// MonthTerm returns the model term for a month, or "" for the January
// reference category.
func MonthTerm(m time.Month) string {
	if m == time.January {
		return ""
	}
	return fmt.Sprintf("month-%d", int(m))
}

// CoefficientRow is one fitted regression coefficient as loaded from a table.
// Variant is set on discharge-model rows only.
type CoefficientRow struct {
	UnitID  int
	Variant string
	Term    string
	Value   float64
}

type admissionKey struct {
	unit int
	term string
}

type dischargeKey struct {
	unit    int
	variant string
	term    string
}

// CoefficientStore answers point lookups into the fitted admission and
// discharge models. Immutable after construction, safe for concurrent
// readers.
type CoefficientStore struct {
	admission map[admissionKey]float64
	discharge map[dischargeKey]float64
}

// NewCoefficientStore builds the typed lookup maps from raw table rows.
func NewCoefficientStore(admissionRows, dischargeRows []CoefficientRow) *CoefficientStore {
	s := &CoefficientStore{
		admission: make(map[admissionKey]float64, len(admissionRows)),
		discharge: make(map[dischargeKey]float64, len(dischargeRows)),
	}
	for _, r := range admissionRows {
		s.admission[admissionKey{r.UnitID, r.Term}] = r.Value
	}
	for _, r := range dischargeRows {
		s.discharge[dischargeKey{r.UnitID, r.Variant, r.Term}] = r.Value
	}
	return s
}

// AdmissionCoefficient returns the admission-model coefficient for
// (unit, term). Absent terms read as zero; Validate rejects structurally
// incomplete tables up front, so an absent term at simulation time can only
// be a reference category.
func (s *CoefficientStore) AdmissionCoefficient(unit int, term string) float64 {
	return s.admission[admissionKey{unit, term}]
}

// DischargeCoefficient returns the discharge-model coefficient for
// (unit, variant, term), with the same absent-is-reference convention as
// AdmissionCoefficient.
func (s *CoefficientStore) DischargeCoefficient(unit int, variant, term string) float64 {
	return s.discharge[dischargeKey{unit, variant, term}]
}

// Validate checks that every term the simulation will look up is present for
// every simulated unit. Missing input data aborts the run before the first
// replication; silently defaulting a live term to zero would corrupt the
// fitted models and the statistics built on them.
func (s *CoefficientStore) Validate(units []int, variant string, includeMonth bool) error {
	for _, unit := range units {
		for _, term := range admissionTerms() {
			if _, ok := s.admission[admissionKey{unit, term}]; !ok {
				return fmt.Errorf("%w: admission model unit=%d term=%s", ErrMissingCoefficient, unit, term)
			}
		}
		for _, term := range dischargeTerms(includeMonth) {
			if _, ok := s.discharge[dischargeKey{unit, variant, term}]; !ok {
				return fmt.Errorf("%w: discharge model unit=%d variant=%s term=%s", ErrMissingCoefficient, unit, variant, term)
			}
		}
	}
	return nil
}

func admissionTerms() []string {
	terms := []string{TermIntercept}
	for w := time.Monday; w <= time.Saturday; w++ {
		terms = append(terms, WeekdayTerm(w))
	}
	for m := time.February; m <= time.December; m++ {
		terms = append(terms, MonthTerm(m))
	}
	return terms
}

func dischargeTerms(includeMonth bool) []string {
	terms := []string{TermIntercept}
	for w := time.Monday; w <= time.Saturday; w++ {
		terms = append(terms, WeekdayTerm(w))
	}
	if includeMonth {
		for m := time.February; m <= time.December; m++ {
			terms = append(terms, MonthTerm(m))
		}
	}
	return terms
}
