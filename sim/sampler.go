package sim

import (
	"math"
	"math/rand"
)

// CountSampler draws the number of admissions for one unit-day.
type CountSampler interface {
	// SampleCount returns a non-negative draw with expectation rate.
	SampleCount(rng *rand.Rand, rate float64) int
}

// PoissonSampler draws Poisson-distributed admission counts.
type PoissonSampler struct{}

// normalApproxRate is the rate above which SampleCount switches from Knuth's
// product method to a rounded normal approximation. Daily ward arrival rates
// sit well below it in practice.
const normalApproxRate = 30.0

// SampleCount implements Knuth's product method: multiply uniforms until the
// product drops below exp(-rate).
func (PoissonSampler) SampleCount(rng *rand.Rand, rate float64) int {
	if rate <= 0 {
		return 0
	}
	if rate >= normalApproxRate {
		draw := math.Round(rng.NormFloat64()*math.Sqrt(rate) + rate)
		if draw < 0 {
			return 0
		}
		return int(draw)
	}
	limit := math.Exp(-rate)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// binomialDraw samples Binomial(n, p) as n Bernoulli trials. n is a single
// day's discharge count, which is small.
func binomialDraw(rng *rand.Rand, n int, p float64) int {
	k := 0
	for i := 0; i < n; i++ {
		if rng.Float64() < p {
			k++
		}
	}
	return k
}
