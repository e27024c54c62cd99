package sim

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// z95 is the two-sided 95% normal quantile.
const z95 = 1.96

// Statistic is one named value on the result record.
type Statistic struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result is the record a scenario reports: the Monte-Carlo point estimate of
// annual mean occupancy with its 95% confidence interval, tagged with the
// scenario label, model variant, and unit set.
type Result struct {
	Scenario   string      `json:"scenario"`
	Variant    string      `json:"model_variant"`
	Units      []int       `json:"units"`
	Runs       int         `json:"runs"`
	Statistics []Statistic `json:"statistics"`

	MeanOccupancy float64 `json:"mean_occupancy"`
	StdDev        float64 `json:"std_dev"`
	Lower         float64 `json:"ci_lower"`
	Upper         float64 `json:"ci_upper"`
}

// Summarize reduces the per-replication annual means to the reported record:
// sample mean e, sample standard deviation sd, half-width d = 1.96*sd/sqrt(n),
// interval [e-d, e+d].
func Summarize(cfg ScenarioConfig, results []ReplicationResult) Result {
	means := make([]float64, len(results))
	for i, r := range results {
		means[i] = r.AnnualMeanOccupancy
	}

	e := stat.Mean(means, nil)
	sd := 0.0
	if len(means) > 1 {
		sd = math.Sqrt(stat.Variance(means, nil))
	}
	d := z95 * sd / math.Sqrt(float64(len(means)))
	lower, upper := e-d, e+d

	res := Result{
		Scenario:      cfg.Label,
		Variant:       cfg.Variant,
		Units:         append([]int(nil), cfg.Units...),
		Runs:          len(results),
		MeanOccupancy: e,
		StdDev:        sd,
		Lower:         lower,
		Upper:         upper,
	}
	res.Statistics = []Statistic{
		{Name: "mean occupancy (95% CI)", Value: fmt.Sprintf("%.2f (%.2f - %.2f)", e, lower, upper)},
		{Name: "std dev", Value: fmt.Sprintf("%.2f", sd)},
	}
	return res
}

// UnitSetLabel renders a merged-unit set as "4+5".
func UnitSetLabel(units []int) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = strconv.Itoa(u)
	}
	return strings.Join(parts, "+")
}

// Print writes the result record to stdout.
func (r Result) Print() {
	fmt.Printf("scenario: %s\n", r.Scenario)
	fmt.Printf("model variant: %s\n", r.Variant)
	fmt.Printf("units: %s (runs=%d)\n", UnitSetLabel(r.Units), r.Runs)
	for _, s := range r.Statistics {
		fmt.Printf("  %-26s %s\n", s.Name, s.Value)
	}
}
