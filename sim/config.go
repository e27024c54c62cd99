package sim

import (
	"fmt"
	"runtime"
	"time"
)

// Default warm-up and cool-down lengths. Warm-up populates realistic
// occupancy before day 1; cool-down lets late-year admissions discharge so
// their length of stay is observable.
const (
	DefaultWarmupDays   = 14
	DefaultCooldownDays = 7
)

// ScenarioConfig is everything that defines one simulated scenario.
type ScenarioConfig struct {
	Label        string
	Units        []int
	Variant      string
	IncludeMonth bool
	DayZero      time.Time
	WarmupDays   int
	CooldownDays int
	Runs         int
	Workers      int
	Seed         int64
}

// SimulationContext bundles the read-only inputs every replication shares.
// There is deliberately no ambient state: coefficient and capacity tables and
// randomness always travel through explicit values.
type SimulationContext struct {
	Coeffs   *CoefficientStore
	Capacity *CapacityTable
	Config   ScenarioConfig
}

// NewSimulationContext validates the scenario against its input tables and
// fills in defaults. Data-integrity problems are fatal here, before any
// replication runs.
func NewSimulationContext(coeffs *CoefficientStore, capacity *CapacityTable, cfg ScenarioConfig) (*SimulationContext, error) {
	if len(cfg.Units) == 0 {
		return nil, fmt.Errorf("scenario: no units to simulate")
	}
	if cfg.Runs <= 0 {
		return nil, fmt.Errorf("scenario: runs must be positive, got %d", cfg.Runs)
	}
	if cfg.WarmupDays <= 0 {
		cfg.WarmupDays = DefaultWarmupDays
	}
	if cfg.CooldownDays <= 0 {
		cfg.CooldownDays = DefaultCooldownDays
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.GOMAXPROCS(0)
	}
	if cfg.Label == "" {
		cfg.Label = "units=" + UnitSetLabel(cfg.Units)
	}
	if err := coeffs.Validate(cfg.Units, cfg.Variant, cfg.IncludeMonth); err != nil {
		return nil, err
	}
	if _, err := capacity.TotalBeds(cfg.Units); err != nil {
		return nil, err
	}
	return &SimulationContext{Coeffs: coeffs, Capacity: capacity, Config: cfg}, nil
}
