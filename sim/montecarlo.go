package sim

import (
	"math/rand"
	"sync"

	"github.com/sirupsen/logrus"
)

// ReplicationResult carries the one scalar a replication reports upward.
type ReplicationResult struct {
	AnnualMeanOccupancy float64
}

// MonteCarloRunner repeats the run simulator across independent replications.
// Replications share only the read-only tables; each draws from its own
// seed-derived RNG stream, so the output is identical for any worker count.
type MonteCarloRunner struct {
	ctx *SimulationContext
}

// NewMonteCarloRunner creates a runner over a validated simulation context.
func NewMonteCarloRunner(ctx *SimulationContext) *MonteCarloRunner {
	return &MonteCarloRunner{ctx: ctx}
}

// Run executes all replications and returns one result per replication,
// indexed by replication number.
func (m *MonteCarloRunner) Run() ([]ReplicationResult, error) {
	cfg := m.ctx.Config
	totalBeds, err := m.ctx.Capacity.TotalBeds(cfg.Units)
	if err != nil {
		return nil, err
	}

	calendar := NewCalendar(cfg.DayZero)
	admissions := NewAdmissionGenerator(m.ctx.Coeffs, calendar, cfg.Units)
	discharges := NewDischargeEvaluator(m.ctx.Coeffs, calendar, cfg.Variant, cfg.IncludeMonth)
	runner := NewRunSimulator(NewDailyStepper(admissions, discharges, totalBeds), cfg.WarmupDays, cfg.CooldownDays)

	// Derive every replication stream before fanning out; PartitionedRNG is
	// not safe for concurrent derivation.
	prng := NewPartitionedRNG(cfg.Seed)
	streams := make([]*rand.Rand, cfg.Runs)
	for r := range streams {
		streams[r] = prng.ForSubsystem(SubsystemReplication(r))
	}

	workers := cfg.Workers
	if workers > cfg.Runs {
		workers = cfg.Runs
	}
	logrus.Infof("Running %d replications on %d workers (beds=%d, units=%v)",
		cfg.Runs, workers, totalBeds, cfg.Units)

	results := make([]ReplicationResult, cfg.Runs)
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for r := range jobs {
				_, mean := runner.Run(streams[r])
				results[r] = ReplicationResult{AnnualMeanOccupancy: mean}
			}
		}()
	}
	for r := 0; r < cfg.Runs; r++ {
		jobs <- r
	}
	close(jobs)
	wg.Wait()

	return results, nil
}
