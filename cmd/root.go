package cmd

import (
	"encoding/json"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/ward-sim/ward-sim/sim"
)

var (
	// CLI flags for the scenario
	seed         int64  // Seed for the replication RNG streams
	runs         int    // Number of Monte-Carlo replications
	workers      int    // Replication worker pool size
	units        []int  // Unit identifiers simulated jointly
	variant      string // Discharge model variant
	includeMonth bool   // Seasonal term in the discharge model
	dayZero      string // Calendar date of simulation day 0
	warmupDays   int    // Warm-up days before the measurement window
	cooldownDays int    // Cool-down days after day 365
	scenario     string // Scenario label for the result record
	logLevel     string // Log verbosity level

	// CLI flags for the input tables
	admissionCoeffsPath string
	dischargeCoeffsPath string
	capacityPath        string

	outputPath string // Optional JSON destination for the result record
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "wardsim",
	Short: "Monte-Carlo simulator for inpatient ward occupancy",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the occupancy simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		anchor, err := time.Parse("2006-01-02", dayZero)
		if err != nil {
			logrus.Fatalf("Invalid --day-zero %q (want YYYY-MM-DD): %v", dayZero, err)
		}

		// Load the regression and capacity tables
		admissionRows, err := LoadCoefficientRows(admissionCoeffsPath)
		if err != nil {
			logrus.Fatalf("Unable to read admission coefficients: %v", err)
		}
		dischargeRows, err := LoadCoefficientRows(dischargeCoeffsPath)
		if err != nil {
			logrus.Fatalf("Unable to read discharge coefficients: %v", err)
		}
		capacity, err := LoadCapacityTable(capacityPath)
		if err != nil {
			logrus.Fatalf("Unable to read capacity table: %v", err)
		}

		cfg := sim.ScenarioConfig{
			Label:        scenario,
			Units:        units,
			Variant:      variant,
			IncludeMonth: includeMonth,
			DayZero:      anchor,
			WarmupDays:   warmupDays,
			CooldownDays: cooldownDays,
			Runs:         runs,
			Workers:      workers,
			Seed:         seed,
		}
		ctx, err := sim.NewSimulationContext(sim.NewCoefficientStore(admissionRows, dischargeRows), capacity, cfg)
		if err != nil {
			logrus.Fatalf("Invalid simulation inputs: %v", err)
		}

		logrus.Infof("Starting simulation: units=%v variant=%s runs=%d seed=%d", units, variant, runs, seed)
		startTime := time.Now()

		results, err := sim.NewMonteCarloRunner(ctx).Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}

		result := sim.Summarize(ctx.Config, results)
		result.Print()
		if outputPath != "" {
			writeResult(result, outputPath)
		}

		logrus.Infof("Simulation complete in %s.", time.Since(startTime).Round(time.Millisecond))
	},
}

// writeResult marshals the result record to a JSON file.
func writeResult(result sim.Result, path string) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		logrus.Fatalf("Error encoding result: %v", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		logrus.Fatalf("Error writing %s: %v", path, err)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the replication RNG streams")
	runCmd.Flags().IntVar(&runs, "runs", 100, "Number of Monte-Carlo replications")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Replication worker pool size (0 = GOMAXPROCS)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Scenario configs
	runCmd.Flags().IntSliceVar(&units, "units", []int{4}, "Unit identifiers to simulate jointly")
	runCmd.Flags().StringVar(&variant, "variant", "sep", "Discharge model variant")
	runCmd.Flags().BoolVar(&includeMonth, "discharge-month-effect", false, "Include the seasonal term in the discharge model")
	runCmd.Flags().StringVar(&dayZero, "day-zero", "2013-03-31", "Calendar date of simulation day 0 (YYYY-MM-DD)")
	runCmd.Flags().IntVar(&warmupDays, "warmup-days", sim.DefaultWarmupDays, "Warm-up days before the measurement window")
	runCmd.Flags().IntVar(&cooldownDays, "cooldown-days", sim.DefaultCooldownDays, "Cool-down days after day 365")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "Scenario label for the result record (default units=<set>)")

	// Input tables
	runCmd.Flags().StringVar(&admissionCoeffsPath, "admission-coeffs", "admission_coefficients.yaml", "Admission model coefficient table")
	runCmd.Flags().StringVar(&dischargeCoeffsPath, "discharge-coeffs", "discharge_coefficients.yaml", "Discharge model coefficient table")
	runCmd.Flags().StringVar(&capacityPath, "capacity", "capacity.yaml", "Unit bed-capacity table")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Optional path for the result record as JSON")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
