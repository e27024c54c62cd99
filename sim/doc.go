// Package sim provides the day-stepped Monte-Carlo engine for inpatient ward
// occupancy.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - stay.go: the Stay lifecycle and the per-replication RunState
//   - stepper.go: the day transition (discharges, admissions, capacity ceiling)
//   - montecarlo.go: replication fan-out and deterministic per-replication seeding
//
// # Architecture
//
// Two fitted regression models drive the engine. The admission model turns
// (unit, weekday, month) into a Poisson arrival rate; the discharge model
// turns (unit, weekday) into a daily discharge probability through a logistic
// link. Both read from an immutable CoefficientStore validated before the
// first replication.
//
// A replication walks a warm-up window, the 365-day measurement window, and a
// cool-down window one day at a time, mutating only its own RunState. The
// MonteCarloRunner repeats that across a worker pool, one seed-derived RNG
// stream per replication, and Summarize reduces the per-replication annual
// means to a point estimate with a 95% confidence interval.
//
// The extension points are small interfaces:
//   - CountSampler: admission count draw for one unit-day
//   - AdmissionSource: produce the day's shuffled batch of new stays
//   - DischargePolicy: decide whether one active stay ends today
package sim
