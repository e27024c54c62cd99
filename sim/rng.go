package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// PartitionedRNG hands out deterministically seeded math/rand streams, one
// per named subsystem. Each Monte-Carlo replication draws from its own
// sub-stream, so a run is bit-for-bit reproducible for any worker count.
// A single stream shared across goroutines would not be.
//
// Derivation: masterSeed XOR fnv1a64(subsystemName).
//
// Thread-safety: NOT thread-safe. The runner derives every replication's
// stream up front and hands each one to exactly one goroutine.
type PartitionedRNG struct {
	masterSeed int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from the master seed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named
// subsystem. The same name always returns the same *rand.Rand instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.masterSeed ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// SubsystemReplication returns the subsystem name for replication r.
func SubsystemReplication(r int) string {
	return fmt.Sprintf("replication_%d", r)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
