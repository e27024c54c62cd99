package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationContext_Defaults(t *testing.T) {
	ctx := newTestContext(t, 5, 0, 1)

	assert.Equal(t, DefaultWarmupDays, ctx.Config.WarmupDays)
	assert.Equal(t, DefaultCooldownDays, ctx.Config.CooldownDays)
	assert.Greater(t, ctx.Config.Workers, 0)
	assert.Equal(t, "units=4+5", ctx.Config.Label)
}

func TestNewSimulationContext_RejectsMissingCoefficients(t *testing.T) {
	store := testStore([]int{4}, 1.0, 0.0)
	capacity, err := NewCapacityTable([]CapacityEntry{{UnitID: 4, Beds: 10}, {UnitID: 9, Beds: 5}})
	require.NoError(t, err)

	_, err = NewSimulationContext(store, capacity, ScenarioConfig{Units: []int{4, 9}, Variant: testVariant, Runs: 3})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCoefficient)
}

func TestNewSimulationContext_RejectsBadScenario(t *testing.T) {
	store := testStore([]int{4, 5}, 1.0, 0.0)
	capacity, err := NewCapacityTable([]CapacityEntry{{UnitID: 4, Beds: 10}})
	require.NoError(t, err)

	_, err = NewSimulationContext(store, capacity, ScenarioConfig{Units: nil, Variant: testVariant, Runs: 3})
	assert.Error(t, err, "no units")

	_, err = NewSimulationContext(store, capacity, ScenarioConfig{Units: []int{4}, Variant: testVariant, Runs: 0})
	assert.Error(t, err, "no replications")

	// Unit 5 has coefficients but no capacity row.
	_, err = NewSimulationContext(store, capacity, ScenarioConfig{Units: []int{4, 5}, Variant: testVariant, Runs: 3})
	assert.Error(t, err, "capacity table must cover the unit set")
}
