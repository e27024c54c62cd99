package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityTable_TotalBeds_MergedUnits(t *testing.T) {
	table, err := NewCapacityTable([]CapacityEntry{{UnitID: 4, Beds: 52}, {UnitID: 5, Beds: 31}})
	require.NoError(t, err)

	total, err := table.TotalBeds([]int{4, 5})

	require.NoError(t, err)
	assert.Equal(t, 83, total)
}

func TestCapacityTable_MissingUnit(t *testing.T) {
	table, err := NewCapacityTable([]CapacityEntry{{UnitID: 4, Beds: 52}})
	require.NoError(t, err)

	_, err = table.TotalBeds([]int{4, 9})
	assert.Error(t, err)

	_, err = table.Beds(9)
	assert.Error(t, err)
}

func TestNewCapacityTable_NegativeBeds(t *testing.T) {
	_, err := NewCapacityTable([]CapacityEntry{{UnitID: 4, Beds: -1}})
	assert.Error(t, err)
}
