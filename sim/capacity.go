package sim

import "fmt"

// CapacityEntry maps one unit to its bed count.
type CapacityEntry struct {
	UnitID int
	Beds   int
}

// CapacityTable holds per-unit bed counts. Immutable after construction.
type CapacityTable struct {
	beds map[int]int
}

// NewCapacityTable builds the lookup map, rejecting malformed rows.
func NewCapacityTable(entries []CapacityEntry) (*CapacityTable, error) {
	t := &CapacityTable{beds: make(map[int]int, len(entries))}
	for _, e := range entries {
		if e.Beds < 0 {
			return nil, fmt.Errorf("capacity table: unit %d has negative bed count %d", e.UnitID, e.Beds)
		}
		t.beds[e.UnitID] = e.Beds
	}
	return t, nil
}

// Beds returns the bed count for one unit.
func (t *CapacityTable) Beds(unit int) (int, error) {
	beds, ok := t.beds[unit]
	if !ok {
		return 0, fmt.Errorf("capacity table: no entry for unit %d", unit)
	}
	return beds, nil
}

// TotalBeds sums capacity over a merged-unit set.
func (t *CapacityTable) TotalBeds(units []int) (int, error) {
	total := 0
	for _, u := range units {
		beds, err := t.Beds(u)
		if err != nil {
			return 0, err
		}
		total += beds
	}
	return total, nil
}
