package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/ward-sim/ward-sim/sim"
)

// YAML row formats for the three input tables, matching what the regression
// fitting pipeline exports. Variant is present on discharge rows only.

type coefficientFile struct {
	Rows []coefficientRow `yaml:"rows"`
}

type coefficientRow struct {
	Unit    int     `yaml:"unit"`
	Variant string  `yaml:"variant"`
	Term    string  `yaml:"term"`
	Value   float64 `yaml:"value"`
}

type capacityFile struct {
	Rows []capacityRow `yaml:"rows"`
}

type capacityRow struct {
	Unit int `yaml:"unit"`
	Beds int `yaml:"beds"`
}

// LoadCoefficientRows reads one regression coefficient table from YAML.
func LoadCoefficientRows(path string) ([]sim.CoefficientRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coefficient table: %w", err)
	}
	var file coefficientFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse coefficient table %s: %w", path, err)
	}
	rows := make([]sim.CoefficientRow, 0, len(file.Rows))
	for _, r := range file.Rows {
		rows = append(rows, sim.CoefficientRow{
			UnitID:  r.Unit,
			Variant: r.Variant,
			Term:    r.Term,
			Value:   r.Value,
		})
	}
	return rows, nil
}

// LoadCapacityTable reads the unit bed-capacity table from YAML.
func LoadCapacityTable(path string) (*sim.CapacityTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read capacity table: %w", err)
	}
	var file capacityFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse capacity table %s: %w", path, err)
	}
	entries := make([]sim.CapacityEntry, 0, len(file.Rows))
	for _, r := range file.Rows {
		entries = append(entries, sim.CapacityEntry{UnitID: r.Unit, Beds: r.Beds})
	}
	return sim.NewCapacityTable(entries)
}
