// Package transport holds the reference table of shipping modes. The table
// is static configuration consumed by the episode simulator; it plays no
// role in policy computation.
package transport

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// A Mode describes one way of shipping an order.
type Mode struct {
	// Cost is the flat surcharge applied to every period that places an
	// order, regardless of the order size.
	Cost float64 `yaml:"cost"`

	// TransitTime is the delivery delay in periods.
	TransitTime int `yaml:"transit_time"`
}

// A Table maps mode names to modes. Tables are injected read-only into the
// simulator; missing a name means no surcharge is applied.
type Table map[string]Mode

// DefaultTable returns the canonical mode set.
func DefaultTable() Table {
	return Table{
		"truck": {Cost: 100, TransitTime: 1},
		"ship":  {Cost: 50, TransitTime: 3},
		"rail":  {Cost: 75, TransitTime: 2},
		"air":   {Cost: 200, TransitTime: 0},
	}
}

// LoadFile reads a mode table from a YAML file. Entries in the file are
// merged over the defaults, so a file only needs to list the modes it
// changes or adds.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transport table: %w", err)
	}

	loaded := Table{}
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("parse transport table: %w", err)
	}

	table := DefaultTable()
	for name, mode := range loaded {
		table[name] = mode
	}

	return table, nil
}
