// Package catalog provides the read-only plant reference data used to derive
// growth windows and planting-month eligibility.
//
// The on-disk format is the plants.json file produced by the gardenate
// scraper: a map keyed by plant name, each entry carrying a harvest window in
// days and a 12-cell planting calendar (one cell per month, empty meaning the
// plant is not recommended for that month).
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"time"
)

// Domain errors.
var (
	ErrUnknownPlant = errors.New("unknown plant")
)

// Entry holds the reference data for a single plant type.
type Entry struct {
	Name         string     `json:"name"`
	HarvestStart int        `json:"harvest_start"` // days from sowing, window start
	HarvestEnd   int        `json:"harvest_end"`   // days from sowing, window end
	Calendar     [12]string `json:"calendar"`      // per-month markers, "" = not recommended
	Sowing       string     `json:"sowing,omitempty"`
	Spacing      string     `json:"spacing,omitempty"`
	Harvest      string     `json:"harvest,omitempty"`
	Companion    string     `json:"companion,omitempty"`
}

// GrowthDays returns the default growth duration: the rounded midpoint of the
// harvest window.
func (e Entry) GrowthDays() int {
	return int(math.Round(float64(e.HarvestStart+e.HarvestEnd) / 2))
}

// PlantableIn reports whether the plant is recommended for sowing in the
// given month.
func (e Entry) PlantableIn(month time.Month) bool {
	return e.Calendar[int(month)-1] != ""
}

// Catalog maps plant names to their reference entries.
type Catalog map[string]Entry

// Lookup returns the entry for the given plant name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c[name]
	return e, ok
}

// Names returns all plant names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load reads a catalog from a plants.json file.
// If path is empty, the built-in default catalog is returned.
func Load(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	// Entries keyed by name should carry their name; older scraper output
	// left the field blank.
	for name, e := range c {
		if e.Name == "" {
			e.Name = name
			c[name] = e
		}
	}

	return c, nil
}
