// Package garden defines the core domain types for the garden planner.
//
// A Garden is a grid of slots, each holding a chronologically ordered,
// non-overlapping sequence of plantings. All dates are calendar days; two
// plantings may share a boundary day (one harvested the day the next is
// sown) but never overlap otherwise.
package garden

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyName        = errors.New("garden name cannot be empty")
	ErrInvalidDimension = errors.New("garden width and height must be positive")
	ErrInvalidSlot      = errors.New("slot index out of range")
)

// Domain errors.
var (
	ErrPlantOverlap = errors.New("plantings overlap")
	ErrUnsorted     = errors.New("plantings out of order")
)

// Plant is one crop's occupancy of a slot, spanning from its plant date to
// its harvest date (both inclusive).
type Plant struct {
	Name        string
	PlantDate   time.Time // calendar day, UTC midnight
	HarvestDate time.Time // calendar day, UTC midnight
}

// plantWire is the persisted JSON shape of a Plant.
type plantWire struct {
	Name        string `json:"name"`
	PlantDate   string `json:"plant_date"`
	HarvestDate string `json:"harvest_date"`
}

// MarshalJSON writes the plant in its wire shape with YYYY-MM-DD dates.
func (p Plant) MarshalJSON() ([]byte, error) {
	return json.Marshal(plantWire{
		Name:        p.Name,
		PlantDate:   dateutil.Key(p.PlantDate),
		HarvestDate: dateutil.Key(p.HarvestDate),
	})
}

// UnmarshalJSON parses the wire shape back into a Plant.
func (p *Plant) UnmarshalJSON(data []byte) error {
	var w plantWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	plantDate, err := dateutil.ParseKey(w.PlantDate)
	if err != nil {
		return fmt.Errorf("plant %q: plant_date: %w", w.Name, err)
	}
	harvestDate, err := dateutil.ParseKey(w.HarvestDate)
	if err != nil {
		return fmt.Errorf("plant %q: harvest_date: %w", w.Name, err)
	}

	p.Name = w.Name
	p.PlantDate = plantDate
	p.HarvestDate = harvestDate
	return nil
}

// Duration returns the plant's occupancy in whole days.
func (p Plant) Duration() int {
	return dateutil.DaysBetween(p.PlantDate, p.HarvestDate)
}

// Slot is the ordered planting timeline of a single plot.
type Slot []Plant

// sortByPlantDate restores the ascending plant-date order.
func (s Slot) sortByPlantDate() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].PlantDate.Before(s[j].PlantDate)
	})
}

// Garden is a named grid of slots, indexed from the top left.
type Garden struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Slots  []Slot `json:"slots"`
}

// New creates an empty Garden with width*height slots.
func New(name string, width, height int) (*Garden, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimension
	}

	slots := make([]Slot, width*height)
	for i := range slots {
		slots[i] = Slot{}
	}

	return &Garden{Name: name, Width: width, Height: height, Slots: slots}, nil
}

// UnmarshalJSON loads a garden and re-sorts every slot by plant date, so a
// document written by an older client is normalized on load.
func (g *Garden) UnmarshalJSON(data []byte) error {
	type wire Garden
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*g = Garden(w)
	for _, slot := range g.Slots {
		slot.sortByPlantDate()
	}
	return nil
}

// SlotIndex converts (x, y) grid coordinates to a flat slot index.
func (g *Garden) SlotIndex(x, y int) (int, error) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d garden", ErrInvalidSlot, x, y, g.Width, g.Height)
	}
	return y*g.Width + x, nil
}

// Clone returns a deep copy of the garden.
func (g *Garden) Clone() *Garden {
	slots := make([]Slot, len(g.Slots))
	for i, slot := range g.Slots {
		slots[i] = append(Slot(nil), slot...)
	}
	return &Garden{Name: g.Name, Width: g.Width, Height: g.Height, Slots: slots}
}

// Validate checks the garden invariants: every slot sorted ascending by
// plant date, and no two plantings in a slot overlapping except at a shared
// boundary day. The returned error carries the reason, matching what the
// persistence API reports when it rejects a document.
func (g *Garden) Validate() error {
	for i, slot := range g.Slots {
		for j := 0; j < len(slot)-1; j++ {
			p1, p2 := slot[j], slot[j+1]
			if dateutil.After(p1.PlantDate, p2.PlantDate) {
				return fmt.Errorf("%w: slot %d: %q planted after %q but ordered before it",
					ErrUnsorted, i, p1.Name, p2.Name)
			}
			if dateutil.Before(p1.PlantDate, p2.HarvestDate) && dateutil.After(p1.HarvestDate, p2.PlantDate) {
				return fmt.Errorf("%w: slot %d: %q (%s to %s) overlaps %q (%s to %s)",
					ErrPlantOverlap, i,
					p1.Name, dateutil.Key(p1.PlantDate), dateutil.Key(p1.HarvestDate),
					p2.Name, dateutil.Key(p2.PlantDate), dateutil.Key(p2.HarvestDate))
			}
		}
	}
	return nil
}
