package garden

import (
	"fmt"
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/catalog"
	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
)

// Sow plants a crop in the given slot on the view date and returns a new
// garden; the input garden is never mutated. The harvest date is derived
// from the rounded midpoint of the crop's harvest window.
//
// If a planting in the slot already starts on the same calendar day it is
// overwritten in place; otherwise the new planting is inserted keeping the
// slot sorted. The returned index is the planting's position in the slot.
//
// Sow does not detect or repair overlaps with neighboring plantings beyond
// the same-day overwrite: the caller is expected to only sow into a window
// that is actually free (Validate catches violations before a save).
func Sow(g *Garden, slotIndex int, viewDate time.Time, plantType string, cat catalog.Catalog) (*Garden, int, error) {
	if slotIndex < 0 || slotIndex >= len(g.Slots) {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidSlot, slotIndex)
	}

	entry, ok := cat.Lookup(plantType)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", catalog.ErrUnknownPlant, plantType)
	}

	plantDate := dateutil.TruncateToDay(viewDate)
	harvestDate := dateutil.AddDays(plantDate, entry.GrowthDays())

	next := g.Clone()
	slot := next.Slots[slotIndex]

	newPlant := Plant{Name: plantType, PlantDate: plantDate, HarvestDate: harvestDate}

	// A plant already being sown this day is replaced, position unchanged.
	for i, p := range slot {
		if dateutil.SameDay(p.PlantDate, plantDate) {
			slot[i] = newPlant
			return next, i, nil
		}
	}

	// Insert before the first plant that starts at or after our harvest,
	// which keeps the slot sorted as long as the window is free.
	at := len(slot)
	for i, p := range slot {
		if !dateutil.Before(p.PlantDate, harvestDate) {
			at = i
			break
		}
	}

	slot = append(slot, Plant{})
	copy(slot[at+1:], slot[at:])
	slot[at] = newPlant
	next.Slots[slotIndex] = slot

	return next, at, nil
}
