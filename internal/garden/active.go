package garden

import (
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
)

// ActivePlants returns the plants in the slot whose span covers the query
// date (inclusive both ends). Because plantings never overlap except at
// shared boundary days, at most two plants can be active: one harvested on
// the query date and one sown on it.
func ActivePlants(slot Slot, date time.Time) []Plant {
	var active []Plant
	for _, p := range slot {
		if dateutil.Between(date, p.PlantDate, p.HarvestDate) {
			active = append(active, p)
		}
	}
	return active
}

// Activity classifies what is happening in a slot on a given day. Each state
// holds at most one plant.
type Activity struct {
	Sow     *Plant // sown on the query date
	Harvest *Plant // harvested on the query date
	Growing *Plant // active but neither sown nor harvested that day
}

// SlotActivity resolves the active plants in a slot for the query date and
// tags each one. A zero-length planting (sown and harvested the same day)
// counts as a sow, not a harvest.
func SlotActivity(slot Slot, date time.Time) Activity {
	var a Activity
	for _, p := range ActivePlants(slot, date) {
		p := p
		switch {
		case dateutil.SameDay(date, p.PlantDate):
			a.Sow = &p
		case dateutil.SameDay(date, p.HarvestDate):
			a.Harvest = &p
		default:
			a.Growing = &p
		}
	}
	return a
}

// NeedsPlanting reports whether the slot has room for a new plant on this
// day: nothing sown and nothing growing. A harvest alone still leaves the
// slot open to a same-day sowing.
func (a Activity) NeedsPlanting() bool {
	return a.Sow == nil && a.Growing == nil
}
