package garden

import (
	"errors"
	"testing"

	"github.com/jeshuam/square-metre-garden-manager/internal/catalog"
	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
)

var testCatalog = catalog.Catalog{
	"Bean": {Name: "Bean", HarvestStart: 58, HarvestEnd: 62,
		Calendar: [12]string{"S", "S", "S", "S", "S", "S", "S", "S", "S", "S", "S", "S"}},
	"Radish": {Name: "Radish", HarvestStart: 35, HarvestEnd: 49,
		Calendar: [12]string{"S", "S", "S", "S", "S", "S", "S", "S", "S", "S", "S", "S"}},
}

func TestSowEmptySlot(t *testing.T) {
	g, _ := New("g", 1, 1)

	next, idx, err := Sow(g, 0, day(t, "2024-01-01"), "Bean", testCatalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 0 {
		t.Errorf("index = %d, want 0", idx)
	}
	if len(next.Slots[0]) != 1 {
		t.Fatalf("slot length = %d, want 1", len(next.Slots[0]))
	}

	p := next.Slots[0][0]
	if p.Name != "Bean" {
		t.Errorf("name = %q, want Bean", p.Name)
	}
	// Growth window 58-62 days has a 60-day midpoint.
	if got := dateutil.Key(p.PlantDate); got != "2024-01-01" {
		t.Errorf("plant date = %s, want 2024-01-01", got)
	}
	if got := dateutil.Key(p.HarvestDate); got != "2024-03-01" {
		t.Errorf("harvest date = %s, want 2024-03-01", got)
	}
}

func TestSowDoesNotMutateInput(t *testing.T) {
	g, _ := New("g", 1, 1)
	g.Slots[0] = Slot{plant(t, "Pea", "2024-03-01", "2024-05-01")}

	_, _, err := Sow(g, 0, day(t, "2024-06-01"), "Radish", testCatalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(g.Slots[0]) != 1 || g.Slots[0][0].Name != "Pea" {
		t.Error("input garden was mutated")
	}
}

func TestSowSameDayOverwrites(t *testing.T) {
	g, _ := New("g", 1, 1)
	g.Slots[0] = Slot{plant(t, "Pea", "2024-03-01", "2024-05-01")}

	next, idx, err := Sow(g, 0, day(t, "2024-03-01"), "Bean", testCatalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if idx != 0 {
		t.Errorf("index = %d, want 0 (same position)", idx)
	}
	if len(next.Slots[0]) != 1 {
		t.Errorf("slot length = %d, want 1 (overwrite, not insert)", len(next.Slots[0]))
	}
	if next.Slots[0][0].Name != "Bean" {
		t.Errorf("name = %q, want Bean", next.Slots[0][0].Name)
	}
}

func TestSowInsertsSorted(t *testing.T) {
	g, _ := New("g", 1, 1)
	g.Slots[0] = Slot{
		plant(t, "Early", "2024-01-01", "2024-01-20"),
		plant(t, "Late", "2024-09-01", "2024-10-01"),
	}

	// Radish on 2024-02-01 grows 42 days, done well before September.
	next, idx, err := Sow(g, 0, day(t, "2024-02-01"), "Radish", testCatalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if idx != 1 {
		t.Errorf("index = %d, want 1 (between Early and Late)", idx)
	}
	if len(next.Slots[0]) != 3 {
		t.Fatalf("slot length = %d, want 3", len(next.Slots[0]))
	}

	names := []string{next.Slots[0][0].Name, next.Slots[0][1].Name, next.Slots[0][2].Name}
	if names[0] != "Early" || names[1] != "Radish" || names[2] != "Late" {
		t.Errorf("order = %v, want [Early Radish Late]", names)
	}
	if err := next.Validate(); err != nil {
		t.Errorf("result garden invalid: %v", err)
	}
}

func TestSowAppendsAtEnd(t *testing.T) {
	g, _ := New("g", 1, 1)
	g.Slots[0] = Slot{plant(t, "Early", "2024-01-01", "2024-01-20")}

	next, idx, err := Sow(g, 0, day(t, "2024-02-01"), "Bean", testCatalog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx != 1 {
		t.Errorf("index = %d, want 1", idx)
	}
	if next.Slots[0][1].Name != "Bean" {
		t.Errorf("appended plant = %q, want Bean", next.Slots[0][1].Name)
	}
}

func TestSowSequenceKeepsInvariants(t *testing.T) {
	g, _ := New("g", 1, 1)

	// Sow out of chronological order; the slot must stay sorted and valid.
	dates := []string{"2024-09-01", "2024-01-01", "2024-05-01", "2024-03-05"}
	for _, d := range dates {
		var err error
		g, _, err = Sow(g, 0, day(t, d), "Radish", testCatalog)
		if err != nil {
			t.Fatalf("sow on %s: %v", d, err)
		}
	}

	if len(g.Slots[0]) != 4 {
		t.Fatalf("slot length = %d, want 4", len(g.Slots[0]))
	}
	if err := g.Validate(); err != nil {
		t.Errorf("garden invalid after sow sequence: %v", err)
	}
	for i := 0; i < len(g.Slots[0])-1; i++ {
		if g.Slots[0][i].PlantDate.After(g.Slots[0][i+1].PlantDate) {
			t.Errorf("slot unsorted at %d", i)
		}
	}
}

func TestSowUnknownPlant(t *testing.T) {
	g, _ := New("g", 1, 1)
	if _, _, err := Sow(g, 0, day(t, "2024-01-01"), "Triffid", testCatalog); !errors.Is(err, catalog.ErrUnknownPlant) {
		t.Errorf("expected ErrUnknownPlant, got %v", err)
	}
}

func TestSowInvalidSlot(t *testing.T) {
	g, _ := New("g", 2, 2)
	for _, idx := range []int{-1, 4} {
		if _, _, err := Sow(g, idx, day(t, "2024-01-01"), "Bean", testCatalog); !errors.Is(err, ErrInvalidSlot) {
			t.Errorf("slot %d: expected ErrInvalidSlot, got %v", idx, err)
		}
	}
}
