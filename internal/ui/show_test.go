package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/config"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

func testApp(t *testing.T) *App {
	t.Helper()
	DisableColor()

	cfg := config.Default()
	cfg.UI.WindowDays = 60
	return &App{config: cfg}
}

func TestRenderGarden(t *testing.T) {
	a := testApp(t)

	g, err := garden.New("backyard", 2, 1)
	if err != nil {
		t.Fatalf("creating garden: %v", err)
	}
	g.Slots[0] = garden.Slot{{
		Name:        "Bean",
		PlantDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		HarvestDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}}

	out, err := a.renderGarden(g, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("renderGarden failed: %v", err)
	}

	if !strings.Contains(out, "backyard") {
		t.Error("output missing garden name")
	}
	if !strings.Contains(out, "~ Bean") {
		t.Errorf("expected growing marker for Bean:\n%s", out)
	}
	if !strings.Contains(out, "(empty)") {
		t.Error("expected empty marker for the unplanted slot")
	}
	if !strings.Contains(out, "Timeline") {
		t.Error("output missing timeline header")
	}
}

func TestRenderGardenSowDay(t *testing.T) {
	a := testApp(t)

	g, _ := garden.New("backyard", 1, 1)
	g.Slots[0] = garden.Slot{{
		Name:        "Radish",
		PlantDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		HarvestDate: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC),
	}}

	out, err := a.renderGarden(g, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("renderGarden failed: %v", err)
	}

	if !strings.Contains(out, "* Radish") {
		t.Errorf("expected sow marker on the plant date:\n%s", out)
	}
}
