package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	s, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test store: %v", err)
	}

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}

func TestCreate(t *testing.T) {
	s := newTestStore(t)

	g, err := s.Create(context.Background(), "backyard", 3, 2)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if g.Name != "backyard" || g.Width != 3 || g.Height != 2 {
		t.Errorf("garden = %+v", g)
	}
	if len(g.Slots) != 6 {
		t.Errorf("slots = %d, want 6", len(g.Slots))
	}
}

func TestCreateDuplicate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, "backyard", 1, 1); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	_, err := s.Create(ctx, "backyard", 2, 2)
	if !errors.Is(err, garden.ErrGardenExists) {
		t.Errorf("expected ErrGardenExists, got %v", err)
	}
}

func TestCreateInvalidDimensions(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Create(context.Background(), "bad", 0, 2); !errors.Is(err, garden.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

func TestGetRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g, err := s.Create(ctx, "backyard", 2, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	g.Slots[0] = garden.Slot{{
		Name:        "Bean",
		PlantDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		HarvestDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}}
	if err := s.Put(ctx, g); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "backyard")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if len(got.Slots[0]) != 1 || got.Slots[0][0].Name != "Bean" {
		t.Errorf("slot 0 = %+v, want one Bean planting", got.Slots[0])
	}
	if !got.Slots[0][0].PlantDate.Equal(g.Slots[0][0].PlantDate) {
		t.Errorf("plant date = %v, want %v", got.Slots[0][0].PlantDate, g.Slots[0][0].PlantDate)
	}
}

func TestGetUnknownGarden(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, garden.ErrUnknownGarden) {
		t.Errorf("expected ErrUnknownGarden, got %v", err)
	}
}

func TestList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zucchini patch", "backyard", "herbs"} {
		if _, err := s.Create(ctx, name, 1, 1); err != nil {
			t.Fatalf("Create %q failed: %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	want := []string{"backyard", "herbs", "zucchini patch"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestListEmpty(t *testing.T) {
	s := newTestStore(t)

	names, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("names = %v, want empty", names)
	}
}

func TestPutUnknownGarden(t *testing.T) {
	s := newTestStore(t)

	g, _ := garden.New("ghost", 1, 1)
	if err := s.Put(context.Background(), g); !errors.Is(err, garden.ErrUnknownGarden) {
		t.Errorf("expected ErrUnknownGarden, got %v", err)
	}
}

func TestPutRejectsInvalidGarden(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	g, err := s.Create(ctx, "backyard", 1, 1)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Two plantings sharing more than a boundary day.
	g.Slots[0] = garden.Slot{
		{Name: "A", PlantDate: day("2024-01-01"), HarvestDate: day("2024-02-01")},
		{Name: "B", PlantDate: day("2024-01-15"), HarvestDate: day("2024-03-01")},
	}

	if err := s.Put(ctx, g); !errors.Is(err, garden.ErrPlantOverlap) {
		t.Errorf("expected ErrPlantOverlap, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, "backyard", 1, 1); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := s.Delete(ctx, "backyard"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := s.Get(ctx, "backyard"); !errors.Is(err, garden.ErrUnknownGarden) {
		t.Errorf("garden still present after delete: %v", err)
	}
}

func TestDeleteUnknownGarden(t *testing.T) {
	s := newTestStore(t)

	if err := s.Delete(context.Background(), "nope"); !errors.Is(err, garden.ErrUnknownGarden) {
		t.Errorf("expected ErrUnknownGarden, got %v", err)
	}
}

func day(key string) time.Time {
	d, _ := time.Parse("2006-01-02", key)
	return d
}
