package preset

import (
	"context"
	"testing"

	"github.com/colgrid/colgrid/pkg/errors"
	"github.com/colgrid/colgrid/pkg/grid"
)

func TestNewValidates(t *testing.T) {
	if _, err := New("docs-site", grid.Default()); err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if _, err := New("", grid.Default()); err == nil {
		t.Error("New() accepted empty name")
	}
	if _, err := New("docs-site", grid.Config{Columns: 0}); err == nil {
		t.Error("New() accepted invalid configuration")
	}
}

func TestPresetConfigRoundTrip(t *testing.T) {
	cfg := grid.Config{
		Columns: 16,
		Breakpoints: []grid.Breakpoint{
			{Name: "tablet", MinWidth: 40},
			{Name: "desktop", MinWidth: 75},
		},
	}
	p, err := New("wide", cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if p.ID == "" {
		t.Error("preset has no ID")
	}

	got := p.Config()
	if got.Columns != 16 || len(got.Breakpoints) != 2 || got.Breakpoints[1].Name != "desktop" {
		t.Errorf("Config() = %+v, want original configuration back", got)
	}
	if _, err := grid.NewRegistry(got); err != nil {
		t.Errorf("stored configuration cannot build a registry: %v", err)
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close(ctx)

	p, err := New("docs-site", grid.Default())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, p); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	byID, err := store.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if byID.Name != "docs-site" {
		t.Errorf("Get() name = %q", byID.Name)
	}

	byName, err := store.GetByName(ctx, "docs-site")
	if err != nil {
		t.Fatalf("GetByName() error: %v", err)
	}
	if byName.ID != p.ID {
		t.Errorf("GetByName() ID = %q, want %q", byName.ID, p.ID)
	}

	if err := store.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, err := store.Get(ctx, p.ID); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Get() after delete = %v, want PRESET_NOT_FOUND", err)
	}
	if err := store.Delete(ctx, p.ID); !errors.Is(err, errors.ErrCodePresetNotFound) {
		t.Errorf("Delete() of missing preset = %v, want PRESET_NOT_FOUND", err)
	}
}

func TestMemoryStoreNameUnique(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	first, _ := New("docs-site", grid.Default())
	if err := store.Put(ctx, first); err != nil {
		t.Fatal(err)
	}

	second, _ := New("docs-site", grid.Config{
		Columns:     16,
		Breakpoints: grid.DefaultBreakpoints(),
	})
	if err := store.Put(ctx, second); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetByName(ctx, "docs-site")
	if err != nil {
		t.Fatalf("GetByName() error: %v", err)
	}
	if got.ID != second.ID || got.Columns != 16 {
		t.Errorf("GetByName() = %+v, want the replacement preset", got)
	}
	if _, err := store.Get(ctx, first.ID); err == nil {
		t.Error("replaced preset still retrievable by old ID")
	}
}

func TestMemoryStoreListSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		p, _ := New(name, grid.Default())
		if err := store.Put(ctx, p); err != nil {
			t.Fatal(err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("List() len = %d, want 3", len(list))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if list[i].Name != want {
			t.Errorf("List()[%d] = %q, want %q", i, list[i].Name, want)
		}
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p, _ := New("docs-site", grid.Default())
	if err := store.Put(ctx, p); err != nil {
		t.Fatal(err)
	}

	got, _ := store.Get(ctx, p.ID)
	got.Columns = 99

	again, _ := store.Get(ctx, p.ID)
	if again.Columns != 12 {
		t.Error("mutating a returned preset changed stored state")
	}
}
