package atlas

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JacobJanzen/map-generator/internal/world"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "atlas.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndGet(t *testing.T) {
	store := setupTestStore(t)

	entry := &Entry{
		Name:   "home-cavern",
		Seed:   "glittering caves",
		Height: 24,
		Width:  80,
	}
	if err := store.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if entry.MapID == "" {
		t.Error("Save should assign a map ID")
	}
	if entry.CreatedAt == 0 {
		t.Error("Save should assign a creation time")
	}
	if entry.ResolvedSeed == "" {
		t.Error("Save should resolve the seed")
	}

	got, err := store.GetByName("home-cavern")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if diff := cmp.Diff(entry, got); diff != "" {
		t.Errorf("Stored entry mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestGetMissing(t *testing.T) {
	store := setupTestStore(t)

	if _, err := store.GetByName("nope"); err == nil {
		t.Error("GetByName on a missing record should fail")
	}
}

func TestSaveUpsertsByName(t *testing.T) {
	store := setupTestStore(t)

	first := &Entry{Name: "lair", Seed: "1", Height: 10, Width: 10}
	if err := store.Save(first); err != nil {
		t.Fatalf("First save failed: %v", err)
	}

	second := &Entry{Name: "lair", Seed: "2", Height: 12, Width: 40}
	if err := store.Save(second); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry after upsert, got %d", len(entries))
	}
	if entries[0].Seed != "2" || entries[0].Width != 40 {
		t.Errorf("Upsert kept stale fields: %+v", entries[0])
	}

	got, err := store.GetByName("lair")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}
	if got.MapID != second.MapID {
		t.Errorf("Stored map ID = %s, want the replacing save's %s", got.MapID, second.MapID)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("Stored entry differs from the replacing save (-saved +stored):\n%s", diff)
	}
}

func TestListOrder(t *testing.T) {
	store := setupTestStore(t)

	for i, name := range []string{"first", "second", "third"} {
		entry := &Entry{
			Name:      name,
			Seed:      name,
			Height:    10,
			Width:     10,
			CreatedAt: int64(i + 1),
		}
		if err := store.Save(entry); err != nil {
			t.Fatalf("Save %s failed: %v", name, err)
		}
	}

	entries, err := store.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "third" || entries[2].Name != "first" {
		t.Errorf("List should be newest first, got %s, %s, %s",
			entries[0].Name, entries[1].Name, entries[2].Name)
	}
}

func TestDelete(t *testing.T) {
	store := setupTestStore(t)

	entry := &Entry{Name: "doomed", Seed: "13", Height: 5, Width: 5}
	if err := store.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if err := store.Delete("doomed"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByName("doomed"); err == nil {
		t.Error("Deleted record should not load")
	}
	if err := store.Delete("doomed"); err == nil {
		t.Error("Deleting a missing record should fail")
	}
}

func TestRegenerateReproducesMap(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	params := world.DefaultParams()
	params.GrowthPasses = 3
	paramsJSON, err := json.Marshal(params)
	if err != nil {
		t.Fatalf("Marshal params failed: %v", err)
	}

	original := world.NewGenerator(params).GenerateFromSeed(ctx, 20, 30, "moria")

	entry := &Entry{
		Name:       "moria-gate",
		Seed:       "moria",
		Height:     20,
		Width:      30,
		ParamsJSON: paramsJSON,
	}
	if err := store.Save(entry); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := store.GetByName("moria-gate")
	if err != nil {
		t.Fatalf("GetByName failed: %v", err)
	}

	rebuilt, err := loaded.Regenerate(ctx)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	if diff := cmp.Diff(original, rebuilt); diff != "" {
		t.Errorf("Rebuilt map differs from original (-original +rebuilt):\n%s", diff)
	}
}

func TestEntryParamsDefaults(t *testing.T) {
	entry := &Entry{Name: "bare", Seed: "7"}

	params, err := entry.Params()
	if err != nil {
		t.Fatalf("Params failed: %v", err)
	}
	if diff := cmp.Diff(world.DefaultParams(), params); diff != "" {
		t.Errorf("Missing params should decode as defaults (-want +got):\n%s", diff)
	}

	entry.ParamsJSON = json.RawMessage(`{not json`)
	if _, err := entry.Params(); err == nil {
		t.Error("Malformed stored params should fail to decode")
	}
}
