package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db)
}

func TestEmptySnapshots(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profiles, err := store.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	if profiles != nil {
		t.Fatalf("expected nil profiles, got %v", profiles)
	}
	acts, err := store.LoadActivities(ctx)
	if err != nil {
		t.Fatalf("load activities: %v", err)
	}
	if acts != nil {
		t.Fatalf("expected nil activities, got %v", acts)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	profiles := []Profile{
		{
			ID: "p1", Name: "Maya", Age: 8,
			Crystals: 40, Solar: 10, XP: 30, Level: 1,
			Items: []PlanetItem{
				{ID: "i1", Category: "biome", Kind: "forest", X: 12.5, Y: 40, Level: 1, PlacedAt: now},
			},
			UnlockedBiomes: []string{"forest"},
			CreatedAt:      now,
		},
	}
	if err := store.SaveProfiles(ctx, profiles); err != nil {
		t.Fatalf("save profiles: %v", err)
	}

	got, err := store.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("loaded %d profiles, want 1", len(got))
	}
	p := got[0]
	if p.Name != "Maya" || p.Crystals != 40 || p.Solar != 10 {
		t.Fatalf("profile round trip mangled: %+v", p)
	}
	if len(p.Items) != 1 || p.Items[0].Kind != "forest" || p.Items[0].X != 12.5 {
		t.Fatalf("items round trip mangled: %+v", p.Items)
	}
	if len(p.UnlockedBiomes) != 1 || p.UnlockedBiomes[0] != "forest" {
		t.Fatalf("unlocks round trip mangled: %v", p.UnlockedBiomes)
	}
}

func TestSnapshotOverwriteWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveProfiles(ctx, []Profile{{ID: "a"}, {ID: "b"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := store.SaveProfiles(ctx, []Profile{{ID: "c"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("second save did not replace the first: %+v", got)
	}
}

func TestSaveAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	profiles := []Profile{{ID: "p1", Solar: 90}}
	acts := []PendingActivity{{ID: "a1", ProfileID: "p1", Type: "reading", Minutes: 45, Reward: 90}}
	if err := store.SaveAll(ctx, profiles, acts); err != nil {
		t.Fatalf("save all: %v", err)
	}

	gotP, err := store.LoadProfiles(ctx)
	if err != nil {
		t.Fatalf("load profiles: %v", err)
	}
	gotA, err := store.LoadActivities(ctx)
	if err != nil {
		t.Fatalf("load activities: %v", err)
	}
	if len(gotP) != 1 || gotP[0].Solar != 90 {
		t.Fatalf("profiles after SaveAll: %+v", gotP)
	}
	if len(gotA) != 1 || gotA[0].Reward != 90 {
		t.Fatalf("activities after SaveAll: %+v", gotA)
	}
}
