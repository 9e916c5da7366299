package engine

import (
	"testing"

	"planetpal/internal/storage"
)

func TestBadges(t *testing.T) {
	fresh := &storage.Profile{XP: 0}
	if got := NewBadgeChecker(fresh).CountEarned(); got != 0 {
		t.Fatalf("fresh profile earned %d badges, want 0", got)
	}

	p := &storage.Profile{
		XP:         520, // level 6
		StreakDays: 7,
		Items: []storage.PlanetItem{
			{Kind: "forest"}, {Kind: "house"}, {Kind: "house"}, {Kind: "bunny"}, {Kind: "turtle"},
		},
		UnlockedBiomes:    []string{"forest"},
		UnlockedCreatures: []string{"bunny", "turtle"},
	}
	checker := NewBadgeChecker(p)

	earned := map[string]bool{}
	for _, b := range checker.Badges() {
		earned[b.ID] = b.Earned
	}
	for _, id := range []string{"liftoff", "orbit", "warming_up", "on_a_roll", "first_seed", "homesteader", "pioneer", "zookeeper"} {
		if !earned[id] {
			t.Fatalf("expected badge %q to be earned", id)
		}
	}
	for _, id := range []string{"deep_space", "unstoppable", "terraformer", "architect"} {
		if earned[id] {
			t.Fatalf("badge %q should not be earned", id)
		}
	}
	if got := checker.CountEarned(); got != 8 {
		t.Fatalf("earned=%d, want 8", got)
	}
}
