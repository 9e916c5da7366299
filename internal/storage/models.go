package storage

import "time"

// Profile is the full persisted state for one player. The profile list is
// serialized wholesale as a single snapshot, so everything lives here.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`

	Crystals int `json:"crystals"`
	Stardust int `json:"stardust"`
	Water    int `json:"water"`
	Solar    int `json:"solar"`

	XP    int `json:"xp"`
	Level int `json:"level"`

	StreakDays int        `json:"streak_days"`
	LastActive *time.Time `json:"last_active,omitempty"`

	Items []PlanetItem `json:"items"`

	UnlockedBiomes     []string `json:"unlocked_biomes"`
	UnlockedStructures []string `json:"unlocked_structures"`
	UnlockedCreatures  []string `json:"unlocked_creatures"`

	CreatedAt time.Time `json:"created_at"`
}

// PlanetItem is a decoration placed on a profile's planet.
type PlanetItem struct {
	ID       string    `json:"id"`
	Category string    `json:"category"` // biome | structure | creature
	Kind     string    `json:"kind"`     // catalog key, e.g. "forest"
	X        float64   `json:"x"`        // placement in [0,100)
	Y        float64   `json:"y"`
	Level    int       `json:"level"`
	PlacedAt time.Time `json:"placed_at"`
}

// PendingActivity is a self-reported offline activity awaiting approval.
// The reward is computed at submission time and frozen.
type PendingActivity struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	Type        string    `json:"type"`
	Minutes     int       `json:"minutes"`
	Reward      int       `json:"reward"`
	SubmittedAt time.Time `json:"submitted_at"`
}
