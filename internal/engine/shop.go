package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"planetpal/internal/storage"
)

// ShopItem is one purchasable decoration. Costs are immutable.
type ShopItem struct {
	Key      string
	Name     string
	Icon     string
	Category ItemCategory
	Cost     map[Resource]int
}

// costOrder fixes the order affordability is checked in, so the reported
// shortfall is deterministic.
var costOrder = []Resource{ResourceCrystals, ResourceStardust, ResourceWater, ResourceSolar}

var biomeCatalog = []ShopItem{
	{Key: "forest", Name: "Whispering Forest", Icon: "🌲", Category: CategoryBiome, Cost: map[Resource]int{ResourceCrystals: 50, ResourceSolar: 20}},
	{Key: "ocean", Name: "Glittering Ocean", Icon: "🌊", Category: CategoryBiome, Cost: map[Resource]int{ResourceCrystals: 60, ResourceWater: 30}},
	{Key: "desert", Name: "Golden Desert", Icon: "🏜️", Category: CategoryBiome, Cost: map[Resource]int{ResourceCrystals: 40, ResourceSolar: 30}},
	{Key: "ice", Name: "Frozen Peaks", Icon: "🧊", Category: CategoryBiome, Cost: map[Resource]int{ResourceCrystals: 80, ResourceWater: 40, ResourceSolar: 20}},
	{Key: "volcano", Name: "Ember Volcano", Icon: "🌋", Category: CategoryBiome, Cost: map[Resource]int{ResourceCrystals: 120, ResourceSolar: 60}},
}

var structureCatalog = []ShopItem{
	{Key: "house", Name: "Dome House", Icon: "🏠", Category: CategoryStructure, Cost: map[Resource]int{ResourceCrystals: 30, ResourceStardust: 10}},
	{Key: "greenhouse", Name: "Greenhouse", Icon: "🪴", Category: CategoryStructure, Cost: map[Resource]int{ResourceCrystals: 50, ResourceWater: 25}},
	{Key: "observatory", Name: "Star Observatory", Icon: "🔭", Category: CategoryStructure, Cost: map[Resource]int{ResourceCrystals: 70, ResourceStardust: 40}},
	{Key: "rocket", Name: "Rocket Pad", Icon: "🚀", Category: CategoryStructure, Cost: map[Resource]int{ResourceCrystals: 100, ResourceStardust: 50, ResourceSolar: 30}},
}

var creatureCatalog = []ShopItem{
	{Key: "bunny", Name: "Moon Bunny", Icon: "🐰", Category: CategoryCreature, Cost: map[Resource]int{ResourceStardust: 20, ResourceWater: 10}},
	{Key: "turtle", Name: "River Turtle", Icon: "🐢", Category: CategoryCreature, Cost: map[Resource]int{ResourceStardust: 10, ResourceWater: 30}},
	{Key: "robot", Name: "Helper Bot", Icon: "🤖", Category: CategoryCreature, Cost: map[Resource]int{ResourceCrystals: 60, ResourceSolar: 40}},
	{Key: "dragon", Name: "Comet Dragon", Icon: "🐉", Category: CategoryCreature, Cost: map[Resource]int{ResourceCrystals: 150, ResourceStardust: 80, ResourceSolar: 50}},
}

// Catalog returns the fixed item table for a category.
func Catalog(category ItemCategory) []ShopItem {
	switch category {
	case CategoryBiome:
		return biomeCatalog
	case CategoryStructure:
		return structureCatalog
	case CategoryCreature:
		return creatureCatalog
	default:
		return nil
	}
}

// CatalogItem looks an item up by category and key.
func CatalogItem(category ItemCategory, key string) *ShopItem {
	for i := range Catalog(category) {
		if Catalog(category)[i].Key == key {
			item := Catalog(category)[i]
			return &item
		}
	}
	return nil
}

// PurchaseResult describes a completed purchase.
type PurchaseResult struct {
	Item          ShopItem
	Placed        storage.PlanetItem
	NewlyUnlocked bool
}

// CanAfford returns nil when every cost counter is covered, otherwise the
// first shortfall. Never mutates the profile.
func CanAfford(p *storage.Profile, item ShopItem) error {
	for _, res := range costOrder {
		need, ok := item.Cost[res]
		if !ok {
			continue
		}
		if have := resourceAmount(p, res); have < need {
			return InsufficientResourcesError{Resource: res, Need: need, Have: have}
		}
	}
	return nil
}

// Purchase buys one catalog item for a profile: verify affordability, debit
// every cost counter, record the unlock, and place the decoration at a random
// spot. Biomes are one-time unlocks; structures and creatures may be bought
// again as extra decorations.
func (s *Service) Purchase(ctx context.Context, profileID string, category ItemCategory, key string) (*PurchaseResult, error) {
	item := CatalogItem(category, key)
	if item == nil {
		return nil, fmt.Errorf("unknown %s %q", category, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.findProfile(profileID)
	if p == nil {
		return nil, ErrProfileNotFound
	}

	unlocks := unlockSet(p, category)
	unlocked := contains(*unlocks, key)
	if category == CategoryBiome && unlocked {
		return nil, AlreadyUnlockedError{Category: category, Kind: key}
	}

	if err := CanAfford(p, *item); err != nil {
		return nil, err
	}
	for res, need := range item.Cost {
		addResource(p, res, -need)
	}

	if !unlocked {
		*unlocks = append(*unlocks, key)
	}

	placed := storage.PlanetItem{
		ID:       uuid.NewString(),
		Category: string(category),
		Kind:     key,
		X:        s.rng.Float64() * 100,
		Y:        s.rng.Float64() * 100,
		Level:    1,
		PlacedAt: time.Now().UTC(),
	}
	p.Items = append(p.Items, placed)
	s.persistProfiles(ctx)

	return &PurchaseResult{Item: *item, Placed: placed, NewlyUnlocked: !unlocked}, nil
}

func unlockSet(p *storage.Profile, category ItemCategory) *[]string {
	switch category {
	case CategoryStructure:
		return &p.UnlockedStructures
	case CategoryCreature:
		return &p.UnlockedCreatures
	default:
		return &p.UnlockedBiomes
	}
}

func contains(set []string, key string) bool {
	for _, s := range set {
		if s == key {
			return true
		}
	}
	return false
}
