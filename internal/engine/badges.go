package engine

import "planetpal/internal/storage"

// Badge is a derived milestone shown on the status screen. Badges are never
// stored; they are recomputed from the profile every time.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// BadgeChecker computes which badges a profile has earned.
type BadgeChecker struct {
	profile *storage.Profile
}

func NewBadgeChecker(profile *storage.Profile) *BadgeChecker {
	return &BadgeChecker{profile: profile}
}

// Badges returns all badges with their earned status.
func (c *BadgeChecker) Badges() []Badge {
	return []Badge{
		c.levelBadge("liftoff", "Liftoff", "Reach level 2", "🚀", 2),
		c.levelBadge("orbit", "In Orbit", "Reach level 5", "🛰️", 5),
		c.levelBadge("deep_space", "Deep Space", "Reach level 10", "🌌", 10),

		c.streakBadge("warming_up", "Warming Up", "3-day streak", "🔥", 3),
		c.streakBadge("on_a_roll", "On a Roll", "7-day streak", "☄️", 7),
		c.streakBadge("unstoppable", "Unstoppable", "14-day streak", "💫", 14),

		c.itemBadge("first_seed", "First Seed", "Place 1 decoration", "🌱", 1),
		c.itemBadge("homesteader", "Homesteader", "Place 5 decorations", "🏕️", 5),
		c.itemBadge("terraformer", "Terraformer", "Place 10 decorations", "🪐", 10),

		c.unlockBadge("pioneer", "Pioneer", "Unlock a biome", "🗺️", c.profile.UnlockedBiomes),
		c.unlockBadge("architect", "Architect", "Unlock a structure", "🏗️", c.profile.UnlockedStructures),
		c.unlockBadge("zookeeper", "Zookeeper", "Unlock a creature", "🐾", c.profile.UnlockedCreatures),
	}
}

// CountEarned returns how many badges have been earned.
func (c *BadgeChecker) CountEarned() int {
	count := 0
	for _, b := range c.Badges() {
		if b.Earned {
			count++
		}
	}
	return count
}

func (c *BadgeChecker) levelBadge(id, name, desc, icon string, level int) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: LevelForXP(c.profile.XP) >= level}
}

func (c *BadgeChecker) streakBadge(id, name, desc, icon string, days int) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: c.profile.StreakDays >= days}
}

func (c *BadgeChecker) itemBadge(id, name, desc, icon string, count int) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: len(c.profile.Items) >= count}
}

func (c *BadgeChecker) unlockBadge(id, name, desc, icon string, set []string) Badge {
	return Badge{ID: id, Name: name, Description: desc, Icon: icon, Earned: len(set) > 0}
}
