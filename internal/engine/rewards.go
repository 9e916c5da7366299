package engine

import "math"

const (
	// XPPerCorrect is granted flatly per correct answer, any subject.
	XPPerCorrect = 10

	// XPPerLevel is the level width: level = xp/XPPerLevel + 1.
	XPPerLevel = 100

	// LevelBonusCrystals scales the one-time bonus granted on level-up:
	// bonus = LevelBonusCrystals * newLevel, credited in crystals.
	LevelBonusCrystals = 25
)

// LevelForXP returns the level for a total XP value. Levels start at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

// XPForNextLevel returns the XP threshold at which the given level ends.
func XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return level * XPPerLevel
}

// ComboMultiplier maps a consecutive-correct count to its reward multiplier.
// Fixed step table: 1x / 1.5x / 2x / 3x / 5x at combos 0 / 3 / 5 / 7 / 10.
func ComboMultiplier(combo int) float64 {
	switch {
	case combo >= 10:
		return 5.0
	case combo >= 7:
		return 3.0
	case combo >= 5:
		return 2.0
	case combo >= 3:
		return 1.5
	default:
		return 1.0
	}
}

// BaseReward returns the per-correct-answer grant for a subject.
func BaseReward(subject Subject) (int, Resource) {
	switch subject {
	case SubjectSpelling:
		return 8, ResourceStardust
	case SubjectScience:
		return 12, ResourceWater
	case SubjectMaths:
		fallthrough
	default:
		return 10, ResourceCrystals
	}
}

// RewardForAnswer computes the resource grant for a correct answer at the
// given combo value.
func RewardForAnswer(subject Subject, combo int) (int, Resource) {
	base, res := BaseReward(subject)
	amount := int(math.Round(float64(base) * ComboMultiplier(combo)))
	return amount, res
}
