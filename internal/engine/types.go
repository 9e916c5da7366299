package engine

type Subject string

const (
	SubjectMaths    Subject = "maths"
	SubjectSpelling Subject = "spelling"
	SubjectScience  Subject = "science"
)

func (s Subject) IsValid() bool {
	switch s {
	case SubjectMaths, SubjectSpelling, SubjectScience:
		return true
	default:
		return false
	}
}

// Resource identifies one of the four profile counters.
type Resource string

const (
	ResourceCrystals Resource = "crystals"
	ResourceStardust Resource = "stardust"
	ResourceWater    Resource = "water"
	ResourceSolar    Resource = "solar"
)

// Tier is the age-derived difficulty bucket.
type Tier int

const (
	TierSprout   Tier = 1
	TierExplorer Tier = 2
	TierVoyager  Tier = 3
)

func (t Tier) IsValid() bool {
	return t >= TierSprout && t <= TierVoyager
}

// TierForAge maps a player's age to their difficulty tier.
func TierForAge(age int) Tier {
	switch {
	case age <= 6:
		return TierSprout
	case age <= 9:
		return TierExplorer
	default:
		return TierVoyager
	}
}

type ItemCategory string

const (
	CategoryBiome     ItemCategory = "biome"
	CategoryStructure ItemCategory = "structure"
	CategoryCreature  ItemCategory = "creature"
)

func (c ItemCategory) IsValid() bool {
	switch c {
	case CategoryBiome, CategoryStructure, CategoryCreature:
		return true
	default:
		return false
	}
}

// Question is one generated quiz question. Options always holds exactly
// QuestionOptions entries and Answer indexes the correct one.
type Question struct {
	Subject Subject
	Tier    Tier
	Prompt  string
	Options []string
	Answer  int
}

// QuestionOptions is the fixed number of answer choices per question.
const QuestionOptions = 4
