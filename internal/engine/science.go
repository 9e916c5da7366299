package engine

// scienceFact is a fixed trivia entry. options[0] is always the correct
// answer; the generator shuffles a copy before handing it out.
type scienceFact struct {
	prompt  string
	options []string
}

var (
	factsSprout = []scienceFact{
		{"What do plants need to grow?", []string{"Sunlight and water", "Darkness", "Sweets", "Television"}},
		{"How many legs does a spider have?", []string{"8", "6", "4", "10"}},
		{"What do bees make?", []string{"Honey", "Milk", "Bread", "Juice"}},
		{"Which animal says 'moo'?", []string{"Cow", "Cat", "Duck", "Sheep"}},
		{"What falls from clouds when it rains?", []string{"Water", "Sand", "Leaves", "Snowballs"}},
		{"Where do fish live?", []string{"In water", "In trees", "Underground", "In the sky"}},
	}
	factsExplorer = []scienceFact{
		{"Which planet do we live on?", []string{"Earth", "Mars", "Jupiter", "Venus"}},
		{"What gas do we breathe in to live?", []string{"Oxygen", "Helium", "Smoke", "Steam"}},
		{"What is frozen water called?", []string{"Ice", "Lava", "Fog", "Dust"}},
		{"Which animal is a mammal?", []string{"Dolphin", "Shark", "Crocodile", "Octopus"}},
		{"How many planets are in our solar system?", []string{"8", "5", "12", "20"}},
		{"What pulls things down to the ground?", []string{"Gravity", "Wind", "Magic", "Echo"}},
	}
	factsVoyager = []scienceFact{
		{"What is the closest star to Earth?", []string{"The Sun", "The Moon", "Polaris", "Sirius"}},
		{"What do plants release during photosynthesis?", []string{"Oxygen", "Carbon dioxide", "Nitrogen", "Methane"}},
		{"Which planet is known as the Red Planet?", []string{"Mars", "Venus", "Saturn", "Mercury"}},
		{"What is H2O commonly called?", []string{"Water", "Salt", "Sugar", "Acid"}},
		{"How long does Earth take to orbit the Sun?", []string{"One year", "One day", "One month", "One week"}},
		{"What force keeps the Moon orbiting Earth?", []string{"Gravity", "Magnetism", "Friction", "Electricity"}},
	}
)

func scienceFacts(tier Tier) []scienceFact {
	switch tier {
	case TierSprout:
		return factsSprout
	case TierExplorer:
		return factsExplorer
	default:
		return factsVoyager
	}
}
