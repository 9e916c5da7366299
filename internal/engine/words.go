package engine

// Per-tier spelling vocabulary. Tier 1 keeps to short phonetic words; higher
// tiers add common trap words.
var (
	wordsSprout = []string{
		"cat", "dog", "sun", "moon", "star", "tree", "fish", "bird",
		"book", "ball", "rain", "frog", "cake", "boat", "hand",
	}
	wordsExplorer = []string{
		"planet", "rocket", "garden", "friend", "school", "animal",
		"yellow", "little", "window", "dinner", "winter", "family",
		"monkey", "pencil", "dragon",
	}
	wordsVoyager = []string{
		"because", "beautiful", "different", "important", "tomorrow",
		"favourite", "together", "mountain", "sentence", "necessary",
		"knowledge", "brilliant", "adventure", "chocolate", "science",
	}
)

func spellingWords(tier Tier) []string {
	switch tier {
	case TierSprout:
		return wordsSprout
	case TierExplorer:
		return wordsExplorer
	default:
		return wordsVoyager
	}
}
