package engine

import (
	"strconv"
	"strings"
	"testing"
)

func assertOptionInvariants(t *testing.T, q Question) {
	t.Helper()
	if len(q.Options) != QuestionOptions {
		t.Fatalf("%d options, want %d: %v", len(q.Options), QuestionOptions, q.Options)
	}
	seen := map[string]bool{}
	for _, o := range q.Options {
		if seen[o] {
			t.Fatalf("duplicate option %q in %v", o, q.Options)
		}
		seen[o] = true
	}
	if q.Answer < 0 || q.Answer >= len(q.Options) {
		t.Fatalf("answer index %d out of range", q.Answer)
	}
}

// evalPrompt re-computes the expected answer from an arithmetic prompt.
func evalPrompt(t *testing.T, prompt string) int {
	t.Helper()
	body := strings.TrimSuffix(strings.TrimPrefix(prompt, "What is "), "?")
	parts := strings.Fields(body)
	if len(parts) != 3 {
		t.Fatalf("unexpected prompt %q", prompt)
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("prompt operand %q: %v", parts[0], err)
	}
	b, err := strconv.Atoi(parts[2])
	if err != nil {
		t.Fatalf("prompt operand %q: %v", parts[2], err)
	}
	switch parts[1] {
	case "+":
		return a + b
	case "-":
		return a - b
	case "×":
		return a * b
	case "÷":
		return a / b
	default:
		t.Fatalf("unknown operator %q", parts[1])
		return 0
	}
}

func TestArithmeticQuestions(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		g := NewSeededGenerator(seed)
		for _, tier := range []Tier{TierSprout, TierExplorer, TierVoyager} {
			q := g.Generate(SubjectMaths, tier)
			assertOptionInvariants(t, q)

			want := evalPrompt(t, q.Prompt)
			if want < 0 {
				t.Fatalf("negative expected answer for %q", q.Prompt)
			}
			for _, o := range q.Options {
				n, err := strconv.Atoi(o)
				if err != nil {
					t.Fatalf("non-numeric option %q", o)
				}
				if n < 0 {
					t.Fatalf("negative option %d in %v", n, q.Options)
				}
			}
			if got := q.Options[q.Answer]; got != strconv.Itoa(want) {
				t.Fatalf("prompt %q: marked answer %s, want %d", q.Prompt, got, want)
			}
		}
	}
}

func TestSpellingQuestions(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		g := NewSeededGenerator(seed)
		for _, tier := range []Tier{TierSprout, TierExplorer, TierVoyager} {
			q := g.Generate(SubjectSpelling, tier)
			assertOptionInvariants(t, q)

			words := spellingWords(tier)
			correctCount := 0
			for _, o := range q.Options {
				for _, w := range words {
					if o == w {
						correctCount++
					}
				}
			}
			if correctCount != 1 {
				t.Fatalf("options %v contain %d real words, want 1", q.Options, correctCount)
			}
			marked := q.Options[q.Answer]
			found := false
			for _, w := range words {
				if marked == w {
					found = true
				}
			}
			if !found {
				t.Fatalf("marked answer %q is not a real word", marked)
			}
		}
	}
}

func TestScienceQuestions(t *testing.T) {
	for seed := int64(0); seed < 40; seed++ {
		g := NewSeededGenerator(seed)
		for _, tier := range []Tier{TierSprout, TierExplorer, TierVoyager} {
			q := g.Generate(SubjectScience, tier)
			assertOptionInvariants(t, q)

			var fact *scienceFact
			for i := range scienceFacts(tier) {
				if scienceFacts(tier)[i].prompt == q.Prompt {
					fact = &scienceFacts(tier)[i]
					break
				}
			}
			if fact == nil {
				t.Fatalf("prompt %q not in the %d-tier table", q.Prompt, tier)
			}
			if got := q.Options[q.Answer]; got != fact.options[0] {
				t.Fatalf("prompt %q: marked %q, want %q", q.Prompt, got, fact.options[0])
			}
		}
	}
}

func TestGeneratorInvalidTierFallsBack(t *testing.T) {
	g := NewSeededGenerator(1)
	q := g.Generate(SubjectMaths, Tier(0))
	if q.Tier != TierSprout {
		t.Fatalf("tier=%d, want fallback to %d", q.Tier, TierSprout)
	}
}

func TestMisspellNeverReturnsOriginal(t *testing.T) {
	g := NewSeededGenerator(7)
	for _, word := range []string{"planet", "because", "cat"} {
		for i := 0; i < 50; i++ {
			if wrong := g.misspell(word); wrong == word {
				t.Fatalf("misspell(%q) returned the original (iteration %d)", word, i)
			}
		}
	}
}
