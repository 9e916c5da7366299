package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

// Generator produces quiz questions. It owns its randomness source so tests
// can seed it deterministically. Generation never fails.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns one random question for the subject at the given tier.
func (g *Generator) Generate(subject Subject, tier Tier) Question {
	if !tier.IsValid() {
		tier = TierSprout
	}
	switch subject {
	case SubjectSpelling:
		return g.spelling(tier)
	case SubjectScience:
		return g.science(tier)
	default:
		return g.arithmetic(tier)
	}
}

type arithmeticOp int

const (
	opAdd arithmeticOp = iota
	opSub
	opMul
	opDiv
)

func (g *Generator) arithmetic(tier Tier) Question {
	var ops []arithmeticOp
	var limit int
	switch tier {
	case TierSprout:
		ops = []arithmeticOp{opAdd, opSub}
		limit = 10
	case TierExplorer:
		ops = []arithmeticOp{opAdd, opSub, opMul}
		limit = 50
	default:
		ops = []arithmeticOp{opAdd, opSub, opMul, opDiv}
		limit = 100
	}

	op := ops[g.rng.Intn(len(ops))]
	var a, b, answer int
	var symbol string
	switch op {
	case opSub:
		a = g.rng.Intn(limit) + 1
		b = g.rng.Intn(limit) + 1
		if b > a {
			a, b = b, a // keep the answer non-negative
		}
		answer = a - b
		symbol = "-"
	case opMul:
		a = g.rng.Intn(12) + 1
		b = g.rng.Intn(12) + 1
		answer = a * b
		symbol = "×"
	case opDiv:
		b = g.rng.Intn(11) + 2
		answer = g.rng.Intn(12) + 1
		a = b * answer
		symbol = "÷"
	default:
		a = g.rng.Intn(limit) + 1
		b = g.rng.Intn(limit) + 1
		answer = a + b
		symbol = "+"
	}

	options := g.numericOptions(answer)
	idx := indexOf(options, strconv.Itoa(answer))
	return Question{
		Subject: SubjectMaths,
		Tier:    tier,
		Prompt:  fmt.Sprintf("What is %d %s %d?", a, symbol, b),
		Options: options,
		Answer:  idx,
	}
}

// numericOptions builds the correct answer plus three distinct non-negative
// distractors obtained by random perturbation, then shuffles uniformly.
func (g *Generator) numericOptions(answer int) []string {
	seen := map[int]bool{answer: true}
	values := []int{answer}
	for attempts := 0; len(values) < QuestionOptions; attempts++ {
		delta := g.rng.Intn(10) + 1
		if g.rng.Intn(2) == 0 {
			delta = -delta
		}
		d := answer + delta
		if attempts > 100 {
			// Random perturbation keeps colliding; walk upward instead.
			d = answer + (attempts - 100)
		}
		if d < 0 || seen[d] {
			continue
		}
		seen[d] = true
		values = append(values, d)
	}

	options := make([]string, 0, QuestionOptions)
	for _, v := range values {
		options = append(options, strconv.Itoa(v))
	}
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

func (g *Generator) spelling(tier Tier) Question {
	words := spellingWords(tier)
	word := words[g.rng.Intn(len(words))]

	seen := map[string]bool{word: true}
	options := []string{word}
	for attempts := 0; len(options) < QuestionOptions; attempts++ {
		var wrong string
		if attempts > 100 {
			// Pattern misspellings keep colliding on very short words.
			wrong = word + string(rune('a'+len(options)))
		} else {
			wrong = g.misspell(word)
		}
		if seen[wrong] {
			continue
		}
		seen[wrong] = true
		options = append(options, wrong)
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return Question{
		Subject: SubjectSpelling,
		Tier:    tier,
		Prompt:  "Which spelling is correct?",
		Options: options,
		Answer:  indexOf(options, word),
	}
}

// misspell applies one random corruption pattern to a word.
func (g *Generator) misspell(word string) string {
	r := []rune(word)
	if len(r) < 2 {
		return word + "e"
	}
	switch g.rng.Intn(4) {
	case 0: // swap adjacent letters
		i := g.rng.Intn(len(r) - 1)
		r[i], r[i+1] = r[i+1], r[i]
		return string(r)
	case 1: // drop a letter
		i := g.rng.Intn(len(r))
		return string(r[:i]) + string(r[i+1:])
	case 2: // double a letter
		i := g.rng.Intn(len(r))
		return string(r[:i+1]) + string(r[i]) + string(r[i+1:])
	default: // substitute a vowel
		vowels := []rune("aeiou")
		for _, i := range g.rng.Perm(len(r)) {
			for vi, v := range vowels {
				if r[i] == v {
					r[i] = vowels[(vi+1+g.rng.Intn(4))%len(vowels)]
					return string(r)
				}
			}
		}
		// No vowel found; fall back to a swap.
		i := g.rng.Intn(len(r) - 1)
		r[i], r[i+1] = r[i+1], r[i]
		return string(r)
	}
}

func (g *Generator) science(tier Tier) Question {
	facts := scienceFacts(tier)
	fact := facts[g.rng.Intn(len(facts))]

	options := make([]string, len(fact.options))
	copy(options, fact.options)
	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return Question{
		Subject: SubjectScience,
		Tier:    tier,
		Prompt:  fact.prompt,
		Options: options,
		Answer:  indexOf(options, fact.options[0]),
	}
}

func indexOf(options []string, want string) int {
	for i, o := range options {
		if o == want {
			return i
		}
	}
	return 0
}
