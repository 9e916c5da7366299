package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"planetpal/internal/engine"
)

// A wrong-answer result can land after the player has already backed out of
// the quiz screen. The popup must come from the result, not from quiz state
// that is no longer there.
func TestWrongAnswerResultAfterLeavingQuiz(t *testing.T) {
	q := engine.Question{
		Subject: engine.SubjectMaths,
		Prompt:  "What is 3 + 4?",
		Options: []string{"7", "8", "6", "9"},
		Answer:  0,
	}
	m := appModel{screen: screenQuiz, subject: engine.SubjectMaths, question: &q}

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(appModel)
	if m.question != nil {
		t.Fatalf("question still set after leaving the quiz screen")
	}
	if m.screen != screenHome {
		t.Fatalf("screen = %d, want home", m.screen)
	}

	res := &engine.AnswerResult{Correct: false, CorrectAnswer: "7"}
	next, _ = m.Update(answeredMsg{res: res})
	m = next.(appModel)
	if !strings.Contains(m.popup, `"7"`) {
		t.Fatalf("popup = %q, want it to name the correct answer", m.popup)
	}
}
