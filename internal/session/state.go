package session

import (
	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/selection"
	"github.com/abhisek/spellz/internal/vocab"
)

// State is a state of the session controller.
type State int

const (
	StateMenu       State = iota // Waiting for a menu choice
	StateQuizzing                // Presenting the current item
	StateAddingItem              // Reading one new item
	StateDone                    // Terminal; Run returns
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateQuizzing:
		return "quizzing"
	case StateAddingItem:
		return "adding"
	case StateDone:
		return "done"
	}
	return "unknown"
}

// Menu choices.
const (
	ChoiceStart = "1"
	ChoiceAdd   = "2"
	ChoiceReset = "3"
	ChoiceStats = "4"
	ChoiceQuit  = "q"
)

// Run tracks one quiz run, from leaving the menu to returning to it.
type Run struct {
	Attempts    int
	Correct     int
	Transitions []mastery.Transition
}

// Record adds an attempt result to the run.
func (r *Run) Record(correct bool, t *mastery.Transition) {
	r.Attempts++
	if correct {
		r.Correct++
	}
	if t != nil {
		r.Transitions = append(r.Transitions, *t)
	}
}

// Accuracy returns the share of correct attempts in [0, 1].
func (r Run) Accuracy() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Attempts)
}

// Quiz is the state carried while in StateQuizzing.
type Quiz struct {
	Current *vocab.Item
	Run     Run

	focus selection.Focus
}
