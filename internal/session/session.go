// Package session runs the interactive trainer: a menu, the quiz loop and
// item entry, driven as an explicit state machine.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/spellz/internal/console"
	"github.com/abhisek/spellz/internal/selection"
	"github.com/abhisek/spellz/internal/speech"
	"github.com/abhisek/spellz/internal/store"
	"github.com/abhisek/spellz/internal/ui/components"
	"github.com/abhisek/spellz/internal/ui/theme"
	"github.com/abhisek/spellz/internal/vocab"
)

// DefaultRepeatToken replays the current item without counting an attempt.
const DefaultRepeatToken = "r"

// Config tunes a Controller.
type Config struct {
	// Deck names the deck in headers and attempt events.
	Deck string

	// RepeatToken is the answer that replays the item. Default "r".
	RepeatToken string

	// ExploreRate is the chance of quizzing a random item instead of the
	// most urgent one.
	ExploreRate float64

	// Rand drives selection. A time-seeded source is used when nil.
	Rand *rand.Rand
}

// Controller owns the collection for the duration of a session.
type Controller struct {
	items    *vocab.Collection
	deck     store.Deck
	recorder store.AttemptRecorder
	speaker  speech.Speaker
	input    console.Console
	out      io.Writer
	selector *selection.Selector
	log      logrus.FieldLogger

	deckName    string
	repeatToken string
	sessionID   string
}

// New creates a Controller. Attempts are also appended to the deck's
// history when the deck implements store.AttemptRecorder.
func New(items *vocab.Collection, deck store.Deck, speaker speech.Speaker, input console.Console, out io.Writer, cfg Config, log logrus.FieldLogger) *Controller {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	token := strings.ToLower(strings.TrimSpace(cfg.RepeatToken))
	if token == "" {
		token = DefaultRepeatToken
	}

	c := &Controller{
		items:       items,
		deck:        deck,
		speaker:     speaker,
		input:       input,
		out:         out,
		selector:    selection.NewSelector(rng, cfg.ExploreRate),
		deckName:    cfg.Deck,
		repeatToken: token,
		sessionID:   uuid.NewString(),
	}
	if r, ok := deck.(store.AttemptRecorder); ok {
		c.recorder = r
	}
	c.log = log.WithFields(logrus.Fields{"deck": cfg.Deck, "session": c.sessionID})
	return c
}

// SessionID identifies this session in the attempt history.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// menu lists the top-level choices.
func (c *Controller) menu() components.Menu {
	title := fmt.Sprintf("spellz · %s (%d items)", c.deckName, c.items.Len())
	return components.NewMenu(title, []components.MenuItem{
		{Key: ChoiceStart, Label: "Start training"},
		{Key: ChoiceAdd, Label: "Add an item"},
		{Key: ChoiceReset, Label: "Reset scores"},
		{Key: ChoiceStats, Label: "Show statistics"},
		{Key: ChoiceQuit, Label: "Quit"},
	})
}

// Run drives the state machine from the menu until the operator quits.
// Cancellation at the menu ends the session normally. It returns a
// non-nil error only when ctx is cancelled.
func (c *Controller) Run(ctx context.Context) error {
	c.log.WithField("items", c.items.Len()).Info("session started")

	state := StateMenu
	var quiz *Quiz
	var err error

	for state != StateDone {
		switch state {
		case StateMenu:
			state, quiz, err = c.stepMenu(ctx)
		case StateQuizzing:
			state, err = c.stepQuiz(ctx, quiz)
		case StateAddingItem:
			state, err = c.stepAdd(ctx)
		default:
			return fmt.Errorf("invalid session state %v", state)
		}
		if err != nil {
			c.persist(context.WithoutCancel(ctx))
			return err
		}
	}

	c.log.Info("session ended")
	return nil
}

// readLine reads operator input. Interruption and end of input are
// reported as cancelled; context errors are returned.
func (c *Controller) readLine(ctx context.Context, prompt string) (line string, cancelled bool, err error) {
	line, err = c.input.ReadLine(ctx, prompt)
	switch {
	case err == nil:
		return line, false, nil
	case errors.Is(err, console.ErrInterrupted), errors.Is(err, io.EOF):
		return "", true, nil
	case ctx.Err() != nil:
		return "", true, ctx.Err()
	}
	c.log.WithError(err).Error("read input")
	return "", true, nil
}

func (c *Controller) stepMenu(ctx context.Context) (State, *Quiz, error) {
	m := c.menu()
	lipgloss.Fprint(c.out, "\n"+m.View())

	choice, cancelled, err := c.readLine(ctx, "> ")
	if err != nil {
		return StateDone, nil, err
	}
	if cancelled {
		c.persist(ctx)
		return StateDone, nil, nil
	}

	item, ok := m.Lookup(choice)
	if !ok {
		c.warn("Unknown choice %q.", strings.TrimSpace(choice))
		return StateMenu, nil, nil
	}

	switch item.Key {
	case ChoiceStart:
		return c.startQuiz(ctx)
	case ChoiceAdd:
		return StateAddingItem, nil, nil
	case ChoiceReset:
		return c.reset(ctx)
	case ChoiceStats:
		lipgloss.Fprint(c.out, "\n"+StatsView(c.items.Items()))
		return StateMenu, nil, nil
	}
	c.persist(ctx)
	return StateDone, nil, nil
}

func (c *Controller) startQuiz(ctx context.Context) (State, *Quiz, error) {
	if c.items.Len() == 0 {
		c.warn("No items yet. Add some first.")
		return StateMenu, nil, nil
	}

	answer, cancelled, err := c.readLine(ctx, "Focus [all/struggling/average/mastered] (enter for all): ")
	if err != nil || cancelled {
		return StateMenu, nil, err
	}
	focus, ok := selection.ParseFocus(strings.ToLower(strings.TrimSpace(answer)))
	if !ok {
		c.warn("Unknown focus %q.", strings.TrimSpace(answer))
		return StateMenu, nil, nil
	}

	quiz := &Quiz{Current: c.next(focus), focus: focus}
	c.log.WithField("focus", focus.String()).Info("quiz started")
	lipgloss.Fprintln(c.out, theme.Hint.Render(fmt.Sprintf(
		"Type what you hear. %q repeats, Ctrl+C returns to the menu.", c.repeatToken)))
	return StateQuizzing, quiz, nil
}

// next picks the next item for focus, warning when the focus is empty.
func (c *Controller) next(focus selection.Focus) *vocab.Item {
	pool, fellBack := selection.Filter(c.items.Items(), focus)
	if fellBack {
		c.warn("No %s items; practicing all items.", focus)
		c.log.WithField("focus", focus.String()).Warn("empty focus, using all items")
	}
	return c.selector.Pick(pool)
}

func (c *Controller) stepQuiz(ctx context.Context, quiz *Quiz) (State, error) {
	item := quiz.Current

	c.speak(ctx, item.Text)
	var answer string
	for {
		line, cancelled, err := c.readLine(ctx, "Spell it: ")
		if err != nil {
			return StateDone, err
		}
		if cancelled {
			c.persist(ctx)
			lipgloss.Fprint(c.out, "\n"+RunSummary(quiz.Run))
			return StateMenu, nil
		}
		if strings.ToLower(strings.TrimSpace(line)) == c.repeatToken {
			c.speak(ctx, item.Text)
			continue
		}
		answer = line
		break
	}

	correct := item.Matches(answer)
	transition := item.RecordAttempt(correct)
	quiz.Run.Record(correct, transition)

	if correct {
		lipgloss.Fprintln(c.out, theme.Correct.Render("Correct!"))
	} else {
		lipgloss.Fprintln(c.out, theme.Incorrect.Render("Wrong.")+" "+
			theme.Body.Render("It is spelled:")+" "+theme.Title.Render(item.Text))
	}
	if transition != nil {
		lipgloss.Fprintln(c.out, TransitionLine(*transition))
	}

	c.log.WithFields(logrus.Fields{
		"item":     item.Text,
		"correct":  correct,
		"category": item.Category,
	}).Debug("attempt")

	c.persist(ctx)
	c.recordAttempt(ctx, item, answer, correct)

	quiz.Current = c.next(quiz.focus)
	return StateQuizzing, nil
}

func (c *Controller) stepAdd(ctx context.Context) (State, error) {
	text, cancelled, err := c.readLine(ctx, "New item (enter to cancel): ")
	if err != nil {
		return StateDone, err
	}
	if cancelled || strings.TrimSpace(text) == "" {
		return StateMenu, nil
	}

	item, err := c.items.Add(text)
	switch {
	case errors.Is(err, vocab.ErrDuplicate):
		c.warn("%q is already in the deck.", vocab.Normalize(text))
		return StateMenu, nil
	case err != nil:
		c.warn("Could not add item: %v", err)
		return StateMenu, nil
	}

	c.log.WithFields(logrus.Fields{"item": item.Text, "difficulty": item.Difficulty}).Info("item added")
	lipgloss.Fprintln(c.out, theme.Correct.Render("Added")+" "+theme.Body.Render(
		fmt.Sprintf("%s (difficulty %.2f)", item.Text, item.Difficulty)))
	c.persist(ctx)
	return StateMenu, nil
}

func (c *Controller) reset(ctx context.Context) (State, *Quiz, error) {
	answer, cancelled, err := c.readLine(ctx, "Archive the deck and reset all scores? Type yes to confirm: ")
	if err != nil || cancelled {
		return StateMenu, nil, err
	}
	if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
		lipgloss.Fprintln(c.out, theme.Hint.Render("Reset cancelled."))
		return StateMenu, nil, nil
	}

	path, err := c.deck.Archive(ctx)
	if err != nil {
		// Scores stay as they are when the archive could not be written.
		c.warn("Could not archive the deck: %v", err)
		c.log.WithError(err).Error("archive deck")
		return StateMenu, nil, nil
	}
	if path != "" {
		lipgloss.Fprintln(c.out, theme.Info.Render("Archived to "+path))
	}

	c.items.ResetScores()
	c.persist(ctx)
	c.log.WithField("archive", path).Info("scores reset")
	lipgloss.Fprintln(c.out, theme.Correct.Render("Scores reset."))
	return StateMenu, nil, nil
}

// speak plays text, reporting failures without stopping the quiz.
func (c *Controller) speak(ctx context.Context, text string) {
	if err := c.speaker.Speak(ctx, text); err != nil {
		if ctx.Err() != nil {
			return
		}
		c.warn("Speech failed: %v", err)
		c.log.WithError(err).WithField("item", text).Warn("speech failed")
	}
}

// persist writes the collection through to the deck. Failures are shown
// and logged; the in-memory collection stays authoritative.
func (c *Controller) persist(ctx context.Context) {
	if err := c.deck.Save(ctx, c.items.Records()); err != nil {
		c.warn("Could not save progress: %v", err)
		c.log.WithError(err).Error("save deck")
	}
}

func (c *Controller) recordAttempt(ctx context.Context, item *vocab.Item, answer string, correct bool) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.AppendAttempt(ctx, store.AttemptEventData{
		SessionID: c.sessionID,
		Deck:      c.deckName,
		Text:      item.Text,
		Answer:    strings.TrimSpace(answer),
		Correct:   correct,
		Category:  item.Category.String(),
	})
	if err != nil {
		c.log.WithError(err).Warn("append attempt event")
	}
}

func (c *Controller) warn(format string, args ...any) {
	lipgloss.Fprintln(c.out, theme.Warning.Render(fmt.Sprintf(format, args...)))
}
