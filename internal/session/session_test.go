package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"math/rand/v2"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/console"
	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/store"
	"github.com/abhisek/spellz/internal/vocab"
)

type fixedEstimator float64

func (f fixedEstimator) Estimate(string) float64 { return float64(f) }

// step is one scripted console read.
type step struct {
	line string
	err  error
}

func line(s string) step { return step{line: s} }

var interrupt = step{err: console.ErrInterrupted}

// scriptConsole replays steps and then reports end of input.
type scriptConsole struct {
	steps   []step
	prompts []string
}

func (s *scriptConsole) ReadLine(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.steps) == 0 {
		return "", io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	return st.line, st.err
}

type fakeSpeaker struct {
	spoken []string
	err    error
}

func (f *fakeSpeaker) Speak(_ context.Context, text string) error {
	f.spoken = append(f.spoken, text)
	return f.err
}

type memDeck struct {
	saves    [][]store.Record
	saveErr  error
	archived int
	attempts []store.AttemptEventData
}

func (d *memDeck) Load(context.Context) ([]store.Record, error) { return nil, nil }

func (d *memDeck) Save(_ context.Context, records []store.Record) error {
	d.saves = append(d.saves, records)
	return d.saveErr
}

func (d *memDeck) Archive(context.Context) (string, error) {
	d.archived++
	return "/tmp/Archive-words-2024-01-02_03-04-05.json", nil
}

func (d *memDeck) Close() error { return nil }

func (d *memDeck) last() []store.Record {
	if len(d.saves) == 0 {
		return nil
	}
	return d.saves[len(d.saves)-1]
}

// recordingDeck also keeps an attempt history.
type recordingDeck struct {
	memDeck
}

func (d *recordingDeck) AppendAttempt(_ context.Context, data store.AttemptEventData) error {
	d.attempts = append(d.attempts, data)
	return nil
}

type harness struct {
	items   *vocab.Collection
	con     *scriptConsole
	speaker *fakeSpeaker
	out     *bytes.Buffer
	ctrl    *Controller
}

func newHarness(t *testing.T, deck store.Deck, texts []string, steps ...step) *harness {
	t.Helper()
	items := vocab.NewCollection(fixedEstimator(2))
	for _, s := range texts {
		_, err := items.Add(s)
		require.NoError(t, err)
	}
	log, _ := test.NewNullLogger()
	h := &harness{
		items:   items,
		con:     &scriptConsole{steps: steps},
		speaker: &fakeSpeaker{},
		out:     &bytes.Buffer{},
	}
	h.ctrl = New(items, deck, h.speaker, h.con, h.out, Config{
		Deck:        "words",
		ExploreRate: 0,
		Rand:        rand.New(rand.NewPCG(1, 2)),
	}, log)
	return h
}

func (h *harness) output() string {
	return ansi.Strip(h.out.String())
}

func TestRun_QuitPersists(t *testing.T) {
	deck := &memDeck{}
	h := newHarness(t, deck, []string{"cat"}, line("q"))

	require.NoError(t, h.ctrl.Run(context.Background()))
	require.Len(t, deck.saves, 1)
	assert.Equal(t, "cat", deck.last()[0].Text)
	assert.Contains(t, h.output(), "1  Start training")
}

func TestRun_InterruptAtMenuExits(t *testing.T) {
	deck := &memDeck{}
	h := newHarness(t, deck, []string{"cat"}, interrupt)

	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Len(t, deck.saves, 1)
}

func TestRun_QuizLoop(t *testing.T) {
	deck := &recordingDeck{}
	h := newHarness(t, deck, []string{"cat"},
		line("1"), line(""), // start, focus all
		line("R"),       // repeat
		line(" Cat "),   // correct
		line("kat"),     // wrong
		interrupt,       // back to menu
		line("q"),
	)

	require.NoError(t, h.ctrl.Run(context.Background()))

	it, ok := h.items.Get("cat")
	require.True(t, ok)
	assert.Equal(t, 2, it.Asked, "repeat does not count")
	assert.Equal(t, 1, it.RightCount)
	assert.Equal(t, 1, it.WrongCount)
	assert.Equal(t, 0, it.Streak)

	// Spoken on entry, on repeat, then once per new presentation.
	assert.Equal(t, []string{"cat", "cat", "cat", "cat"}, h.speaker.spoken)

	// One save per attempt, one on leaving the quiz, one on quit.
	assert.Len(t, deck.saves, 4)
	assert.Equal(t, 2, deck.last()[0].Asked)

	require.Len(t, deck.attempts, 2)
	assert.True(t, deck.attempts[0].Correct)
	assert.Equal(t, "Cat", deck.attempts[0].Answer)
	assert.False(t, deck.attempts[1].Correct)
	assert.Equal(t, h.ctrl.SessionID(), deck.attempts[1].SessionID)
	assert.Equal(t, "words", deck.attempts[1].Deck)

	out := h.output()
	assert.Contains(t, out, "Correct!")
	assert.Contains(t, out, "It is spelled: cat")
	assert.Contains(t, out, "1 of 2 correct")
}

func TestRun_EOFDuringQuizReturnsToMenu(t *testing.T) {
	deck := &memDeck{}
	h := newHarness(t, deck, []string{"cat"}, line("1"), line("all"), line("cat"))

	// Script runs out in the quiz (EOF to menu) and again at the menu (exit).
	require.NoError(t, h.ctrl.Run(context.Background()))
	it, _ := h.items.Get("cat")
	assert.Equal(t, 1, it.Asked)
	assert.Len(t, deck.saves, 3)
}

func TestRun_CategoryTransitionShown(t *testing.T) {
	deck := &memDeck{}
	h := newHarness(t, deck, []string{"cat"},
		line("1"), line(""),
		line("x"), line("x"), line("x"),
		interrupt, line("q"),
	)

	require.NoError(t, h.ctrl.Run(context.Background()))
	it, _ := h.items.Get("cat")
	assert.Equal(t, mastery.CategoryStruggling, it.Category)
	assert.Contains(t, h.output(), "cat: average -> struggling")
}

func TestRun_StartWithoutItems(t *testing.T) {
	h := newHarness(t, &memDeck{}, nil, line("1"), line("q"))
	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Contains(t, h.output(), "No items yet")
	assert.Empty(t, h.speaker.spoken)
}

func TestRun_FocusFallsBackToAll(t *testing.T) {
	h := newHarness(t, &memDeck{}, []string{"cat"}, line("1"), line("mastered"), interrupt, line("q"))
	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Contains(t, h.output(), "No mastered items; practicing all items.")
	assert.Equal(t, []string{"cat"}, h.speaker.spoken)
}

func TestRun_UnknownFocusAndChoice(t *testing.T) {
	h := newHarness(t, &memDeck{}, []string{"cat"}, line("1"), line("hard"), line("9"), line("q"))
	require.NoError(t, h.ctrl.Run(context.Background()))
	out := h.output()
	assert.Contains(t, out, `Unknown focus "hard"`)
	assert.Contains(t, out, `Unknown choice "9"`)
}

func TestRun_AddItems(t *testing.T) {
	deck := &memDeck{}
	h := newHarness(t, deck, nil,
		line("2"), line("  Give   UP "),
		line("2"), line("give up"),
		line("2"), line(""),
		line("2"), interrupt,
		line("q"),
	)

	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, 1, h.items.Len())
	it, ok := h.items.Get("give up")
	require.True(t, ok)
	assert.Equal(t, mastery.CategoryAverage, it.Category)

	out := h.output()
	assert.Contains(t, out, "Added give up (difficulty 2.00)")
	assert.Contains(t, out, `"give up" is already in the deck.`)
	// One save for the add, one on quit.
	assert.Len(t, deck.saves, 2)
}

func TestRun_Reset(t *testing.T) {
	deck := &memDeck{}
	h := newHarness(t, deck, []string{"cat"},
		line("3"), line("no"),
		line("3"), line("yes"),
		line("q"),
	)
	it, _ := h.items.Get("cat")
	it.RecordAttempt(true)
	it.Difficulty = 3.5

	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, 1, deck.archived)
	assert.Equal(t, mastery.Counters{}, it.Counters)
	assert.Equal(t, 3.5, it.Difficulty)
	assert.Contains(t, h.output(), "Reset cancelled.")
	assert.Contains(t, h.output(), "Archived to /tmp/Archive-words-2024-01-02_03-04-05.json")
}

func TestRun_Stats(t *testing.T) {
	h := newHarness(t, &memDeck{}, []string{"cat", "rhythm"}, line("4"), line("q"))
	require.NoError(t, h.ctrl.Run(context.Background()))
	out := h.output()
	assert.Contains(t, out, "Difficulty")
	assert.Contains(t, out, "rhythm")
	assert.Contains(t, out, "average")
}

func TestRun_SaveFailureIsNotFatal(t *testing.T) {
	deck := &memDeck{saveErr: errors.New("disk full")}
	h := newHarness(t, deck, []string{"cat"}, line("1"), line(""), line("cat"), interrupt, line("q"))

	require.NoError(t, h.ctrl.Run(context.Background()))
	it, _ := h.items.Get("cat")
	assert.Equal(t, 1, it.RightCount, "memory stays authoritative")
	assert.Contains(t, h.output(), "Could not save progress: disk full")
}

func TestRun_SpeechFailureIsNotFatal(t *testing.T) {
	h := newHarness(t, &memDeck{}, []string{"cat"}, line("1"), line(""), line("cat"), interrupt, line("q"))
	h.speaker.err = errors.New("no audio device")

	require.NoError(t, h.ctrl.Run(context.Background()))
	it, _ := h.items.Get("cat")
	assert.Equal(t, 1, it.Asked)
	assert.Contains(t, h.output(), "Speech failed: no audio device")
}

type cancelConsole struct{ cancel context.CancelFunc }

func (c cancelConsole) ReadLine(ctx context.Context, _ string) (string, error) {
	c.cancel()
	return "", ctx.Err()
}

func TestRun_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	deck := &memDeck{}
	items := vocab.NewCollection(fixedEstimator(1))
	log, _ := test.NewNullLogger()

	ctrl := New(items, deck, &fakeSpeaker{}, cancelConsole{cancel: cancel}, io.Discard, Config{Deck: "words"}, log)
	err := ctrl.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, deck.saves, 1, "progress saved on the way out")
}

func TestRunRecord(t *testing.T) {
	var r Run
	assert.Zero(t, r.Accuracy())
	r.Record(true, nil)
	r.Record(false, &mastery.Transition{Text: "cat", From: mastery.CategoryAverage, To: mastery.CategoryStruggling})
	assert.Equal(t, 2, r.Attempts)
	assert.Equal(t, 1, r.Correct)
	assert.InDelta(t, 0.5, r.Accuracy(), 1e-9)
	assert.Len(t, r.Transitions, 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "menu", StateMenu.String())
	assert.Equal(t, "quizzing", StateQuizzing.String())
	assert.Equal(t, "adding", StateAddingItem.String())
	assert.Equal(t, "done", StateDone.String())
}
