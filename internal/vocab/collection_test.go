package vocab

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/store"
)

// fixedEstimator scores every text the same and counts calls.
type fixedEstimator struct {
	value float64
	calls int
}

func (f *fixedEstimator) Estimate(string) float64 {
	f.calls++
	return f.value
}

func ptr[T any](v T) *T { return &v }

func TestAdd(t *testing.T) {
	c := NewCollection(&fixedEstimator{value: 2.5})

	it, err := c.Add("  Give   UP ")
	require.NoError(t, err)
	assert.Equal(t, "give up", it.Text)
	assert.Equal(t, 2.5, it.Difficulty)
	assert.Equal(t, mastery.CategoryAverage, it.Category)
	assert.Zero(t, it.Asked)

	got, ok := c.Get("GIVE UP")
	require.True(t, ok)
	assert.Same(t, it, got)
}

func TestAdd_DuplicateRejectedWithoutMutation(t *testing.T) {
	c := NewCollection(&fixedEstimator{value: 1})
	first, err := c.Add("rhythm")
	require.NoError(t, err)
	first.RecordAttempt(true)

	_, err = c.Add(" RHYTHM ")
	assert.True(t, errors.Is(err, ErrDuplicate))
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, first.Asked)
}

func TestAdd_Empty(t *testing.T) {
	c := NewCollection(&fixedEstimator{value: 1})
	_, err := c.Add("   ")
	assert.ErrorIs(t, err, ErrEmptyText)
	assert.Zero(t, c.Len())
}

func TestCollectionsDoNotShareState(t *testing.T) {
	est := &fixedEstimator{value: 1}
	a := NewCollection(est)
	b := NewCollection(est)

	_, err := a.Add("cat")
	require.NoError(t, err)
	assert.Equal(t, 1, a.Len())
	assert.Zero(t, b.Len())
}

func TestFromRecords_FillsMissingValues(t *testing.T) {
	est := &fixedEstimator{value: 4}
	log, _ := test.NewNullLogger()

	c := FromRecords([]store.Record{
		{Text: "Rhythm", Asked: 5, RightCount: 3, WrongCount: 2},
		{Text: "cat", Difficulty: ptr(1.5), Category: ptr("mastered")},
		{Text: "dog", Category: ptr("unknown")},
	}, est, log)

	require.Equal(t, 3, c.Len())
	items := c.Items()

	assert.Equal(t, "rhythm", items[0].Text)
	assert.Equal(t, 4.0, items[0].Difficulty)
	assert.Equal(t, mastery.CategoryStruggling, items[0].Category)

	// Stored values are kept even when the counters disagree.
	assert.Equal(t, 1.5, items[1].Difficulty)
	assert.Equal(t, mastery.CategoryMastered, items[1].Category)

	assert.Equal(t, mastery.CategoryAverage, items[2].Category)
	assert.Equal(t, 2, est.calls, "difficulty is only estimated when missing")
}

func TestFromRecords_RecomputesOutOfRangeDifficulty(t *testing.T) {
	est := &fixedEstimator{value: 2}
	log, hook := test.NewNullLogger()

	c := FromRecords([]store.Record{
		{Text: "cat", Difficulty: ptr(0.0)},
		{Text: "dog", Difficulty: ptr(42.0)},
		{Text: "owl", Difficulty: ptr(math.NaN())},
		{Text: "elk", Difficulty: ptr(math.Inf(-1))},
		{Text: "ant", Difficulty: ptr(5.0)},
		{Text: "bee", Difficulty: ptr(1.0)},
	}, est, log)

	got := map[string]float64{}
	for _, it := range c.Items() {
		got[it.Text] = it.Difficulty
	}
	assert.Equal(t, map[string]float64{"cat": 2, "dog": 2, "owl": 2, "elk": 2, "ant": 5, "bee": 1}, got)
	assert.Equal(t, 4, est.calls)
	require.Len(t, hook.AllEntries(), 4)
	assert.Equal(t, 42.0, hook.AllEntries()[1].Data["difficulty"])
}

func TestFromRecords_SkipsDuplicatesAndEmpty(t *testing.T) {
	log, hook := test.NewNullLogger()
	c := FromRecords([]store.Record{
		{Text: "cat"},
		{Text: "CAT", Asked: 9},
		{Text: "  "},
	}, &fixedEstimator{value: 1}, log)

	assert.Equal(t, 1, c.Len())
	it, _ := c.Get("cat")
	assert.Zero(t, it.Asked)
	require.Len(t, hook.AllEntries(), 2)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRecords_RoundTripKeepsValues(t *testing.T) {
	log, _ := test.NewNullLogger()
	in := []store.Record{
		{Text: "rhythm", RightCount: 4, WrongCount: 1, Asked: 5, Streak: 3, Difficulty: ptr(2.25), Category: ptr("average")},
		{Text: "look up", Difficulty: ptr(3.0), Category: ptr("struggling")},
	}
	est := &fixedEstimator{value: 5}
	out := FromRecords(in, est, log).Records()

	assert.Equal(t, in, out)
	assert.Zero(t, est.calls)
}

func TestResetScores(t *testing.T) {
	c := NewCollection(&fixedEstimator{value: 3})
	it, err := c.Add("necessary")
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		it.RecordAttempt(true)
	}
	require.Equal(t, mastery.CategoryMastered, it.Category)

	c.ResetScores()
	assert.Equal(t, mastery.Counters{}, it.Counters)
	assert.Equal(t, mastery.CategoryAverage, it.Category)
	assert.Equal(t, 3.0, it.Difficulty)
}
