package selection

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/vocab"
)

func item(text string, cat mastery.Category, asked, right, streak int, difficulty float64) *vocab.Item {
	return &vocab.Item{
		Text: text,
		Counters: mastery.Counters{
			Asked:      asked,
			RightCount: right,
			WrongCount: asked - right,
			Streak:     streak,
		},
		Difficulty: difficulty,
		Category:   cat,
	}
}

func TestWeighted(t *testing.T) {
	tests := []struct {
		name string
		it   *vocab.Item
		want float64
	}{
		{"never asked", item("a", mastery.CategoryAverage, 0, 0, 0, 3), 0},
		{"zero streak collapses", item("a", mastery.CategoryAverage, 10, 9, 0, 5), 0},
		// 80 * 0.1 * 1.0 * 1.0
		{"average", item("a", mastery.CategoryAverage, 5, 4, 2, 1), 8},
		// 50 * 0.05 * 1.2 * 0.7
		{"struggling", item("a", mastery.CategoryStruggling, 4, 2, 1, 3), 2.1},
		// 100 * 1.0 * 1.4 * 1.2 capped
		{"capped", item("a", mastery.CategoryMastered, 20, 20, 20, 5), 100},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Weighted(tc.it)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Weighted = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRank_CategoryTierDominates(t *testing.T) {
	// A struggles with a high weighted score, B is mastered with a lower one.
	a := item("a", mastery.CategoryStruggling, 10, 8, 4, 5)
	b := item("b", mastery.CategoryMastered, 10, 10, 1, 1)
	require.Greater(t, Weighted(a), Weighted(b))

	got := Rank([]*vocab.Item{b, a})
	assert.Equal(t, []*vocab.Item{a, b}, got)
}

func TestRank_Order(t *testing.T) {
	mastered := item("mastered", mastery.CategoryMastered, 10, 10, 6, 2)
	avgHigh := item("avg-high", mastery.CategoryAverage, 10, 9, 5, 2)
	avgLow := item("avg-low", mastery.CategoryAverage, 10, 9, 1, 2)
	strugZero := item("strug-zero", mastery.CategoryStruggling, 5, 2, 0, 2)
	strugSome := item("strug-some", mastery.CategoryStruggling, 5, 3, 2, 2)

	got := Rank([]*vocab.Item{mastered, avgHigh, avgLow, strugSome, strugZero})
	want := []*vocab.Item{strugZero, strugSome, avgLow, avgHigh, mastered}
	assert.Equal(t, want, got)
}

func TestRank_StreakBreaksTies(t *testing.T) {
	// Both have zero weighted performance: one was never asked, the other
	// has no streak. Lower streak first, then input order.
	fresh := item("fresh", mastery.CategoryAverage, 0, 0, 0, 3)
	missed := item("missed", mastery.CategoryAverage, 2, 1, 0, 3)
	other := item("other", mastery.CategoryAverage, 0, 0, 0, 1)

	got := Rank([]*vocab.Item{missed, fresh, other})
	assert.Equal(t, []*vocab.Item{missed, fresh, other}, got, "stable for equal keys")
}

func TestRank_DoesNotModifyInput(t *testing.T) {
	a := item("a", mastery.CategoryMastered, 10, 10, 6, 2)
	b := item("b", mastery.CategoryStruggling, 5, 1, 0, 2)
	in := []*vocab.Item{a, b}
	Rank(in)
	assert.Same(t, a, in[0])
}

func TestFilter(t *testing.T) {
	items := []*vocab.Item{
		item("a", mastery.CategoryAverage, 0, 0, 0, 1),
		item("b", mastery.CategoryStruggling, 5, 1, 0, 1),
		item("c", mastery.CategoryAverage, 0, 0, 0, 1),
	}

	pool, fellBack := Filter(items, Focus{Category: mastery.CategoryAverage})
	assert.False(t, fellBack)
	assert.Len(t, pool, 2)

	pool, fellBack = Filter(items, Focus{})
	assert.False(t, fellBack)
	assert.Len(t, pool, 3)

	pool, fellBack = Filter(items, Focus{Category: mastery.CategoryMastered})
	assert.True(t, fellBack)
	assert.Len(t, pool, 3)
}

func TestParseFocus(t *testing.T) {
	f, ok := ParseFocus("all")
	assert.True(t, ok)
	assert.True(t, f.All())

	f, ok = ParseFocus("struggling")
	assert.True(t, ok)
	assert.Equal(t, mastery.CategoryStruggling, f.Category)
	assert.Equal(t, "struggling", f.String())

	_, ok = ParseFocus("expert")
	assert.False(t, ok)
}

func TestPick_Empty(t *testing.T) {
	s := NewSelector(rand.New(rand.NewPCG(1, 2)), DefaultExploreRate)
	assert.Nil(t, s.Pick(nil))
}

func TestPick_NoExplorationAlwaysTop(t *testing.T) {
	top := item("top", mastery.CategoryStruggling, 5, 1, 0, 1)
	pool := []*vocab.Item{
		item("x", mastery.CategoryAverage, 0, 0, 0, 1),
		top,
		item("y", mastery.CategoryMastered, 10, 10, 6, 1),
	}
	s := NewSelector(rand.New(rand.NewPCG(1, 2)), 0)
	for i := 0; i < 100; i++ {
		require.Same(t, top, s.Pick(pool))
	}
}

func TestPick_ExplorationRate(t *testing.T) {
	top := item("top", mastery.CategoryStruggling, 5, 1, 0, 1)
	pool := []*vocab.Item{
		top,
		item("b", mastery.CategoryAverage, 0, 0, 0, 1),
		item("c", mastery.CategoryAverage, 0, 0, 0, 1),
		item("d", mastery.CategoryMastered, 10, 10, 6, 1),
	}
	s := NewSelector(rand.New(rand.NewPCG(7, 11)), DefaultExploreRate)

	const n = 20000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		counts[s.Pick(pool).Text]++
	}

	// 0.7 exploit plus a quarter of the 0.3 exploration share.
	topShare := float64(counts["top"]) / n
	assert.InDelta(t, 0.775, topShare, 0.02)
	for _, it := range pool[1:] {
		assert.InDelta(t, 0.075, float64(counts[it.Text])/n, 0.015, it.Text)
	}
}

func TestNewSelector_ClampsRate(t *testing.T) {
	assert.Equal(t, 1.0, NewSelector(rand.New(rand.NewPCG(1, 1)), 3).exploreRate)
	assert.Equal(t, 0.0, NewSelector(rand.New(rand.NewPCG(1, 1)), -1).exploreRate)
}
