// Package selection orders items by urgency and picks the next one to quiz.
package selection

import (
	"sort"

	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/vocab"
)

const (
	// streakBonus is the weight of each consecutive correct answer.
	streakBonus = 0.05
	// difficultyBonus is the weight of each difficulty step above 1.
	difficultyBonus = 0.1
	maxWeighted     = 100.0
)

// Tier returns the category's sort tier: Struggling first, Mastered last.
func Tier(c mastery.Category) int {
	switch c {
	case mastery.CategoryStruggling:
		return 0
	case mastery.CategoryMastered:
		return 2
	default:
		return 1
	}
}

// CategoryFactor scales weighted performance so struggling items rank
// more urgently and mastered items less.
func CategoryFactor(c mastery.Category) float64 {
	switch c {
	case mastery.CategoryStruggling:
		return 0.7
	case mastery.CategoryMastered:
		return 1.2
	default:
		return 1.0
	}
}

// Weighted blends percentage, streak, difficulty and category into a
// priority score in [0, 100]. Lower is more urgent. A zero streak yields
// zero regardless of percentage.
func Weighted(it *vocab.Item) float64 {
	if it.Asked == 0 {
		return 0
	}
	w := it.Percentage() *
		(float64(it.Streak) * streakBonus) *
		(1 + (it.Difficulty-1)*difficultyBonus) *
		CategoryFactor(it.Category)
	return min(w, maxWeighted)
}

// Less reports whether a is more urgent than b.
func Less(a, b *vocab.Item) bool {
	if ta, tb := Tier(a.Category), Tier(b.Category); ta != tb {
		return ta < tb
	}
	if wa, wb := Weighted(a), Weighted(b); wa != wb {
		return wa < wb
	}
	return a.Streak < b.Streak
}

// Rank returns items sorted from most to least urgent. Items with equal
// keys keep their input order. The input slice is not modified.
func Rank(items []*vocab.Item) []*vocab.Item {
	out := make([]*vocab.Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return Less(out[i], out[j])
	})
	return out
}
