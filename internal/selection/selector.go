package selection

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/vocab"
)

// DefaultExploreRate is the probability of picking a random item instead
// of the top-ranked one.
const DefaultExploreRate = 0.3

// Focus restricts selection to one category. The zero value means all items.
type Focus struct {
	Category mastery.Category
}

// All reports whether the focus includes every category.
func (f Focus) All() bool {
	return f.Category == ""
}

func (f Focus) String() string {
	if f.All() {
		return "all"
	}
	return string(f.Category)
}

// ParseFocus maps "all" or a category name to a Focus.
func ParseFocus(s string) (Focus, bool) {
	if s == "" || s == "all" {
		return Focus{}, true
	}
	c, ok := mastery.ParseCategory(s)
	if !ok {
		return Focus{}, false
	}
	return Focus{Category: c}, true
}

// Filter returns the items matching the focus. If none match, it returns
// all items and fellBack is true.
func Filter(items []*vocab.Item, f Focus) (pool []*vocab.Item, fellBack bool) {
	if f.All() {
		return items, false
	}
	pool = lo.Filter(items, func(it *vocab.Item, _ int) bool {
		return it.Category == f.Category
	})
	if len(pool) == 0 {
		return items, true
	}
	return pool, false
}

// Selector chooses the next quiz item: usually the most urgent one,
// occasionally a random one so that every item gets practiced.
type Selector struct {
	rng         *rand.Rand
	exploreRate float64
}

// NewSelector returns a Selector drawing from rng. exploreRate is clamped
// to [0, 1].
func NewSelector(rng *rand.Rand, exploreRate float64) *Selector {
	return &Selector{rng: rng, exploreRate: min(max(exploreRate, 0), 1)}
}

// Pick returns the next item from pool, or nil if pool is empty.
func (s *Selector) Pick(pool []*vocab.Item) *vocab.Item {
	if len(pool) == 0 {
		return nil
	}
	if s.rng.Float64() < s.exploreRate {
		return pool[s.rng.IntN(len(pool))]
	}
	return Rank(pool)[0]
}
