package vocab

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/spellz/internal/difficulty"
	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/store"
)

var (
	// ErrDuplicate is returned when an item with the same normalized text exists.
	ErrDuplicate = errors.New("item already exists")
	// ErrEmptyText is returned when the text normalizes to nothing.
	ErrEmptyText = errors.New("item text is empty")
)

// Estimator computes the static difficulty of a text.
type Estimator interface {
	Estimate(text string) float64
}

// Collection is the ordered set of items of one deck, keyed by normalized
// text. The zero value is not usable; create one with NewCollection.
type Collection struct {
	items []*Item
	index map[string]*Item
	est   Estimator
}

// NewCollection returns an empty collection whose new items are scored by est.
func NewCollection(est Estimator) *Collection {
	return &Collection{
		index: make(map[string]*Item),
		est:   est,
	}
}

// FromRecords builds a collection from persisted records. Stored difficulty
// and category values are kept; missing, unknown or out-of-range ones are
// computed. Duplicate and empty records are skipped and logged.
func FromRecords(records []store.Record, est Estimator, log logrus.FieldLogger) *Collection {
	c := NewCollection(est)
	for _, r := range records {
		text := Normalize(r.Text)
		if text == "" {
			log.WithField("record", r).Warn("skipping record without text")
			continue
		}
		if _, ok := c.index[text]; ok {
			log.WithField("text", text).Warn("skipping duplicate record")
			continue
		}

		it := &Item{
			Text: text,
			Counters: mastery.Counters{
				RightCount: max(r.RightCount, 0),
				WrongCount: max(r.WrongCount, 0),
				Asked:      max(r.Asked, 0),
				Streak:     max(r.Streak, 0),
			},
		}
		switch {
		case r.Difficulty == nil:
			it.Difficulty = est.Estimate(text)
		case !validDifficulty(*r.Difficulty):
			it.Difficulty = est.Estimate(text)
			log.WithFields(logrus.Fields{
				"text":       text,
				"difficulty": *r.Difficulty,
			}).Warn("recomputing out-of-range difficulty")
		default:
			it.Difficulty = *r.Difficulty
		}
		it.Category = mastery.Classify(it.Counters)
		if r.Category != nil {
			if cat, ok := mastery.ParseCategory(*r.Category); ok {
				it.Category = cat
			}
		}

		c.insert(it)
	}
	return c
}

// Records returns the persisted form of every item in insertion order.
func (c *Collection) Records() []store.Record {
	out := make([]store.Record, 0, len(c.items))
	for _, it := range c.items {
		difficulty := it.Difficulty
		category := string(it.Category)
		out = append(out, store.Record{
			Text:       it.Text,
			RightCount: it.RightCount,
			WrongCount: it.WrongCount,
			Asked:      it.Asked,
			Streak:     it.Streak,
			Difficulty: &difficulty,
			Category:   &category,
		})
	}
	return out
}

func validDifficulty(d float64) bool {
	return !math.IsNaN(d) && d >= difficulty.MinDifficulty && d <= difficulty.MaxDifficulty
}

// Add inserts a new item with zeroed counters, an estimated difficulty and
// the Average category.
func (c *Collection) Add(text string) (*Item, error) {
	norm := Normalize(text)
	if norm == "" {
		return nil, ErrEmptyText
	}
	if _, ok := c.index[norm]; ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicate, norm)
	}
	it := &Item{
		Text:       norm,
		Difficulty: c.est.Estimate(norm),
		Category:   mastery.CategoryAverage,
	}
	c.insert(it)
	return it, nil
}

func (c *Collection) insert(it *Item) {
	c.items = append(c.items, it)
	c.index[it.Text] = it
}

// Get returns the item with the given text, normalizing it first.
func (c *Collection) Get(text string) (*Item, bool) {
	it, ok := c.index[Normalize(text)]
	return it, ok
}

// Items returns the items in insertion order. The slice is a copy; the
// items are shared.
func (c *Collection) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// ResetScores zeroes every item's counters and sets the Average category.
// Difficulty is kept.
func (c *Collection) ResetScores() {
	for _, it := range c.items {
		it.Counters.Reset()
		it.Category = mastery.CategoryAverage
	}
}
