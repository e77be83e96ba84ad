// Package vocab holds the trainer's items and the collection that owns them.
package vocab

import (
	"strings"

	"github.com/abhisek/spellz/internal/mastery"
)

// Item is a word or phrasal verb with its attempt history.
type Item struct {
	// Text is the normalized canonical spelling.
	Text string
	mastery.Counters
	// Difficulty is the static estimate in [1, 5].
	Difficulty float64
	Category   mastery.Category
}

// RecordAttempt applies one completed attempt and reclassifies the item.
// It returns the category change, or nil if the category is unchanged.
func (it *Item) RecordAttempt(correct bool) *mastery.Transition {
	it.Counters.Record(correct)
	from := it.Category
	it.Category = mastery.Classify(it.Counters)
	if from == it.Category {
		return nil
	}
	return &mastery.Transition{Text: it.Text, From: from, To: it.Category}
}

// Matches reports whether answer spells the item, ignoring case and
// surrounding or repeated whitespace.
func (it *Item) Matches(answer string) bool {
	return Normalize(answer) == it.Text
}

// WordCount returns the number of whitespace-separated words in the item.
func (it *Item) WordCount() int {
	return len(strings.Fields(it.Text))
}

// Normalize lowercases text, trims it and collapses inner whitespace.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}
