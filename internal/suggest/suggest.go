// Package suggest asks an LLM for new practice items and filters the
// answers against the deck.
package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/spellz/internal/llm"
	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/vocab"
)

// Purpose labels suggestion requests in the LLM event log.
const Purpose = "suggest"

// Kind is the shape of the items a deck holds.
type Kind string

const (
	KindWords  Kind = "words"
	KindPhrase Kind = "phrasal verbs"
)

// KindForDeck returns the item kind kept in the named deck.
func KindForDeck(deck string) Kind {
	if strings.Contains(deck, "phras") {
		return KindPhrase
	}
	return KindWords
}

// Config controls the behavior of the Suggester.
type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxKnownItems caps how many deck items are listed for deduplication.
	MaxKnownItems int

	// MaxStruggling caps how many struggling items are listed as context.
	MaxStruggling int
}

// DefaultConfig returns a Config with recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:     1024,
		Temperature:   0.8,
		MaxKnownItems: 200,
		MaxStruggling: 10,
	}
}

// Input describes a suggestion request.
type Input struct {
	Kind             Kind
	Count            int
	TargetDifficulty float64
	Known            []string
	Struggling       []string
}

// Suggestion is a candidate item with its locally estimated difficulty.
type Suggestion struct {
	Text       string
	Definition string
	Example    string
	Difficulty float64
}

// Suggester produces item suggestions from an LLM provider.
type Suggester struct {
	provider llm.Provider
	est      vocab.Estimator
	config   Config
}

// New creates a Suggester.
func New(provider llm.Provider, est vocab.Estimator, cfg Config) *Suggester {
	return &Suggester{provider: provider, est: est, config: cfg}
}

type suggestionOutput struct {
	Items []struct {
		Text       string `json:"text"`
		Definition string `json:"definition"`
		Example    string `json:"example"`
	} `json:"items"`
}

// Suggest returns at most input.Count new items, closest to the target
// difficulty first.
func (s *Suggester) Suggest(ctx context.Context, input Input) ([]Suggestion, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", input.Count)
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, s.config)},
		},
		Schema:      SuggestionSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw suggestionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	known := make(map[string]bool, len(input.Known))
	for _, k := range input.Known {
		known[vocab.Normalize(k)] = true
	}

	var out []Suggestion
	for _, it := range raw.Items {
		text := vocab.Normalize(it.Text)
		if text == "" || known[text] || !fits(input.Kind, text) {
			continue
		}
		known[text] = true
		out = append(out, Suggestion{
			Text:       text,
			Definition: strings.TrimSpace(it.Definition),
			Example:    strings.TrimSpace(it.Example),
			Difficulty: s.est.Estimate(text),
		})
	}

	slices.SortStableFunc(out, func(a, b Suggestion) int {
		da := math.Abs(a.Difficulty - input.TargetDifficulty)
		db := math.Abs(b.Difficulty - input.TargetDifficulty)
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		}
		return 0
	})

	if len(out) > input.Count {
		out = out[:input.Count]
	}
	return out, nil
}

// fits reports whether text has the shape the kind expects.
func fits(kind Kind, text string) bool {
	words := strings.Fields(text)
	if !lo.EveryBy(words, isWord) {
		return false
	}
	if kind == KindPhrase {
		return len(words) >= 2 && len(words) <= 4
	}
	return len(words) == 1
}

func isWord(w string) bool {
	for _, r := range w {
		if (r < 'a' || r > 'z') && r != '\'' {
			return false
		}
	}
	return true
}

// InputFor builds a request for n items from the current collection.
func InputFor(c *vocab.Collection, kind Kind, n int, target float64) Input {
	items := c.Items()
	return Input{
		Kind:             kind,
		Count:            n,
		TargetDifficulty: target,
		Known:            lo.Map(items, func(it *vocab.Item, _ int) string { return it.Text }),
		Struggling: lo.FilterMap(items, func(it *vocab.Item, _ int) (string, bool) {
			return it.Text, it.Category == mastery.CategoryStruggling
		}),
	}
}
