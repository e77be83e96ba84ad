package suggest

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a spelling coach helping an adult English learner prepare for a language exam.

Rules:
- Suggest items the learner has not practised yet. Never repeat an item from the "already known" list.
- Use common, standard English spelling. Avoid proper nouns, abbreviations and hyphenated forms.
- For words, return a single word. For phrasal verbs, return the verb and its particle(s) separated by single spaces.
- Aim for the requested difficulty: 1 is short, frequent and phonetically regular; 5 is long, rare or irregular.
- Keep definitions under 15 words and example sentences under 20 words.`

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Kind: %s\n", input.Kind)
	fmt.Fprintf(&b, "Count: %d\n", input.Count)
	fmt.Fprintf(&b, "Target difficulty: %.1f\n", input.TargetDifficulty)

	b.WriteString("\nAlready known:\n")
	b.WriteString(numberedList(input.Known, cfg.MaxKnownItems))

	b.WriteString("\nCurrently struggling with:\n")
	b.WriteString(numberedList(input.Struggling, cfg.MaxStruggling))

	return b.String()
}

// numberedList formats items for the prompt, keeping only the last max.
// Returns "None" if there are no items.
func numberedList(items []string, max int) string {
	if len(items) == 0 {
		return "None"
	}

	if max > 0 && len(items) > max {
		items = items[len(items)-max:]
	}

	var b strings.Builder
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, it)
	}
	return strings.TrimRight(b.String(), "\n")
}
