package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/spellz/internal/difficulty"
	"github.com/abhisek/spellz/internal/llm"
	"github.com/abhisek/spellz/internal/suggest"
	"github.com/abhisek/spellz/internal/ui/components"
	"github.com/abhisek/spellz/internal/ui/theme"
	"github.com/abhisek/spellz/internal/vocab"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Ask an LLM for new items at a target difficulty",
	Long: `Suggest asks the configured LLM for new words or phrasal verbs that are
not yet in the deck. Configure a provider with SPELLZ_LLM_PROVIDER and an API
key, or set one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or
OPENROUTER_API_KEY.`,
	Example: `  spellz suggest --count 5
  spellz --deck phrasal_verbs suggest --difficulty 4 --add`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		target, _ := cmd.Flags().GetFloat64("difficulty")
		add, _ := cmd.Flags().GetBool("add")
		if count <= 0 {
			return fmt.Errorf("--count must be positive, got %d", count)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if target == 0 {
			target = averageDifficulty(a.Items.Items())
		}
		if target < difficulty.MinDifficulty || target > difficulty.MaxDifficulty {
			return fmt.Errorf("--difficulty must be within [%g, %g]", difficulty.MinDifficulty, difficulty.MaxDifficulty)
		}

		ctx := llm.WithPurpose(commandContext(cmd), suggest.Purpose)
		provider, err := a.LLM(ctx)
		if err != nil {
			return err
		}

		kind := suggest.KindForDeck(a.Config.Deck)
		s := suggest.New(provider, a.Estimator, suggest.DefaultConfig())
		got, err := s.Suggest(ctx, suggest.InputFor(a.Items, kind, count, target))
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(got) == 0 {
			lipgloss.Fprintln(out, theme.Hint.Render("No new suggestions."))
			return nil
		}
		lipgloss.Fprintln(out, suggestionTable(got).View())

		if !add {
			return nil
		}
		added := 0
		for _, sg := range got {
			if _, err := a.Items.Add(sg.Text); err != nil {
				a.Log.WithError(err).WithField("item", sg.Text).Warn("skip suggestion")
				continue
			}
			added++
		}
		if err := a.Save(ctx); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nAdded %d items to the %s deck\n", added, a.Config.Deck)
		return nil
	},
}

// averageDifficulty is the mean difficulty of items, or the middle of the
// scale for an empty deck.
func averageDifficulty(items []*vocab.Item) float64 {
	if len(items) == 0 {
		return (difficulty.MinDifficulty + difficulty.MaxDifficulty) / 2
	}
	return lo.SumBy(items, func(it *vocab.Item) float64 { return it.Difficulty }) / float64(len(items))
}

func suggestionTable(items []suggest.Suggestion) components.Table {
	return components.Table{
		Headers: []string{"Item", "Difficulty", "Definition", "Example"},
		Rows: lo.Map(items, func(s suggest.Suggestion, _ int) []string {
			return []string{s.Text, fmt.Sprintf("%.2f", s.Difficulty), truncate(s.Definition, 48), truncate(s.Example, 60)}
		}),
		Right: map[int]bool{1: true},
	}
}

func init() {
	suggestCmd.Flags().IntP("count", "c", 5, "Number of items to suggest")
	suggestCmd.Flags().Float64("difficulty", 0, "Target difficulty from 1 to 5 (default: the deck average)")
	suggestCmd.Flags().Bool("add", false, "Add the suggestions to the deck")
}
