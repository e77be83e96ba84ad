package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/spellz/internal/vocab"
)

var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add words or phrasal verbs to the deck",
	Example: `  spellz add rhythm necessary
  spellz --deck phrasal_verbs add "give up" "look after"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		added := 0
		for _, text := range args {
			it, err := a.Items.Add(text)
			switch {
			case errors.Is(err, vocab.ErrDuplicate):
				fmt.Fprintf(out, "%q is already in the deck\n", vocab.Normalize(text))
				continue
			case err != nil:
				fmt.Fprintf(out, "skipping %q: %v\n", text, err)
				continue
			}
			added++
			fmt.Fprintf(out, "Added %s (difficulty %.2f)\n", it.Text, it.Difficulty)
		}
		if added == 0 {
			return nil
		}
		return a.Save(commandContext(cmd))
	},
}
