package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Archive the deck and reset all scores",
	Long: `Reset copies the current deck to a timestamped archive and clears the
counters of every item. Items and their difficulty are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("reset needs --yes to confirm")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx := commandContext(cmd)
		path, err := a.Deck.Archive(ctx)
		if err != nil {
			return fmt.Errorf("archive deck: %w", err)
		}
		if path != "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Archived to", path)
		}

		a.Items.ResetScores()
		if err := a.Save(ctx); err != nil {
			return err
		}
		a.Log.WithField("archive", path).Info("scores reset")
		fmt.Fprintf(cmd.OutOrStdout(), "Reset %d items in the %s deck\n", a.Items.Len(), a.Config.Deck)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
