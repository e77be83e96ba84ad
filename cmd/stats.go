package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/spellz/internal/session"
	"github.com/abhisek/spellz/internal/store"
	"github.com/abhisek/spellz/internal/ui/components"
	"github.com/abhisek/spellz/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-item statistics for the deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		out := cmd.OutOrStdout()
		lipgloss.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s deck", a.Config.Deck)))
		lipgloss.Fprint(out, session.StatsView(a.Items.Items()))

		n, _ := cmd.Flags().GetInt("history")
		if n <= 0 {
			return nil
		}

		events, err := a.Events()
		if err != nil {
			return err
		}
		attempts, err := events.RecentAttempts(commandContext(cmd), store.QueryOpts{Limit: n})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		lipgloss.Fprintln(out)
		lipgloss.Fprintln(out, theme.Subtitle.Render("Recent attempts"))
		if len(attempts) == 0 {
			lipgloss.Fprintln(out, theme.Hint.Render("No attempts recorded yet."))
			return nil
		}
		lipgloss.Fprintln(out, historyTable(attempts).View())
		return nil
	},
}

func historyTable(attempts []store.AttemptEventRecord) components.Table {
	return components.Table{
		Headers: []string{"Time", "Deck", "Item", "Answer", "Result", "Category"},
		Rows: lo.Map(attempts, func(e store.AttemptEventRecord, _ int) []string {
			result := "wrong"
			if e.Correct {
				result = "right"
			}
			return []string{
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Deck,
				e.Text,
				e.Answer,
				result,
				e.Category,
			}
		}),
	}
}

func init() {
	statsCmd.Flags().IntP("history", "n", 0, "Also show the last N attempts (sqlite store only)")
}
