package session

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/selection"
	"github.com/abhisek/spellz/internal/ui/components"
	"github.com/abhisek/spellz/internal/ui/theme"
	"github.com/abhisek/spellz/internal/vocab"
)

// barWidth is the width of the progress bars in summaries.
const barWidth = 40

// RunSummary renders the result of a quiz run.
func RunSummary(r Run) string {
	if r.Attempts == 0 {
		return theme.Hint.Render("No attempts this round.") + "\n"
	}

	var b strings.Builder
	b.WriteString(theme.Title.Render("Round summary"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d of %d correct\n", r.Correct, r.Attempts)
	b.WriteString(components.Gauge{Label: "accuracy", Ratio: r.Accuracy(), Width: barWidth, Percent: true}.View())
	b.WriteString("\n")
	for _, t := range r.Transitions {
		b.WriteString(TransitionLine(t))
		b.WriteString("\n")
	}
	return b.String()
}

// TransitionLine describes a category change.
func TransitionLine(t mastery.Transition) string {
	return fmt.Sprintf("%s: %s -> %s",
		theme.Body.Render(t.Text),
		theme.CategoryStyle(t.From).Render(t.From.String()),
		theme.CategoryStyle(t.To).Render(t.To.String()),
	)
}

// StatsView renders per-item statistics, most urgent first, followed by
// the category breakdown.
func StatsView(items []*vocab.Item) string {
	if len(items) == 0 {
		return theme.Hint.Render("No items yet.") + "\n"
	}

	tbl := components.Table{
		Headers: []string{"Item", "Asked", "Right", "Wrong", "%", "Streak", "Category", "Difficulty"},
		Right:   map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 7: true},
	}
	for _, it := range selection.Rank(items) {
		tbl.Rows = append(tbl.Rows, []string{
			it.Text,
			fmt.Sprint(it.Asked),
			fmt.Sprint(it.RightCount),
			fmt.Sprint(it.WrongCount),
			fmt.Sprintf("%.0f", it.Percentage()),
			fmt.Sprint(it.Streak),
			theme.CategoryStyle(it.Category).Render(it.Category.String()),
			fmt.Sprintf("%.2f", it.Difficulty),
		})
	}

	var b strings.Builder
	b.WriteString(tbl.View())
	b.WriteString("\n")

	groups := lo.GroupBy(items, func(it *vocab.Item) mastery.Category { return it.Category })
	for _, c := range mastery.AllCategories {
		n := len(groups[c])
		share := float64(n) / float64(len(items))
		label := fmt.Sprintf("%-10s %3d", c, n)
		b.WriteString(components.Gauge{Label: label, Ratio: share, Width: barWidth, Percent: true}.View())
		b.WriteString("\n")
	}
	return b.String()
}
