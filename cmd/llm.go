package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/abhisek/spellz/internal/llm"
	"github.com/abhisek/spellz/internal/store"
	"github.com/abhisek/spellz/internal/ui/components"
	"github.com/abhisek/spellz/internal/ui/theme"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests (sqlite store only)",
}

// withEvents opens the app and hands the event history to fn.
func withEvents(cmd *cobra.Command, fn func(events store.EventRepo) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	events, err := a.Events()
	if err != nil {
		return err
	}
	return fn(events)
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withEvents(cmd, func(events store.EventRepo) error {
			list, err := events.QueryLLMEvents(commandContext(cmd), store.QueryOpts{Limit: limit})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			list = lo.Filter(list, func(e store.LLMRequestEventRecord, _ int) bool {
				return purpose == "" || e.Purpose == purpose
			})

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}
			lipgloss.Fprintln(out, eventTable(list).View())
			return nil
		})
	},
}

func eventTable(list []store.LLMRequestEventRecord) components.Table {
	return components.Table{
		Headers: []string{"ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK"},
		Rows: lo.Map(list, func(e store.LLMRequestEventRecord, _ int) []string {
			ok := "yes"
			if !e.Success {
				ok = "no"
			}
			return []string{
				strconv.Itoa(e.ID),
				e.Timestamp.Local().Format(timeLayout),
				e.Purpose,
				truncate(e.Model, 28),
				strconv.Itoa(e.InputTokens),
				strconv.Itoa(e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10),
				ok,
			}
		}),
		Right: map[int]bool{0: true, 4: true, 5: true, 6: true},
	}
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full request and response of an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withEvents(cmd, func(events store.EventRepo) error {
			e, err := events.GetLLMEvent(commandContext(cmd), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}
			writeEvent(cmd.OutOrStdout(), e)
			return nil
		})
	},
}

func writeEvent(w io.Writer, e *store.LLMRequestEventRecord) {
	field := func(name, value string) {
		lipgloss.Fprintln(w, theme.MenuKey.Render(fmt.Sprintf("%-10s", name+":"))+value)
	}
	field("ID", strconv.Itoa(e.ID))
	field("Time", e.Timestamp.Local().Format(timeLayout))
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Purpose", e.Purpose)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	field("Success", strconv.FormatBool(e.Success))
	if e.ErrorMessage != "" {
		field("Error", e.ErrorMessage)
	}

	section := func(title, body string) {
		lipgloss.Fprintln(w)
		lipgloss.Fprintln(w, theme.Subtitle.Render(title))
		lipgloss.Fprintln(w, theme.Hint.Render(strings.Repeat("─", 60)))
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintln(w, body)
	}
	section("Request", e.RequestBody)
	section("Response", e.ResponseBody)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEvents(cmd, func(events store.EventRepo) error {
			ctx := commandContext(cmd)
			byPurpose, err := events.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(byPurpose) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}
			byModel, err := events.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}

			lipgloss.Fprintln(out, theme.Subtitle.Render("Usage by purpose"))
			lipgloss.Fprintln(out, purposeTable(byPurpose).View())
			lipgloss.Fprintln(out)
			lipgloss.Fprintln(out, theme.Subtitle.Render("Estimated cost (USD)"))
			table, unknown := costTable(byModel)
			lipgloss.Fprintln(out, table.View())
			if len(unknown) > 0 {
				lipgloss.Fprintln(out, theme.Hint.Render("Pricing unavailable for: "+strings.Join(unknown, ", ")))
			}
			return nil
		})
	},
}

func purposeTable(stats []store.LLMUsageStats) components.Table {
	t := components.Table{
		Headers: []string{"Purpose", "Calls", "Input", "Output", "Total", "Avg ms"},
		Right:   map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true},
	}
	var calls, in, outTok int
	for _, st := range stats {
		t.Rows = append(t.Rows, []string{
			st.Purpose,
			strconv.Itoa(st.Calls),
			strconv.Itoa(st.InputTokens),
			strconv.Itoa(st.OutputTokens),
			strconv.Itoa(st.InputTokens + st.OutputTokens),
			strconv.FormatInt(st.AvgLatencyMs, 10),
		})
		calls += st.Calls
		in += st.InputTokens
		outTok += st.OutputTokens
	}
	t.Rows = append(t.Rows, []string{"TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(outTok), strconv.Itoa(in + outTok), ""})
	return t
}

// costTable prices usage per model. Models without a known price are
// listed with "?" and returned separately.
func costTable(usage []store.LLMModelUsage) (components.Table, []string) {
	t := components.Table{
		Headers: []string{"Model", "Calls", "Input", "Output", "Cost"},
		Right:   map[int]bool{1: true, 2: true, 3: true, 4: true},
	}
	var total float64
	var unknown []string
	for _, mu := range usage {
		cost := "?"
		if p, ok := llm.PriceOf(mu.Model); ok {
			c := p.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unknown = append(unknown, mu.Model)
		}
		t.Rows = append(t.Rows, []string{
			truncate(mu.Model, 32),
			strconv.Itoa(mu.Calls),
			strconv.Itoa(mu.InputTokens),
			strconv.Itoa(mu.OutputTokens),
			cost,
		})
	}
	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	t.Rows = append(t.Rows, []string{label, "", "", "", formatCost(total)})
	return t, unknown
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show events with this purpose (e.g. suggest)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
