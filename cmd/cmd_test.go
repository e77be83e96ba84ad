package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/mastery"
	"github.com/abhisek/spellz/internal/store"
	"github.com/abhisek/spellz/internal/suggest"
	"github.com/abhisek/spellz/internal/vocab"
)

// resetFlags restores every flag to its default so tests do not leak
// values through the shared command tree.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAddStatsReset(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir := t.TempDir()
	base := []string{"--data-dir", dir, "--deck", "words", "--store", "json", "--speech", "none"}

	out, err := execute(t, append(base, "add", "rhythm", "Rhythm", "cat")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Added rhythm")
	assert.Contains(t, out, `"rhythm" is already in the deck`)
	assert.Contains(t, out, "Added cat")
	assert.FileExists(t, filepath.Join(dir, "words.json"))

	out, err = execute(t, append(base, "stats")...)
	require.NoError(t, err)
	assert.Contains(t, out, "words deck")
	assert.Contains(t, out, "rhythm")
	assert.Contains(t, out, "Difficulty")

	_, err = execute(t, append(base, "reset")...)
	assert.Error(t, err, "reset without --yes")

	out, err = execute(t, append(base, "reset", "--yes")...)
	require.NoError(t, err)
	assert.Contains(t, out, "Archived to")
	assert.Contains(t, out, "Reset 2 items in the words deck")

	archives, err := filepath.Glob(filepath.Join(dir, "Archive-words-*.json"))
	require.NoError(t, err)
	assert.Len(t, archives, 1)
}

func TestStatsHistoryNeedsSQLite(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := execute(t, "--data-dir", t.TempDir(), "--store", "json", "stats", "--history", "5")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "spellz (devel)\n", out)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "spellz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("deck: phrasal_verbs\n"), 0o644))

	dir := t.TempDir()
	out, err := execute(t, "--config", path, "--data-dir", dir, "--store", "json", "add", "give up")
	require.NoError(t, err)
	assert.Contains(t, out, "Added give up")
	assert.FileExists(t, filepath.Join(dir, "phrasal_verbs.json"))
}

func TestAverageDifficulty(t *testing.T) {
	assert.InDelta(t, 3.0, averageDifficulty(nil), 1e-9)
	items := []*vocab.Item{{Difficulty: 2}, {Difficulty: 4.5}}
	assert.InDelta(t, 3.25, averageDifficulty(items), 1e-9)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "né", truncate("née", 2))
}

func TestHistoryTable(t *testing.T) {
	ts := time.Date(2024, 3, 4, 5, 6, 0, 0, time.Local)
	view := historyTable([]store.AttemptEventRecord{
		{Timestamp: ts, AttemptEventData: store.AttemptEventData{Deck: "words", Text: "cat", Answer: "kat", Category: mastery.CategoryAverage.String()}},
		{Timestamp: ts, AttemptEventData: store.AttemptEventData{Deck: "words", Text: "cat", Answer: "cat", Correct: true}},
	}).View()

	assert.Contains(t, view, "2024-03-04 05:06")
	assert.Contains(t, view, "wrong")
	assert.Contains(t, view, "right")
}

func TestSuggestionTable(t *testing.T) {
	view := suggestionTable([]suggest.Suggestion{{Text: "rhythm", Difficulty: 3.5, Definition: "a pattern"}}).View()
	assert.Contains(t, view, "rhythm")
	assert.Contains(t, view, "3.50")
}

func TestCostTable(t *testing.T) {
	table, unknown := costTable([]store.LLMModelUsage{
		{Model: "gpt-4o-mini", Calls: 2, InputTokens: 1_000_000, OutputTokens: 0},
		{Model: "homegrown-7b", Calls: 1, InputTokens: 10, OutputTokens: 10},
	})
	assert.Equal(t, []string{"homegrown-7b"}, unknown)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "$0.15", table.Rows[0][4])
	assert.Equal(t, "?", table.Rows[1][4])
	assert.Equal(t, []string{"TOTAL (partial)", "", "", "", "$0.15"}, table.Rows[2])
}

func TestPurposeTable(t *testing.T) {
	table := purposeTable([]store.LLMUsageStats{
		{Purpose: "suggest", Calls: 3, InputTokens: 100, OutputTokens: 50, AvgLatencyMs: 900},
		{Purpose: "unknown", Calls: 1, InputTokens: 10, OutputTokens: 5},
	})
	require.Len(t, table.Rows, 3)
	assert.Equal(t, []string{"TOTAL", "4", "110", "55", "165", ""}, table.Rows[2])
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestLLMListNeedsSQLite(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	_, err := execute(t, "--data-dir", t.TempDir(), "--store", "json", "llm", "list")
	assert.ErrorContains(t, err, "sqlite")
}
