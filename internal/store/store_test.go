package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/spellz/ent"
	"github.com/abhisek/spellz/ent/attemptevent"
	"github.com/abhisek/spellz/ent/item"
	"github.com/abhisek/spellz/ent/llmrequestevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func ptr[T any](v T) *T { return &v }

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	for _, table := range []string{item.Table, attemptevent.Table, llmrequestevent.Table, "global_sequence"} {
		var name string
		err := s.DB().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		assert.NoError(t, err, "table %s", table)
	}
}

func TestDeckRepo_SaveLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	words := s.Deck("words", t.TempDir())
	verbs := s.Deck("phrasal_verbs", t.TempDir())

	records := []Record{
		{Text: "necessary", RightCount: 3, WrongCount: 1, Asked: 4, Streak: 2, Difficulty: ptr(3.0), Category: ptr("average")},
		{Text: "rhythm", Difficulty: ptr(2.5)},
		{Text: "accommodate"},
	}
	require.NoError(t, words.Save(ctx, records))
	require.NoError(t, verbs.Save(ctx, []Record{{Text: "give up"}}))

	got, err := words.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, got)

	// Saving again replaces rather than appends.
	require.NoError(t, words.Save(ctx, records[:1]))
	got, err = words.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	other, err := verbs.Load(ctx)
	require.NoError(t, err)
	require.Len(t, other, 1)
	assert.Equal(t, "give up", other[0].Text)
}

func TestDeckRepo_LoadEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Deck("words", t.TempDir()).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDeckRepo_Archive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	dir := t.TempDir()
	deck := s.Deck("words", dir)

	path, err := deck.Archive(ctx)
	require.NoError(t, err)
	assert.Empty(t, path, "nothing to archive")

	require.NoError(t, deck.Save(ctx, []Record{{Text: "rhythm", Asked: 2, RightCount: 2, Streak: 2}}))
	path, err = deck.Archive(ctx)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "Archive-words-"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var archived []Record
	require.NoError(t, json.Unmarshal(data, &archived))
	require.Len(t, archived, 1)
	assert.Equal(t, 2, archived[0].Asked)
}

func TestAttemptEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := s.Deck("words", t.TempDir())

	for i, correct := range []bool{true, false, true} {
		err := deck.AppendAttempt(ctx, AttemptEventData{
			SessionID: "session-1",
			Text:      "rhythm",
			Answer:    fmt.Sprintf("answer-%d", i),
			Correct:   correct,
			Category:  "average",
		})
		require.NoError(t, err)
	}

	events, err := s.EventRepo().RecentAttempts(ctx, QueryOpts{Limit: 2})
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "answer-2", events[0].Answer, "newest first")
	assert.Equal(t, "words", events[0].Deck)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.False(t, events[1].Correct)
	assert.WithinDuration(t, time.Now(), events[0].Timestamp, time.Minute)
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	calls := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "suggest", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true, ResponseBody: `{"items":[]}`},
		{Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "suggest", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "judge", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, ErrorMessage: "rate limited"},
	}
	for _, c := range calls {
		require.NoError(t, repo.AppendLLMRequest(ctx, c))
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "judge", events[0].Purpose)

	first, err := repo.GetLLMEvent(ctx, events[2].ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, `{"items":[]}`, first.ResponseBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsageStats{Purpose: "judge", Calls: 1, InputTokens: 10, OutputTokens: 5, AvgLatencyMs: 100}, byPurpose[0])
	assert.Equal(t, LLMUsageStats{Purpose: "suggest", Calls: 2, InputTokens: 400, OutputTokens: 200, AvgLatencyMs: 300}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "claude-sonnet-4-5", byModel[0].Model)
	assert.Equal(t, 2, byModel[0].Calls)
}

func TestDeckRepo_SaveRejectsEmptyText(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	deck := s.Deck("words", t.TempDir())
	require.NoError(t, deck.Save(ctx, []Record{{Text: "rhythm"}}))

	err := deck.Save(ctx, []Record{{Text: "necessary"}, {Text: ""}})
	require.Error(t, err)
	assert.True(t, ent.IsValidationError(err), "got %v", err)

	// The failed save rolls back, leaving the previous deck in place.
	got, err := deck.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rhythm", got[0].Text)
}

func TestDeckRepo_SaveRejectsDuplicateText(t *testing.T) {
	s := openTestStore(t)
	err := s.Deck("words", t.TempDir()).Save(context.Background(), []Record{{Text: "rhythm"}, {Text: "rhythm"}})
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err), "got %v", err)
}

func TestAppendAttempt_Validation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	tests := []struct {
		name string
		data AttemptEventData
	}{
		{"missing session", AttemptEventData{Deck: "words", Text: "rhythm"}},
		{"missing deck", AttemptEventData{SessionID: "s1", Text: "rhythm"}},
		{"missing text", AttemptEventData{SessionID: "s1", Deck: "words"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.AppendAttempt(ctx, tt.data)
			require.Error(t, err)
			assert.True(t, ent.IsValidationError(err), "got %v", err)
		})
	}

	events, err := repo.RecentAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestAttemptEvents_HistoryFieldsImmutable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()
	require.NoError(t, repo.AppendAttempt(ctx, AttemptEventData{
		SessionID: "s1", Deck: "words", Text: "rhythm", Answer: "rythm",
	}))
	events, err := repo.RecentAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	orig := events[0]

	// The update builders expose no setter for sequence or timestamp, and
	// the generic mutation path leaves those columns out of the UPDATE.
	upd := s.Client().AttemptEvent.UpdateOneID(orig.ID).SetAnswer("rhythm")
	require.NoError(t, upd.Mutation().SetField(attemptevent.FieldSequence, orig.Sequence+100))
	updated, err := upd.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "rhythm", updated.Answer)
	assert.Equal(t, orig.Sequence, updated.Sequence)
	assert.True(t, orig.Timestamp.Equal(updated.Timestamp))

	// NotEmpty is enforced on updates too.
	_, err = s.Client().AttemptEvent.UpdateOneID(orig.ID).SetText("").Save(ctx)
	assert.True(t, ent.IsValidationError(err), "got %v", err)
}

func TestRecentAttempts_Window(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendAttempt(ctx, AttemptEventData{
			SessionID: "s1", Deck: "words", Text: fmt.Sprintf("word-%d", i),
		}))
	}
	all, err := repo.RecentAttempts(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 5)

	mid, err := repo.RecentAttempts(ctx, QueryOpts{After: all[4].Sequence, Before: all[0].Sequence})
	require.NoError(t, err)
	require.Len(t, mid, 3)
	assert.Equal(t, "word-3", mid[0].Text)
	assert.Equal(t, "word-1", mid[2].Text)

	future, err := repo.RecentAttempts(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	require.NoError(t, err)
	assert.Empty(t, future)
}
