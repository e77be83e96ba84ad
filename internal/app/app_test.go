package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/config"
	"github.com/abhisek/spellz/internal/speech"
	"github.com/abhisek/spellz/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir: t.TempDir(),
		Deck:    config.DeckWords,
		Store:   config.StoreConfig{Driver: config.DriverJSON},
		Speech:  config.SpeechConfig{Engine: speech.EngineNone},
		Session: config.SessionConfig{RepeatToken: "r", ExploreRate: 0.3},
		Console: config.ConsoleConfig{Mode: "line"},
		Log:     config.LogConfig{Level: "debug", Format: "text"},
	}
}

func open(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestOpen_JSONDeckRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	ctx := context.Background()

	a, err := Open(ctx, cfg)
	require.NoError(t, err)
	assert.Zero(t, a.Items.Len())
	assert.Empty(t, a.Notices)

	_, err = a.Items.Add("rhythm")
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx))
	require.NoError(t, a.Close())

	assert.FileExists(t, filepath.Join(cfg.DataDir, "words.json"))
	assert.FileExists(t, filepath.Join(cfg.DataDir, "spellz.log"))

	b := open(t, cfg)
	it, ok := b.Items.Get("rhythm")
	require.True(t, ok)
	assert.Greater(t, it.Difficulty, 0.0)
}

func TestOpen_MalformedDeckStartsEmpty(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "words.json"), []byte("{not json"), 0o644))

	a := open(t, cfg)
	assert.Zero(t, a.Items.Len())
	require.Len(t, a.Notices, 1)
	assert.Contains(t, a.Notices[0], "starting empty")
	assert.NoFileExists(t, filepath.Join(cfg.DataDir, "words.json"))
}

func TestOpen_StorePathOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Path = filepath.Join(t.TempDir(), "decks", "mine.json")

	a := open(t, cfg)
	_, err := a.Items.Add("cat")
	require.NoError(t, err)
	require.NoError(t, a.Save(context.Background()))
	assert.FileExists(t, cfg.Store.Path)
}

func TestOpen_FrequencyFile(t *testing.T) {
	cfg := testConfig(t)
	path := filepath.Join(t.TempDir(), "freq.txt")
	require.NoError(t, os.WriteFile(path, []byte("the 100\n"), 0o644))
	cfg.Difficulty.FrequencyFile = path

	a := open(t, cfg)
	assert.NotNil(t, a.Estimator)

	cfg = testConfig(t)
	cfg.Difficulty.FrequencyFile = filepath.Join(t.TempDir(), "missing.txt")
	_, err := Open(context.Background(), cfg)
	assert.Error(t, err)
}

func TestEvents_NeedSQLite(t *testing.T) {
	a := open(t, testConfig(t))
	_, err := a.Events()
	assert.ErrorIs(t, err, ErrNoHistory)
}

func TestOpen_SQLite(t *testing.T) {
	cfg := testConfig(t)
	cfg.Store.Driver = config.DriverSQLite
	ctx := context.Background()

	a, err := Open(ctx, cfg)
	require.NoError(t, err)
	_, err = a.Items.Add("give up")
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx))

	events, err := a.Events()
	require.NoError(t, err)
	attempts, err := events.RecentAttempts(ctx, store.QueryOpts{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, attempts)
	require.NoError(t, a.Close())

	assert.FileExists(t, filepath.Join(cfg.DataDir, DatabaseFile))
	b := open(t, cfg)
	_, ok := b.Items.Get("give up")
	assert.True(t, ok)
}

func TestSpeaker(t *testing.T) {
	a := open(t, testConfig(t))
	sp, err := a.Speaker()
	require.NoError(t, err)
	assert.IsType(t, speech.Silent{}, sp)

	a.Config.Speech.Engine = "bogus"
	_, err = a.Speaker()
	assert.Error(t, err)
}

func TestLLM(t *testing.T) {
	for _, name := range []string{"LLM_PROVIDER", "ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv("SPELLZ_"+name, "")
		t.Setenv(name, "")
	}
	a := open(t, testConfig(t))

	_, err := a.LLM(context.Background())
	assert.Error(t, err)

	t.Setenv("SPELLZ_LLM_PROVIDER", "mock")
	p, err := a.LLM(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())
}
