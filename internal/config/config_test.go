package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := NewLoader().Load("")
	require.NoError(t, err)

	assert.Equal(t, DeckWords, cfg.Deck)
	assert.Equal(t, DriverJSON, cfg.Store.Driver)
	assert.Equal(t, "auto", cfg.Speech.Engine)
	assert.Equal(t, "en", cfg.Speech.Language)
	assert.Equal(t, "r", cfg.Session.RepeatToken)
	assert.InDelta(t, 0.3, cfg.Session.ExploreRate, 1e-9)
	assert.Equal(t, "auto", cfg.Console.Mode)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_DefaultFileAndEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "spellz"), 0o755))
	yaml := "deck: phrasal_verbs\nstore:\n  driver: sqlite\nsession:\n  explore_rate: 0.1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "spellz", "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("SPELLZ_SESSION_EXPLORE_RATE", "0.5")
	t.Setenv("SPELLZ_SPEECH_ENGINE", "none")

	l := NewLoader()
	cfg, err := l.Load("")
	require.NoError(t, err)

	assert.Equal(t, DeckPhrasalVerbs, cfg.Deck)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.InDelta(t, 0.5, cfg.Session.ExploreRate, 1e-9, "env beats file")
	assert.Equal(t, "none", cfg.Speech.Engine)
	assert.Equal(t, filepath.Join(dir, "spellz", "config.yaml"), l.ConfigFileUsed())
}

func TestLoad_FlagsBeatEnv(t *testing.T) {
	isolate(t)
	t.Setenv("SPELLZ_DECK", "phrasal_verbs")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("deck", "", "")
	fs.String("store", "", "")
	require.NoError(t, fs.Parse([]string{"--deck", "words"}))

	l := NewLoader()
	require.NoError(t, l.BindFlag("deck", fs.Lookup("deck")))
	require.NoError(t, l.BindFlag("store.driver", fs.Lookup("store")))

	cfg, err := l.Load("")
	require.NoError(t, err)
	assert.Equal(t, DeckWords, cfg.Deck)
	assert.Equal(t, DriverJSON, cfg.Store.Driver, "unset flag keeps the default")

	assert.Error(t, l.BindFlag("missing", fs.Lookup("missing")))
}

func TestLoad_ExplicitFileMustExist(t *testing.T) {
	isolate(t)
	_, err := NewLoader().Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Deck:    DeckWords,
			Store:   StoreConfig{Driver: DriverJSON},
			Session: SessionConfig{RepeatToken: "r", ExploreRate: 0.3},
			Log:     LogConfig{Format: "text"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty deck", func(c *Config) { c.Deck = "" }},
		{"deck with slash", func(c *Config) { c.Deck = "../x" }},
		{"bad driver", func(c *Config) { c.Store.Driver = "postgres" }},
		{"blank repeat token", func(c *Config) { c.Session.RepeatToken = " " }},
		{"explore rate high", func(c *Config) { c.Session.ExploreRate = 1.5 }},
		{"explore rate negative", func(c *Config) { c.Session.ExploreRate = -0.1 }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
	}

	base := valid()
	require.NoError(t, base.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestResolveDataDir(t *testing.T) {
	assert.Equal(t, "/fallback", (&Config{}).ResolveDataDir("/fallback"))
	assert.Equal(t, "/set", (&Config{DataDir: "/set"}).ResolveDataDir("/fallback"))
}
