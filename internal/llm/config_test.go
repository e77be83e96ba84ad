package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable the resolver reads.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvPrefix+"LLM_PROVIDER", "")
	t.Setenv(EnvPrefix+"LLM_TIMEOUT", "")
	for _, s := range providerSpecs {
		for _, suffix := range []string{"_API_KEY", "_MODEL", "_BASE_URL"} {
			t.Setenv(EnvPrefix+s.env+suffix, "")
		}
		t.Setenv(s.env+"_API_KEY", "")
	}
}

func TestConfigSelected(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Provider = ProviderGemini
	assert.Equal(t, "gemini-2.5-flash", cfg.Selected().Model)

	cfg.Providers[ProviderGemini] = ProviderConfig{Model: "gemini-pro"}
	assert.Equal(t, "gemini-2.5-pro", cfg.Selected().Model)

	cfg.Providers[ProviderGemini] = ProviderConfig{Model: "gemini-2.0-flash"}
	assert.Equal(t, "gemini-2.0-flash", cfg.Selected().Model)

	cfg.Provider = ProviderOpenRouter
	assert.Equal(t, defaultOpenRouterBaseURL, cfg.Selected().BaseURL)

	cfg.Providers[ProviderOpenRouter] = ProviderConfig{BaseURL: "http://proxy/v1"}
	sel := cfg.Selected()
	assert.Equal(t, "http://proxy/v1", sel.BaseURL)
	assert.Equal(t, "google/gemini-2.0-flash-exp", sel.Model)
}

func TestConfigValidate(t *testing.T) {
	withKey := DefaultConfig()
	withKey.Provider = ProviderOpenAI
	withKey.Providers[ProviderOpenAI] = ProviderConfig{APIKey: "k"}

	noKey := DefaultConfig()
	noKey.Provider = ProviderGemini

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"mock", Config{Provider: ProviderMock}, ""},
		{"with key", withKey, ""},
		{"missing key", noKey, "SPELLZ_GEMINI_API_KEY is required for the gemini provider"},
		{"unknown", Config{Provider: "llama"}, `unknown LLM provider "llama"`},
		{"unset", Config{}, `unknown LLM provider ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPELLZ_OPENAI_API_KEY", "sk-o")
	t.Setenv("SPELLZ_ANTHROPIC_API_KEY", "sk-a")
	t.Setenv("SPELLZ_ANTHROPIC_MODEL", "claude-sonnet")
	t.Setenv("SPELLZ_LLM_TIMEOUT", "5s")

	cfg := ConfigFromEnv()
	assert.Equal(t, ProviderOpenAI, cfg.Provider, "first provider with a key")
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "sk-a", cfg.Providers[ProviderAnthropic].APIKey)

	t.Setenv("SPELLZ_LLM_PROVIDER", "anthropic")
	cfg = ConfigFromEnv()
	assert.Equal(t, ProviderAnthropic, cfg.Provider)
	assert.Equal(t, "claude-sonnet-4-5", cfg.Selected().Model)

	t.Setenv("SPELLZ_LLM_TIMEOUT", "soon")
	assert.Equal(t, DefaultConfig().Timeout, ConfigFromEnv().Timeout)
}

func TestResolve(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		clearEnv(t)
		_, err := Resolve()
		assert.ErrorIs(t, err, ErrNotConfigured)
		assert.ErrorContains(t, err, "OPENAI_API_KEY")
	})

	t.Run("prefixed provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SPELLZ_LLM_PROVIDER", "mock")
		cfg, err := Resolve()
		require.NoError(t, err)
		assert.Equal(t, ProviderMock, cfg.Provider)
	})

	t.Run("prefixed provider without key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("SPELLZ_LLM_PROVIDER", "openai")
		t.Setenv("OPENAI_API_KEY", "sk-std")
		_, err := Resolve()
		assert.ErrorContains(t, err, "SPELLZ_OPENAI_API_KEY")
	})

	t.Run("standard keys", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENROUTER_API_KEY", "sk-or")
		t.Setenv("ANTHROPIC_API_KEY", "sk-a")
		cfg, err := Resolve()
		require.NoError(t, err)
		assert.Equal(t, ProviderAnthropic, cfg.Provider)
		assert.Equal(t, "sk-a", cfg.Selected().APIKey)
	})
}
