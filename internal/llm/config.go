package llm

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// EnvPrefix prefixes the environment variables read by ConfigFromEnv.
const EnvPrefix = "SPELLZ_"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// providerSpec describes a hosted provider: its environment variable stem,
// default model and model aliases.
type providerSpec struct {
	name    string
	env     string
	model   string
	aliases map[string]string
}

// providerSpecs is also the order in which API keys are discovered.
var providerSpecs = []providerSpec{
	{
		name:  ProviderGemini,
		env:   "GEMINI",
		model: "gemini-flash",
		aliases: map[string]string{
			"gemini-flash": "gemini-2.5-flash",
			"gemini-pro":   "gemini-2.5-pro",
		},
	},
	{
		name:  ProviderOpenAI,
		env:   "OPENAI",
		model: "gpt-4o-mini",
	},
	{
		name:  ProviderAnthropic,
		env:   "ANTHROPIC",
		model: "claude-haiku",
		aliases: map[string]string{
			"claude-haiku":  "claude-haiku-4-5",
			"claude-sonnet": "claude-sonnet-4-5",
		},
	},
	{
		name:  ProviderOpenRouter,
		env:   "OPENROUTER",
		model: "google/gemini-2.0-flash-exp",
	},
}

func lookupSpec(name string) (providerSpec, bool) {
	for _, s := range providerSpecs {
		if s.name == name {
			return s, true
		}
	}
	return providerSpec{}, false
}

// ProviderConfig holds the credentials and model of one provider.
type ProviderConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the provider's API endpoint.
	BaseURL string
}

// Config selects and configures a provider.
type Config struct {
	// Provider is one of the Provider* names.
	Provider  string
	Providers map[string]ProviderConfig
	Retry     RetryConfig

	// Timeout bounds one Generate call, retries included.
	Timeout time.Duration
}

// RetryConfig tunes retries of transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with every provider on its default model
// and no provider selected.
func DefaultConfig() Config {
	cfg := Config{
		Providers: make(map[string]ProviderConfig, len(providerSpecs)),
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 60 * time.Second,
	}
	for _, s := range providerSpecs {
		cfg.Providers[s.name] = ProviderConfig{Model: s.model}
	}
	return cfg
}

// Selected returns the configuration of the selected provider with model
// aliases resolved.
func (c Config) Selected() ProviderConfig {
	pc := c.Providers[c.Provider]
	if s, ok := lookupSpec(c.Provider); ok {
		if pc.Model == "" {
			pc.Model = s.model
		}
		if id, ok := s.aliases[pc.Model]; ok {
			pc.Model = id
		}
	}
	if c.Provider == ProviderOpenRouter && pc.BaseURL == "" {
		pc.BaseURL = defaultOpenRouterBaseURL
	}
	return pc
}

// Validate checks that the selected provider is known and has a key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	s, ok := lookupSpec(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider %q", c.Provider)
	}
	if c.Providers[c.Provider].APIKey == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", EnvPrefix, s.env, s.name)
	}
	return nil
}

// ConfigFromEnv reads SPELLZ_LLM_PROVIDER, SPELLZ_LLM_TIMEOUT and, per
// provider, SPELLZ_<NAME>_API_KEY, _MODEL and _BASE_URL. Without an
// explicit provider the first one with a key is selected.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	for _, s := range providerSpecs {
		pc := cfg.Providers[s.name]
		setIf(&pc.APIKey, EnvPrefix+s.env+"_API_KEY")
		setIf(&pc.Model, EnvPrefix+s.env+"_MODEL")
		setIf(&pc.BaseURL, EnvPrefix+s.env+"_BASE_URL")
		cfg.Providers[s.name] = pc

		if cfg.Provider == "" && pc.APIKey != "" {
			cfg.Provider = s.name
		}
	}
	setIf(&cfg.Provider, EnvPrefix+"LLM_PROVIDER")

	if v := os.Getenv(EnvPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

func setIf(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// Configured reports whether any SPELLZ_ provider selection or key is set.
func Configured() bool {
	if os.Getenv(EnvPrefix+"LLM_PROVIDER") != "" {
		return true
	}
	for _, s := range providerSpecs {
		if os.Getenv(EnvPrefix+s.env+"_API_KEY") != "" {
			return true
		}
	}
	return false
}

// DiscoverConfig selects the first provider whose standard API key
// variable (GEMINI_API_KEY, OPENAI_API_KEY, ...) is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, s := range providerSpecs {
		if k := os.Getenv(s.env + "_API_KEY"); k != "" {
			pc := cfg.Providers[s.name]
			pc.APIKey = k
			cfg.Providers[s.name] = pc
			cfg.Provider = s.name
			return cfg, true
		}
	}
	return Config{}, false
}

// ErrNotConfigured is returned by Resolve when no provider is set up.
var ErrNotConfigured = errors.New("no LLM configured")

// Resolve prefers SPELLZ_ variables and falls back to DiscoverConfig.
func Resolve() (Config, error) {
	if Configured() {
		cfg := ConfigFromEnv()
		return cfg, cfg.Validate()
	}
	if cfg, ok := DiscoverConfig(); ok {
		return cfg, nil
	}
	stems := make([]string, 0, len(providerSpecs))
	for _, s := range providerSpecs {
		stems = append(stems, s.env+"_API_KEY")
	}
	return Config{}, fmt.Errorf("%w: set %sLLM_PROVIDER and a key, or one of %s",
		ErrNotConfigured, EnvPrefix, strings.Join(stems, ", "))
}
