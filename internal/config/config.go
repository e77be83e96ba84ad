// Package config loads layered settings: defaults, an optional YAML file,
// SPELLZ_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "SPELLZ"

// Deck names.
const (
	DeckWords        = "words"
	DeckPhrasalVerbs = "phrasal_verbs"
)

// Store drivers.
const (
	DriverJSON   = "json"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the trainer.
type Config struct {
	DataDir    string           `mapstructure:"data_dir"`
	Deck       string           `mapstructure:"deck"`
	Store      StoreConfig      `mapstructure:"store"`
	Speech     SpeechConfig     `mapstructure:"speech"`
	Session    SessionConfig    `mapstructure:"session"`
	Console    ConsoleConfig    `mapstructure:"console"`
	Difficulty DifficultyConfig `mapstructure:"difficulty"`
	Log        LogConfig        `mapstructure:"log"`
}

// StoreConfig selects where decks are persisted.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
	// Path overrides the deck file (json) or database file (sqlite).
	Path string `mapstructure:"path"`
}

// SpeechConfig selects the text-to-speech engine.
type SpeechConfig struct {
	Engine   string `mapstructure:"engine"`
	Language string `mapstructure:"language"`
	Command  string `mapstructure:"command"`
	Player   string `mapstructure:"player"`
	AudioDir string `mapstructure:"audio_dir"`
}

// SessionConfig tunes the quiz loop.
type SessionConfig struct {
	RepeatToken string  `mapstructure:"repeat_token"`
	ExploreRate float64 `mapstructure:"explore_rate"`
}

// ConsoleConfig selects the input reader.
type ConsoleConfig struct {
	Mode string `mapstructure:"mode"`
}

// DifficultyConfig points at an optional word frequency list.
type DifficultyConfig struct {
	FrequencyFile string `mapstructure:"frequency_file"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	// File is the log destination. "-" logs to stderr.
	File string `mapstructure:"file"`
}

// Loader builds a Config from its own viper instance.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment binding applied.
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// BindFlag binds a command-line flag to a config key. Flags that were not
// set on the command line do not override lower layers.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("bind %s: flag not defined", key)
	}
	return l.v.BindPFlag(key, flag)
}

// Load reads the config file and returns the merged configuration. An
// explicit path must exist; the default path is optional.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName("config")
		l.v.SetConfigType("yaml")
		if dir := DefaultConfigDir(); dir != "" {
			l.v.AddConfigPath(dir)
		}
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigFileUsed returns the config file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "")
	v.SetDefault("deck", DeckWords)

	v.SetDefault("store.driver", DriverJSON)
	v.SetDefault("store.path", "")

	v.SetDefault("speech.engine", "auto")
	v.SetDefault("speech.language", "en")
	v.SetDefault("speech.command", "")
	v.SetDefault("speech.player", "")
	v.SetDefault("speech.audio_dir", "")

	v.SetDefault("session.repeat_token", "r")
	v.SetDefault("session.explore_rate", 0.3)

	v.SetDefault("console.mode", "auto")

	v.SetDefault("difficulty.frequency_file", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
}

// Validate rejects settings the trainer cannot run with.
func (c *Config) Validate() error {
	if c.Deck == "" || strings.ContainsAny(c.Deck, `/\`) {
		return fmt.Errorf("invalid deck name %q", c.Deck)
	}
	switch c.Store.Driver {
	case DriverJSON, DriverSQLite:
	default:
		return fmt.Errorf("unknown store driver %q (want %s or %s)", c.Store.Driver, DriverJSON, DriverSQLite)
	}
	if strings.TrimSpace(c.Session.RepeatToken) == "" {
		return errors.New("session.repeat_token must not be empty")
	}
	if c.Session.ExploreRate < 0 || c.Session.ExploreRate > 1 {
		return fmt.Errorf("session.explore_rate %v out of range [0, 1]", c.Session.ExploreRate)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// ResolveDataDir returns the data directory, falling back to def when none
// was configured.
func (c *Config) ResolveDataDir(def string) string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return def
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/spellz or ~/.config/spellz.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spellz")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "spellz")
}
