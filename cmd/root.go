package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/spellz/internal/app"
	"github.com/abhisek/spellz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "spellz",
	Short: "Adaptive spelling trainer",
	Long: `spellz speaks words and phrasal verbs aloud and asks you to spell them.
Items you struggle with come back more often; items you have mastered fade.`,
	SilenceUsage: true,
}

// runRoot is assigned to rootCmd.RunE in init to avoid an initialization
// cycle (rootCmd -> openApp -> loadConfig -> rootCmd).
func runRoot(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.RunSession(commandContext(cmd), os.Stdin, cmd.OutOrStdout())
}

func Execute() error {
	return rootCmd.Execute()
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"data-dir":  "data_dir",
	"deck":      "deck",
	"store":     "store.driver",
	"speech":    "speech.engine",
	"console":   "console.mode",
	"log-level": "log.level",
}

func init() {
	rootCmd.RunE = runRoot

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Config file (default $XDG_CONFIG_HOME/spellz/config.yaml)")
	pf.String("data-dir", "", "Directory holding decks, archives and logs (overrides SPELLZ_DATA_DIR)")
	pf.StringP("deck", "d", "", "Deck to train: words or phrasal_verbs")
	pf.String("store", "", "Deck storage: json or sqlite")
	pf.String("speech", "", "Speech engine: auto, command, google or none")
	pf.String("console", "", "Input mode: auto, tui or line")
	pf.String("log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges defaults, the config file, SPELLZ_* env vars and
// flags, in increasing priority.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	l := config.NewLoader()
	for name, key := range flagKeys {
		if err := l.BindFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			return nil, err
		}
	}
	path, _ := cmd.Flags().GetString("config")
	cfg, err := l.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openApp loads configuration and opens the configured deck. Notices
// raised while opening are printed to stderr.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	a, err := app.Open(commandContext(cmd), cfg)
	if err != nil {
		return nil, err
	}
	for _, n := range a.Notices {
		fmt.Fprintln(cmd.ErrOrStderr(), n)
	}
	return a, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
