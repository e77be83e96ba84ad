// Package speech reads items aloud. Every Speaker blocks until playback
// has finished.
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Speaker says text aloud and returns once playback is complete.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Engine names.
const (
	EngineAuto    = "auto"
	EngineCommand = "command"
	EngineGoogle  = "google"
	EngineNone    = "none"
)

// Config selects and configures a speech engine.
type Config struct {
	Engine   string
	Language string // BCP 47 language tag, e.g. "en"
	Command  string // speech command line; the text is appended as the last argument
	Player   string // mp3 player command line for the google engine
	AudioDir string // cache directory for downloaded audio
}

// speechCommands are tried in order when no command is configured. Each
// of them blocks until it has finished speaking.
var speechCommands = [][]string{
	{"say"},
	{"espeak-ng"},
	{"espeak"},
	{"spd-say", "-w"},
}

// playerCommands are tried in order when no player is configured.
var playerCommands = [][]string{
	{"mpg123", "-q"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
	{"afplay"},
	{"play", "-q"},
}

// New builds the configured Speaker. The auto engine prefers a local speech
// command, then the google engine if an mp3 player is available, and falls
// back to silence.
func New(cfg Config, log logrus.FieldLogger) (Speaker, error) {
	switch cfg.Engine {
	case EngineNone:
		return Silent{}, nil

	case EngineCommand:
		argv, err := commandLine(cfg.Command, speechCommands)
		if err != nil {
			return nil, fmt.Errorf("speech command: %w", err)
		}
		return NewCommand(argv[0], argv[1:]...), nil

	case EngineGoogle:
		player, err := commandLine(cfg.Player, playerCommands)
		if err != nil {
			return nil, fmt.Errorf("audio player: %w", err)
		}
		return NewGoogle(cfg.AudioDir, cfg.Language, player), nil

	case EngineAuto, "":
		if argv, err := commandLine(cfg.Command, speechCommands); err == nil {
			log.WithField("command", argv[0]).Debug("using speech command")
			return NewCommand(argv[0], argv[1:]...), nil
		}
		if player, err := commandLine(cfg.Player, playerCommands); err == nil {
			log.WithField("player", player[0]).Debug("using google speech")
			return NewGoogle(cfg.AudioDir, cfg.Language, player), nil
		}
		log.Warn("no speech command or audio player found, speech disabled")
		return Silent{}, nil
	}
	return nil, fmt.Errorf("unknown speech engine %q", cfg.Engine)
}

// commandLine splits a configured command line, or finds the first of the
// candidates installed on PATH.
func commandLine(configured string, candidates [][]string) ([]string, error) {
	if argv := strings.Fields(configured); len(argv) > 0 {
		if _, err := exec.LookPath(argv[0]); err != nil {
			return nil, err
		}
		return argv, nil
	}
	for _, c := range candidates {
		if _, err := exec.LookPath(c[0]); err == nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("none of %s found on PATH", names(candidates))
}

func names(candidates [][]string) string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c[0]
	}
	return strings.Join(out, ", ")
}

// Silent is a Speaker that does nothing.
type Silent struct{}

func (Silent) Speak(context.Context, string) error { return nil }
