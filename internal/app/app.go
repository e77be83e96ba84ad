// Package app wires configuration, logging, storage and the trainer's
// components together for the command-line entry points.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/spellz/internal/config"
	"github.com/abhisek/spellz/internal/console"
	"github.com/abhisek/spellz/internal/difficulty"
	"github.com/abhisek/spellz/internal/llm"
	"github.com/abhisek/spellz/internal/logging"
	"github.com/abhisek/spellz/internal/session"
	"github.com/abhisek/spellz/internal/speech"
	"github.com/abhisek/spellz/internal/store"
	"github.com/abhisek/spellz/internal/vocab"
)

// ErrNoHistory is returned for history queries on a JSON deck.
var ErrNoHistory = errors.New("attempt and LLM history need the sqlite store (store.driver: sqlite)")

// DatabaseFile is the SQLite database created in the data directory.
const DatabaseFile = "spellz.db"

// App holds the dependencies of one command invocation.
type App struct {
	Config  *config.Config
	DataDir string
	Log     *logrus.Logger

	// Notices are operator-facing warnings raised while opening.
	Notices []string

	Estimator *difficulty.Estimator
	Deck      store.Deck
	Items     *vocab.Collection

	store     *store.Store
	logCloser io.Closer
}

// Open builds the logger, the difficulty estimator and the configured deck,
// and loads the deck into a collection. A malformed deck file is moved aside
// and the collection starts empty.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	def, err := store.DefaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	dataDir := cfg.ResolveDataDir(def)
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log, dataDir)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:    cfg,
		DataDir:   dataDir,
		Log:       logger,
		logCloser: closer,
	}

	if err := a.openDeck(ctx); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) openDeck(ctx context.Context) error {
	cfg := a.Config
	log := a.Log.WithField("deck", cfg.Deck)

	freq := difficulty.DefaultFrequencies()
	if path := cfg.Difficulty.FrequencyFile; path != "" {
		custom, err := difficulty.LoadFrequencyFile(path)
		if err != nil {
			return fmt.Errorf("load frequency file: %w", err)
		}
		freq = custom
	}
	a.Estimator = difficulty.NewEstimator(freq)

	switch cfg.Store.Driver {
	case config.DriverSQLite:
		path := cfg.Store.Path
		if path == "" {
			path = filepath.Join(a.DataDir, DatabaseFile)
		}
		st, err := store.Open(path)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		a.store = st
		a.Deck = st.Deck(cfg.Deck, a.DataDir)
		log = log.WithField("db", path)
	default:
		if cfg.Store.Path != "" {
			a.Deck = store.NewFileDeck(cfg.Store.Path, cfg.Deck)
			log = log.WithField("file", cfg.Store.Path)
		} else {
			fd, err := store.OpenFileDeck(a.DataDir, cfg.Deck)
			if err != nil {
				return err
			}
			a.Deck = fd
			log = log.WithField("file", fd.Path())
		}
	}

	records, err := a.Deck.Load(ctx)
	switch {
	case errors.Is(err, store.ErrMalformed):
		log.WithError(err).Warn("malformed deck, starting empty")
		a.Notices = append(a.Notices, fmt.Sprintf("Could not read the %s deck, starting empty: %v", cfg.Deck, err))
	case err != nil:
		return fmt.Errorf("load deck: %w", err)
	}

	a.Items = vocab.FromRecords(records, a.Estimator, log)
	log.WithField("items", a.Items.Len()).Debug("deck loaded")
	return nil
}

// Close releases the store and the log file.
func (a *App) Close() error {
	var errs []error
	if a.store != nil {
		errs = append(errs, a.store.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// Save writes the collection to the deck.
func (a *App) Save(ctx context.Context) error {
	if err := a.Deck.Save(ctx, a.Items.Records()); err != nil {
		return fmt.Errorf("save deck: %w", err)
	}
	return nil
}

// Events returns the attempt and LLM history of the sqlite store.
func (a *App) Events() (store.EventRepo, error) {
	if a.store == nil {
		return nil, ErrNoHistory
	}
	return a.store.EventRepo(), nil
}

// Speaker builds the configured speech engine.
func (a *App) Speaker() (speech.Speaker, error) {
	sc := a.Config.Speech
	audioDir := sc.AudioDir
	if audioDir == "" {
		audioDir = filepath.Join(a.DataDir, "audio")
	}
	return speech.New(speech.Config{
		Engine:   sc.Engine,
		Language: sc.Language,
		Command:  sc.Command,
		Player:   sc.Player,
		AudioDir: audioDir,
	}, a.Log)
}

// LLM builds the provider from the environment. Requests are recorded in
// the sqlite store when it is in use and logged otherwise.
func (a *App) LLM(ctx context.Context) (llm.Provider, error) {
	cfg, err := llm.Resolve()
	if err != nil {
		return nil, err
	}
	var sink llm.EventSink
	if a.store != nil {
		sink = a.store.EventRepo()
	}
	return llm.NewProvider(ctx, cfg, sink, a.Log)
}

// RunSession runs the interactive trainer on in and out until the operator
// quits. SIGINT and SIGTERM interrupt the current read instead of killing
// the process, so progress is always saved.
func (a *App) RunSession(ctx context.Context, in *os.File, out io.Writer) error {
	speaker, err := a.Speaker()
	if err != nil {
		return err
	}

	signals, stop := console.Signals()
	defer stop()

	con, err := console.New(a.Config.Console.Mode, in, out, signals)
	if err != nil {
		return err
	}

	ctrl := session.New(a.Items, a.Deck, speaker, con, out, session.Config{
		Deck:        a.Config.Deck,
		RepeatToken: a.Config.Session.RepeatToken,
		ExploreRate: a.Config.Session.ExploreRate,
	}, a.Log)
	return ctrl.Run(ctx)
}
