package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/abhisek/spellz/ent"

	_ "modernc.org/sqlite"
)

// connPragmas are run once on the single pooled connection.
var connPragmas = []string{
	"journal_mode = WAL",
	"busy_timeout = 5000",
	"foreign_keys = ON",
	"synchronous = NORMAL",
}

// Store is the SQLite backend: decks plus the attempt and LLM history.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequence
}

// Open opens (creating if needed) the database at dsn and migrates it.
func Open(dsn string) (_ *Store, err error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()
	db.SetMaxOpenConns(1)

	for _, p := range connPragmas {
		if _, err := db.Exec("PRAGMA " + p); err != nil {
			return nil, fmt.Errorf("pragma %s: %w", p, err)
		}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))
	if err := client.Schema.Create(context.Background()); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	seq, err := openSequence(db)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the ent client.
func (s *Store) Client() *ent.Client { return s.client }

// DB exposes the connection for ad hoc queries.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Close() error { return s.client.Close() }

// EventRepo returns the attempt and LLM history.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{client: s.client, seq: s.seq}
}

// Deck returns the named deck. Archives are written to archiveDir.
func (s *Store) Deck(name, archiveDir string) *DeckRepo {
	return &DeckRepo{store: s, name: name, archiveDir: archiveDir}
}

// DefaultDataDir is $SPELLZ_DATA_DIR, else $XDG_DATA_HOME/spellz, else
// ~/.local/share/spellz.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv("SPELLZ_DATA_DIR"); dir != "" {
		return dir, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "spellz"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "spellz"), nil
}

func ensureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
