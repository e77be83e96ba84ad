package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/abhisek/spellz/ent"
)

const sequenceTable = "global_sequence"

// sequence hands out one increasing number across all history tables so
// attempts and LLM calls can be ordered against each other.
type sequence struct {
	mu sync.Mutex
	db *sql.DB
}

func openSequence(db *sql.DB) (*sequence, error) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS ` + sequenceTable + ` (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			next_val INTEGER NOT NULL DEFAULT 1
		)`,
		`INSERT OR IGNORE INTO ` + sequenceTable + ` (id, next_val) VALUES (1, 1)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("init sequence: %w", err)
		}
	}
	return &sequence{db: db}, nil
}

// Next returns the current value and advances the counter.
func (s *sequence) Next(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	row := s.db.QueryRowContext(ctx,
		`UPDATE `+sequenceTable+` SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`)
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return n, nil
}

type eventRepo struct {
	client *ent.Client
	seq    *sequence
}
