package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/spellz/ent"
	"github.com/abhisek/spellz/ent/item"
)

// DeckRepo persists one deck in the items table of a Store.
type DeckRepo struct {
	store      *Store
	name       string
	archiveDir string
}

// Name returns the deck name.
func (d *DeckRepo) Name() string {
	return d.name
}

func (d *DeckRepo) Load(ctx context.Context) ([]Record, error) {
	items, err := d.store.client.Item.Query().
		Where(item.Deck(d.name)).
		Order(item.ByPosition()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}

	out := make([]Record, 0, len(items))
	for _, it := range items {
		out = append(out, Record{
			Text:       it.Text,
			RightCount: it.RightCount,
			WrongCount: it.WrongCount,
			Asked:      it.Asked,
			Streak:     it.Streak,
			Difficulty: it.Difficulty,
			Category:   it.Category,
		})
	}
	return out, nil
}

// Save replaces every row of the deck in a single transaction.
func (d *DeckRepo) Save(ctx context.Context, records []Record) (err error) {
	tx, err := d.store.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Item.Delete().Where(item.Deck(d.name)).Exec(ctx); err != nil {
		return fmt.Errorf("clear deck: %w", err)
	}

	if len(records) > 0 {
		err = tx.Item.MapCreateBulk(records, func(c *ent.ItemCreate, i int) {
			r := records[i]
			c.SetDeck(d.name).
				SetPosition(i).
				SetText(r.Text).
				SetRightCount(r.RightCount).
				SetWrongCount(r.WrongCount).
				SetAsked(r.Asked).
				SetStreak(r.Streak).
				SetNillableDifficulty(r.Difficulty).
				SetNillableCategory(r.Category)
		}).Exec(ctx)
		if err != nil {
			return fmt.Errorf("insert items: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Archive exports the deck to Archive-<deck>-<timestamp>.json in the
// archive directory. The rows stay in place until the next Save.
func (d *DeckRepo) Archive(ctx context.Context) (string, error) {
	records, err := d.Load(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", nil
	}
	dst := archivePath(d.archiveDir, d.name, time.Now())
	if err := writeRecordsFile(dst, records); err != nil {
		return "", fmt.Errorf("archive deck: %w", err)
	}
	return dst, nil
}

// AppendAttempt records an attempt in the store's event history.
func (d *DeckRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	if data.Deck == "" {
		data.Deck = d.name
	}
	return d.store.EventRepo().AppendAttempt(ctx, data)
}

// Close closes the underlying store.
func (d *DeckRepo) Close() error {
	return d.store.Close()
}
