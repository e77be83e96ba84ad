package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/spellz/ent"
	"github.com/abhisek/spellz/ent/attemptevent"
	"github.com/abhisek/spellz/ent/predicate"
)

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	n, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.AttemptEvent.Create().
		SetSequence(n).
		SetTimestamp(time.Now().UTC()).
		SetSessionID(data.SessionID).
		SetDeck(data.Deck).
		SetText(data.Text).
		SetAnswer(data.Answer).
		SetCorrect(data.Correct).
		SetCategory(data.Category).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptEventRecord, error) {
	var preds []predicate.AttemptEvent
	if opts.After > 0 {
		preds = append(preds, attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, attemptevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, attemptevent.TimestampLTE(opts.To.UTC()))
	}

	q := r.client.AttemptEvent.Query().
		Where(preds...).
		Order(attemptevent.BySequence(sql.OrderDesc()))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}

	out := make([]AttemptEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, attemptRecord(e))
	}
	return out, nil
}

func attemptRecord(e *ent.AttemptEvent) AttemptEventRecord {
	return AttemptEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		AttemptEventData: AttemptEventData{
			SessionID: e.SessionID,
			Deck:      e.Deck,
			Text:      e.Text,
			Answer:    e.Answer,
			Correct:   e.Correct,
			Category:  e.Category,
		},
	}
}
