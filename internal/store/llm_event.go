package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/spellz/ent"
	"github.com/abhisek/spellz/ent/llmrequestevent"
	"github.com/abhisek/spellz/ent/predicate"
)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	n, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(n).
		SetTimestamp(time.Now().UTC()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	var preds []predicate.LLMRequestEvent
	if opts.After > 0 {
		preds = append(preds, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, llmrequestevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, llmrequestevent.TimestampLTE(opts.To.UTC()))
	}

	q := r.client.LLMRequestEvent.Query().
		Where(preds...).
		Order(llmrequestevent.BySequence(sql.OrderDesc()))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEventRecord, 0, len(events))
	for _, e := range events {
		out = append(out, llmRecord(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	rec := llmRecord(e)
	return &rec, nil
}

// usageRow is one group of the usage aggregations. Only the grouped
// column of Purpose and Model is set.
type usageRow struct {
	Purpose string  `sql:"purpose"`
	Model   string  `sql:"model"`
	Calls   int     `sql:"calls"`
	Input   int     `sql:"input"`
	Output  int     `sql:"output"`
	Latency float64 `sql:"latency"`
}

// usageBy groups every LLM event by column, ordered by that column.
func (r *eventRepo) usageBy(ctx context.Context, column string, order llmrequestevent.OrderOption) ([]usageRow, error) {
	var rows []usageRow
	err := r.client.LLMRequestEvent.Query().
		Order(order).
		GroupBy(column).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "latency"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.usageBy(ctx, llmrequestevent.FieldPurpose, llmrequestevent.ByPurpose())
	if err != nil {
		return nil, fmt.Errorf("query LLM usage: %w", err)
	}
	out := make([]LLMUsageStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMUsageStats{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
			AvgLatencyMs: int64(row.Latency),
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	rows, err := r.usageBy(ctx, llmrequestevent.FieldModel, llmrequestevent.ByModel())
	if err != nil {
		return nil, fmt.Errorf("query LLM model usage: %w", err)
	}
	out := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
		})
	}
	return out, nil
}

func llmRecord(e *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}
