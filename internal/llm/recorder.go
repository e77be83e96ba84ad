package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/spellz/internal/store"
)

// EventSink stores one event per provider call.
type EventSink interface {
	AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error
}

// LogSink turns events into log lines when there is no event store.
type LogSink struct {
	Log logrus.FieldLogger
}

func (s LogSink) AppendLLMRequest(_ context.Context, e store.LLMRequestEventData) error {
	entry := s.Log.WithFields(logrus.Fields{
		"provider":   e.Provider,
		"model":      e.Model,
		"purpose":    e.Purpose,
		"tokens_in":  e.InputTokens,
		"tokens_out": e.OutputTokens,
		"latency_ms": e.LatencyMs,
	})
	if e.Success {
		entry.Info("llm call")
	} else {
		entry.WithField("error", e.ErrorMessage).Warn("llm call failed")
	}
	return nil
}

type recorder struct {
	Provider
	name string
	sink EventSink
	log  logrus.FieldLogger
}

// WithRecorder reports every call on p to sink, tagged with the provider
// name and the purpose carried by the context.
func WithRecorder(p Provider, name string, sink EventSink, log logrus.FieldLogger) Provider {
	if log == nil {
		log = discardLogger()
	}
	if sink == nil {
		sink = LogSink{Log: log}
	}
	return &recorder{Provider: p, name: name, sink: sink, log: log}
}

func (r *recorder) Generate(ctx context.Context, req Request) (*Response, error) {
	began := time.Now()
	resp, err := r.Provider.Generate(ctx, req)

	e := store.LLMRequestEventData{
		Provider:    r.name,
		Model:       r.Provider.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(began).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		e.InputTokens = resp.Usage.InputTokens
		e.OutputTokens = resp.Usage.OutputTokens
		e.ResponseBody = string(resp.Content)
		if resp.Model != "" {
			e.Model = resp.Model
		}
	}
	if err != nil {
		e.ErrorMessage = err.Error()
	}

	if serr := r.sink.AppendLLMRequest(context.WithoutCancel(ctx), e); serr != nil {
		r.log.WithError(serr).Warn("could not record llm call")
	}
	return resp, err
}

// transcript renders req as plain text for the event history.
func transcript(req Request) string {
	var sb strings.Builder
	section := func(label, body string) {
		fmt.Fprintf(&sb, "[%s]\n%s\n\n", label, body)
	}
	if req.System != "" {
		section("system", req.System)
	}
	for _, m := range req.Messages {
		section(string(m.Role), m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			section("schema: "+req.Schema.Name, string(def))
		}
	}
	return strings.TrimRight(sb.String(), "\n") + "\n"
}
