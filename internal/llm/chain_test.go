package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/spellz/internal/store"
)

type memorySink struct {
	events []store.LLMRequestEventData
	err    error
}

func (s *memorySink) AppendLLMRequest(_ context.Context, e store.LLMRequestEventData) error {
	s.events = append(s.events, e)
	return s.err
}

func TestRecorder_Success(t *testing.T) {
	log, _ := test.NewNullLogger()
	sink := &memorySink{}
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`{"items":[]}`), Usage: newUsage(12, 3)})

	p := WithRecorder(m, "mock", sink, log)
	_, err := p.Generate(WithPurpose(context.Background(), "suggest"), Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "five words"}},
		Schema:   &Schema{Name: "s", Definition: map[string]any{"type": "object"}},
	})
	require.NoError(t, err)

	require.Len(t, sink.events, 1)
	e := sink.events[0]
	assert.Equal(t, "mock", e.Provider)
	assert.Equal(t, "mock", e.Model)
	assert.Equal(t, "suggest", e.Purpose)
	assert.True(t, e.Success)
	assert.Equal(t, 12, e.InputTokens)
	assert.Equal(t, 3, e.OutputTokens)
	assert.Equal(t, `{"items":[]}`, e.ResponseBody)
	assert.Contains(t, e.RequestBody, "[system]\nsys")
	assert.Contains(t, e.RequestBody, "[user]\nfive words")
	assert.Contains(t, e.RequestBody, `[schema: s]`+"\n"+`{"type":"object"}`)
}

func TestRecorder_FailureAndSinkError(t *testing.T) {
	log, hook := test.NewNullLogger()
	sink := &memorySink{err: errors.New("disk full")}
	boom := errors.New("boom")

	_, err := WithRecorder(NewMockProvider(MockResponse{Err: boom}), "mock", sink, log).
		Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, boom)

	require.Len(t, sink.events, 1)
	assert.False(t, sink.events[0].Success)
	assert.Equal(t, "boom", sink.events[0].ErrorMessage)
	assert.Equal(t, "unknown", sink.events[0].Purpose)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestRecorder_DefaultsToLog(t *testing.T) {
	log, hook := test.NewNullLogger()
	p := WithRecorder(NewMockProvider(okReply()), "mock", nil, log)

	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "llm call", hook.LastEntry().Message)
	assert.Equal(t, "mock", hook.LastEntry().Data["provider"])
}

type blockingProvider struct{}

func (blockingProvider) ModelID() string { return "blocking" }

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithDeadline(t *testing.T) {
	p := WithDeadline(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "blocking", p.ModelID())

	assert.Equal(t, Provider(blockingProvider{}), WithDeadline(blockingProvider{}, 0))
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	p, err := NewProvider(ctx, Config{Provider: ProviderMock}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "mock", p.ModelID())

	cfg := DefaultConfig()
	cfg.Provider = ProviderAnthropic
	_, err = NewProvider(ctx, cfg, nil, nil)
	assert.ErrorContains(t, err, "SPELLZ_ANTHROPIC_API_KEY")

	cfg.Providers[ProviderAnthropic] = ProviderConfig{APIKey: "k"}
	p, err = NewProvider(ctx, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", p.ModelID())

	cfg.Provider = ProviderOpenRouter
	cfg.Providers[ProviderOpenRouter] = ProviderConfig{APIKey: "k"}
	p, err = NewProvider(ctx, cfg, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.0-flash-exp", p.ModelID())

	_, err = NewProvider(ctx, Config{Provider: "llama"}, nil, nil)
	assert.ErrorContains(t, err, "unknown LLM provider")
}
