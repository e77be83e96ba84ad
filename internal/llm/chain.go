package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// NewProvider builds the selected provider and wraps it so that callers see
// one deadline covering all retries and every attempt is recorded on sink.
// A nil sink records to log.
func NewProvider(ctx context.Context, cfg Config, sink EventSink, log logrus.FieldLogger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := newBase(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("init %s provider: %w", cfg.Provider, err)
	}

	recorded := WithRecorder(base, cfg.Provider, sink, log)
	return WithDeadline(WithRetry(recorded, cfg.Retry, log), cfg.Timeout), nil
}

func newBase(ctx context.Context, cfg Config) (Provider, error) {
	pc := cfg.Selected()
	switch cfg.Provider {
	case ProviderAnthropic:
		return NewAnthropicProvider(pc)
	case ProviderOpenAI:
		return NewOpenAIProvider(pc)
	case ProviderGemini:
		return NewGeminiProvider(ctx, pc)
	case ProviderOpenRouter:
		return NewOpenRouterProvider(pc)
	case ProviderMock:
		return NewMockProvider(), nil
	}
	return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
}

type deadlineProvider struct {
	Provider
	limit time.Duration
}

// WithDeadline cancels each Generate call on p after limit. A non-positive
// limit returns p as is.
func WithDeadline(p Provider, limit time.Duration) Provider {
	if limit <= 0 {
		return p
	}
	return deadlineProvider{Provider: p, limit: limit}
}

func (d deadlineProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, d.limit)
	defer cancel()
	return d.Provider.Generate(ctx, req)
}
