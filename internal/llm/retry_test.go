package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testRetry = RetryConfig{MaxAttempts: 3, InitialWait: time.Second, MaxWait: 3 * time.Second, Multiplier: 2}

// retrying wraps m with retries that record their waits instead of sleeping.
func retrying(m *MockProvider, cfg RetryConfig) (*RetryProvider, *[]time.Duration) {
	var waits []time.Duration
	r := WithRetry(m, cfg, nil)
	r.jitter = func() float64 { return 0 }
	r.sleep = func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}
	return r, &waits
}

func okReply() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"text":"ok"}`)}
}

func unavailable() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
}

func TestRetry_FirstAttempt(t *testing.T) {
	m := NewMockProvider(okReply())
	r, waits := retrying(m, testRetry)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Len(t, m.Requests(), 1)
	assert.Empty(t, *waits)
}

func TestRetry_TransientThenSuccess(t *testing.T) {
	m := NewMockProvider(unavailable(), unavailable(), okReply())
	r, waits := retrying(m, testRetry)

	resp, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"ok"}`, string(resp.Content))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, *waits)
}

func TestRetry_GivesUp(t *testing.T) {
	m := NewMockProvider(unavailable(), unavailable(), unavailable(), okReply())
	r, _ := retrying(m, testRetry)

	_, err := r.Generate(context.Background(), Request{})
	var un *ErrProviderUnavailable
	assert.ErrorAs(t, err, &un)
	assert.Len(t, m.Requests(), 3)
}

func TestRetry_BackoffCapped(t *testing.T) {
	cfg := testRetry
	cfg.MaxAttempts = 4
	m := NewMockProvider(unavailable(), unavailable(), unavailable(), okReply())
	r, waits := retrying(m, cfg)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 3 * time.Second}, *waits)
}

func TestRetry_RateLimitRetryAfter(t *testing.T) {
	m := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 7 * time.Second}}, okReply())
	r, waits := retrying(m, testRetry)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{7 * time.Second}, *waits)
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	invalid := MockResponse{Err: &ErrInvalidResponse{Err: errors.New("bad json")}}
	m := NewMockProvider(invalid, invalid, okReply())
	r, _ := retrying(m, testRetry)

	_, err := r.Generate(context.Background(), Request{})
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
	assert.Len(t, m.Requests(), 2)
}

func TestRetry_NotRetried(t *testing.T) {
	tests := map[string]error{
		"max tokens": &ErrMaxTokensExceeded{},
		"rejected":   statusError(401, errors.New("bad key")),
		"canceled":   context.Canceled,
	}
	for name, failure := range tests {
		t.Run(name, func(t *testing.T) {
			m := NewMockProvider(MockResponse{Err: failure}, okReply())
			r, _ := retrying(m, testRetry)

			_, err := r.Generate(context.Background(), Request{})
			assert.ErrorIs(t, err, failure)
			assert.Len(t, m.Requests(), 1)
		})
	}
}

func TestRetry_CancelledWhileWaiting(t *testing.T) {
	m := NewMockProvider(unavailable(), okReply())
	r := WithRetry(m, testRetry, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, m.Requests(), 1)
}

func TestRetry_LogsAttempts(t *testing.T) {
	log, hook := test.NewNullLogger()
	m := NewMockProvider(unavailable(), okReply())
	r := WithRetry(m, testRetry, log)
	r.sleep = func(context.Context, time.Duration) error { return nil }

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, "retrying llm request", hook.LastEntry().Message)
	assert.Equal(t, 1, hook.LastEntry().Data["attempt"])
}

func TestRetry_Jitter(t *testing.T) {
	r := WithRetry(NewMockProvider(), testRetry, nil)
	r.jitter = func() float64 { return 1 }
	assert.Equal(t, 1200*time.Millisecond, r.delay(1, errors.New("x")))
	r.jitter = func() float64 { return -1 }
	assert.Equal(t, 800*time.Millisecond, r.delay(1, errors.New("x")))
}

func TestWithRetry_MinimumOneAttempt(t *testing.T) {
	m := NewMockProvider(unavailable(), okReply())
	r, _ := retrying(m, RetryConfig{})

	_, err := r.Generate(context.Background(), Request{})
	assert.Error(t, err)
	assert.Len(t, m.Requests(), 1)
}
