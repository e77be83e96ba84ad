package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurpose(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Equal(t, "unknown", PurposeFrom(WithPurpose(ctx, "")))
	assert.Equal(t, "suggest", PurposeFrom(WithPurpose(ctx, "suggest")))
}

func TestFinish(t *testing.T) {
	ok := json.RawMessage(`{"text":"cat"}`)

	resp, err := finish(Request{Schema: wordSchema}, ok, newUsage(3, 4), "m", StopEnd)
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Usage.TotalTokens)
	assert.Equal(t, "m", resp.Model)

	_, err = finish(Request{Schema: wordSchema}, ok, Usage{}, "m", StopMaxTokens)
	var mt *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &mt)

	resp, err = finish(Request{}, json.RawMessage("plain text"), Usage{}, "m", StopMaxTokens)
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)
}

func TestMockProvider(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockProvider(MockResponse{Content: json.RawMessage(`1`), Usage: newUsage(1, 1)})
	m.Push(MockResponse{Err: boom})
	ctx := context.Background()

	resp, err := m.Generate(ctx, userRequest("a"))
	require.NoError(t, err)
	assert.Equal(t, "1", string(resp.Content))
	assert.Equal(t, ProviderMock, resp.Model)

	_, err = m.Generate(ctx, userRequest("b"))
	assert.ErrorIs(t, err, boom)

	_, err = m.Generate(ctx, userRequest("c"))
	var un *ErrProviderUnavailable
	assert.ErrorAs(t, err, &un)

	reqs := m.Requests()
	require.Len(t, reqs, 3)
	assert.Equal(t, "b", reqs[1].Messages[0].Content)
	assert.Equal(t, "mock", m.ModelID())
}

func TestErrorMessages(t *testing.T) {
	base := errors.New("boom")
	assert.Equal(t, "llm rate limited: boom", (&ErrRateLimit{Err: base}).Error())
	assert.Contains(t, (&ErrRateLimit{Err: base, RetryAfter: 2e9}).Error(), "retry after 2s")
	assert.Equal(t, "llm provider unavailable", (&ErrProviderUnavailable{}).Error())
	assert.ErrorIs(t, &ErrInvalidResponse{Err: base}, base)
	assert.ErrorIs(t, &ErrProviderUnavailable{Err: base}, base)
}
