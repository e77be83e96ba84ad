package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wordSchema = &Schema{
	Name: "word",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"text"},
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
		},
	},
}

// serve starts a server that answers every request with status and body
// and captures the last request body.
func serve(t *testing.T, status int, body any) (*httptest.Server, *[]byte) {
	t.Helper()
	var got []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func userRequest(text string) Request {
	return Request{
		System:    "You are a spelling coach.",
		Messages:  []Message{{Role: RoleUser, Content: text}},
		MaxTokens: 256,
	}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 12},
	}
}

func newAnthropic(t *testing.T, srv *httptest.Server) *AnthropicProvider {
	t.Helper()
	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "k", Model: "claude-haiku-4-5"}, option.WithBaseURL(srv.URL))
	require.NoError(t, err)
	return p
}

func TestAnthropicProvider_Generate(t *testing.T) {
	srv, body := serve(t, http.StatusOK, anthropicMessage(`{"text":"rhythm"}`, "end_turn"))
	p := newAnthropic(t, srv)

	req := userRequest("one hard word")
	req.Schema = wordSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.JSONEq(t, `{"text":"rhythm"}`, string(resp.Content))
	assert.Equal(t, newUsage(40, 12), resp.Usage)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5", p.ModelID())

	var sent map[string]any
	require.NoError(t, json.Unmarshal(*body, &sent))
	assert.Equal(t, "claude-haiku-4-5", sent["model"])
	assert.EqualValues(t, 256, sent["max_tokens"])
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	srv, _ := serve(t, http.StatusOK, anthropicMessage(`{"text":"rhy`, "max_tokens"))
	p := newAnthropic(t, srv)

	req := userRequest("x")
	req.Schema = wordSchema
	_, err := p.Generate(context.Background(), req)
	var mt *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &mt)

	// Free text is returned as is.
	resp, err := p.Generate(context.Background(), userRequest("x"))
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)
}

func TestAnthropicProvider_Errors(t *testing.T) {
	apiError := func(kind string) map[string]any {
		return map[string]any{"type": "error", "error": map[string]any{"type": kind, "message": "nope"}}
	}

	t.Run("rate limit", func(t *testing.T) {
		srv, _ := serve(t, http.StatusTooManyRequests, apiError("rate_limit_error"))
		_, err := newAnthropic(t, srv).Generate(context.Background(), userRequest("x"))
		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})

	t.Run("server error", func(t *testing.T) {
		srv, _ := serve(t, http.StatusInternalServerError, apiError("api_error"))
		_, err := newAnthropic(t, srv).Generate(context.Background(), userRequest("x"))
		var un *ErrProviderUnavailable
		assert.ErrorAs(t, err, &un)
	})

	t.Run("bad key", func(t *testing.T) {
		srv, _ := serve(t, http.StatusUnauthorized, apiError("authentication_error"))
		_, err := newAnthropic(t, srv).Generate(context.Background(), userRequest("x"))
		require.Error(t, err)
		assert.False(t, retryable(err))
		assert.Contains(t, err.Error(), "HTTP 401")
	})

	t.Run("invalid schema output", func(t *testing.T) {
		srv, _ := serve(t, http.StatusOK, anthropicMessage(`{"word":"x"}`, "end_turn"))
		req := userRequest("x")
		req.Schema = wordSchema
		_, err := newAnthropic(t, srv).Generate(context.Background(), req)
		var inv *ErrInvalidResponse
		assert.ErrorAs(t, err, &inv)
	})
}

func TestNewProviders_RequireKey(t *testing.T) {
	_, err := NewAnthropicProvider(ProviderConfig{})
	assert.Error(t, err)
	_, err = NewOpenAIProvider(ProviderConfig{})
	assert.Error(t, err)
	_, err = NewOpenRouterProvider(ProviderConfig{})
	assert.Error(t, err)
	_, err = NewGeminiProvider(context.Background(), ProviderConfig{})
	assert.Error(t, err)
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"model":   "gpt-4o-mini-2024-07-18",
		"choices": []map[string]any{{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": finish}},
		"usage":   map[string]any{"prompt_tokens": 30, "completion_tokens": 9, "total_tokens": 39},
	}
}

func newOpenAI(t *testing.T, srv *httptest.Server) *OpenAIProvider {
	t.Helper()
	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "k", Model: "gpt-4o-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	return p
}

func TestOpenAIProvider_Generate(t *testing.T) {
	srv, body := serve(t, http.StatusOK, chatCompletion(`{"text":"necessary"}`, "stop"))
	p := newOpenAI(t, srv)

	req := userRequest("one word")
	req.Schema = wordSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"necessary"}`, string(resp.Content))
	assert.Equal(t, newUsage(30, 9), resp.Usage)
	assert.Equal(t, "gpt-4o-mini-2024-07-18", resp.Model)

	var sent struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name string `json:"name"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	require.NoError(t, json.Unmarshal(*body, &sent))
	assert.Equal(t, "gpt-4o-mini", sent.Model)
	require.Len(t, sent.Messages, 2)
	assert.Equal(t, "system", sent.Messages[0].Role)
	assert.Equal(t, "user", sent.Messages[1].Role)
	assert.Equal(t, "json_schema", sent.ResponseFormat.Type)
	assert.Equal(t, "word", sent.ResponseFormat.JSONSchema.Name)
}

func TestOpenAIProvider_Errors(t *testing.T) {
	apiError := map[string]any{"error": map[string]any{"message": "nope", "type": "x"}}

	t.Run("rate limit", func(t *testing.T) {
		srv, _ := serve(t, http.StatusTooManyRequests, apiError)
		_, err := newOpenAI(t, srv).Generate(context.Background(), userRequest("x"))
		var rl *ErrRateLimit
		assert.ErrorAs(t, err, &rl)
	})

	t.Run("unavailable", func(t *testing.T) {
		srv, _ := serve(t, http.StatusServiceUnavailable, apiError)
		_, err := newOpenAI(t, srv).Generate(context.Background(), userRequest("x"))
		var un *ErrProviderUnavailable
		assert.ErrorAs(t, err, &un)
	})

	t.Run("no choices", func(t *testing.T) {
		resp := chatCompletion("", "stop")
		resp["choices"] = []any{}
		srv, _ := serve(t, http.StatusOK, resp)
		_, err := newOpenAI(t, srv).Generate(context.Background(), userRequest("x"))
		var inv *ErrInvalidResponse
		assert.ErrorAs(t, err, &inv)
	})

	t.Run("truncated", func(t *testing.T) {
		srv, _ := serve(t, http.StatusOK, chatCompletion(`{"te`, "length"))
		req := userRequest("x")
		req.Schema = wordSchema
		_, err := newOpenAI(t, srv).Generate(context.Background(), req)
		var mt *ErrMaxTokensExceeded
		assert.ErrorAs(t, err, &mt)
	})
}

func TestGeminiProvider_Generate(t *testing.T) {
	srv, body := serve(t, http.StatusOK, map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": `{"text":"separate"}`}}},
			"finishReason": "STOP",
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 21, "candidatesTokenCount": 6},
		"modelVersion":  "gemini-2.5-flash",
	})
	p, err := NewGeminiProvider(context.Background(), ProviderConfig{APIKey: "k", Model: "gemini-2.5-flash", BaseURL: srv.URL})
	require.NoError(t, err)

	req := userRequest("one word")
	req.Schema = wordSchema
	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"separate"}`, string(resp.Content))
	assert.Equal(t, newUsage(21, 6), resp.Usage)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.Contains(t, string(*body), "application/json")
}

func TestGeminiSchema(t *testing.T) {
	var def map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "object",
		"description": "words",
		"required": ["items"],
		"properties": {
			"items": {"type": "array", "items": {"type": "string", "enum": ["a", "b"]}},
			"n": {"type": "integer"}
		}
	}`), &def))

	s := geminiSchema(def)
	assert.Equal(t, "words", s.Description)
	assert.Equal(t, []string{"items"}, s.Required)
	require.Contains(t, s.Properties, "items")
	items := s.Properties["items"]
	require.NotNil(t, items.Items)
	assert.Equal(t, []string{"a", "b"}, items.Items.Enum)
	assert.Equal(t, geminiTypes["integer"], s.Properties["n"].Type)
	assert.Equal(t, geminiTypes["object"], s.Type)
}

func TestStatusError(t *testing.T) {
	base := errors.New("boom")

	var rl *ErrRateLimit
	assert.ErrorAs(t, statusError(429, base), &rl)

	var un *ErrProviderUnavailable
	assert.ErrorAs(t, statusError(0, base), &un)
	assert.ErrorAs(t, statusError(502, base), &un)

	rejected := statusError(400, base)
	assert.ErrorIs(t, rejected, base)
	assert.False(t, retryable(rejected))

	assert.Equal(t, context.Canceled, statusError(0, context.Canceled))
}
