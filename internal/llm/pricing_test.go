package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceOf(t *testing.T) {
	tests := []struct {
		model string
		want  Price
	}{
		{"gpt-4o-mini", Price{0.15, 0.6}},
		{"gpt-4o-2024-08-06", Price{2.5, 10}},
		{"openai/gpt-4o-mini", Price{0.15, 0.6}},
		{"claude-haiku-4-5-20251001", Price{1, 5}},
		{"claude-opus-4-5", Price{5, 25}},
		{"claude-opus-4-1", Price{15, 75}},
		{"google/gemini-2.0-flash-exp", Price{0.1, 0.4}},
		{"gemini-2.5-flash-lite", Price{0.1, 0.4}},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got, ok := PriceOf(tt.model)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, model := range []string{"mock", "gpt-4x", "llama-3"} {
		_, ok := PriceOf(model)
		assert.False(t, ok, model)
	}
}

func TestPriceCost(t *testing.T) {
	p := Price{Input: 1, Output: 5}
	assert.InDelta(t, 0.0035, p.Cost(1000, 500), 1e-12)
	assert.Zero(t, p.Cost(0, 0))
}
