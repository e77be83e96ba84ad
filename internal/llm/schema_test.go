package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var listSchema = &Schema{
	Name: "suggestions",
	Definition: map[string]any{
		"type":     "object",
		"required": []string{"items"},
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"text", "level"},
					"properties": map[string]any{
						"text":  map[string]any{"type": "string", "minLength": 1},
						"level": map[string]any{"type": "string", "enum": []string{"easy", "hard"}},
					},
				},
			},
		},
	},
}

func TestSchemaValidate(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"valid", `{"items":[{"text":"rhythm","level":"hard"}]}`, true},
		{"empty list", `{"items":[]}`, true},
		{"missing required", `{}`, false},
		{"wrong type", `{"items":"rhythm"}`, false},
		{"bad enum", `{"items":[{"text":"cat","level":"medium"}]}`, false},
		{"nested missing", `{"items":[{"text":"cat"}]}`, false},
		{"empty string", `{"items":[{"text":"","level":"easy"}]}`, false},
		{"malformed", `{"items":[`, false},
		{"blank", "  \n", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := listSchema.Validate(json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var inv *ErrInvalidResponse
			require.ErrorAs(t, err, &inv)
			assert.Equal(t, tt.raw, string(inv.Content))
		})
	}
}

func TestSchemaValidate_BadDefinition(t *testing.T) {
	s := &Schema{Name: "broken", Definition: map[string]any{"type": 42}}
	err := s.Validate(json.RawMessage(`{}`))
	var inv *ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}
