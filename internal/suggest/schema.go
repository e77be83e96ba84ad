package suggest

import "github.com/abhisek/spellz/internal/llm"

// SuggestionSchema defines the JSON schema for LLM item suggestions.
var SuggestionSchema = &llm.Schema{
	Name:        "spelling-suggestions",
	Description: "A list of English words or phrasal verbs for spelling practice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The word or phrasal verb exactly as it should be spelled, lowercase",
						},
						"definition": map[string]any{
							"type":        "string",
							"description": "A short plain-English definition",
						},
						"example": map[string]any{
							"type":        "string",
							"description": "One natural example sentence using the item",
						},
					},
					"required":             []any{"text", "definition", "example"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
