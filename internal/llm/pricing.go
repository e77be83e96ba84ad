package llm

import "strings"

// Price is the USD list price per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost is the USD cost of a call with the given token counts.
func (p Price) Cost(inputTokens, outputTokens int) float64 {
	return (float64(inputTokens)*p.Input + float64(outputTokens)*p.Output) / 1e6
}

// prices is keyed by model family. Lookups match the longest family that
// prefixes the model ID, so dated snapshots share their family's price.
var prices = map[string]Price{
	"claude-3-haiku":    {0.25, 1.25},
	"claude-3-5-haiku":  {0.8, 4},
	"claude-haiku-4-5":  {1, 5},
	"claude-3-5-sonnet": {3, 15},
	"claude-3-7-sonnet": {3, 15},
	"claude-sonnet-4":   {3, 15},
	"claude-opus-4":     {15, 75},
	"claude-opus-4-5":   {5, 25},

	"gpt-3.5-turbo": {0.5, 1.5},
	"gpt-4":         {30, 60},
	"gpt-4-turbo":   {10, 30},
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-4.1-nano":  {0.1, 0.4},
	"gpt-5":         {1.25, 10},
	"gpt-5-mini":    {0.25, 2},
	"gpt-5-nano":    {0.05, 0.4},
	"o3":            {2, 8},
	"o3-mini":       {1.1, 4.4},
	"o4-mini":       {1.1, 4.4},

	"gemini-1.5-flash":      {0.075, 0.3},
	"gemini-1.5-pro":        {1.25, 5},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.0-flash-lite": {0.075, 0.3},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-flash-lite": {0.1, 0.4},
	"gemini-2.5-pro":        {1.25, 10},
}

// PriceOf returns the price of model. OpenRouter-style IDs such as
// "openai/gpt-4o-mini" are matched on the part after the slash.
func PriceOf(model string) (Price, bool) {
	if i := strings.LastIndexByte(model, '/'); i >= 0 {
		model = model[i+1:]
	}
	best := ""
	for family := range prices {
		if len(family) > len(best) && familyOf(model, family) {
			best = family
		}
	}
	if best == "" {
		return Price{}, false
	}
	return prices[best], true
}

// familyOf reports whether model is family itself or a dash-separated
// variant of it ("gpt-4o-2024-08-06" but not "gpt-4o" for "gpt-4").
func familyOf(model, family string) bool {
	if !strings.HasPrefix(model, family) {
		return false
	}
	rest := model[len(family):]
	return rest == "" || rest[0] == '-'
}
