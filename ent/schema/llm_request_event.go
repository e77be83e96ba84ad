package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent is one provider call, kept for `spellz llm` and cost
// estimates.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{History{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	counter := func(name string) ent.Field {
		return field.Int(name).Default(0)
	}
	return []ent.Field{
		field.String("provider"),
		field.String("model").Comment("Model reported by the provider when known"),
		field.String("purpose"),
		counter("input_tokens"),
		counter("output_tokens"),
		field.Int64("latency_ms").Default(0),
		field.Bool("success"),
		field.String("error_message").Default(""),
		field.Text("request_body").Default("").Comment("Plain-text transcript of the request"),
		field.Text("response_body").Default(""),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("model"),
		index.Fields("success"),
	}
}
