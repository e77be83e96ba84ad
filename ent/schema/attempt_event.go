package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent is one answered prompt of a practice session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{History{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("deck").NotEmpty(),
		field.String("text").NotEmpty(),
		field.String("answer").Comment("As typed, before normalization"),
		field.Bool("correct"),
		field.String("category").Comment("Item category once the attempt is counted"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("deck", "text"),
		index.Fields("correct"),
	}
}
