package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Item holds one word or phrasal verb of a deck with its attempt counters.
type Item struct {
	ent.Schema
}

func (Item) Fields() []ent.Field {
	return []ent.Field{
		field.String("deck").
			NotEmpty().
			Comment("Deck the item belongs to: words, phrasal_verbs"),
		field.Int("position").
			Comment("Order of the item within its deck"),
		field.String("text").
			NotEmpty().
			Comment("Normalized item text"),
		field.Int("right_count").
			Default(0),
		field.Int("wrong_count").
			Default(0),
		field.Int("asked").
			Default(0),
		field.Int("streak").
			Default(0).
			Comment("Consecutive correct answers"),
		field.Float("difficulty").
			Optional().
			Nillable().
			Comment("Static difficulty estimate in [1, 5]"),
		field.String("category").
			Optional().
			Nillable().
			Comment("mastered, average or struggling"),
	}
}

func (Item) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("deck", "text").Unique(),
		index.Fields("deck", "position"),
	}
}
