package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// History is mixed into append-only history tables. The sequence is shared
// by every history table so attempts and LLM calls interleave in order.
type History struct {
	mixin.Schema
}

func (History) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").Unique().Immutable(),
		field.Time("timestamp").Default(time.Now).Immutable().
			Comment("Stored in UTC"),
	}
}

func (History) Indexes() []ent.Index {
	return []ent.Index{index.Fields("sequence"), index.Fields("timestamp")}
}
