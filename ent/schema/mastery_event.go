package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent records a concept-record update for audit and analytics.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("owner_id").Default(""),
		field.String("concept_id").NotEmpty(),
		field.Bool("was_solved"),
		field.Int("hints_used").Default(0),
		field.Float("time_spent_minutes").Default(0),
		field.Int("mastery_before"),
		field.Int("mastery_after"),
		field.String("session_id").Optional(),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("concept_id"),
		index.Fields("owner_id", "concept_id"),
	}
}
