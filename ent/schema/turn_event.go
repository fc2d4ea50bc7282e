package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records a single processed tutor turn. Message bodies stay in
// the session store; the event log keeps sizes and latency for analytics.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.Int("user_chars").
			Default(0).
			Comment("Length of the learner message"),
		field.Int("tutor_chars").
			Default(0).
			Comment("Length of the tutor reply"),
		field.Bool("streamed").
			Default(false),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time to produce the tutor reply"),
		field.Int("hint_level").
			Default(0).
			Comment("Hint escalation level used for this turn"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
