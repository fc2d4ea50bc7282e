package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records tutoring-session lifecycle events (start/end/clear).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("owner_id").
			Default("").
			Comment("Owning user, empty for guests"),
		field.String("action").
			NotEmpty().
			Comment("start, end or clear"),
		field.String("problem_type").
			Default("").
			Comment("Classified problem type (on start only)"),
		field.Int("turns").
			Default(0).
			Comment("Total messages (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session length in seconds (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("owner_id"),
		index.Fields("action"),
	}
}
