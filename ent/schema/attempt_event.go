package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one graded answer within a session.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("kind").
			NotEmpty().
			Comment("Question kind, e.g. name-to-formula"),
		field.String("prompt").
			Comment("The question shown"),
		field.String("expected").
			Comment("The canonical correct answer"),
		field.String("given").
			Comment("What the learner entered"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct", "prompt"),
	}
}
