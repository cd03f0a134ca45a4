package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records stage-test lifecycle events (start/complete).
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
			Comment("Server-issued session identity"),
		field.String("test_code").
			NotEmpty().
			Comment("The code the test was started with"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("total_words").
			Default(0).
			Comment("Word count in session scope"),
		field.Int("total_answered").
			Default(0).
			Comment("Total answers submitted (on complete only)"),
		field.Int("correct_answers").
			Default(0).
			Comment("Total correct (on complete only)"),
		field.Int("mastered_count").
			Default(0).
			Comment("Words mastered (on complete only)"),
		field.Int("skipped_count").
			Default(0).
			Comment("Words skipped (on complete only)"),
		field.Int("best_combo").
			Default(0).
			Comment("Best consecutive-correct run (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
