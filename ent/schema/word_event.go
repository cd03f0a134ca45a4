package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WordEvent records a word lifecycle transition within a stage test.
type WordEvent struct {
	ent.Schema
}

func (WordEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (WordEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int64("word_mastery_id").
			Comment("Session-scoped word identity"),
		field.String("word_text").
			NotEmpty().
			Comment("The word that transitioned"),
		field.String("from_status").
			NotEmpty().
			Comment("Status before the transition"),
		field.String("to_status").
			NotEmpty().
			Comment("Status after the transition"),
		field.String("trigger").
			NotEmpty().
			Comment("What caused the transition, e.g. admitted or word-mastered"),
	}
}

func (WordEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("to_status"),
	}
}
