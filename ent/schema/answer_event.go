package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a stage test.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.Int64("word_mastery_id").
			Comment("Session-scoped word identity"),
		field.String("word_text").
			NotEmpty().
			Comment("The word under test"),
		field.Int("stage").
			Comment("Stage the question was asked at (1-5)"),
		field.String("question_type").
			NotEmpty().
			Comment("Question modality, e.g. choice or typed"),
		field.String("student_answer").
			Comment("What the student submitted (may be empty on timeout)"),
		field.String("correct_answer").
			NotEmpty().
			Comment("The canonical correct answer"),
		field.Bool("correct").
			Comment("Server verdict: fully correct"),
		field.Bool("almost").
			Default(false).
			Comment("Server verdict: near-miss"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("word_mastery_id"),
		index.Fields("correct"),
	}
}
