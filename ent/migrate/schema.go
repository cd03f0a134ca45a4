// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "word_mastery_id", Type: field.TypeInt64},
		{Name: "word_text", Type: field.TypeString},
		{Name: "stage", Type: field.TypeInt},
		{Name: "question_type", Type: field.TypeString},
		{Name: "student_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "almost", Type: field.TypeBool, Default: false},
		{Name: "time_ms", Type: field.TypeInt},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_word_mastery_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[10]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "test_code", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "total_words", Type: field.TypeInt, Default: 0},
		{Name: "total_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "mastered_count", Type: field.TypeInt, Default: 0},
		{Name: "skipped_count", Type: field.TypeInt, Default: 0},
		{Name: "best_combo", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// WordEventsColumns holds the columns for the "word_events" table.
	WordEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "word_mastery_id", Type: field.TypeInt64},
		{Name: "word_text", Type: field.TypeString},
		{Name: "from_status", Type: field.TypeString},
		{Name: "to_status", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
	}
	// WordEventsTable holds the schema information for the "word_events" table.
	WordEventsTable = &schema.Table{
		Name:       "word_events",
		Columns:    WordEventsColumns,
		PrimaryKey: []*schema.Column{WordEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wordevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{WordEventsColumns[1]},
			},
			{
				Name:    "wordevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{WordEventsColumns[2]},
			},
			{
				Name:    "wordevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{WordEventsColumns[3]},
			},
			{
				Name:    "wordevent_to_status",
				Unique:  false,
				Columns: []*schema.Column{WordEventsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		SessionEventsTable,
		WordEventsTable,
	}
)

func init() {
}
