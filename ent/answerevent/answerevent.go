// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldWordMasteryID holds the string denoting the word_mastery_id field in the database.
	FieldWordMasteryID = "word_mastery_id"
	// FieldWordText holds the string denoting the word_text field in the database.
	FieldWordText = "word_text"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrectAnswer holds the string denoting the correct_answer field in the database.
	FieldCorrectAnswer = "correct_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldAlmost holds the string denoting the almost field in the database.
	FieldAlmost = "almost"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldWordMasteryID,
	FieldWordText,
	FieldStage,
	FieldQuestionType,
	FieldStudentAnswer,
	FieldCorrectAnswer,
	FieldCorrect,
	FieldAlmost,
	FieldTimeMs,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// WordTextValidator is a validator for the "word_text" field. It is called by the builders before save.
	WordTextValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	CorrectAnswerValidator func(string) error
	// DefaultAlmost holds the default value on creation for the "almost" field.
	DefaultAlmost bool
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByWordMasteryID orders the results by the word_mastery_id field.
func ByWordMasteryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordMasteryID, opts...).ToFunc()
}

// ByWordText orders the results by the word_text field.
func ByWordText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordText, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrectAnswer orders the results by the correct_answer field.
func ByCorrectAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByAlmost orders the results by the almost field.
func ByAlmost(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlmost, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}
