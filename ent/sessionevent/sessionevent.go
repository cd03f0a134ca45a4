// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTestCode holds the string denoting the test_code field in the database.
	FieldTestCode = "test_code"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldTotalWords holds the string denoting the total_words field in the database.
	FieldTotalWords = "total_words"
	// FieldTotalAnswered holds the string denoting the total_answered field in the database.
	FieldTotalAnswered = "total_answered"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldMasteredCount holds the string denoting the mastered_count field in the database.
	FieldMasteredCount = "mastered_count"
	// FieldSkippedCount holds the string denoting the skipped_count field in the database.
	FieldSkippedCount = "skipped_count"
	// FieldBestCombo holds the string denoting the best_combo field in the database.
	FieldBestCombo = "best_combo"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldTestCode,
	FieldAction,
	FieldTotalWords,
	FieldTotalAnswered,
	FieldCorrectAnswers,
	FieldMasteredCount,
	FieldSkippedCount,
	FieldBestCombo,
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
	// TestCodeValidator is a validator for the "test_code" field. It is called by the builders before save.
	TestCodeValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultTotalWords holds the default value on creation for the "total_words" field.
	DefaultTotalWords int
	// DefaultTotalAnswered holds the default value on creation for the "total_answered" field.
	DefaultTotalAnswered int
	// DefaultCorrectAnswers holds the default value on creation for the "correct_answers" field.
	DefaultCorrectAnswers int
	// DefaultMasteredCount holds the default value on creation for the "mastered_count" field.
	DefaultMasteredCount int
	// DefaultSkippedCount holds the default value on creation for the "skipped_count" field.
	DefaultSkippedCount int
	// DefaultBestCombo holds the default value on creation for the "best_combo" field.
	DefaultBestCombo int
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// ByTestCode orders the results by the test_code field.
func ByTestCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTestCode, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByTotalWords orders the results by the total_words field.
func ByTotalWords(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalWords, opts...).ToFunc()
}

// ByTotalAnswered orders the results by the total_answered field.
func ByTotalAnswered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalAnswered, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByMasteredCount orders the results by the mastered_count field.
func ByMasteredCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteredCount, opts...).ToFunc()
}

// BySkippedCount orders the results by the skipped_count field.
func BySkippedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkippedCount, opts...).ToFunc()
}

// ByBestCombo orders the results by the best_combo field.
func ByBestCombo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBestCombo, opts...).ToFunc()
}
