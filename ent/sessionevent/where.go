// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordwave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// TestCode applies equality check predicate on the "test_code" field. It's identical to TestCodeEQ.
func TestCode(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTestCode, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// TotalWords applies equality check predicate on the "total_words" field. It's identical to TotalWordsEQ.
func TotalWords(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTotalWords, v))
}

// TotalAnswered applies equality check predicate on the "total_answered" field. It's identical to TotalAnsweredEQ.
func TotalAnswered(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTotalAnswered, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// MasteredCount applies equality check predicate on the "mastered_count" field. It's identical to MasteredCountEQ.
func MasteredCount(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMasteredCount, v))
}

// SkippedCount applies equality check predicate on the "skipped_count" field. It's identical to SkippedCountEQ.
func SkippedCount(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSkippedCount, v))
}

// BestCombo applies equality check predicate on the "best_combo" field. It's identical to BestComboEQ.
func BestCombo(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldBestCombo, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// TestCodeEQ applies the EQ predicate on the "test_code" field.
func TestCodeEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTestCode, v))
}

// TestCodeNEQ applies the NEQ predicate on the "test_code" field.
func TestCodeNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTestCode, v))
}

// TestCodeIn applies the In predicate on the "test_code" field.
func TestCodeIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTestCode, vs...))
}

// TestCodeNotIn applies the NotIn predicate on the "test_code" field.
func TestCodeNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTestCode, vs...))
}

// TestCodeGT applies the GT predicate on the "test_code" field.
func TestCodeGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTestCode, v))
}

// TestCodeGTE applies the GTE predicate on the "test_code" field.
func TestCodeGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTestCode, v))
}

// TestCodeLT applies the LT predicate on the "test_code" field.
func TestCodeLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTestCode, v))
}

// TestCodeLTE applies the LTE predicate on the "test_code" field.
func TestCodeLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTestCode, v))
}

// TestCodeContains applies the Contains predicate on the "test_code" field.
func TestCodeContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldTestCode, v))
}

// TestCodeHasPrefix applies the HasPrefix predicate on the "test_code" field.
func TestCodeHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldTestCode, v))
}

// TestCodeHasSuffix applies the HasSuffix predicate on the "test_code" field.
func TestCodeHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldTestCode, v))
}

// TestCodeEqualFold applies the EqualFold predicate on the "test_code" field.
func TestCodeEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldTestCode, v))
}

// TestCodeContainsFold applies the ContainsFold predicate on the "test_code" field.
func TestCodeContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldTestCode, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// TotalWordsEQ applies the EQ predicate on the "total_words" field.
func TotalWordsEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTotalWords, v))
}

// TotalWordsNEQ applies the NEQ predicate on the "total_words" field.
func TotalWordsNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTotalWords, v))
}

// TotalWordsIn applies the In predicate on the "total_words" field.
func TotalWordsIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTotalWords, vs...))
}

// TotalWordsNotIn applies the NotIn predicate on the "total_words" field.
func TotalWordsNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTotalWords, vs...))
}

// TotalWordsGT applies the GT predicate on the "total_words" field.
func TotalWordsGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTotalWords, v))
}

// TotalWordsGTE applies the GTE predicate on the "total_words" field.
func TotalWordsGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTotalWords, v))
}

// TotalWordsLT applies the LT predicate on the "total_words" field.
func TotalWordsLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTotalWords, v))
}

// TotalWordsLTE applies the LTE predicate on the "total_words" field.
func TotalWordsLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTotalWords, v))
}

// TotalAnsweredEQ applies the EQ predicate on the "total_answered" field.
func TotalAnsweredEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldTotalAnswered, v))
}

// TotalAnsweredNEQ applies the NEQ predicate on the "total_answered" field.
func TotalAnsweredNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldTotalAnswered, v))
}

// TotalAnsweredIn applies the In predicate on the "total_answered" field.
func TotalAnsweredIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldTotalAnswered, vs...))
}

// TotalAnsweredNotIn applies the NotIn predicate on the "total_answered" field.
func TotalAnsweredNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldTotalAnswered, vs...))
}

// TotalAnsweredGT applies the GT predicate on the "total_answered" field.
func TotalAnsweredGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldTotalAnswered, v))
}

// TotalAnsweredGTE applies the GTE predicate on the "total_answered" field.
func TotalAnsweredGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldTotalAnswered, v))
}

// TotalAnsweredLT applies the LT predicate on the "total_answered" field.
func TotalAnsweredLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldTotalAnswered, v))
}

// TotalAnsweredLTE applies the LTE predicate on the "total_answered" field.
func TotalAnsweredLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldTotalAnswered, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldCorrectAnswers, v))
}

// MasteredCountEQ applies the EQ predicate on the "mastered_count" field.
func MasteredCountEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldMasteredCount, v))
}

// MasteredCountNEQ applies the NEQ predicate on the "mastered_count" field.
func MasteredCountNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldMasteredCount, v))
}

// MasteredCountIn applies the In predicate on the "mastered_count" field.
func MasteredCountIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldMasteredCount, vs...))
}

// MasteredCountNotIn applies the NotIn predicate on the "mastered_count" field.
func MasteredCountNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldMasteredCount, vs...))
}

// MasteredCountGT applies the GT predicate on the "mastered_count" field.
func MasteredCountGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldMasteredCount, v))
}

// MasteredCountGTE applies the GTE predicate on the "mastered_count" field.
func MasteredCountGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldMasteredCount, v))
}

// MasteredCountLT applies the LT predicate on the "mastered_count" field.
func MasteredCountLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldMasteredCount, v))
}

// MasteredCountLTE applies the LTE predicate on the "mastered_count" field.
func MasteredCountLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldMasteredCount, v))
}

// SkippedCountEQ applies the EQ predicate on the "skipped_count" field.
func SkippedCountEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldSkippedCount, v))
}

// SkippedCountNEQ applies the NEQ predicate on the "skipped_count" field.
func SkippedCountNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldSkippedCount, v))
}

// SkippedCountIn applies the In predicate on the "skipped_count" field.
func SkippedCountIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldSkippedCount, vs...))
}

// SkippedCountNotIn applies the NotIn predicate on the "skipped_count" field.
func SkippedCountNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldSkippedCount, vs...))
}

// SkippedCountGT applies the GT predicate on the "skipped_count" field.
func SkippedCountGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldSkippedCount, v))
}

// SkippedCountGTE applies the GTE predicate on the "skipped_count" field.
func SkippedCountGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldSkippedCount, v))
}

// SkippedCountLT applies the LT predicate on the "skipped_count" field.
func SkippedCountLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldSkippedCount, v))
}

// SkippedCountLTE applies the LTE predicate on the "skipped_count" field.
func SkippedCountLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldSkippedCount, v))
}

// BestComboEQ applies the EQ predicate on the "best_combo" field.
func BestComboEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldEQ(FieldBestCombo, v))
}

// BestComboNEQ applies the NEQ predicate on the "best_combo" field.
func BestComboNEQ(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNEQ(FieldBestCombo, v))
}

// BestComboIn applies the In predicate on the "best_combo" field.
func BestComboIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldIn(FieldBestCombo, vs...))
}

// BestComboNotIn applies the NotIn predicate on the "best_combo" field.
func BestComboNotIn(vs ...int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldNotIn(FieldBestCombo, vs...))
}

// BestComboGT applies the GT predicate on the "best_combo" field.
func BestComboGT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGT(FieldBestCombo, v))
}

// BestComboGTE applies the GTE predicate on the "best_combo" field.
func BestComboGTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldGTE(FieldBestCombo, v))
}

// BestComboLT applies the LT predicate on the "best_combo" field.
func BestComboLT(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLT(FieldBestCombo, v))
}

// BestComboLTE applies the LTE predicate on the "best_combo" field.
func BestComboLTE(v int) predicate.SessionEvent {
	return predicate.SessionEvent(sql.FieldLTE(FieldBestCombo, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionEvent) predicate.SessionEvent {
	return predicate.SessionEvent(sql.NotPredicates(p))
}
