// Code generated by ent, DO NOT EDIT.

package wordevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordwave/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldSessionID, v))
}

// WordMasteryID applies equality check predicate on the "word_mastery_id" field. It's identical to WordMasteryIDEQ.
func WordMasteryID(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldWordMasteryID, v))
}

// WordText applies equality check predicate on the "word_text" field. It's identical to WordTextEQ.
func WordText(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldWordText, v))
}

// FromStatus applies equality check predicate on the "from_status" field. It's identical to FromStatusEQ.
func FromStatus(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldFromStatus, v))
}

// ToStatus applies equality check predicate on the "to_status" field. It's identical to ToStatusEQ.
func ToStatus(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldToStatus, v))
}

// Trigger applies equality check predicate on the "trigger" field. It's identical to TriggerEQ.
func Trigger(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldTrigger, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// WordMasteryIDEQ applies the EQ predicate on the "word_mastery_id" field.
func WordMasteryIDEQ(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldWordMasteryID, v))
}

// WordMasteryIDNEQ applies the NEQ predicate on the "word_mastery_id" field.
func WordMasteryIDNEQ(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldWordMasteryID, v))
}

// WordMasteryIDIn applies the In predicate on the "word_mastery_id" field.
func WordMasteryIDIn(vs ...int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldWordMasteryID, vs...))
}

// WordMasteryIDNotIn applies the NotIn predicate on the "word_mastery_id" field.
func WordMasteryIDNotIn(vs ...int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldWordMasteryID, vs...))
}

// WordMasteryIDGT applies the GT predicate on the "word_mastery_id" field.
func WordMasteryIDGT(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldWordMasteryID, v))
}

// WordMasteryIDGTE applies the GTE predicate on the "word_mastery_id" field.
func WordMasteryIDGTE(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldWordMasteryID, v))
}

// WordMasteryIDLT applies the LT predicate on the "word_mastery_id" field.
func WordMasteryIDLT(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldWordMasteryID, v))
}

// WordMasteryIDLTE applies the LTE predicate on the "word_mastery_id" field.
func WordMasteryIDLTE(v int64) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldWordMasteryID, v))
}

// WordTextEQ applies the EQ predicate on the "word_text" field.
func WordTextEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldWordText, v))
}

// WordTextNEQ applies the NEQ predicate on the "word_text" field.
func WordTextNEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldWordText, v))
}

// WordTextIn applies the In predicate on the "word_text" field.
func WordTextIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldWordText, vs...))
}

// WordTextNotIn applies the NotIn predicate on the "word_text" field.
func WordTextNotIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldWordText, vs...))
}

// WordTextGT applies the GT predicate on the "word_text" field.
func WordTextGT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldWordText, v))
}

// WordTextGTE applies the GTE predicate on the "word_text" field.
func WordTextGTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldWordText, v))
}

// WordTextLT applies the LT predicate on the "word_text" field.
func WordTextLT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldWordText, v))
}

// WordTextLTE applies the LTE predicate on the "word_text" field.
func WordTextLTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldWordText, v))
}

// WordTextContains applies the Contains predicate on the "word_text" field.
func WordTextContains(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContains(FieldWordText, v))
}

// WordTextHasPrefix applies the HasPrefix predicate on the "word_text" field.
func WordTextHasPrefix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasPrefix(FieldWordText, v))
}

// WordTextHasSuffix applies the HasSuffix predicate on the "word_text" field.
func WordTextHasSuffix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasSuffix(FieldWordText, v))
}

// WordTextEqualFold applies the EqualFold predicate on the "word_text" field.
func WordTextEqualFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEqualFold(FieldWordText, v))
}

// WordTextContainsFold applies the ContainsFold predicate on the "word_text" field.
func WordTextContainsFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContainsFold(FieldWordText, v))
}

// FromStatusEQ applies the EQ predicate on the "from_status" field.
func FromStatusEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldFromStatus, v))
}

// FromStatusNEQ applies the NEQ predicate on the "from_status" field.
func FromStatusNEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldFromStatus, v))
}

// FromStatusIn applies the In predicate on the "from_status" field.
func FromStatusIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldFromStatus, vs...))
}

// FromStatusNotIn applies the NotIn predicate on the "from_status" field.
func FromStatusNotIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldFromStatus, vs...))
}

// FromStatusGT applies the GT predicate on the "from_status" field.
func FromStatusGT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldFromStatus, v))
}

// FromStatusGTE applies the GTE predicate on the "from_status" field.
func FromStatusGTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldFromStatus, v))
}

// FromStatusLT applies the LT predicate on the "from_status" field.
func FromStatusLT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldFromStatus, v))
}

// FromStatusLTE applies the LTE predicate on the "from_status" field.
func FromStatusLTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldFromStatus, v))
}

// FromStatusContains applies the Contains predicate on the "from_status" field.
func FromStatusContains(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContains(FieldFromStatus, v))
}

// FromStatusHasPrefix applies the HasPrefix predicate on the "from_status" field.
func FromStatusHasPrefix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasPrefix(FieldFromStatus, v))
}

// FromStatusHasSuffix applies the HasSuffix predicate on the "from_status" field.
func FromStatusHasSuffix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasSuffix(FieldFromStatus, v))
}

// FromStatusEqualFold applies the EqualFold predicate on the "from_status" field.
func FromStatusEqualFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEqualFold(FieldFromStatus, v))
}

// FromStatusContainsFold applies the ContainsFold predicate on the "from_status" field.
func FromStatusContainsFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContainsFold(FieldFromStatus, v))
}

// ToStatusEQ applies the EQ predicate on the "to_status" field.
func ToStatusEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldToStatus, v))
}

// ToStatusNEQ applies the NEQ predicate on the "to_status" field.
func ToStatusNEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldToStatus, v))
}

// ToStatusIn applies the In predicate on the "to_status" field.
func ToStatusIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldToStatus, vs...))
}

// ToStatusNotIn applies the NotIn predicate on the "to_status" field.
func ToStatusNotIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldToStatus, vs...))
}

// ToStatusGT applies the GT predicate on the "to_status" field.
func ToStatusGT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldToStatus, v))
}

// ToStatusGTE applies the GTE predicate on the "to_status" field.
func ToStatusGTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldToStatus, v))
}

// ToStatusLT applies the LT predicate on the "to_status" field.
func ToStatusLT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldToStatus, v))
}

// ToStatusLTE applies the LTE predicate on the "to_status" field.
func ToStatusLTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldToStatus, v))
}

// ToStatusContains applies the Contains predicate on the "to_status" field.
func ToStatusContains(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContains(FieldToStatus, v))
}

// ToStatusHasPrefix applies the HasPrefix predicate on the "to_status" field.
func ToStatusHasPrefix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasPrefix(FieldToStatus, v))
}

// ToStatusHasSuffix applies the HasSuffix predicate on the "to_status" field.
func ToStatusHasSuffix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasSuffix(FieldToStatus, v))
}

// ToStatusEqualFold applies the EqualFold predicate on the "to_status" field.
func ToStatusEqualFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEqualFold(FieldToStatus, v))
}

// ToStatusContainsFold applies the ContainsFold predicate on the "to_status" field.
func ToStatusContainsFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContainsFold(FieldToStatus, v))
}

// TriggerEQ applies the EQ predicate on the "trigger" field.
func TriggerEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEQ(FieldTrigger, v))
}

// TriggerNEQ applies the NEQ predicate on the "trigger" field.
func TriggerNEQ(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNEQ(FieldTrigger, v))
}

// TriggerIn applies the In predicate on the "trigger" field.
func TriggerIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldIn(FieldTrigger, vs...))
}

// TriggerNotIn applies the NotIn predicate on the "trigger" field.
func TriggerNotIn(vs ...string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldNotIn(FieldTrigger, vs...))
}

// TriggerGT applies the GT predicate on the "trigger" field.
func TriggerGT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGT(FieldTrigger, v))
}

// TriggerGTE applies the GTE predicate on the "trigger" field.
func TriggerGTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldGTE(FieldTrigger, v))
}

// TriggerLT applies the LT predicate on the "trigger" field.
func TriggerLT(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLT(FieldTrigger, v))
}

// TriggerLTE applies the LTE predicate on the "trigger" field.
func TriggerLTE(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldLTE(FieldTrigger, v))
}

// TriggerContains applies the Contains predicate on the "trigger" field.
func TriggerContains(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContains(FieldTrigger, v))
}

// TriggerHasPrefix applies the HasPrefix predicate on the "trigger" field.
func TriggerHasPrefix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasPrefix(FieldTrigger, v))
}

// TriggerHasSuffix applies the HasSuffix predicate on the "trigger" field.
func TriggerHasSuffix(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldHasSuffix(FieldTrigger, v))
}

// TriggerEqualFold applies the EqualFold predicate on the "trigger" field.
func TriggerEqualFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldEqualFold(FieldTrigger, v))
}

// TriggerContainsFold applies the ContainsFold predicate on the "trigger" field.
func TriggerContainsFold(v string) predicate.WordEvent {
	return predicate.WordEvent(sql.FieldContainsFold(FieldTrigger, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WordEvent) predicate.WordEvent {
	return predicate.WordEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WordEvent) predicate.WordEvent {
	return predicate.WordEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WordEvent) predicate.WordEvent {
	return predicate.WordEvent(sql.NotPredicates(p))
}
