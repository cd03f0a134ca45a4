// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/wordwave/ent/answerevent"
	"github.com/abhisek/wordwave/ent/schema"
	"github.com/abhisek/wordwave/ent/sessionevent"
	"github.com/abhisek/wordwave/ent/wordevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescWordText is the schema descriptor for word_text field.
	answereventDescWordText := answereventFields[2].Descriptor()
	// answerevent.WordTextValidator is a validator for the "word_text" field. It is called by the builders before save.
	answerevent.WordTextValidator = answereventDescWordText.Validators[0].(func(string) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescCorrectAnswer is the schema descriptor for correct_answer field.
	answereventDescCorrectAnswer := answereventFields[6].Descriptor()
	// answerevent.CorrectAnswerValidator is a validator for the "correct_answer" field. It is called by the builders before save.
	answerevent.CorrectAnswerValidator = answereventDescCorrectAnswer.Validators[0].(func(string) error)
	// answereventDescAlmost is the schema descriptor for almost field.
	answereventDescAlmost := answereventFields[8].Descriptor()
	// answerevent.DefaultAlmost holds the default value on creation for the almost field.
	answerevent.DefaultAlmost = answereventDescAlmost.Default.(bool)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescTestCode is the schema descriptor for test_code field.
	sessioneventDescTestCode := sessioneventFields[1].Descriptor()
	// sessionevent.TestCodeValidator is a validator for the "test_code" field. It is called by the builders before save.
	sessionevent.TestCodeValidator = sessioneventDescTestCode.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTotalWords is the schema descriptor for total_words field.
	sessioneventDescTotalWords := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTotalWords holds the default value on creation for the total_words field.
	sessionevent.DefaultTotalWords = sessioneventDescTotalWords.Default.(int)
	// sessioneventDescTotalAnswered is the schema descriptor for total_answered field.
	sessioneventDescTotalAnswered := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotalAnswered holds the default value on creation for the total_answered field.
	sessionevent.DefaultTotalAnswered = sessioneventDescTotalAnswered.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescMasteredCount is the schema descriptor for mastered_count field.
	sessioneventDescMasteredCount := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultMasteredCount holds the default value on creation for the mastered_count field.
	sessionevent.DefaultMasteredCount = sessioneventDescMasteredCount.Default.(int)
	// sessioneventDescSkippedCount is the schema descriptor for skipped_count field.
	sessioneventDescSkippedCount := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultSkippedCount holds the default value on creation for the skipped_count field.
	sessionevent.DefaultSkippedCount = sessioneventDescSkippedCount.Default.(int)
	// sessioneventDescBestCombo is the schema descriptor for best_combo field.
	sessioneventDescBestCombo := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultBestCombo holds the default value on creation for the best_combo field.
	sessionevent.DefaultBestCombo = sessioneventDescBestCombo.Default.(int)
	wordeventMixin := schema.WordEvent{}.Mixin()
	wordeventMixinFields0 := wordeventMixin[0].Fields()
	_ = wordeventMixinFields0
	wordeventFields := schema.WordEvent{}.Fields()
	_ = wordeventFields
	// wordeventDescTimestamp is the schema descriptor for timestamp field.
	wordeventDescTimestamp := wordeventMixinFields0[1].Descriptor()
	// wordevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	wordevent.DefaultTimestamp = wordeventDescTimestamp.Default.(func() time.Time)
	// wordeventDescSessionID is the schema descriptor for session_id field.
	wordeventDescSessionID := wordeventFields[0].Descriptor()
	// wordevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	wordevent.SessionIDValidator = wordeventDescSessionID.Validators[0].(func(string) error)
	// wordeventDescWordText is the schema descriptor for word_text field.
	wordeventDescWordText := wordeventFields[2].Descriptor()
	// wordevent.WordTextValidator is a validator for the "word_text" field. It is called by the builders before save.
	wordevent.WordTextValidator = wordeventDescWordText.Validators[0].(func(string) error)
	// wordeventDescFromStatus is the schema descriptor for from_status field.
	wordeventDescFromStatus := wordeventFields[3].Descriptor()
	// wordevent.FromStatusValidator is a validator for the "from_status" field. It is called by the builders before save.
	wordevent.FromStatusValidator = wordeventDescFromStatus.Validators[0].(func(string) error)
	// wordeventDescToStatus is the schema descriptor for to_status field.
	wordeventDescToStatus := wordeventFields[4].Descriptor()
	// wordevent.ToStatusValidator is a validator for the "to_status" field. It is called by the builders before save.
	wordevent.ToStatusValidator = wordeventDescToStatus.Validators[0].(func(string) error)
	// wordeventDescTrigger is the schema descriptor for trigger field.
	wordeventDescTrigger := wordeventFields[5].Descriptor()
	// wordevent.TriggerValidator is a validator for the "trigger" field. It is called by the builders before save.
	wordevent.TriggerValidator = wordeventDescTrigger.Validators[0].(func(string) error)
}
