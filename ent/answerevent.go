// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordwave/ent/answerevent"
)

// AnswerEvent is the model entity for the AnswerEvent schema.
type AnswerEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Session-scoped word identity
	WordMasteryID int64 `json:"word_mastery_id,omitempty"`
	// The word under test
	WordText string `json:"word_text,omitempty"`
	// Stage the question was asked at (1-5)
	Stage int `json:"stage,omitempty"`
	// Question modality, e.g. choice or typed
	QuestionType string `json:"question_type,omitempty"`
	// What the student submitted (may be empty on timeout)
	StudentAnswer string `json:"student_answer,omitempty"`
	// The canonical correct answer
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Server verdict: fully correct
	Correct bool `json:"correct,omitempty"`
	// Server verdict: near-miss
	Almost bool `json:"almost,omitempty"`
	// Milliseconds to answer
	TimeMs       int `json:"time_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnswerEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldCorrect, answerevent.FieldAlmost:
			values[i] = new(sql.NullBool)
		case answerevent.FieldID, answerevent.FieldSequence, answerevent.FieldWordMasteryID, answerevent.FieldStage, answerevent.FieldTimeMs:
			values[i] = new(sql.NullInt64)
		case answerevent.FieldSessionID, answerevent.FieldWordText, answerevent.FieldQuestionType, answerevent.FieldStudentAnswer, answerevent.FieldCorrectAnswer:
			values[i] = new(sql.NullString)
		case answerevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnswerEvent fields.
func (ae *AnswerEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case answerevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case answerevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ae.Sequence = value.Int64
			}
		case answerevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ae.Timestamp = value.Time
			}
		case answerevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ae.SessionID = value.String
			}
		case answerevent.FieldWordMasteryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_mastery_id", values[i])
			} else if value.Valid {
				ae.WordMasteryID = value.Int64
			}
		case answerevent.FieldWordText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_text", values[i])
			} else if value.Valid {
				ae.WordText = value.String
			}
		case answerevent.FieldStage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				ae.Stage = int(value.Int64)
			}
		case answerevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				ae.QuestionType = value.String
			}
		case answerevent.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				ae.StudentAnswer = value.String
			}
		case answerevent.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				ae.CorrectAnswer = value.String
			}
		case answerevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				ae.Correct = value.Bool
			}
		case answerevent.FieldAlmost:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field almost", values[i])
			} else if value.Valid {
				ae.Almost = value.Bool
			}
		case answerevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				ae.TimeMs = int(value.Int64)
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnswerEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AnswerEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// Update returns a builder for updating this AnswerEvent.
// Note that you need to call AnswerEvent.Unwrap() before calling this method if this AnswerEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AnswerEvent) Update() *AnswerEventUpdateOne {
	return NewAnswerEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AnswerEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AnswerEvent) Unwrap() *AnswerEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnswerEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AnswerEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AnswerEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ae.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(ae.SessionID)
	builder.WriteString(", ")
	builder.WriteString("word_mastery_id=")
	builder.WriteString(fmt.Sprintf("%v", ae.WordMasteryID))
	builder.WriteString(", ")
	builder.WriteString("word_text=")
	builder.WriteString(ae.WordText)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", ae.Stage))
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(ae.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(ae.StudentAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(ae.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", ae.Correct))
	builder.WriteString(", ")
	builder.WriteString("almost=")
	builder.WriteString(fmt.Sprintf("%v", ae.Almost))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", ae.TimeMs))
	builder.WriteByte(')')
	return builder.String()
}

// AnswerEvents is a parsable slice of AnswerEvent.
type AnswerEvents []*AnswerEvent
