// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordwave/ent/sessionevent"
)

// SessionEvent is the model entity for the SessionEvent schema.
type SessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Server-issued session identity
	SessionID string `json:"session_id,omitempty"`
	// The code the test was started with
	TestCode string `json:"test_code,omitempty"`
	// start or complete
	Action string `json:"action,omitempty"`
	// Word count in session scope
	TotalWords int `json:"total_words,omitempty"`
	// Total answers submitted (on complete only)
	TotalAnswered int `json:"total_answered,omitempty"`
	// Total correct (on complete only)
	CorrectAnswers int `json:"correct_answers,omitempty"`
	// Words mastered (on complete only)
	MasteredCount int `json:"mastered_count,omitempty"`
	// Words skipped (on complete only)
	SkippedCount int `json:"skipped_count,omitempty"`
	// Best consecutive-correct run (on complete only)
	BestCombo    int `json:"best_combo,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID, sessionevent.FieldSequence, sessionevent.FieldTotalWords, sessionevent.FieldTotalAnswered, sessionevent.FieldCorrectAnswers, sessionevent.FieldMasteredCount, sessionevent.FieldSkippedCount, sessionevent.FieldBestCombo:
			values[i] = new(sql.NullInt64)
		case sessionevent.FieldSessionID, sessionevent.FieldTestCode, sessionevent.FieldAction:
			values[i] = new(sql.NullString)
		case sessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionEvent fields.
func (se *SessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			se.ID = int(value.Int64)
		case sessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				se.Sequence = value.Int64
			}
		case sessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				se.Timestamp = value.Time
			}
		case sessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				se.SessionID = value.String
			}
		case sessionevent.FieldTestCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field test_code", values[i])
			} else if value.Valid {
				se.TestCode = value.String
			}
		case sessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				se.Action = value.String
			}
		case sessionevent.FieldTotalWords:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_words", values[i])
			} else if value.Valid {
				se.TotalWords = int(value.Int64)
			}
		case sessionevent.FieldTotalAnswered:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_answered", values[i])
			} else if value.Valid {
				se.TotalAnswered = int(value.Int64)
			}
		case sessionevent.FieldCorrectAnswers:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answers", values[i])
			} else if value.Valid {
				se.CorrectAnswers = int(value.Int64)
			}
		case sessionevent.FieldMasteredCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field mastered_count", values[i])
			} else if value.Valid {
				se.MasteredCount = int(value.Int64)
			}
		case sessionevent.FieldSkippedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped_count", values[i])
			} else if value.Valid {
				se.SkippedCount = int(value.Int64)
			}
		case sessionevent.FieldBestCombo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field best_combo", values[i])
			} else if value.Valid {
				se.BestCombo = int(value.Int64)
			}
		default:
			se.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionEvent.
// This includes values selected through modifiers, order, etc.
func (se *SessionEvent) Value(name string) (ent.Value, error) {
	return se.selectValues.Get(name)
}

// Update returns a builder for updating this SessionEvent.
// Note that you need to call SessionEvent.Unwrap() before calling this method if this SessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (se *SessionEvent) Update() *SessionEventUpdateOne {
	return NewSessionEventClient(se.config).UpdateOne(se)
}

// Unwrap unwraps the SessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (se *SessionEvent) Unwrap() *SessionEvent {
	_tx, ok := se.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionEvent is not a transactional entity")
	}
	se.config.driver = _tx.drv
	return se
}

// String implements the fmt.Stringer.
func (se *SessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("SessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", se.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", se.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(se.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(se.SessionID)
	builder.WriteString(", ")
	builder.WriteString("test_code=")
	builder.WriteString(se.TestCode)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(se.Action)
	builder.WriteString(", ")
	builder.WriteString("total_words=")
	builder.WriteString(fmt.Sprintf("%v", se.TotalWords))
	builder.WriteString(", ")
	builder.WriteString("total_answered=")
	builder.WriteString(fmt.Sprintf("%v", se.TotalAnswered))
	builder.WriteString(", ")
	builder.WriteString("correct_answers=")
	builder.WriteString(fmt.Sprintf("%v", se.CorrectAnswers))
	builder.WriteString(", ")
	builder.WriteString("mastered_count=")
	builder.WriteString(fmt.Sprintf("%v", se.MasteredCount))
	builder.WriteString(", ")
	builder.WriteString("skipped_count=")
	builder.WriteString(fmt.Sprintf("%v", se.SkippedCount))
	builder.WriteString(", ")
	builder.WriteString("best_combo=")
	builder.WriteString(fmt.Sprintf("%v", se.BestCombo))
	builder.WriteByte(')')
	return builder.String()
}

// SessionEvents is a parsable slice of SessionEvent.
type SessionEvents []*SessionEvent
