// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordwave/ent/wordevent"
)

// WordEvent is the model entity for the WordEvent schema.
type WordEvent struct {
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
	// The word that transitioned
	WordText string `json:"word_text,omitempty"`
	// Status before the transition
	FromStatus string `json:"from_status,omitempty"`
	// Status after the transition
	ToStatus string `json:"to_status,omitempty"`
	// What caused the transition, e.g. admitted or word-mastered
	Trigger      string `json:"trigger,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WordEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case wordevent.FieldID, wordevent.FieldSequence, wordevent.FieldWordMasteryID:
			values[i] = new(sql.NullInt64)
		case wordevent.FieldSessionID, wordevent.FieldWordText, wordevent.FieldFromStatus, wordevent.FieldToStatus, wordevent.FieldTrigger:
			values[i] = new(sql.NullString)
		case wordevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WordEvent fields.
func (we *WordEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case wordevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			we.ID = int(value.Int64)
		case wordevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				we.Sequence = value.Int64
			}
		case wordevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				we.Timestamp = value.Time
			}
		case wordevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				we.SessionID = value.String
			}
		case wordevent.FieldWordMasteryID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field word_mastery_id", values[i])
			} else if value.Valid {
				we.WordMasteryID = value.Int64
			}
		case wordevent.FieldWordText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_text", values[i])
			} else if value.Valid {
				we.WordText = value.String
			}
		case wordevent.FieldFromStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field from_status", values[i])
			} else if value.Valid {
				we.FromStatus = value.String
			}
		case wordevent.FieldToStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field to_status", values[i])
			} else if value.Valid {
				we.ToStatus = value.String
			}
		case wordevent.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				we.Trigger = value.String
			}
		default:
			we.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WordEvent.
// This includes values selected through modifiers, order, etc.
func (we *WordEvent) Value(name string) (ent.Value, error) {
	return we.selectValues.Get(name)
}

// Update returns a builder for updating this WordEvent.
// Note that you need to call WordEvent.Unwrap() before calling this method if this WordEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (we *WordEvent) Update() *WordEventUpdateOne {
	return NewWordEventClient(we.config).UpdateOne(we)
}

// Unwrap unwraps the WordEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (we *WordEvent) Unwrap() *WordEvent {
	_tx, ok := we.config.driver.(*txDriver)
	if !ok {
		panic("ent: WordEvent is not a transactional entity")
	}
	we.config.driver = _tx.drv
	return we
}

// String implements the fmt.Stringer.
func (we *WordEvent) String() string {
	var builder strings.Builder
	builder.WriteString("WordEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", we.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", we.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(we.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(we.SessionID)
	builder.WriteString(", ")
	builder.WriteString("word_mastery_id=")
	builder.WriteString(fmt.Sprintf("%v", we.WordMasteryID))
	builder.WriteString(", ")
	builder.WriteString("word_text=")
	builder.WriteString(we.WordText)
	builder.WriteString(", ")
	builder.WriteString("from_status=")
	builder.WriteString(we.FromStatus)
	builder.WriteString(", ")
	builder.WriteString("to_status=")
	builder.WriteString(we.ToStatus)
	builder.WriteString(", ")
	builder.WriteString("trigger=")
	builder.WriteString(we.Trigger)
	builder.WriteByte(')')
	return builder.String()
}

// WordEvents is a parsable slice of WordEvent.
type WordEvents []*WordEvent
