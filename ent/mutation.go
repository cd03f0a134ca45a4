// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/wordwave/ent/answerevent"
	"github.com/abhisek/wordwave/ent/predicate"
	"github.com/abhisek/wordwave/ent/sessionevent"
	"github.com/abhisek/wordwave/ent/wordevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAnswerEvent  = "AnswerEvent"
	TypeSessionEvent = "SessionEvent"
	TypeWordEvent    = "WordEvent"
)

// AnswerEventMutation represents an operation that mutates the AnswerEvent nodes in the graph.
type AnswerEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	session_id         *string
	word_mastery_id    *int64
	addword_mastery_id *int64
	word_text          *string
	stage              *int
	addstage           *int
	question_type      *string
	student_answer     *string
	correct_answer     *string
	correct            *bool
	almost             *bool
	time_ms            *int
	addtime_ms         *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*AnswerEvent, error)
	predicates         []predicate.AnswerEvent
}

var _ ent.Mutation = (*AnswerEventMutation)(nil)

// answereventOption allows management of the mutation configuration using functional options.
type answereventOption func(*AnswerEventMutation)

// newAnswerEventMutation creates new mutation for the AnswerEvent entity.
func newAnswerEventMutation(c config, op Op, opts ...answereventOption) *AnswerEventMutation {
	m := &AnswerEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAnswerEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnswerEventID sets the ID field of the mutation.
func withAnswerEventID(id int) answereventOption {
	return func(m *AnswerEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AnswerEvent
		)
		m.oldValue = func(ctx context.Context) (*AnswerEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AnswerEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnswerEvent sets the old AnswerEvent of the mutation.
func withAnswerEvent(node *AnswerEvent) answereventOption {
	return func(m *AnswerEventMutation) {
		m.oldValue = func(context.Context) (*AnswerEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnswerEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnswerEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnswerEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnswerEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AnswerEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AnswerEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AnswerEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AnswerEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AnswerEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AnswerEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AnswerEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AnswerEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AnswerEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *AnswerEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AnswerEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AnswerEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (m *AnswerEventMutation) SetWordMasteryID(i int64) {
	m.word_mastery_id = &i
	m.addword_mastery_id = nil
}

// WordMasteryID returns the value of the "word_mastery_id" field in the mutation.
func (m *AnswerEventMutation) WordMasteryID() (r int64, exists bool) {
	v := m.word_mastery_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWordMasteryID returns the old "word_mastery_id" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldWordMasteryID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordMasteryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordMasteryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordMasteryID: %w", err)
	}
	return oldValue.WordMasteryID, nil
}

// AddWordMasteryID adds i to the "word_mastery_id" field.
func (m *AnswerEventMutation) AddWordMasteryID(i int64) {
	if m.addword_mastery_id != nil {
		*m.addword_mastery_id += i
	} else {
		m.addword_mastery_id = &i
	}
}

// AddedWordMasteryID returns the value that was added to the "word_mastery_id" field in this mutation.
func (m *AnswerEventMutation) AddedWordMasteryID() (r int64, exists bool) {
	v := m.addword_mastery_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordMasteryID resets all changes to the "word_mastery_id" field.
func (m *AnswerEventMutation) ResetWordMasteryID() {
	m.word_mastery_id = nil
	m.addword_mastery_id = nil
}

// SetWordText sets the "word_text" field.
func (m *AnswerEventMutation) SetWordText(s string) {
	m.word_text = &s
}

// WordText returns the value of the "word_text" field in the mutation.
func (m *AnswerEventMutation) WordText() (r string, exists bool) {
	v := m.word_text
	if v == nil {
		return
	}
	return *v, true
}

// OldWordText returns the old "word_text" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldWordText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordText: %w", err)
	}
	return oldValue.WordText, nil
}

// ResetWordText resets all changes to the "word_text" field.
func (m *AnswerEventMutation) ResetWordText() {
	m.word_text = nil
}

// SetStage sets the "stage" field.
func (m *AnswerEventMutation) SetStage(i int) {
	m.stage = &i
	m.addstage = nil
}

// Stage returns the value of the "stage" field in the mutation.
func (m *AnswerEventMutation) Stage() (r int, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldStage(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// AddStage adds i to the "stage" field.
func (m *AnswerEventMutation) AddStage(i int) {
	if m.addstage != nil {
		*m.addstage += i
	} else {
		m.addstage = &i
	}
}

// AddedStage returns the value that was added to the "stage" field in this mutation.
func (m *AnswerEventMutation) AddedStage() (r int, exists bool) {
	v := m.addstage
	if v == nil {
		return
	}
	return *v, true
}

// ResetStage resets all changes to the "stage" field.
func (m *AnswerEventMutation) ResetStage() {
	m.stage = nil
	m.addstage = nil
}

// SetQuestionType sets the "question_type" field.
func (m *AnswerEventMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *AnswerEventMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *AnswerEventMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetStudentAnswer sets the "student_answer" field.
func (m *AnswerEventMutation) SetStudentAnswer(s string) {
	m.student_answer = &s
}

// StudentAnswer returns the value of the "student_answer" field in the mutation.
func (m *AnswerEventMutation) StudentAnswer() (r string, exists bool) {
	v := m.student_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentAnswer returns the old "student_answer" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldStudentAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentAnswer: %w", err)
	}
	return oldValue.StudentAnswer, nil
}

// ResetStudentAnswer resets all changes to the "student_answer" field.
func (m *AnswerEventMutation) ResetStudentAnswer() {
	m.student_answer = nil
}

// SetCorrectAnswer sets the "correct_answer" field.
func (m *AnswerEventMutation) SetCorrectAnswer(s string) {
	m.correct_answer = &s
}

// CorrectAnswer returns the value of the "correct_answer" field in the mutation.
func (m *AnswerEventMutation) CorrectAnswer() (r string, exists bool) {
	v := m.correct_answer
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswer returns the old "correct_answer" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrectAnswer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswer: %w", err)
	}
	return oldValue.CorrectAnswer, nil
}

// ResetCorrectAnswer resets all changes to the "correct_answer" field.
func (m *AnswerEventMutation) ResetCorrectAnswer() {
	m.correct_answer = nil
}

// SetCorrect sets the "correct" field.
func (m *AnswerEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AnswerEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AnswerEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetAlmost sets the "almost" field.
func (m *AnswerEventMutation) SetAlmost(b bool) {
	m.almost = &b
}

// Almost returns the value of the "almost" field in the mutation.
func (m *AnswerEventMutation) Almost() (r bool, exists bool) {
	v := m.almost
	if v == nil {
		return
	}
	return *v, true
}

// OldAlmost returns the old "almost" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldAlmost(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlmost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlmost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlmost: %w", err)
	}
	return oldValue.Almost, nil
}

// ResetAlmost resets all changes to the "almost" field.
func (m *AnswerEventMutation) ResetAlmost() {
	m.almost = nil
}

// SetTimeMs sets the "time_ms" field.
func (m *AnswerEventMutation) SetTimeMs(i int) {
	m.time_ms = &i
	m.addtime_ms = nil
}

// TimeMs returns the value of the "time_ms" field in the mutation.
func (m *AnswerEventMutation) TimeMs() (r int, exists bool) {
	v := m.time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeMs returns the old "time_ms" field's value of the AnswerEvent entity.
// If the AnswerEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnswerEventMutation) OldTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeMs: %w", err)
	}
	return oldValue.TimeMs, nil
}

// AddTimeMs adds i to the "time_ms" field.
func (m *AnswerEventMutation) AddTimeMs(i int) {
	if m.addtime_ms != nil {
		*m.addtime_ms += i
	} else {
		m.addtime_ms = &i
	}
}

// AddedTimeMs returns the value that was added to the "time_ms" field in this mutation.
func (m *AnswerEventMutation) AddedTimeMs() (r int, exists bool) {
	v := m.addtime_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeMs resets all changes to the "time_ms" field.
func (m *AnswerEventMutation) ResetTimeMs() {
	m.time_ms = nil
	m.addtime_ms = nil
}

// Where appends a list predicates to the AnswerEventMutation builder.
func (m *AnswerEventMutation) Where(ps ...predicate.AnswerEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnswerEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnswerEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AnswerEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnswerEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnswerEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AnswerEvent).
func (m *AnswerEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnswerEventMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.sequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, answerevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, answerevent.FieldSessionID)
	}
	if m.word_mastery_id != nil {
		fields = append(fields, answerevent.FieldWordMasteryID)
	}
	if m.word_text != nil {
		fields = append(fields, answerevent.FieldWordText)
	}
	if m.stage != nil {
		fields = append(fields, answerevent.FieldStage)
	}
	if m.question_type != nil {
		fields = append(fields, answerevent.FieldQuestionType)
	}
	if m.student_answer != nil {
		fields = append(fields, answerevent.FieldStudentAnswer)
	}
	if m.correct_answer != nil {
		fields = append(fields, answerevent.FieldCorrectAnswer)
	}
	if m.correct != nil {
		fields = append(fields, answerevent.FieldCorrect)
	}
	if m.almost != nil {
		fields = append(fields, answerevent.FieldAlmost)
	}
	if m.time_ms != nil {
		fields = append(fields, answerevent.FieldTimeMs)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnswerEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.Sequence()
	case answerevent.FieldTimestamp:
		return m.Timestamp()
	case answerevent.FieldSessionID:
		return m.SessionID()
	case answerevent.FieldWordMasteryID:
		return m.WordMasteryID()
	case answerevent.FieldWordText:
		return m.WordText()
	case answerevent.FieldStage:
		return m.Stage()
	case answerevent.FieldQuestionType:
		return m.QuestionType()
	case answerevent.FieldStudentAnswer:
		return m.StudentAnswer()
	case answerevent.FieldCorrectAnswer:
		return m.CorrectAnswer()
	case answerevent.FieldCorrect:
		return m.Correct()
	case answerevent.FieldAlmost:
		return m.Almost()
	case answerevent.FieldTimeMs:
		return m.TimeMs()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnswerEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case answerevent.FieldSequence:
		return m.OldSequence(ctx)
	case answerevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case answerevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case answerevent.FieldWordMasteryID:
		return m.OldWordMasteryID(ctx)
	case answerevent.FieldWordText:
		return m.OldWordText(ctx)
	case answerevent.FieldStage:
		return m.OldStage(ctx)
	case answerevent.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case answerevent.FieldStudentAnswer:
		return m.OldStudentAnswer(ctx)
	case answerevent.FieldCorrectAnswer:
		return m.OldCorrectAnswer(ctx)
	case answerevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case answerevent.FieldAlmost:
		return m.OldAlmost(ctx)
	case answerevent.FieldTimeMs:
		return m.OldTimeMs(ctx)
	}
	return nil, fmt.Errorf("unknown AnswerEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case answerevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case answerevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case answerevent.FieldWordMasteryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordMasteryID(v)
		return nil
	case answerevent.FieldWordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordText(v)
		return nil
	case answerevent.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case answerevent.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case answerevent.FieldStudentAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentAnswer(v)
		return nil
	case answerevent.FieldCorrectAnswer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswer(v)
		return nil
	case answerevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case answerevent.FieldAlmost:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlmost(v)
		return nil
	case answerevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnswerEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, answerevent.FieldSequence)
	}
	if m.addword_mastery_id != nil {
		fields = append(fields, answerevent.FieldWordMasteryID)
	}
	if m.addstage != nil {
		fields = append(fields, answerevent.FieldStage)
	}
	if m.addtime_ms != nil {
		fields = append(fields, answerevent.FieldTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnswerEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case answerevent.FieldSequence:
		return m.AddedSequence()
	case answerevent.FieldWordMasteryID:
		return m.AddedWordMasteryID()
	case answerevent.FieldStage:
		return m.AddedStage()
	case answerevent.FieldTimeMs:
		return m.AddedTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnswerEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case answerevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case answerevent.FieldWordMasteryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordMasteryID(v)
		return nil
	case answerevent.FieldStage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStage(v)
		return nil
	case answerevent.FieldTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnswerEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnswerEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnswerEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AnswerEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnswerEventMutation) ResetField(name string) error {
	switch name {
	case answerevent.FieldSequence:
		m.ResetSequence()
		return nil
	case answerevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case answerevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case answerevent.FieldWordMasteryID:
		m.ResetWordMasteryID()
		return nil
	case answerevent.FieldWordText:
		m.ResetWordText()
		return nil
	case answerevent.FieldStage:
		m.ResetStage()
		return nil
	case answerevent.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case answerevent.FieldStudentAnswer:
		m.ResetStudentAnswer()
		return nil
	case answerevent.FieldCorrectAnswer:
		m.ResetCorrectAnswer()
		return nil
	case answerevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case answerevent.FieldAlmost:
		m.ResetAlmost()
		return nil
	case answerevent.FieldTimeMs:
		m.ResetTimeMs()
		return nil
	}
	return fmt.Errorf("unknown AnswerEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnswerEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnswerEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnswerEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnswerEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnswerEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnswerEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnswerEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnswerEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AnswerEvent edge %s", name)
}

// SessionEventMutation represents an operation that mutates the SessionEvent nodes in the graph.
type SessionEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	session_id         *string
	test_code          *string
	action             *string
	total_words        *int
	addtotal_words     *int
	total_answered     *int
	addtotal_answered  *int
	correct_answers    *int
	addcorrect_answers *int
	mastered_count     *int
	addmastered_count  *int
	skipped_count      *int
	addskipped_count   *int
	best_combo         *int
	addbest_combo      *int
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*SessionEvent, error)
	predicates         []predicate.SessionEvent
}

var _ ent.Mutation = (*SessionEventMutation)(nil)

// sessioneventOption allows management of the mutation configuration using functional options.
type sessioneventOption func(*SessionEventMutation)

// newSessionEventMutation creates new mutation for the SessionEvent entity.
func newSessionEventMutation(c config, op Op, opts ...sessioneventOption) *SessionEventMutation {
	m := &SessionEventMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionEventID sets the ID field of the mutation.
func withSessionEventID(id int) sessioneventOption {
	return func(m *SessionEventMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionEvent
		)
		m.oldValue = func(ctx context.Context) (*SessionEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionEvent sets the old SessionEvent of the mutation.
func withSessionEvent(node *SessionEvent) sessioneventOption {
	return func(m *SessionEventMutation) {
		m.oldValue = func(context.Context) (*SessionEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *SessionEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *SessionEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *SessionEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *SessionEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *SessionEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *SessionEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *SessionEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *SessionEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *SessionEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTestCode sets the "test_code" field.
func (m *SessionEventMutation) SetTestCode(s string) {
	m.test_code = &s
}

// TestCode returns the value of the "test_code" field in the mutation.
func (m *SessionEventMutation) TestCode() (r string, exists bool) {
	v := m.test_code
	if v == nil {
		return
	}
	return *v, true
}

// OldTestCode returns the old "test_code" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTestCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestCode: %w", err)
	}
	return oldValue.TestCode, nil
}

// ResetTestCode resets all changes to the "test_code" field.
func (m *SessionEventMutation) ResetTestCode() {
	m.test_code = nil
}

// SetAction sets the "action" field.
func (m *SessionEventMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *SessionEventMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *SessionEventMutation) ResetAction() {
	m.action = nil
}

// SetTotalWords sets the "total_words" field.
func (m *SessionEventMutation) SetTotalWords(i int) {
	m.total_words = &i
	m.addtotal_words = nil
}

// TotalWords returns the value of the "total_words" field in the mutation.
func (m *SessionEventMutation) TotalWords() (r int, exists bool) {
	v := m.total_words
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalWords returns the old "total_words" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTotalWords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalWords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalWords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalWords: %w", err)
	}
	return oldValue.TotalWords, nil
}

// AddTotalWords adds i to the "total_words" field.
func (m *SessionEventMutation) AddTotalWords(i int) {
	if m.addtotal_words != nil {
		*m.addtotal_words += i
	} else {
		m.addtotal_words = &i
	}
}

// AddedTotalWords returns the value that was added to the "total_words" field in this mutation.
func (m *SessionEventMutation) AddedTotalWords() (r int, exists bool) {
	v := m.addtotal_words
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalWords resets all changes to the "total_words" field.
func (m *SessionEventMutation) ResetTotalWords() {
	m.total_words = nil
	m.addtotal_words = nil
}

// SetTotalAnswered sets the "total_answered" field.
func (m *SessionEventMutation) SetTotalAnswered(i int) {
	m.total_answered = &i
	m.addtotal_answered = nil
}

// TotalAnswered returns the value of the "total_answered" field in the mutation.
func (m *SessionEventMutation) TotalAnswered() (r int, exists bool) {
	v := m.total_answered
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAnswered returns the old "total_answered" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldTotalAnswered(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAnswered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAnswered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAnswered: %w", err)
	}
	return oldValue.TotalAnswered, nil
}

// AddTotalAnswered adds i to the "total_answered" field.
func (m *SessionEventMutation) AddTotalAnswered(i int) {
	if m.addtotal_answered != nil {
		*m.addtotal_answered += i
	} else {
		m.addtotal_answered = &i
	}
}

// AddedTotalAnswered returns the value that was added to the "total_answered" field in this mutation.
func (m *SessionEventMutation) AddedTotalAnswered() (r int, exists bool) {
	v := m.addtotal_answered
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAnswered resets all changes to the "total_answered" field.
func (m *SessionEventMutation) ResetTotalAnswered() {
	m.total_answered = nil
	m.addtotal_answered = nil
}

// SetCorrectAnswers sets the "correct_answers" field.
func (m *SessionEventMutation) SetCorrectAnswers(i int) {
	m.correct_answers = &i
	m.addcorrect_answers = nil
}

// CorrectAnswers returns the value of the "correct_answers" field in the mutation.
func (m *SessionEventMutation) CorrectAnswers() (r int, exists bool) {
	v := m.correct_answers
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrectAnswers returns the old "correct_answers" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldCorrectAnswers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrectAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrectAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrectAnswers: %w", err)
	}
	return oldValue.CorrectAnswers, nil
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (m *SessionEventMutation) AddCorrectAnswers(i int) {
	if m.addcorrect_answers != nil {
		*m.addcorrect_answers += i
	} else {
		m.addcorrect_answers = &i
	}
}

// AddedCorrectAnswers returns the value that was added to the "correct_answers" field in this mutation.
func (m *SessionEventMutation) AddedCorrectAnswers() (r int, exists bool) {
	v := m.addcorrect_answers
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrectAnswers resets all changes to the "correct_answers" field.
func (m *SessionEventMutation) ResetCorrectAnswers() {
	m.correct_answers = nil
	m.addcorrect_answers = nil
}

// SetMasteredCount sets the "mastered_count" field.
func (m *SessionEventMutation) SetMasteredCount(i int) {
	m.mastered_count = &i
	m.addmastered_count = nil
}

// MasteredCount returns the value of the "mastered_count" field in the mutation.
func (m *SessionEventMutation) MasteredCount() (r int, exists bool) {
	v := m.mastered_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMasteredCount returns the old "mastered_count" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldMasteredCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasteredCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasteredCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasteredCount: %w", err)
	}
	return oldValue.MasteredCount, nil
}

// AddMasteredCount adds i to the "mastered_count" field.
func (m *SessionEventMutation) AddMasteredCount(i int) {
	if m.addmastered_count != nil {
		*m.addmastered_count += i
	} else {
		m.addmastered_count = &i
	}
}

// AddedMasteredCount returns the value that was added to the "mastered_count" field in this mutation.
func (m *SessionEventMutation) AddedMasteredCount() (r int, exists bool) {
	v := m.addmastered_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMasteredCount resets all changes to the "mastered_count" field.
func (m *SessionEventMutation) ResetMasteredCount() {
	m.mastered_count = nil
	m.addmastered_count = nil
}

// SetSkippedCount sets the "skipped_count" field.
func (m *SessionEventMutation) SetSkippedCount(i int) {
	m.skipped_count = &i
	m.addskipped_count = nil
}

// SkippedCount returns the value of the "skipped_count" field in the mutation.
func (m *SessionEventMutation) SkippedCount() (r int, exists bool) {
	v := m.skipped_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSkippedCount returns the old "skipped_count" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldSkippedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkippedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkippedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkippedCount: %w", err)
	}
	return oldValue.SkippedCount, nil
}

// AddSkippedCount adds i to the "skipped_count" field.
func (m *SessionEventMutation) AddSkippedCount(i int) {
	if m.addskipped_count != nil {
		*m.addskipped_count += i
	} else {
		m.addskipped_count = &i
	}
}

// AddedSkippedCount returns the value that was added to the "skipped_count" field in this mutation.
func (m *SessionEventMutation) AddedSkippedCount() (r int, exists bool) {
	v := m.addskipped_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkippedCount resets all changes to the "skipped_count" field.
func (m *SessionEventMutation) ResetSkippedCount() {
	m.skipped_count = nil
	m.addskipped_count = nil
}

// SetBestCombo sets the "best_combo" field.
func (m *SessionEventMutation) SetBestCombo(i int) {
	m.best_combo = &i
	m.addbest_combo = nil
}

// BestCombo returns the value of the "best_combo" field in the mutation.
func (m *SessionEventMutation) BestCombo() (r int, exists bool) {
	v := m.best_combo
	if v == nil {
		return
	}
	return *v, true
}

// OldBestCombo returns the old "best_combo" field's value of the SessionEvent entity.
// If the SessionEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionEventMutation) OldBestCombo(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestCombo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestCombo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestCombo: %w", err)
	}
	return oldValue.BestCombo, nil
}

// AddBestCombo adds i to the "best_combo" field.
func (m *SessionEventMutation) AddBestCombo(i int) {
	if m.addbest_combo != nil {
		*m.addbest_combo += i
	} else {
		m.addbest_combo = &i
	}
}

// AddedBestCombo returns the value that was added to the "best_combo" field in this mutation.
func (m *SessionEventMutation) AddedBestCombo() (r int, exists bool) {
	v := m.addbest_combo
	if v == nil {
		return
	}
	return *v, true
}

// ResetBestCombo resets all changes to the "best_combo" field.
func (m *SessionEventMutation) ResetBestCombo() {
	m.best_combo = nil
	m.addbest_combo = nil
}

// Where appends a list predicates to the SessionEventMutation builder.
func (m *SessionEventMutation) Where(ps ...predicate.SessionEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionEvent).
func (m *SessionEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionEventMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.sequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, sessionevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, sessionevent.FieldSessionID)
	}
	if m.test_code != nil {
		fields = append(fields, sessionevent.FieldTestCode)
	}
	if m.action != nil {
		fields = append(fields, sessionevent.FieldAction)
	}
	if m.total_words != nil {
		fields = append(fields, sessionevent.FieldTotalWords)
	}
	if m.total_answered != nil {
		fields = append(fields, sessionevent.FieldTotalAnswered)
	}
	if m.correct_answers != nil {
		fields = append(fields, sessionevent.FieldCorrectAnswers)
	}
	if m.mastered_count != nil {
		fields = append(fields, sessionevent.FieldMasteredCount)
	}
	if m.skipped_count != nil {
		fields = append(fields, sessionevent.FieldSkippedCount)
	}
	if m.best_combo != nil {
		fields = append(fields, sessionevent.FieldBestCombo)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.Sequence()
	case sessionevent.FieldTimestamp:
		return m.Timestamp()
	case sessionevent.FieldSessionID:
		return m.SessionID()
	case sessionevent.FieldTestCode:
		return m.TestCode()
	case sessionevent.FieldAction:
		return m.Action()
	case sessionevent.FieldTotalWords:
		return m.TotalWords()
	case sessionevent.FieldTotalAnswered:
		return m.TotalAnswered()
	case sessionevent.FieldCorrectAnswers:
		return m.CorrectAnswers()
	case sessionevent.FieldMasteredCount:
		return m.MasteredCount()
	case sessionevent.FieldSkippedCount:
		return m.SkippedCount()
	case sessionevent.FieldBestCombo:
		return m.BestCombo()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionevent.FieldSequence:
		return m.OldSequence(ctx)
	case sessionevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case sessionevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionevent.FieldTestCode:
		return m.OldTestCode(ctx)
	case sessionevent.FieldAction:
		return m.OldAction(ctx)
	case sessionevent.FieldTotalWords:
		return m.OldTotalWords(ctx)
	case sessionevent.FieldTotalAnswered:
		return m.OldTotalAnswered(ctx)
	case sessionevent.FieldCorrectAnswers:
		return m.OldCorrectAnswers(ctx)
	case sessionevent.FieldMasteredCount:
		return m.OldMasteredCount(ctx)
	case sessionevent.FieldSkippedCount:
		return m.OldSkippedCount(ctx)
	case sessionevent.FieldBestCombo:
		return m.OldBestCombo(ctx)
	}
	return nil, fmt.Errorf("unknown SessionEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case sessionevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case sessionevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionevent.FieldTestCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestCode(v)
		return nil
	case sessionevent.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case sessionevent.FieldTotalWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalWords(v)
		return nil
	case sessionevent.FieldTotalAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAnswered(v)
		return nil
	case sessionevent.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrectAnswers(v)
		return nil
	case sessionevent.FieldMasteredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasteredCount(v)
		return nil
	case sessionevent.FieldSkippedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkippedCount(v)
		return nil
	case sessionevent.FieldBestCombo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestCombo(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, sessionevent.FieldSequence)
	}
	if m.addtotal_words != nil {
		fields = append(fields, sessionevent.FieldTotalWords)
	}
	if m.addtotal_answered != nil {
		fields = append(fields, sessionevent.FieldTotalAnswered)
	}
	if m.addcorrect_answers != nil {
		fields = append(fields, sessionevent.FieldCorrectAnswers)
	}
	if m.addmastered_count != nil {
		fields = append(fields, sessionevent.FieldMasteredCount)
	}
	if m.addskipped_count != nil {
		fields = append(fields, sessionevent.FieldSkippedCount)
	}
	if m.addbest_combo != nil {
		fields = append(fields, sessionevent.FieldBestCombo)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionevent.FieldSequence:
		return m.AddedSequence()
	case sessionevent.FieldTotalWords:
		return m.AddedTotalWords()
	case sessionevent.FieldTotalAnswered:
		return m.AddedTotalAnswered()
	case sessionevent.FieldCorrectAnswers:
		return m.AddedCorrectAnswers()
	case sessionevent.FieldMasteredCount:
		return m.AddedMasteredCount()
	case sessionevent.FieldSkippedCount:
		return m.AddedSkippedCount()
	case sessionevent.FieldBestCombo:
		return m.AddedBestCombo()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case sessionevent.FieldTotalWords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalWords(v)
		return nil
	case sessionevent.FieldTotalAnswered:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAnswered(v)
		return nil
	case sessionevent.FieldCorrectAnswers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrectAnswers(v)
		return nil
	case sessionevent.FieldMasteredCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMasteredCount(v)
		return nil
	case sessionevent.FieldSkippedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkippedCount(v)
		return nil
	case sessionevent.FieldBestCombo:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestCombo(v)
		return nil
	}
	return fmt.Errorf("unknown SessionEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SessionEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionEventMutation) ResetField(name string) error {
	switch name {
	case sessionevent.FieldSequence:
		m.ResetSequence()
		return nil
	case sessionevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case sessionevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionevent.FieldTestCode:
		m.ResetTestCode()
		return nil
	case sessionevent.FieldAction:
		m.ResetAction()
		return nil
	case sessionevent.FieldTotalWords:
		m.ResetTotalWords()
		return nil
	case sessionevent.FieldTotalAnswered:
		m.ResetTotalAnswered()
		return nil
	case sessionevent.FieldCorrectAnswers:
		m.ResetCorrectAnswers()
		return nil
	case sessionevent.FieldMasteredCount:
		m.ResetMasteredCount()
		return nil
	case sessionevent.FieldSkippedCount:
		m.ResetSkippedCount()
		return nil
	case sessionevent.FieldBestCombo:
		m.ResetBestCombo()
		return nil
	}
	return fmt.Errorf("unknown SessionEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionEvent edge %s", name)
}

// WordEventMutation represents an operation that mutates the WordEvent nodes in the graph.
type WordEventMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	sequence           *int64
	addsequence        *int64
	timestamp          *time.Time
	session_id         *string
	word_mastery_id    *int64
	addword_mastery_id *int64
	word_text          *string
	from_status        *string
	to_status          *string
	trigger            *string
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*WordEvent, error)
	predicates         []predicate.WordEvent
}

var _ ent.Mutation = (*WordEventMutation)(nil)

// wordeventOption allows management of the mutation configuration using functional options.
type wordeventOption func(*WordEventMutation)

// newWordEventMutation creates new mutation for the WordEvent entity.
func newWordEventMutation(c config, op Op, opts ...wordeventOption) *WordEventMutation {
	m := &WordEventMutation{
		config:        c,
		op:            op,
		typ:           TypeWordEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWordEventID sets the ID field of the mutation.
func withWordEventID(id int) wordeventOption {
	return func(m *WordEventMutation) {
		var (
			err   error
			once  sync.Once
			value *WordEvent
		)
		m.oldValue = func(ctx context.Context) (*WordEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WordEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWordEvent sets the old WordEvent of the mutation.
func withWordEvent(node *WordEvent) wordeventOption {
	return func(m *WordEventMutation) {
		m.oldValue = func(context.Context) (*WordEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WordEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WordEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WordEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WordEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WordEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *WordEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *WordEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *WordEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *WordEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *WordEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *WordEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *WordEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *WordEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetSessionID sets the "session_id" field.
func (m *WordEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *WordEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *WordEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (m *WordEventMutation) SetWordMasteryID(i int64) {
	m.word_mastery_id = &i
	m.addword_mastery_id = nil
}

// WordMasteryID returns the value of the "word_mastery_id" field in the mutation.
func (m *WordEventMutation) WordMasteryID() (r int64, exists bool) {
	v := m.word_mastery_id
	if v == nil {
		return
	}
	return *v, true
}

// OldWordMasteryID returns the old "word_mastery_id" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldWordMasteryID(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordMasteryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordMasteryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordMasteryID: %w", err)
	}
	return oldValue.WordMasteryID, nil
}

// AddWordMasteryID adds i to the "word_mastery_id" field.
func (m *WordEventMutation) AddWordMasteryID(i int64) {
	if m.addword_mastery_id != nil {
		*m.addword_mastery_id += i
	} else {
		m.addword_mastery_id = &i
	}
}

// AddedWordMasteryID returns the value that was added to the "word_mastery_id" field in this mutation.
func (m *WordEventMutation) AddedWordMasteryID() (r int64, exists bool) {
	v := m.addword_mastery_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetWordMasteryID resets all changes to the "word_mastery_id" field.
func (m *WordEventMutation) ResetWordMasteryID() {
	m.word_mastery_id = nil
	m.addword_mastery_id = nil
}

// SetWordText sets the "word_text" field.
func (m *WordEventMutation) SetWordText(s string) {
	m.word_text = &s
}

// WordText returns the value of the "word_text" field in the mutation.
func (m *WordEventMutation) WordText() (r string, exists bool) {
	v := m.word_text
	if v == nil {
		return
	}
	return *v, true
}

// OldWordText returns the old "word_text" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldWordText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWordText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWordText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWordText: %w", err)
	}
	return oldValue.WordText, nil
}

// ResetWordText resets all changes to the "word_text" field.
func (m *WordEventMutation) ResetWordText() {
	m.word_text = nil
}

// SetFromStatus sets the "from_status" field.
func (m *WordEventMutation) SetFromStatus(s string) {
	m.from_status = &s
}

// FromStatus returns the value of the "from_status" field in the mutation.
func (m *WordEventMutation) FromStatus() (r string, exists bool) {
	v := m.from_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFromStatus returns the old "from_status" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldFromStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFromStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFromStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFromStatus: %w", err)
	}
	return oldValue.FromStatus, nil
}

// ResetFromStatus resets all changes to the "from_status" field.
func (m *WordEventMutation) ResetFromStatus() {
	m.from_status = nil
}

// SetToStatus sets the "to_status" field.
func (m *WordEventMutation) SetToStatus(s string) {
	m.to_status = &s
}

// ToStatus returns the value of the "to_status" field in the mutation.
func (m *WordEventMutation) ToStatus() (r string, exists bool) {
	v := m.to_status
	if v == nil {
		return
	}
	return *v, true
}

// OldToStatus returns the old "to_status" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldToStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToStatus: %w", err)
	}
	return oldValue.ToStatus, nil
}

// ResetToStatus resets all changes to the "to_status" field.
func (m *WordEventMutation) ResetToStatus() {
	m.to_status = nil
}

// SetTrigger sets the "trigger" field.
func (m *WordEventMutation) SetTrigger(s string) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *WordEventMutation) Trigger() (r string, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the WordEvent entity.
// If the WordEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WordEventMutation) OldTrigger(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *WordEventMutation) ResetTrigger() {
	m.trigger = nil
}

// Where appends a list predicates to the WordEventMutation builder.
func (m *WordEventMutation) Where(ps ...predicate.WordEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WordEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WordEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WordEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WordEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WordEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WordEvent).
func (m *WordEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WordEventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.sequence != nil {
		fields = append(fields, wordevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, wordevent.FieldTimestamp)
	}
	if m.session_id != nil {
		fields = append(fields, wordevent.FieldSessionID)
	}
	if m.word_mastery_id != nil {
		fields = append(fields, wordevent.FieldWordMasteryID)
	}
	if m.word_text != nil {
		fields = append(fields, wordevent.FieldWordText)
	}
	if m.from_status != nil {
		fields = append(fields, wordevent.FieldFromStatus)
	}
	if m.to_status != nil {
		fields = append(fields, wordevent.FieldToStatus)
	}
	if m.trigger != nil {
		fields = append(fields, wordevent.FieldTrigger)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WordEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wordevent.FieldSequence:
		return m.Sequence()
	case wordevent.FieldTimestamp:
		return m.Timestamp()
	case wordevent.FieldSessionID:
		return m.SessionID()
	case wordevent.FieldWordMasteryID:
		return m.WordMasteryID()
	case wordevent.FieldWordText:
		return m.WordText()
	case wordevent.FieldFromStatus:
		return m.FromStatus()
	case wordevent.FieldToStatus:
		return m.ToStatus()
	case wordevent.FieldTrigger:
		return m.Trigger()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WordEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wordevent.FieldSequence:
		return m.OldSequence(ctx)
	case wordevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case wordevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case wordevent.FieldWordMasteryID:
		return m.OldWordMasteryID(ctx)
	case wordevent.FieldWordText:
		return m.OldWordText(ctx)
	case wordevent.FieldFromStatus:
		return m.OldFromStatus(ctx)
	case wordevent.FieldToStatus:
		return m.OldToStatus(ctx)
	case wordevent.FieldTrigger:
		return m.OldTrigger(ctx)
	}
	return nil, fmt.Errorf("unknown WordEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wordevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case wordevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case wordevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case wordevent.FieldWordMasteryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordMasteryID(v)
		return nil
	case wordevent.FieldWordText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWordText(v)
		return nil
	case wordevent.FieldFromStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFromStatus(v)
		return nil
	case wordevent.FieldToStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToStatus(v)
		return nil
	case wordevent.FieldTrigger:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	}
	return fmt.Errorf("unknown WordEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WordEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, wordevent.FieldSequence)
	}
	if m.addword_mastery_id != nil {
		fields = append(fields, wordevent.FieldWordMasteryID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WordEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wordevent.FieldSequence:
		return m.AddedSequence()
	case wordevent.FieldWordMasteryID:
		return m.AddedWordMasteryID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WordEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wordevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case wordevent.FieldWordMasteryID:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWordMasteryID(v)
		return nil
	}
	return fmt.Errorf("unknown WordEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WordEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WordEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WordEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown WordEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WordEventMutation) ResetField(name string) error {
	switch name {
	case wordevent.FieldSequence:
		m.ResetSequence()
		return nil
	case wordevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case wordevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case wordevent.FieldWordMasteryID:
		m.ResetWordMasteryID()
		return nil
	case wordevent.FieldWordText:
		m.ResetWordText()
		return nil
	case wordevent.FieldFromStatus:
		m.ResetFromStatus()
		return nil
	case wordevent.FieldToStatus:
		m.ResetToStatus()
		return nil
	case wordevent.FieldTrigger:
		m.ResetTrigger()
		return nil
	}
	return fmt.Errorf("unknown WordEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WordEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WordEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WordEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WordEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WordEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WordEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WordEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WordEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WordEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WordEvent edge %s", name)
}
