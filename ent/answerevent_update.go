// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordwave/ent/answerevent"
	"github.com/abhisek/wordwave/ent/predicate"
)

// AnswerEventUpdate is the builder for updating AnswerEvent entities.
type AnswerEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnswerEventMutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeu *AnswerEventUpdate) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AnswerEventUpdate) SetSessionID(s string) *AnswerEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableSessionID(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (aeu *AnswerEventUpdate) SetWordMasteryID(i int64) *AnswerEventUpdate {
	aeu.mutation.ResetWordMasteryID()
	aeu.mutation.SetWordMasteryID(i)
	return aeu
}

// SetNillableWordMasteryID sets the "word_mastery_id" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableWordMasteryID(i *int64) *AnswerEventUpdate {
	if i != nil {
		aeu.SetWordMasteryID(*i)
	}
	return aeu
}

// AddWordMasteryID adds i to the "word_mastery_id" field.
func (aeu *AnswerEventUpdate) AddWordMasteryID(i int64) *AnswerEventUpdate {
	aeu.mutation.AddWordMasteryID(i)
	return aeu
}

// SetWordText sets the "word_text" field.
func (aeu *AnswerEventUpdate) SetWordText(s string) *AnswerEventUpdate {
	aeu.mutation.SetWordText(s)
	return aeu
}

// SetNillableWordText sets the "word_text" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableWordText(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetWordText(*s)
	}
	return aeu
}

// SetStage sets the "stage" field.
func (aeu *AnswerEventUpdate) SetStage(i int) *AnswerEventUpdate {
	aeu.mutation.ResetStage()
	aeu.mutation.SetStage(i)
	return aeu
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableStage(i *int) *AnswerEventUpdate {
	if i != nil {
		aeu.SetStage(*i)
	}
	return aeu
}

// AddStage adds i to the "stage" field.
func (aeu *AnswerEventUpdate) AddStage(i int) *AnswerEventUpdate {
	aeu.mutation.AddStage(i)
	return aeu
}

// SetQuestionType sets the "question_type" field.
func (aeu *AnswerEventUpdate) SetQuestionType(s string) *AnswerEventUpdate {
	aeu.mutation.SetQuestionType(s)
	return aeu
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableQuestionType(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetQuestionType(*s)
	}
	return aeu
}

// SetStudentAnswer sets the "student_answer" field.
func (aeu *AnswerEventUpdate) SetStudentAnswer(s string) *AnswerEventUpdate {
	aeu.mutation.SetStudentAnswer(s)
	return aeu
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableStudentAnswer(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetStudentAnswer(*s)
	}
	return aeu
}

// SetCorrectAnswer sets the "correct_answer" field.
func (aeu *AnswerEventUpdate) SetCorrectAnswer(s string) *AnswerEventUpdate {
	aeu.mutation.SetCorrectAnswer(s)
	return aeu
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableCorrectAnswer(s *string) *AnswerEventUpdate {
	if s != nil {
		aeu.SetCorrectAnswer(*s)
	}
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AnswerEventUpdate) SetCorrect(b bool) *AnswerEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableCorrect(b *bool) *AnswerEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetAlmost sets the "almost" field.
func (aeu *AnswerEventUpdate) SetAlmost(b bool) *AnswerEventUpdate {
	aeu.mutation.SetAlmost(b)
	return aeu
}

// SetNillableAlmost sets the "almost" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableAlmost(b *bool) *AnswerEventUpdate {
	if b != nil {
		aeu.SetAlmost(*b)
	}
	return aeu
}

// SetTimeMs sets the "time_ms" field.
func (aeu *AnswerEventUpdate) SetTimeMs(i int) *AnswerEventUpdate {
	aeu.mutation.ResetTimeMs()
	aeu.mutation.SetTimeMs(i)
	return aeu
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeu *AnswerEventUpdate) SetNillableTimeMs(i *int) *AnswerEventUpdate {
	if i != nil {
		aeu.SetTimeMs(*i)
	}
	return aeu
}

// AddTimeMs adds i to the "time_ms" field.
func (aeu *AnswerEventUpdate) AddTimeMs(i int) *AnswerEventUpdate {
	aeu.mutation.AddTimeMs(i)
	return aeu
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeu *AnswerEventUpdate) Mutation() *AnswerEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AnswerEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AnswerEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AnswerEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AnswerEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AnswerEventUpdate) check() error {
	if v, ok := aeu.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.WordText(); ok {
		if err := answerevent.WordTextValidator(v); err != nil {
			return &ValidationError{Name: "word_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_text": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.CorrectAnswer(); ok {
		if err := answerevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_answer": %w`, err)}
		}
	}
	return nil
}

func (aeu *AnswerEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.WordMasteryID(); ok {
		_spec.SetField(answerevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.AddedWordMasteryID(); ok {
		_spec.AddField(answerevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := aeu.mutation.WordText(); ok {
		_spec.SetField(answerevent.FieldWordText, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Stage(); ok {
		_spec.SetField(answerevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedStage(); ok {
		_spec.AddField(answerevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := aeu.mutation.StudentAnswer(); ok {
		_spec.SetField(answerevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := aeu.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.Almost(); ok {
		_spec.SetField(answerevent.FieldAlmost, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AnswerEventUpdateOne is the builder for updating a single AnswerEvent entity.
type AnswerEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnswerEventMutation
}

// SetSessionID sets the "session_id" field.
func (aeuo *AnswerEventUpdateOne) SetSessionID(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableSessionID(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (aeuo *AnswerEventUpdateOne) SetWordMasteryID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.ResetWordMasteryID()
	aeuo.mutation.SetWordMasteryID(i)
	return aeuo
}

// SetNillableWordMasteryID sets the "word_mastery_id" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableWordMasteryID(i *int64) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetWordMasteryID(*i)
	}
	return aeuo
}

// AddWordMasteryID adds i to the "word_mastery_id" field.
func (aeuo *AnswerEventUpdateOne) AddWordMasteryID(i int64) *AnswerEventUpdateOne {
	aeuo.mutation.AddWordMasteryID(i)
	return aeuo
}

// SetWordText sets the "word_text" field.
func (aeuo *AnswerEventUpdateOne) SetWordText(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetWordText(s)
	return aeuo
}

// SetNillableWordText sets the "word_text" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableWordText(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetWordText(*s)
	}
	return aeuo
}

// SetStage sets the "stage" field.
func (aeuo *AnswerEventUpdateOne) SetStage(i int) *AnswerEventUpdateOne {
	aeuo.mutation.ResetStage()
	aeuo.mutation.SetStage(i)
	return aeuo
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableStage(i *int) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetStage(*i)
	}
	return aeuo
}

// AddStage adds i to the "stage" field.
func (aeuo *AnswerEventUpdateOne) AddStage(i int) *AnswerEventUpdateOne {
	aeuo.mutation.AddStage(i)
	return aeuo
}

// SetQuestionType sets the "question_type" field.
func (aeuo *AnswerEventUpdateOne) SetQuestionType(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetQuestionType(s)
	return aeuo
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableQuestionType(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetQuestionType(*s)
	}
	return aeuo
}

// SetStudentAnswer sets the "student_answer" field.
func (aeuo *AnswerEventUpdateOne) SetStudentAnswer(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetStudentAnswer(s)
	return aeuo
}

// SetNillableStudentAnswer sets the "student_answer" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableStudentAnswer(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetStudentAnswer(*s)
	}
	return aeuo
}

// SetCorrectAnswer sets the "correct_answer" field.
func (aeuo *AnswerEventUpdateOne) SetCorrectAnswer(s string) *AnswerEventUpdateOne {
	aeuo.mutation.SetCorrectAnswer(s)
	return aeuo
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableCorrectAnswer(s *string) *AnswerEventUpdateOne {
	if s != nil {
		aeuo.SetCorrectAnswer(*s)
	}
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AnswerEventUpdateOne) SetCorrect(b bool) *AnswerEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableCorrect(b *bool) *AnswerEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetAlmost sets the "almost" field.
func (aeuo *AnswerEventUpdateOne) SetAlmost(b bool) *AnswerEventUpdateOne {
	aeuo.mutation.SetAlmost(b)
	return aeuo
}

// SetNillableAlmost sets the "almost" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableAlmost(b *bool) *AnswerEventUpdateOne {
	if b != nil {
		aeuo.SetAlmost(*b)
	}
	return aeuo
}

// SetTimeMs sets the "time_ms" field.
func (aeuo *AnswerEventUpdateOne) SetTimeMs(i int) *AnswerEventUpdateOne {
	aeuo.mutation.ResetTimeMs()
	aeuo.mutation.SetTimeMs(i)
	return aeuo
}

// SetNillableTimeMs sets the "time_ms" field if the given value is not nil.
func (aeuo *AnswerEventUpdateOne) SetNillableTimeMs(i *int) *AnswerEventUpdateOne {
	if i != nil {
		aeuo.SetTimeMs(*i)
	}
	return aeuo
}

// AddTimeMs adds i to the "time_ms" field.
func (aeuo *AnswerEventUpdateOne) AddTimeMs(i int) *AnswerEventUpdateOne {
	aeuo.mutation.AddTimeMs(i)
	return aeuo
}

// Mutation returns the AnswerEventMutation object of the builder.
func (aeuo *AnswerEventUpdateOne) Mutation() *AnswerEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AnswerEventUpdate builder.
func (aeuo *AnswerEventUpdateOne) Where(ps ...predicate.AnswerEvent) *AnswerEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AnswerEventUpdateOne) Select(field string, fields ...string) *AnswerEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AnswerEvent entity.
func (aeuo *AnswerEventUpdateOne) Save(ctx context.Context) (*AnswerEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) SaveX(ctx context.Context) *AnswerEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AnswerEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AnswerEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AnswerEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.SessionID(); ok {
		if err := answerevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.session_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.WordText(); ok {
		if err := answerevent.WordTextValidator(v); err != nil {
			return &ValidationError{Name: "word_text", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.word_text": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.QuestionType(); ok {
		if err := answerevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.question_type": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.CorrectAnswer(); ok {
		if err := answerevent.CorrectAnswerValidator(v); err != nil {
			return &ValidationError{Name: "correct_answer", err: fmt.Errorf(`ent: validator failed for field "AnswerEvent.correct_answer": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AnswerEventUpdateOne) sqlSave(ctx context.Context) (_node *AnswerEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(answerevent.Table, answerevent.Columns, sqlgraph.NewFieldSpec(answerevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnswerEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, answerevent.FieldID)
		for _, f := range fields {
			if !answerevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != answerevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(answerevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.WordMasteryID(); ok {
		_spec.SetField(answerevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.AddedWordMasteryID(); ok {
		_spec.AddField(answerevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := aeuo.mutation.WordText(); ok {
		_spec.SetField(answerevent.FieldWordText, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Stage(); ok {
		_spec.SetField(answerevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedStage(); ok {
		_spec.AddField(answerevent.FieldStage, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.QuestionType(); ok {
		_spec.SetField(answerevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.StudentAnswer(); ok {
		_spec.SetField(answerevent.FieldStudentAnswer, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.CorrectAnswer(); ok {
		_spec.SetField(answerevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(answerevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.Almost(); ok {
		_spec.SetField(answerevent.FieldAlmost, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.TimeMs(); ok {
		_spec.SetField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedTimeMs(); ok {
		_spec.AddField(answerevent.FieldTimeMs, field.TypeInt, value)
	}
	_node = &AnswerEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{answerevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
