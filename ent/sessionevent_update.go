// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordwave/ent/predicate"
	"github.com/abhisek/wordwave/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seu *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	seu.mutation.Where(ps...)
	return seu
}

// SetSessionID sets the "session_id" field.
func (seu *SessionEventUpdate) SetSessionID(s string) *SessionEventUpdate {
	seu.mutation.SetSessionID(s)
	return seu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSessionID(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetSessionID(*s)
	}
	return seu
}

// SetTestCode sets the "test_code" field.
func (seu *SessionEventUpdate) SetTestCode(s string) *SessionEventUpdate {
	seu.mutation.SetTestCode(s)
	return seu
}

// SetNillableTestCode sets the "test_code" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableTestCode(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetTestCode(*s)
	}
	return seu
}

// SetAction sets the "action" field.
func (seu *SessionEventUpdate) SetAction(s string) *SessionEventUpdate {
	seu.mutation.SetAction(s)
	return seu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableAction(s *string) *SessionEventUpdate {
	if s != nil {
		seu.SetAction(*s)
	}
	return seu
}

// SetTotalWords sets the "total_words" field.
func (seu *SessionEventUpdate) SetTotalWords(i int) *SessionEventUpdate {
	seu.mutation.ResetTotalWords()
	seu.mutation.SetTotalWords(i)
	return seu
}

// SetNillableTotalWords sets the "total_words" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableTotalWords(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetTotalWords(*i)
	}
	return seu
}

// AddTotalWords adds i to the "total_words" field.
func (seu *SessionEventUpdate) AddTotalWords(i int) *SessionEventUpdate {
	seu.mutation.AddTotalWords(i)
	return seu
}

// SetTotalAnswered sets the "total_answered" field.
func (seu *SessionEventUpdate) SetTotalAnswered(i int) *SessionEventUpdate {
	seu.mutation.ResetTotalAnswered()
	seu.mutation.SetTotalAnswered(i)
	return seu
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableTotalAnswered(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetTotalAnswered(*i)
	}
	return seu
}

// AddTotalAnswered adds i to the "total_answered" field.
func (seu *SessionEventUpdate) AddTotalAnswered(i int) *SessionEventUpdate {
	seu.mutation.AddTotalAnswered(i)
	return seu
}

// SetCorrectAnswers sets the "correct_answers" field.
func (seu *SessionEventUpdate) SetCorrectAnswers(i int) *SessionEventUpdate {
	seu.mutation.ResetCorrectAnswers()
	seu.mutation.SetCorrectAnswers(i)
	return seu
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableCorrectAnswers(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetCorrectAnswers(*i)
	}
	return seu
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (seu *SessionEventUpdate) AddCorrectAnswers(i int) *SessionEventUpdate {
	seu.mutation.AddCorrectAnswers(i)
	return seu
}

// SetMasteredCount sets the "mastered_count" field.
func (seu *SessionEventUpdate) SetMasteredCount(i int) *SessionEventUpdate {
	seu.mutation.ResetMasteredCount()
	seu.mutation.SetMasteredCount(i)
	return seu
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableMasteredCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetMasteredCount(*i)
	}
	return seu
}

// AddMasteredCount adds i to the "mastered_count" field.
func (seu *SessionEventUpdate) AddMasteredCount(i int) *SessionEventUpdate {
	seu.mutation.AddMasteredCount(i)
	return seu
}

// SetSkippedCount sets the "skipped_count" field.
func (seu *SessionEventUpdate) SetSkippedCount(i int) *SessionEventUpdate {
	seu.mutation.ResetSkippedCount()
	seu.mutation.SetSkippedCount(i)
	return seu
}

// SetNillableSkippedCount sets the "skipped_count" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableSkippedCount(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetSkippedCount(*i)
	}
	return seu
}

// AddSkippedCount adds i to the "skipped_count" field.
func (seu *SessionEventUpdate) AddSkippedCount(i int) *SessionEventUpdate {
	seu.mutation.AddSkippedCount(i)
	return seu
}

// SetBestCombo sets the "best_combo" field.
func (seu *SessionEventUpdate) SetBestCombo(i int) *SessionEventUpdate {
	seu.mutation.ResetBestCombo()
	seu.mutation.SetBestCombo(i)
	return seu
}

// SetNillableBestCombo sets the "best_combo" field if the given value is not nil.
func (seu *SessionEventUpdate) SetNillableBestCombo(i *int) *SessionEventUpdate {
	if i != nil {
		seu.SetBestCombo(*i)
	}
	return seu
}

// AddBestCombo adds i to the "best_combo" field.
func (seu *SessionEventUpdate) AddBestCombo(i int) *SessionEventUpdate {
	seu.mutation.AddBestCombo(i)
	return seu
}

// Mutation returns the SessionEventMutation object of the builder.
func (seu *SessionEventUpdate) Mutation() *SessionEventMutation {
	return seu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (seu *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, seu.sqlSave, seu.mutation, seu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seu *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := seu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (seu *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := seu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seu *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := seu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seu *SessionEventUpdate) check() error {
	if v, ok := seu.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seu.mutation.TestCode(); ok {
		if err := sessionevent.TestCodeValidator(v); err != nil {
			return &ValidationError{Name: "test_code", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.test_code": %w`, err)}
		}
	}
	if v, ok := seu.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seu *SessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := seu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := seu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seu.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seu.mutation.TestCode(); ok {
		_spec.SetField(sessionevent.FieldTestCode, field.TypeString, value)
	}
	if value, ok := seu.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seu.mutation.TotalWords(); ok {
		_spec.SetField(sessionevent.FieldTotalWords, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedTotalWords(); ok {
		_spec.AddField(sessionevent.FieldTotalWords, field.TypeInt, value)
	}
	if value, ok := seu.mutation.TotalAnswered(); ok {
		_spec.SetField(sessionevent.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedTotalAnswered(); ok {
		_spec.AddField(sessionevent.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := seu.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seu.mutation.MasteredCount(); ok {
		_spec.SetField(sessionevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedMasteredCount(); ok {
		_spec.AddField(sessionevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.SkippedCount(); ok {
		_spec.SetField(sessionevent.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedSkippedCount(); ok {
		_spec.AddField(sessionevent.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := seu.mutation.BestCombo(); ok {
		_spec.SetField(sessionevent.FieldBestCombo, field.TypeInt, value)
	}
	if value, ok := seu.mutation.AddedBestCombo(); ok {
		_spec.AddField(sessionevent.FieldBestCombo, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, seu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	seu.mutation.done = true
	return n, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (seuo *SessionEventUpdateOne) SetSessionID(s string) *SessionEventUpdateOne {
	seuo.mutation.SetSessionID(s)
	return seuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSessionID(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetSessionID(*s)
	}
	return seuo
}

// SetTestCode sets the "test_code" field.
func (seuo *SessionEventUpdateOne) SetTestCode(s string) *SessionEventUpdateOne {
	seuo.mutation.SetTestCode(s)
	return seuo
}

// SetNillableTestCode sets the "test_code" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableTestCode(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetTestCode(*s)
	}
	return seuo
}

// SetAction sets the "action" field.
func (seuo *SessionEventUpdateOne) SetAction(s string) *SessionEventUpdateOne {
	seuo.mutation.SetAction(s)
	return seuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableAction(s *string) *SessionEventUpdateOne {
	if s != nil {
		seuo.SetAction(*s)
	}
	return seuo
}

// SetTotalWords sets the "total_words" field.
func (seuo *SessionEventUpdateOne) SetTotalWords(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetTotalWords()
	seuo.mutation.SetTotalWords(i)
	return seuo
}

// SetNillableTotalWords sets the "total_words" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableTotalWords(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetTotalWords(*i)
	}
	return seuo
}

// AddTotalWords adds i to the "total_words" field.
func (seuo *SessionEventUpdateOne) AddTotalWords(i int) *SessionEventUpdateOne {
	seuo.mutation.AddTotalWords(i)
	return seuo
}

// SetTotalAnswered sets the "total_answered" field.
func (seuo *SessionEventUpdateOne) SetTotalAnswered(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetTotalAnswered()
	seuo.mutation.SetTotalAnswered(i)
	return seuo
}

// SetNillableTotalAnswered sets the "total_answered" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableTotalAnswered(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetTotalAnswered(*i)
	}
	return seuo
}

// AddTotalAnswered adds i to the "total_answered" field.
func (seuo *SessionEventUpdateOne) AddTotalAnswered(i int) *SessionEventUpdateOne {
	seuo.mutation.AddTotalAnswered(i)
	return seuo
}

// SetCorrectAnswers sets the "correct_answers" field.
func (seuo *SessionEventUpdateOne) SetCorrectAnswers(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetCorrectAnswers()
	seuo.mutation.SetCorrectAnswers(i)
	return seuo
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableCorrectAnswers(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetCorrectAnswers(*i)
	}
	return seuo
}

// AddCorrectAnswers adds i to the "correct_answers" field.
func (seuo *SessionEventUpdateOne) AddCorrectAnswers(i int) *SessionEventUpdateOne {
	seuo.mutation.AddCorrectAnswers(i)
	return seuo
}

// SetMasteredCount sets the "mastered_count" field.
func (seuo *SessionEventUpdateOne) SetMasteredCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetMasteredCount()
	seuo.mutation.SetMasteredCount(i)
	return seuo
}

// SetNillableMasteredCount sets the "mastered_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableMasteredCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetMasteredCount(*i)
	}
	return seuo
}

// AddMasteredCount adds i to the "mastered_count" field.
func (seuo *SessionEventUpdateOne) AddMasteredCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddMasteredCount(i)
	return seuo
}

// SetSkippedCount sets the "skipped_count" field.
func (seuo *SessionEventUpdateOne) SetSkippedCount(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetSkippedCount()
	seuo.mutation.SetSkippedCount(i)
	return seuo
}

// SetNillableSkippedCount sets the "skipped_count" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableSkippedCount(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetSkippedCount(*i)
	}
	return seuo
}

// AddSkippedCount adds i to the "skipped_count" field.
func (seuo *SessionEventUpdateOne) AddSkippedCount(i int) *SessionEventUpdateOne {
	seuo.mutation.AddSkippedCount(i)
	return seuo
}

// SetBestCombo sets the "best_combo" field.
func (seuo *SessionEventUpdateOne) SetBestCombo(i int) *SessionEventUpdateOne {
	seuo.mutation.ResetBestCombo()
	seuo.mutation.SetBestCombo(i)
	return seuo
}

// SetNillableBestCombo sets the "best_combo" field if the given value is not nil.
func (seuo *SessionEventUpdateOne) SetNillableBestCombo(i *int) *SessionEventUpdateOne {
	if i != nil {
		seuo.SetBestCombo(*i)
	}
	return seuo
}

// AddBestCombo adds i to the "best_combo" field.
func (seuo *SessionEventUpdateOne) AddBestCombo(i int) *SessionEventUpdateOne {
	seuo.mutation.AddBestCombo(i)
	return seuo
}

// Mutation returns the SessionEventMutation object of the builder.
func (seuo *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return seuo.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (seuo *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	seuo.mutation.Where(ps...)
	return seuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (seuo *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	seuo.fields = append([]string{field}, fields...)
	return seuo
}

// Save executes the query and returns the updated SessionEvent entity.
func (seuo *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, seuo.sqlSave, seuo.mutation, seuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := seuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (seuo *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := seuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (seuo *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := seuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (seuo *SessionEventUpdateOne) check() error {
	if v, ok := seuo.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.TestCode(); ok {
		if err := sessionevent.TestCodeValidator(v); err != nil {
			return &ValidationError{Name: "test_code", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.test_code": %w`, err)}
		}
	}
	if v, ok := seuo.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (seuo *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := seuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := seuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := seuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := seuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := seuo.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := seuo.mutation.TestCode(); ok {
		_spec.SetField(sessionevent.FieldTestCode, field.TypeString, value)
	}
	if value, ok := seuo.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := seuo.mutation.TotalWords(); ok {
		_spec.SetField(sessionevent.FieldTotalWords, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedTotalWords(); ok {
		_spec.AddField(sessionevent.FieldTotalWords, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.TotalAnswered(); ok {
		_spec.SetField(sessionevent.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedTotalAnswered(); ok {
		_spec.AddField(sessionevent.FieldTotalAnswered, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.CorrectAnswers(); ok {
		_spec.SetField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(sessionevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.MasteredCount(); ok {
		_spec.SetField(sessionevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedMasteredCount(); ok {
		_spec.AddField(sessionevent.FieldMasteredCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.SkippedCount(); ok {
		_spec.SetField(sessionevent.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedSkippedCount(); ok {
		_spec.AddField(sessionevent.FieldSkippedCount, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.BestCombo(); ok {
		_spec.SetField(sessionevent.FieldBestCombo, field.TypeInt, value)
	}
	if value, ok := seuo.mutation.AddedBestCombo(); ok {
		_spec.AddField(sessionevent.FieldBestCombo, field.TypeInt, value)
	}
	_node = &SessionEvent{config: seuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, seuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	seuo.mutation.done = true
	return _node, nil
}
