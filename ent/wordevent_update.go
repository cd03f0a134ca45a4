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
	"github.com/abhisek/wordwave/ent/wordevent"
)

// WordEventUpdate is the builder for updating WordEvent entities.
type WordEventUpdate struct {
	config
	hooks    []Hook
	mutation *WordEventMutation
}

// Where appends a list predicates to the WordEventUpdate builder.
func (weu *WordEventUpdate) Where(ps ...predicate.WordEvent) *WordEventUpdate {
	weu.mutation.Where(ps...)
	return weu
}

// SetSessionID sets the "session_id" field.
func (weu *WordEventUpdate) SetSessionID(s string) *WordEventUpdate {
	weu.mutation.SetSessionID(s)
	return weu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (weu *WordEventUpdate) SetNillableSessionID(s *string) *WordEventUpdate {
	if s != nil {
		weu.SetSessionID(*s)
	}
	return weu
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (weu *WordEventUpdate) SetWordMasteryID(i int64) *WordEventUpdate {
	weu.mutation.ResetWordMasteryID()
	weu.mutation.SetWordMasteryID(i)
	return weu
}

// SetNillableWordMasteryID sets the "word_mastery_id" field if the given value is not nil.
func (weu *WordEventUpdate) SetNillableWordMasteryID(i *int64) *WordEventUpdate {
	if i != nil {
		weu.SetWordMasteryID(*i)
	}
	return weu
}

// AddWordMasteryID adds i to the "word_mastery_id" field.
func (weu *WordEventUpdate) AddWordMasteryID(i int64) *WordEventUpdate {
	weu.mutation.AddWordMasteryID(i)
	return weu
}

// SetWordText sets the "word_text" field.
func (weu *WordEventUpdate) SetWordText(s string) *WordEventUpdate {
	weu.mutation.SetWordText(s)
	return weu
}

// SetNillableWordText sets the "word_text" field if the given value is not nil.
func (weu *WordEventUpdate) SetNillableWordText(s *string) *WordEventUpdate {
	if s != nil {
		weu.SetWordText(*s)
	}
	return weu
}

// SetFromStatus sets the "from_status" field.
func (weu *WordEventUpdate) SetFromStatus(s string) *WordEventUpdate {
	weu.mutation.SetFromStatus(s)
	return weu
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (weu *WordEventUpdate) SetNillableFromStatus(s *string) *WordEventUpdate {
	if s != nil {
		weu.SetFromStatus(*s)
	}
	return weu
}

// SetToStatus sets the "to_status" field.
func (weu *WordEventUpdate) SetToStatus(s string) *WordEventUpdate {
	weu.mutation.SetToStatus(s)
	return weu
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (weu *WordEventUpdate) SetNillableToStatus(s *string) *WordEventUpdate {
	if s != nil {
		weu.SetToStatus(*s)
	}
	return weu
}

// SetTrigger sets the "trigger" field.
func (weu *WordEventUpdate) SetTrigger(s string) *WordEventUpdate {
	weu.mutation.SetTrigger(s)
	return weu
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (weu *WordEventUpdate) SetNillableTrigger(s *string) *WordEventUpdate {
	if s != nil {
		weu.SetTrigger(*s)
	}
	return weu
}

// Mutation returns the WordEventMutation object of the builder.
func (weu *WordEventUpdate) Mutation() *WordEventMutation {
	return weu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (weu *WordEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, weu.sqlSave, weu.mutation, weu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (weu *WordEventUpdate) SaveX(ctx context.Context) int {
	affected, err := weu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (weu *WordEventUpdate) Exec(ctx context.Context) error {
	_, err := weu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (weu *WordEventUpdate) ExecX(ctx context.Context) {
	if err := weu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (weu *WordEventUpdate) check() error {
	if v, ok := weu.mutation.SessionID(); ok {
		if err := wordevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "WordEvent.session_id": %w`, err)}
		}
	}
	if v, ok := weu.mutation.WordText(); ok {
		if err := wordevent.WordTextValidator(v); err != nil {
			return &ValidationError{Name: "word_text", err: fmt.Errorf(`ent: validator failed for field "WordEvent.word_text": %w`, err)}
		}
	}
	if v, ok := weu.mutation.FromStatus(); ok {
		if err := wordevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "WordEvent.from_status": %w`, err)}
		}
	}
	if v, ok := weu.mutation.ToStatus(); ok {
		if err := wordevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "WordEvent.to_status": %w`, err)}
		}
	}
	if v, ok := weu.mutation.Trigger(); ok {
		if err := wordevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "WordEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (weu *WordEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := weu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(wordevent.Table, wordevent.Columns, sqlgraph.NewFieldSpec(wordevent.FieldID, field.TypeInt))
	if ps := weu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := weu.mutation.SessionID(); ok {
		_spec.SetField(wordevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := weu.mutation.WordMasteryID(); ok {
		_spec.SetField(wordevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := weu.mutation.AddedWordMasteryID(); ok {
		_spec.AddField(wordevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := weu.mutation.WordText(); ok {
		_spec.SetField(wordevent.FieldWordText, field.TypeString, value)
	}
	if value, ok := weu.mutation.FromStatus(); ok {
		_spec.SetField(wordevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := weu.mutation.ToStatus(); ok {
		_spec.SetField(wordevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := weu.mutation.Trigger(); ok {
		_spec.SetField(wordevent.FieldTrigger, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, weu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wordevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	weu.mutation.done = true
	return n, nil
}

// WordEventUpdateOne is the builder for updating a single WordEvent entity.
type WordEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordEventMutation
}

// SetSessionID sets the "session_id" field.
func (weuo *WordEventUpdateOne) SetSessionID(s string) *WordEventUpdateOne {
	weuo.mutation.SetSessionID(s)
	return weuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (weuo *WordEventUpdateOne) SetNillableSessionID(s *string) *WordEventUpdateOne {
	if s != nil {
		weuo.SetSessionID(*s)
	}
	return weuo
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (weuo *WordEventUpdateOne) SetWordMasteryID(i int64) *WordEventUpdateOne {
	weuo.mutation.ResetWordMasteryID()
	weuo.mutation.SetWordMasteryID(i)
	return weuo
}

// SetNillableWordMasteryID sets the "word_mastery_id" field if the given value is not nil.
func (weuo *WordEventUpdateOne) SetNillableWordMasteryID(i *int64) *WordEventUpdateOne {
	if i != nil {
		weuo.SetWordMasteryID(*i)
	}
	return weuo
}

// AddWordMasteryID adds i to the "word_mastery_id" field.
func (weuo *WordEventUpdateOne) AddWordMasteryID(i int64) *WordEventUpdateOne {
	weuo.mutation.AddWordMasteryID(i)
	return weuo
}

// SetWordText sets the "word_text" field.
func (weuo *WordEventUpdateOne) SetWordText(s string) *WordEventUpdateOne {
	weuo.mutation.SetWordText(s)
	return weuo
}

// SetNillableWordText sets the "word_text" field if the given value is not nil.
func (weuo *WordEventUpdateOne) SetNillableWordText(s *string) *WordEventUpdateOne {
	if s != nil {
		weuo.SetWordText(*s)
	}
	return weuo
}

// SetFromStatus sets the "from_status" field.
func (weuo *WordEventUpdateOne) SetFromStatus(s string) *WordEventUpdateOne {
	weuo.mutation.SetFromStatus(s)
	return weuo
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (weuo *WordEventUpdateOne) SetNillableFromStatus(s *string) *WordEventUpdateOne {
	if s != nil {
		weuo.SetFromStatus(*s)
	}
	return weuo
}

// SetToStatus sets the "to_status" field.
func (weuo *WordEventUpdateOne) SetToStatus(s string) *WordEventUpdateOne {
	weuo.mutation.SetToStatus(s)
	return weuo
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (weuo *WordEventUpdateOne) SetNillableToStatus(s *string) *WordEventUpdateOne {
	if s != nil {
		weuo.SetToStatus(*s)
	}
	return weuo
}

// SetTrigger sets the "trigger" field.
func (weuo *WordEventUpdateOne) SetTrigger(s string) *WordEventUpdateOne {
	weuo.mutation.SetTrigger(s)
	return weuo
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (weuo *WordEventUpdateOne) SetNillableTrigger(s *string) *WordEventUpdateOne {
	if s != nil {
		weuo.SetTrigger(*s)
	}
	return weuo
}

// Mutation returns the WordEventMutation object of the builder.
func (weuo *WordEventUpdateOne) Mutation() *WordEventMutation {
	return weuo.mutation
}

// Where appends a list predicates to the WordEventUpdate builder.
func (weuo *WordEventUpdateOne) Where(ps ...predicate.WordEvent) *WordEventUpdateOne {
	weuo.mutation.Where(ps...)
	return weuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (weuo *WordEventUpdateOne) Select(field string, fields ...string) *WordEventUpdateOne {
	weuo.fields = append([]string{field}, fields...)
	return weuo
}

// Save executes the query and returns the updated WordEvent entity.
func (weuo *WordEventUpdateOne) Save(ctx context.Context) (*WordEvent, error) {
	return withHooks(ctx, weuo.sqlSave, weuo.mutation, weuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (weuo *WordEventUpdateOne) SaveX(ctx context.Context) *WordEvent {
	node, err := weuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (weuo *WordEventUpdateOne) Exec(ctx context.Context) error {
	_, err := weuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (weuo *WordEventUpdateOne) ExecX(ctx context.Context) {
	if err := weuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (weuo *WordEventUpdateOne) check() error {
	if v, ok := weuo.mutation.SessionID(); ok {
		if err := wordevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "WordEvent.session_id": %w`, err)}
		}
	}
	if v, ok := weuo.mutation.WordText(); ok {
		if err := wordevent.WordTextValidator(v); err != nil {
			return &ValidationError{Name: "word_text", err: fmt.Errorf(`ent: validator failed for field "WordEvent.word_text": %w`, err)}
		}
	}
	if v, ok := weuo.mutation.FromStatus(); ok {
		if err := wordevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "WordEvent.from_status": %w`, err)}
		}
	}
	if v, ok := weuo.mutation.ToStatus(); ok {
		if err := wordevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "WordEvent.to_status": %w`, err)}
		}
	}
	if v, ok := weuo.mutation.Trigger(); ok {
		if err := wordevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "WordEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (weuo *WordEventUpdateOne) sqlSave(ctx context.Context) (_node *WordEvent, err error) {
	if err := weuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wordevent.Table, wordevent.Columns, sqlgraph.NewFieldSpec(wordevent.FieldID, field.TypeInt))
	id, ok := weuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WordEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := weuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wordevent.FieldID)
		for _, f := range fields {
			if !wordevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wordevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := weuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := weuo.mutation.SessionID(); ok {
		_spec.SetField(wordevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := weuo.mutation.WordMasteryID(); ok {
		_spec.SetField(wordevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := weuo.mutation.AddedWordMasteryID(); ok {
		_spec.AddField(wordevent.FieldWordMasteryID, field.TypeInt64, value)
	}
	if value, ok := weuo.mutation.WordText(); ok {
		_spec.SetField(wordevent.FieldWordText, field.TypeString, value)
	}
	if value, ok := weuo.mutation.FromStatus(); ok {
		_spec.SetField(wordevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := weuo.mutation.ToStatus(); ok {
		_spec.SetField(wordevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := weuo.mutation.Trigger(); ok {
		_spec.SetField(wordevent.FieldTrigger, field.TypeString, value)
	}
	_node = &WordEvent{config: weuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, weuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wordevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	weuo.mutation.done = true
	return _node, nil
}
