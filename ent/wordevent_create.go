// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/wordwave/ent/wordevent"
)

// WordEventCreate is the builder for creating a WordEvent entity.
type WordEventCreate struct {
	config
	mutation *WordEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (wec *WordEventCreate) SetSequence(i int64) *WordEventCreate {
	wec.mutation.SetSequence(i)
	return wec
}

// SetTimestamp sets the "timestamp" field.
func (wec *WordEventCreate) SetTimestamp(t time.Time) *WordEventCreate {
	wec.mutation.SetTimestamp(t)
	return wec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (wec *WordEventCreate) SetNillableTimestamp(t *time.Time) *WordEventCreate {
	if t != nil {
		wec.SetTimestamp(*t)
	}
	return wec
}

// SetSessionID sets the "session_id" field.
func (wec *WordEventCreate) SetSessionID(s string) *WordEventCreate {
	wec.mutation.SetSessionID(s)
	return wec
}

// SetWordMasteryID sets the "word_mastery_id" field.
func (wec *WordEventCreate) SetWordMasteryID(i int64) *WordEventCreate {
	wec.mutation.SetWordMasteryID(i)
	return wec
}

// SetWordText sets the "word_text" field.
func (wec *WordEventCreate) SetWordText(s string) *WordEventCreate {
	wec.mutation.SetWordText(s)
	return wec
}

// SetFromStatus sets the "from_status" field.
func (wec *WordEventCreate) SetFromStatus(s string) *WordEventCreate {
	wec.mutation.SetFromStatus(s)
	return wec
}

// SetToStatus sets the "to_status" field.
func (wec *WordEventCreate) SetToStatus(s string) *WordEventCreate {
	wec.mutation.SetToStatus(s)
	return wec
}

// SetTrigger sets the "trigger" field.
func (wec *WordEventCreate) SetTrigger(s string) *WordEventCreate {
	wec.mutation.SetTrigger(s)
	return wec
}

// Mutation returns the WordEventMutation object of the builder.
func (wec *WordEventCreate) Mutation() *WordEventMutation {
	return wec.mutation
}

// Save creates the WordEvent in the database.
func (wec *WordEventCreate) Save(ctx context.Context) (*WordEvent, error) {
	wec.defaults()
	return withHooks(ctx, wec.sqlSave, wec.mutation, wec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wec *WordEventCreate) SaveX(ctx context.Context) *WordEvent {
	v, err := wec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wec *WordEventCreate) Exec(ctx context.Context) error {
	_, err := wec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wec *WordEventCreate) ExecX(ctx context.Context) {
	if err := wec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wec *WordEventCreate) defaults() {
	if _, ok := wec.mutation.Timestamp(); !ok {
		v := wordevent.DefaultTimestamp()
		wec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wec *WordEventCreate) check() error {
	if _, ok := wec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "WordEvent.sequence"`)}
	}
	if _, ok := wec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "WordEvent.timestamp"`)}
	}
	if _, ok := wec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "WordEvent.session_id"`)}
	}
	if v, ok := wec.mutation.SessionID(); ok {
		if err := wordevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "WordEvent.session_id": %w`, err)}
		}
	}
	if _, ok := wec.mutation.WordMasteryID(); !ok {
		return &ValidationError{Name: "word_mastery_id", err: errors.New(`ent: missing required field "WordEvent.word_mastery_id"`)}
	}
	if _, ok := wec.mutation.WordText(); !ok {
		return &ValidationError{Name: "word_text", err: errors.New(`ent: missing required field "WordEvent.word_text"`)}
	}
	if v, ok := wec.mutation.WordText(); ok {
		if err := wordevent.WordTextValidator(v); err != nil {
			return &ValidationError{Name: "word_text", err: fmt.Errorf(`ent: validator failed for field "WordEvent.word_text": %w`, err)}
		}
	}
	if _, ok := wec.mutation.FromStatus(); !ok {
		return &ValidationError{Name: "from_status", err: errors.New(`ent: missing required field "WordEvent.from_status"`)}
	}
	if v, ok := wec.mutation.FromStatus(); ok {
		if err := wordevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "WordEvent.from_status": %w`, err)}
		}
	}
	if _, ok := wec.mutation.ToStatus(); !ok {
		return &ValidationError{Name: "to_status", err: errors.New(`ent: missing required field "WordEvent.to_status"`)}
	}
	if v, ok := wec.mutation.ToStatus(); ok {
		if err := wordevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "WordEvent.to_status": %w`, err)}
		}
	}
	if _, ok := wec.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "WordEvent.trigger"`)}
	}
	if v, ok := wec.mutation.Trigger(); ok {
		if err := wordevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "WordEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (wec *WordEventCreate) sqlSave(ctx context.Context) (*WordEvent, error) {
	if err := wec.check(); err != nil {
		return nil, err
	}
	_node, _spec := wec.createSpec()
	if err := sqlgraph.CreateNode(ctx, wec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	wec.mutation.id = &_node.ID
	wec.mutation.done = true
	return _node, nil
}

func (wec *WordEventCreate) createSpec() (*WordEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &WordEvent{config: wec.config}
		_spec = sqlgraph.NewCreateSpec(wordevent.Table, sqlgraph.NewFieldSpec(wordevent.FieldID, field.TypeInt))
	)
	if value, ok := wec.mutation.Sequence(); ok {
		_spec.SetField(wordevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := wec.mutation.Timestamp(); ok {
		_spec.SetField(wordevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := wec.mutation.SessionID(); ok {
		_spec.SetField(wordevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := wec.mutation.WordMasteryID(); ok {
		_spec.SetField(wordevent.FieldWordMasteryID, field.TypeInt64, value)
		_node.WordMasteryID = value
	}
	if value, ok := wec.mutation.WordText(); ok {
		_spec.SetField(wordevent.FieldWordText, field.TypeString, value)
		_node.WordText = value
	}
	if value, ok := wec.mutation.FromStatus(); ok {
		_spec.SetField(wordevent.FieldFromStatus, field.TypeString, value)
		_node.FromStatus = value
	}
	if value, ok := wec.mutation.ToStatus(); ok {
		_spec.SetField(wordevent.FieldToStatus, field.TypeString, value)
		_node.ToStatus = value
	}
	if value, ok := wec.mutation.Trigger(); ok {
		_spec.SetField(wordevent.FieldTrigger, field.TypeString, value)
		_node.Trigger = value
	}
	return _node, _spec
}

// WordEventCreateBulk is the builder for creating many WordEvent entities in bulk.
type WordEventCreateBulk struct {
	config
	err      error
	builders []*WordEventCreate
}

// Save creates the WordEvent entities in the database.
func (wecb *WordEventCreateBulk) Save(ctx context.Context) ([]*WordEvent, error) {
	if wecb.err != nil {
		return nil, wecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wecb.builders))
	nodes := make([]*WordEvent, len(wecb.builders))
	mutators := make([]Mutator, len(wecb.builders))
	for i := range wecb.builders {
		func(i int, root context.Context) {
			builder := wecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, wecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, wecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wecb *WordEventCreateBulk) SaveX(ctx context.Context) []*WordEvent {
	v, err := wecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wecb *WordEventCreateBulk) Exec(ctx context.Context) error {
	_, err := wecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wecb *WordEventCreateBulk) ExecX(ctx context.Context) {
	if err := wecb.Exec(ctx); err != nil {
		panic(err)
	}
}
