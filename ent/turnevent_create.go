// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutoriz/ent/turnevent"
)

// TurnEventCreate is the builder for creating a TurnEvent entity.
type TurnEventCreate struct {
	config
	mutation *TurnEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TurnEventCreate) SetSequence(v int64) *TurnEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TurnEventCreate) SetTimestamp(v time.Time) *TurnEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTimestamp(v *time.Time) *TurnEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TurnEventCreate) SetSessionID(v string) *TurnEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserChars sets the "user_chars" field.
func (_c *TurnEventCreate) SetUserChars(v int) *TurnEventCreate {
	_c.mutation.SetUserChars(v)
	return _c
}

// SetNillableUserChars sets the "user_chars" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableUserChars(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetUserChars(*v)
	}
	return _c
}

// SetTutorChars sets the "tutor_chars" field.
func (_c *TurnEventCreate) SetTutorChars(v int) *TurnEventCreate {
	_c.mutation.SetTutorChars(v)
	return _c
}

// SetNillableTutorChars sets the "tutor_chars" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableTutorChars(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetTutorChars(*v)
	}
	return _c
}

// SetStreamed sets the "streamed" field.
func (_c *TurnEventCreate) SetStreamed(v bool) *TurnEventCreate {
	_c.mutation.SetStreamed(v)
	return _c
}

// SetNillableStreamed sets the "streamed" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableStreamed(v *bool) *TurnEventCreate {
	if v != nil {
		_c.SetStreamed(*v)
	}
	return _c
}

// SetLatencyMs sets the "latency_ms" field.
func (_c *TurnEventCreate) SetLatencyMs(v int64) *TurnEventCreate {
	_c.mutation.SetLatencyMs(v)
	return _c
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableLatencyMs(v *int64) *TurnEventCreate {
	if v != nil {
		_c.SetLatencyMs(*v)
	}
	return _c
}

// SetHintLevel sets the "hint_level" field.
func (_c *TurnEventCreate) SetHintLevel(v int) *TurnEventCreate {
	_c.mutation.SetHintLevel(v)
	return _c
}

// SetNillableHintLevel sets the "hint_level" field if the given value is not nil.
func (_c *TurnEventCreate) SetNillableHintLevel(v *int) *TurnEventCreate {
	if v != nil {
		_c.SetHintLevel(*v)
	}
	return _c
}

// Mutation returns the TurnEventMutation object of the builder.
func (_c *TurnEventCreate) Mutation() *TurnEventMutation {
	return _c.mutation
}

// Save creates the TurnEvent in the database.
func (_c *TurnEventCreate) Save(ctx context.Context) (*TurnEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TurnEventCreate) SaveX(ctx context.Context) *TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TurnEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := turnevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.UserChars(); !ok {
		v := turnevent.DefaultUserChars
		_c.mutation.SetUserChars(v)
	}
	if _, ok := _c.mutation.TutorChars(); !ok {
		v := turnevent.DefaultTutorChars
		_c.mutation.SetTutorChars(v)
	}
	if _, ok := _c.mutation.Streamed(); !ok {
		v := turnevent.DefaultStreamed
		_c.mutation.SetStreamed(v)
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		v := turnevent.DefaultLatencyMs
		_c.mutation.SetLatencyMs(v)
	}
	if _, ok := _c.mutation.HintLevel(); !ok {
		v := turnevent.DefaultHintLevel
		_c.mutation.SetHintLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TurnEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TurnEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TurnEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TurnEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserChars(); !ok {
		return &ValidationError{Name: "user_chars", err: errors.New(`ent: missing required field "TurnEvent.user_chars"`)}
	}
	if _, ok := _c.mutation.TutorChars(); !ok {
		return &ValidationError{Name: "tutor_chars", err: errors.New(`ent: missing required field "TurnEvent.tutor_chars"`)}
	}
	if _, ok := _c.mutation.Streamed(); !ok {
		return &ValidationError{Name: "streamed", err: errors.New(`ent: missing required field "TurnEvent.streamed"`)}
	}
	if _, ok := _c.mutation.LatencyMs(); !ok {
		return &ValidationError{Name: "latency_ms", err: errors.New(`ent: missing required field "TurnEvent.latency_ms"`)}
	}
	if _, ok := _c.mutation.HintLevel(); !ok {
		return &ValidationError{Name: "hint_level", err: errors.New(`ent: missing required field "TurnEvent.hint_level"`)}
	}
	return nil
}

func (_c *TurnEventCreate) sqlSave(ctx context.Context) (*TurnEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TurnEventCreate) createSpec() (*TurnEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TurnEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(turnevent.Table, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(turnevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(turnevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserChars(); ok {
		_spec.SetField(turnevent.FieldUserChars, field.TypeInt, value)
		_node.UserChars = value
	}
	if value, ok := _c.mutation.TutorChars(); ok {
		_spec.SetField(turnevent.FieldTutorChars, field.TypeInt, value)
		_node.TutorChars = value
	}
	if value, ok := _c.mutation.Streamed(); ok {
		_spec.SetField(turnevent.FieldStreamed, field.TypeBool, value)
		_node.Streamed = value
	}
	if value, ok := _c.mutation.LatencyMs(); ok {
		_spec.SetField(turnevent.FieldLatencyMs, field.TypeInt64, value)
		_node.LatencyMs = value
	}
	if value, ok := _c.mutation.HintLevel(); ok {
		_spec.SetField(turnevent.FieldHintLevel, field.TypeInt, value)
		_node.HintLevel = value
	}
	return _node, _spec
}

// TurnEventCreateBulk is the builder for creating many TurnEvent entities in bulk.
type TurnEventCreateBulk struct {
	config
	err      error
	builders []*TurnEventCreate
}

// Save creates the TurnEvent entities in the database.
func (_c *TurnEventCreateBulk) Save(ctx context.Context) ([]*TurnEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TurnEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TurnEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *TurnEventCreateBulk) SaveX(ctx context.Context) []*TurnEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TurnEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TurnEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
