// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutoriz/ent/predicate"
	"github.com/abhisek/tutoriz/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserChars sets the "user_chars" field.
func (_u *TurnEventUpdate) SetUserChars(v int) *TurnEventUpdate {
	_u.mutation.ResetUserChars()
	_u.mutation.SetUserChars(v)
	return _u
}

// SetNillableUserChars sets the "user_chars" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableUserChars(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetUserChars(*v)
	}
	return _u
}

// AddUserChars adds value to the "user_chars" field.
func (_u *TurnEventUpdate) AddUserChars(v int) *TurnEventUpdate {
	_u.mutation.AddUserChars(v)
	return _u
}

// SetTutorChars sets the "tutor_chars" field.
func (_u *TurnEventUpdate) SetTutorChars(v int) *TurnEventUpdate {
	_u.mutation.ResetTutorChars()
	_u.mutation.SetTutorChars(v)
	return _u
}

// SetNillableTutorChars sets the "tutor_chars" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTutorChars(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetTutorChars(*v)
	}
	return _u
}

// AddTutorChars adds value to the "tutor_chars" field.
func (_u *TurnEventUpdate) AddTutorChars(v int) *TurnEventUpdate {
	_u.mutation.AddTutorChars(v)
	return _u
}

// SetStreamed sets the "streamed" field.
func (_u *TurnEventUpdate) SetStreamed(v bool) *TurnEventUpdate {
	_u.mutation.SetStreamed(v)
	return _u
}

// SetNillableStreamed sets the "streamed" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableStreamed(v *bool) *TurnEventUpdate {
	if v != nil {
		_u.SetStreamed(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *TurnEventUpdate) SetLatencyMs(v int64) *TurnEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableLatencyMs(v *int64) *TurnEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *TurnEventUpdate) AddLatencyMs(v int64) *TurnEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetHintLevel sets the "hint_level" field.
func (_u *TurnEventUpdate) SetHintLevel(v int) *TurnEventUpdate {
	_u.mutation.ResetHintLevel()
	_u.mutation.SetHintLevel(v)
	return _u
}

// SetNillableHintLevel sets the "hint_level" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableHintLevel(v *int) *TurnEventUpdate {
	if v != nil {
		_u.SetHintLevel(*v)
	}
	return _u
}

// AddHintLevel adds value to the "hint_level" field.
func (_u *TurnEventUpdate) AddHintLevel(v int) *TurnEventUpdate {
	_u.mutation.AddHintLevel(v)
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserChars(); ok {
		_spec.SetField(turnevent.FieldUserChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserChars(); ok {
		_spec.AddField(turnevent.FieldUserChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TutorChars(); ok {
		_spec.SetField(turnevent.FieldTutorChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTutorChars(); ok {
		_spec.AddField(turnevent.FieldTutorChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streamed(); ok {
		_spec.SetField(turnevent.FieldStreamed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HintLevel(); ok {
		_spec.SetField(turnevent.FieldHintLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintLevel(); ok {
		_spec.AddField(turnevent.FieldHintLevel, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserChars sets the "user_chars" field.
func (_u *TurnEventUpdateOne) SetUserChars(v int) *TurnEventUpdateOne {
	_u.mutation.ResetUserChars()
	_u.mutation.SetUserChars(v)
	return _u
}

// SetNillableUserChars sets the "user_chars" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableUserChars(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetUserChars(*v)
	}
	return _u
}

// AddUserChars adds value to the "user_chars" field.
func (_u *TurnEventUpdateOne) AddUserChars(v int) *TurnEventUpdateOne {
	_u.mutation.AddUserChars(v)
	return _u
}

// SetTutorChars sets the "tutor_chars" field.
func (_u *TurnEventUpdateOne) SetTutorChars(v int) *TurnEventUpdateOne {
	_u.mutation.ResetTutorChars()
	_u.mutation.SetTutorChars(v)
	return _u
}

// SetNillableTutorChars sets the "tutor_chars" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTutorChars(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTutorChars(*v)
	}
	return _u
}

// AddTutorChars adds value to the "tutor_chars" field.
func (_u *TurnEventUpdateOne) AddTutorChars(v int) *TurnEventUpdateOne {
	_u.mutation.AddTutorChars(v)
	return _u
}

// SetStreamed sets the "streamed" field.
func (_u *TurnEventUpdateOne) SetStreamed(v bool) *TurnEventUpdateOne {
	_u.mutation.SetStreamed(v)
	return _u
}

// SetNillableStreamed sets the "streamed" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableStreamed(v *bool) *TurnEventUpdateOne {
	if v != nil {
		_u.SetStreamed(*v)
	}
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *TurnEventUpdateOne) SetLatencyMs(v int64) *TurnEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableLatencyMs(v *int64) *TurnEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *TurnEventUpdateOne) AddLatencyMs(v int64) *TurnEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetHintLevel sets the "hint_level" field.
func (_u *TurnEventUpdateOne) SetHintLevel(v int) *TurnEventUpdateOne {
	_u.mutation.ResetHintLevel()
	_u.mutation.SetHintLevel(v)
	return _u
}

// SetNillableHintLevel sets the "hint_level" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableHintLevel(v *int) *TurnEventUpdateOne {
	if v != nil {
		_u.SetHintLevel(*v)
	}
	return _u
}

// AddHintLevel adds value to the "hint_level" field.
func (_u *TurnEventUpdateOne) AddHintLevel(v int) *TurnEventUpdateOne {
	_u.mutation.AddHintLevel(v)
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TurnEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := turnevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TurnEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserChars(); ok {
		_spec.SetField(turnevent.FieldUserChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUserChars(); ok {
		_spec.AddField(turnevent.FieldUserChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TutorChars(); ok {
		_spec.SetField(turnevent.FieldTutorChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTutorChars(); ok {
		_spec.AddField(turnevent.FieldTutorChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Streamed(); ok {
		_spec.SetField(turnevent.FieldStreamed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(turnevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.HintLevel(); ok {
		_spec.SetField(turnevent.FieldHintLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintLevel(); ok {
		_spec.AddField(turnevent.FieldHintLevel, field.TypeInt, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
