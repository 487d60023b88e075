// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
	"github.com/jasimarif/psychology-app/internal/repo/provideravailability"
)

// ProviderAvailabilityUpdate is the builder for updating ProviderAvailability entities.
type ProviderAvailabilityUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderAvailabilityMutation
}

// Where appends a list predicates to the ProviderAvailabilityUpdate builder.
func (_u *ProviderAvailabilityUpdate) Where(ps ...predicate.ProviderAvailability) *ProviderAvailabilityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (_u *ProviderAvailabilityUpdate) SetSessionDurationMinutes(v int) *ProviderAvailabilityUpdate {
	_u.mutation.ResetSessionDurationMinutes()
	_u.mutation.SetSessionDurationMinutes(v)
	return _u
}

// SetNillableSessionDurationMinutes sets the "session_duration_minutes" field if the given value is not nil.
func (_u *ProviderAvailabilityUpdate) SetNillableSessionDurationMinutes(v *int) *ProviderAvailabilityUpdate {
	if v != nil {
		_u.SetSessionDurationMinutes(*v)
	}
	return _u
}

// AddSessionDurationMinutes adds value to the "session_duration_minutes" field.
func (_u *ProviderAvailabilityUpdate) AddSessionDurationMinutes(v int) *ProviderAvailabilityUpdate {
	_u.mutation.AddSessionDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ProviderAvailabilityUpdate) SetTimezone(v string) *ProviderAvailabilityUpdate {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ProviderAvailabilityUpdate) SetNillableTimezone(v *string) *ProviderAvailabilityUpdate {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *ProviderAvailabilityUpdate) SetSchedule(v json.RawMessage) *ProviderAvailabilityUpdate {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *ProviderAvailabilityUpdate) AppendSchedule(v json.RawMessage) *ProviderAvailabilityUpdate {
	_u.mutation.AppendSchedule(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderAvailabilityUpdate) SetUpdatedAt(v time.Time) *ProviderAvailabilityUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderAvailabilityMutation object of the builder.
func (_u *ProviderAvailabilityUpdate) Mutation() *ProviderAvailabilityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderAvailabilityUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderAvailabilityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderAvailabilityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderAvailabilityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderAvailabilityUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provideravailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderAvailabilityUpdate) check() error {
	if v, ok := _u.mutation.SessionDurationMinutes(); ok {
		if err := provideravailability.SessionDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "session_duration_minutes", err: fmt.Errorf(`repo: validator failed for field "ProviderAvailability.session_duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := provideravailability.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "ProviderAvailability.timezone": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderAvailabilityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provideravailability.Table, provideravailability.Columns, sqlgraph.NewFieldSpec(provideravailability.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionDurationMinutes(); ok {
		_spec.SetField(provideravailability.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMinutes(); ok {
		_spec.AddField(provideravailability.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(provideravailability.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(provideravailability.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, provideravailability.FieldSchedule, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provideravailability.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provideravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderAvailabilityUpdateOne is the builder for updating a single ProviderAvailability entity.
type ProviderAvailabilityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderAvailabilityMutation
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (_u *ProviderAvailabilityUpdateOne) SetSessionDurationMinutes(v int) *ProviderAvailabilityUpdateOne {
	_u.mutation.ResetSessionDurationMinutes()
	_u.mutation.SetSessionDurationMinutes(v)
	return _u
}

// SetNillableSessionDurationMinutes sets the "session_duration_minutes" field if the given value is not nil.
func (_u *ProviderAvailabilityUpdateOne) SetNillableSessionDurationMinutes(v *int) *ProviderAvailabilityUpdateOne {
	if v != nil {
		_u.SetSessionDurationMinutes(*v)
	}
	return _u
}

// AddSessionDurationMinutes adds value to the "session_duration_minutes" field.
func (_u *ProviderAvailabilityUpdateOne) AddSessionDurationMinutes(v int) *ProviderAvailabilityUpdateOne {
	_u.mutation.AddSessionDurationMinutes(v)
	return _u
}

// SetTimezone sets the "timezone" field.
func (_u *ProviderAvailabilityUpdateOne) SetTimezone(v string) *ProviderAvailabilityUpdateOne {
	_u.mutation.SetTimezone(v)
	return _u
}

// SetNillableTimezone sets the "timezone" field if the given value is not nil.
func (_u *ProviderAvailabilityUpdateOne) SetNillableTimezone(v *string) *ProviderAvailabilityUpdateOne {
	if v != nil {
		_u.SetTimezone(*v)
	}
	return _u
}

// SetSchedule sets the "schedule" field.
func (_u *ProviderAvailabilityUpdateOne) SetSchedule(v json.RawMessage) *ProviderAvailabilityUpdateOne {
	_u.mutation.SetSchedule(v)
	return _u
}

// AppendSchedule appends value to the "schedule" field.
func (_u *ProviderAvailabilityUpdateOne) AppendSchedule(v json.RawMessage) *ProviderAvailabilityUpdateOne {
	_u.mutation.AppendSchedule(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProviderAvailabilityUpdateOne) SetUpdatedAt(v time.Time) *ProviderAvailabilityUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProviderAvailabilityMutation object of the builder.
func (_u *ProviderAvailabilityUpdateOne) Mutation() *ProviderAvailabilityMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderAvailabilityUpdate builder.
func (_u *ProviderAvailabilityUpdateOne) Where(ps ...predicate.ProviderAvailability) *ProviderAvailabilityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderAvailabilityUpdateOne) Select(field string, fields ...string) *ProviderAvailabilityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProviderAvailability entity.
func (_u *ProviderAvailabilityUpdateOne) Save(ctx context.Context) (*ProviderAvailability, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderAvailabilityUpdateOne) SaveX(ctx context.Context) *ProviderAvailability {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderAvailabilityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderAvailabilityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProviderAvailabilityUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := provideravailability.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderAvailabilityUpdateOne) check() error {
	if v, ok := _u.mutation.SessionDurationMinutes(); ok {
		if err := provideravailability.SessionDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "session_duration_minutes", err: fmt.Errorf(`repo: validator failed for field "ProviderAvailability.session_duration_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Timezone(); ok {
		if err := provideravailability.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "ProviderAvailability.timezone": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderAvailabilityUpdateOne) sqlSave(ctx context.Context) (_node *ProviderAvailability, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provideravailability.Table, provideravailability.Columns, sqlgraph.NewFieldSpec(provideravailability.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ProviderAvailability.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provideravailability.FieldID)
		for _, f := range fields {
			if !provideravailability.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != provideravailability.FieldID {
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
	if value, ok := _u.mutation.SessionDurationMinutes(); ok {
		_spec.SetField(provideravailability.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionDurationMinutes(); ok {
		_spec.AddField(provideravailability.FieldSessionDurationMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timezone(); ok {
		_spec.SetField(provideravailability.FieldTimezone, field.TypeString, value)
	}
	if value, ok := _u.mutation.Schedule(); ok {
		_spec.SetField(provideravailability.FieldSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, provideravailability.FieldSchedule, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(provideravailability.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProviderAvailability{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provideravailability.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
