// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/provideravailability"
)

// ProviderAvailabilityCreate is the builder for creating a ProviderAvailability entity.
type ProviderAvailabilityCreate struct {
	config
	mutation *ProviderAvailabilityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (_c *ProviderAvailabilityCreate) SetSessionDurationMinutes(v int) *ProviderAvailabilityCreate {
	_c.mutation.SetSessionDurationMinutes(v)
	return _c
}

// SetTimezone sets the "timezone" field.
func (_c *ProviderAvailabilityCreate) SetTimezone(v string) *ProviderAvailabilityCreate {
	_c.mutation.SetTimezone(v)
	return _c
}

// SetSchedule sets the "schedule" field.
func (_c *ProviderAvailabilityCreate) SetSchedule(v json.RawMessage) *ProviderAvailabilityCreate {
	_c.mutation.SetSchedule(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProviderAvailabilityCreate) SetUpdatedAt(v time.Time) *ProviderAvailabilityCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProviderAvailabilityCreate) SetNillableUpdatedAt(v *time.Time) *ProviderAvailabilityCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderAvailabilityCreate) SetID(v uuid.UUID) *ProviderAvailabilityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderAvailabilityMutation object of the builder.
func (_c *ProviderAvailabilityCreate) Mutation() *ProviderAvailabilityMutation {
	return _c.mutation
}

// Save creates the ProviderAvailability in the database.
func (_c *ProviderAvailabilityCreate) Save(ctx context.Context) (*ProviderAvailability, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderAvailabilityCreate) SaveX(ctx context.Context) *ProviderAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderAvailabilityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderAvailabilityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderAvailabilityCreate) defaults() {
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := provideravailability.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderAvailabilityCreate) check() error {
	if _, ok := _c.mutation.SessionDurationMinutes(); !ok {
		return &ValidationError{Name: "session_duration_minutes", err: errors.New(`repo: missing required field "ProviderAvailability.session_duration_minutes"`)}
	}
	if v, ok := _c.mutation.SessionDurationMinutes(); ok {
		if err := provideravailability.SessionDurationMinutesValidator(v); err != nil {
			return &ValidationError{Name: "session_duration_minutes", err: fmt.Errorf(`repo: validator failed for field "ProviderAvailability.session_duration_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Timezone(); !ok {
		return &ValidationError{Name: "timezone", err: errors.New(`repo: missing required field "ProviderAvailability.timezone"`)}
	}
	if v, ok := _c.mutation.Timezone(); ok {
		if err := provideravailability.TimezoneValidator(v); err != nil {
			return &ValidationError{Name: "timezone", err: fmt.Errorf(`repo: validator failed for field "ProviderAvailability.timezone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Schedule(); !ok {
		return &ValidationError{Name: "schedule", err: errors.New(`repo: missing required field "ProviderAvailability.schedule"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ProviderAvailability.updated_at"`)}
	}
	return nil
}

func (_c *ProviderAvailabilityCreate) sqlSave(ctx context.Context) (*ProviderAvailability, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProviderAvailabilityCreate) createSpec() (*ProviderAvailability, *sqlgraph.CreateSpec) {
	var (
		_node = &ProviderAvailability{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(provideravailability.Table, sqlgraph.NewFieldSpec(provideravailability.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SessionDurationMinutes(); ok {
		_spec.SetField(provideravailability.FieldSessionDurationMinutes, field.TypeInt, value)
		_node.SessionDurationMinutes = value
	}
	if value, ok := _c.mutation.Timezone(); ok {
		_spec.SetField(provideravailability.FieldTimezone, field.TypeString, value)
		_node.Timezone = value
	}
	if value, ok := _c.mutation.Schedule(); ok {
		_spec.SetField(provideravailability.FieldSchedule, field.TypeJSON, value)
		_node.Schedule = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(provideravailability.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderAvailability.Create().
//		SetSessionDurationMinutes(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderAvailabilityUpsert) {
//			SetSessionDurationMinutes(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderAvailabilityCreate) OnConflict(opts ...sql.ConflictOption) *ProviderAvailabilityUpsertOne {
	_c.conflict = opts
	return &ProviderAvailabilityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderAvailability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderAvailabilityCreate) OnConflictColumns(columns ...string) *ProviderAvailabilityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderAvailabilityUpsertOne{
		create: _c,
	}
}

type (
	// ProviderAvailabilityUpsertOne is the builder for "upsert"-ing
	//  one ProviderAvailability node.
	ProviderAvailabilityUpsertOne struct {
		create *ProviderAvailabilityCreate
	}

	// ProviderAvailabilityUpsert is the "OnConflict" setter.
	ProviderAvailabilityUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (u *ProviderAvailabilityUpsert) SetSessionDurationMinutes(v int) *ProviderAvailabilityUpsert {
	u.Set(provideravailability.FieldSessionDurationMinutes, v)
	return u
}

// UpdateSessionDurationMinutes sets the "session_duration_minutes" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsert) UpdateSessionDurationMinutes() *ProviderAvailabilityUpsert {
	u.SetExcluded(provideravailability.FieldSessionDurationMinutes)
	return u
}

// AddSessionDurationMinutes adds v to the "session_duration_minutes" field.
func (u *ProviderAvailabilityUpsert) AddSessionDurationMinutes(v int) *ProviderAvailabilityUpsert {
	u.Add(provideravailability.FieldSessionDurationMinutes, v)
	return u
}

// SetTimezone sets the "timezone" field.
func (u *ProviderAvailabilityUpsert) SetTimezone(v string) *ProviderAvailabilityUpsert {
	u.Set(provideravailability.FieldTimezone, v)
	return u
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsert) UpdateTimezone() *ProviderAvailabilityUpsert {
	u.SetExcluded(provideravailability.FieldTimezone)
	return u
}

// SetSchedule sets the "schedule" field.
func (u *ProviderAvailabilityUpsert) SetSchedule(v json.RawMessage) *ProviderAvailabilityUpsert {
	u.Set(provideravailability.FieldSchedule, v)
	return u
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsert) UpdateSchedule() *ProviderAvailabilityUpsert {
	u.SetExcluded(provideravailability.FieldSchedule)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderAvailabilityUpsert) SetUpdatedAt(v time.Time) *ProviderAvailabilityUpsert {
	u.Set(provideravailability.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsert) UpdateUpdatedAt() *ProviderAvailabilityUpsert {
	u.SetExcluded(provideravailability.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ProviderAvailability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(provideravailability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProviderAvailabilityUpsertOne) UpdateNewValues() *ProviderAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(provideravailability.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderAvailability.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProviderAvailabilityUpsertOne) Ignore() *ProviderAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderAvailabilityUpsertOne) DoNothing() *ProviderAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderAvailabilityCreate.OnConflict
// documentation for more info.
func (u *ProviderAvailabilityUpsertOne) Update(set func(*ProviderAvailabilityUpsert)) *ProviderAvailabilityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderAvailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (u *ProviderAvailabilityUpsertOne) SetSessionDurationMinutes(v int) *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetSessionDurationMinutes(v)
	})
}

// AddSessionDurationMinutes adds v to the "session_duration_minutes" field.
func (u *ProviderAvailabilityUpsertOne) AddSessionDurationMinutes(v int) *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.AddSessionDurationMinutes(v)
	})
}

// UpdateSessionDurationMinutes sets the "session_duration_minutes" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertOne) UpdateSessionDurationMinutes() *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateSessionDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ProviderAvailabilityUpsertOne) SetTimezone(v string) *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertOne) UpdateTimezone() *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateTimezone()
	})
}

// SetSchedule sets the "schedule" field.
func (u *ProviderAvailabilityUpsertOne) SetSchedule(v json.RawMessage) *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertOne) UpdateSchedule() *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateSchedule()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderAvailabilityUpsertOne) SetUpdatedAt(v time.Time) *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertOne) UpdateUpdatedAt() *ProviderAvailabilityUpsertOne {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProviderAvailabilityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProviderAvailabilityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderAvailabilityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProviderAvailabilityUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ProviderAvailabilityUpsertOne.ID is not supported by MySQL driver. Use ProviderAvailabilityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProviderAvailabilityUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProviderAvailabilityCreateBulk is the builder for creating many ProviderAvailability entities in bulk.
type ProviderAvailabilityCreateBulk struct {
	config
	err      error
	builders []*ProviderAvailabilityCreate
	conflict []sql.ConflictOption
}

// Save creates the ProviderAvailability entities in the database.
func (_c *ProviderAvailabilityCreateBulk) Save(ctx context.Context) ([]*ProviderAvailability, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProviderAvailability, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderAvailabilityMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *ProviderAvailabilityCreateBulk) SaveX(ctx context.Context) []*ProviderAvailability {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderAvailabilityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderAvailabilityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ProviderAvailability.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderAvailabilityUpsert) {
//			SetSessionDurationMinutes(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderAvailabilityCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProviderAvailabilityUpsertBulk {
	_c.conflict = opts
	return &ProviderAvailabilityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ProviderAvailability.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderAvailabilityCreateBulk) OnConflictColumns(columns ...string) *ProviderAvailabilityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderAvailabilityUpsertBulk{
		create: _c,
	}
}

// ProviderAvailabilityUpsertBulk is the builder for "upsert"-ing
// a bulk of ProviderAvailability nodes.
type ProviderAvailabilityUpsertBulk struct {
	create *ProviderAvailabilityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ProviderAvailability.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(provideravailability.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProviderAvailabilityUpsertBulk) UpdateNewValues() *ProviderAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(provideravailability.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ProviderAvailability.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProviderAvailabilityUpsertBulk) Ignore() *ProviderAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderAvailabilityUpsertBulk) DoNothing() *ProviderAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderAvailabilityCreateBulk.OnConflict
// documentation for more info.
func (u *ProviderAvailabilityUpsertBulk) Update(set func(*ProviderAvailabilityUpsert)) *ProviderAvailabilityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderAvailabilityUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionDurationMinutes sets the "session_duration_minutes" field.
func (u *ProviderAvailabilityUpsertBulk) SetSessionDurationMinutes(v int) *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetSessionDurationMinutes(v)
	})
}

// AddSessionDurationMinutes adds v to the "session_duration_minutes" field.
func (u *ProviderAvailabilityUpsertBulk) AddSessionDurationMinutes(v int) *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.AddSessionDurationMinutes(v)
	})
}

// UpdateSessionDurationMinutes sets the "session_duration_minutes" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertBulk) UpdateSessionDurationMinutes() *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateSessionDurationMinutes()
	})
}

// SetTimezone sets the "timezone" field.
func (u *ProviderAvailabilityUpsertBulk) SetTimezone(v string) *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetTimezone(v)
	})
}

// UpdateTimezone sets the "timezone" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertBulk) UpdateTimezone() *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateTimezone()
	})
}

// SetSchedule sets the "schedule" field.
func (u *ProviderAvailabilityUpsertBulk) SetSchedule(v json.RawMessage) *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetSchedule(v)
	})
}

// UpdateSchedule sets the "schedule" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertBulk) UpdateSchedule() *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateSchedule()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProviderAvailabilityUpsertBulk) SetUpdatedAt(v time.Time) *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProviderAvailabilityUpsertBulk) UpdateUpdatedAt() *ProviderAvailabilityUpsertBulk {
	return u.Update(func(s *ProviderAvailabilityUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProviderAvailabilityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ProviderAvailabilityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProviderAvailabilityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderAvailabilityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
