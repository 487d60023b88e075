// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/jasimarif/psychology-app/internal/repo/provider"
)

// ProviderCreate is the builder for creating a Provider entity.
type ProviderCreate struct {
	config
	mutation *ProviderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetFullName sets the "full_name" field.
func (_c *ProviderCreate) SetFullName(v string) *ProviderCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *ProviderCreate) SetNillableFullName(v *string) *ProviderCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProviderCreate) SetEmail(v string) *ProviderCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ProviderCreate) SetNillableEmail(v *string) *ProviderCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ProviderCreate) SetPhone(v string) *ProviderCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ProviderCreate) SetNillablePhone(v *string) *ProviderCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetSessionPrice sets the "session_price" field.
func (_c *ProviderCreate) SetSessionPrice(v int64) *ProviderCreate {
	_c.mutation.SetSessionPrice(v)
	return _c
}

// SetNillableSessionPrice sets the "session_price" field if the given value is not nil.
func (_c *ProviderCreate) SetNillableSessionPrice(v *int64) *ProviderCreate {
	if v != nil {
		_c.SetSessionPrice(*v)
	}
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *ProviderCreate) SetCurrency(v string) *ProviderCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_c *ProviderCreate) SetNillableCurrency(v *string) *ProviderCreate {
	if v != nil {
		_c.SetCurrency(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProviderCreate) SetCreatedAt(v time.Time) *ProviderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProviderCreate) SetNillableCreatedAt(v *time.Time) *ProviderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProviderCreate) SetID(v uuid.UUID) *ProviderCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ProviderMutation object of the builder.
func (_c *ProviderCreate) Mutation() *ProviderMutation {
	return _c.mutation
}

// Save creates the Provider in the database.
func (_c *ProviderCreate) Save(ctx context.Context) (*Provider, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProviderCreate) SaveX(ctx context.Context) *Provider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProviderCreate) defaults() {
	if _, ok := _c.mutation.FullName(); !ok {
		v := provider.DefaultFullName
		_c.mutation.SetFullName(v)
	}
	if _, ok := _c.mutation.Email(); !ok {
		v := provider.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.Phone(); !ok {
		v := provider.DefaultPhone
		_c.mutation.SetPhone(v)
	}
	if _, ok := _c.mutation.SessionPrice(); !ok {
		v := provider.DefaultSessionPrice
		_c.mutation.SetSessionPrice(v)
	}
	if _, ok := _c.mutation.Currency(); !ok {
		v := provider.DefaultCurrency
		_c.mutation.SetCurrency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := provider.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProviderCreate) check() error {
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`repo: missing required field "Provider.full_name"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Provider.email"`)}
	}
	if _, ok := _c.mutation.Phone(); !ok {
		return &ValidationError{Name: "phone", err: errors.New(`repo: missing required field "Provider.phone"`)}
	}
	if _, ok := _c.mutation.SessionPrice(); !ok {
		return &ValidationError{Name: "session_price", err: errors.New(`repo: missing required field "Provider.session_price"`)}
	}
	if v, ok := _c.mutation.SessionPrice(); ok {
		if err := provider.SessionPriceValidator(v); err != nil {
			return &ValidationError{Name: "session_price", err: fmt.Errorf(`repo: validator failed for field "Provider.session_price": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`repo: missing required field "Provider.currency"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Provider.created_at"`)}
	}
	return nil
}

func (_c *ProviderCreate) sqlSave(ctx context.Context) (*Provider, error) {
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

func (_c *ProviderCreate) createSpec() (*Provider, *sqlgraph.CreateSpec) {
	var (
		_node = &Provider{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(provider.Table, sqlgraph.NewFieldSpec(provider.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(provider.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(provider.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(provider.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.SessionPrice(); ok {
		_spec.SetField(provider.FieldSessionPrice, field.TypeInt64, value)
		_node.SessionPrice = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(provider.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(provider.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Provider.Create().
//		SetFullName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderUpsert) {
//			SetFullName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderCreate) OnConflict(opts ...sql.ConflictOption) *ProviderUpsertOne {
	_c.conflict = opts
	return &ProviderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Provider.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderCreate) OnConflictColumns(columns ...string) *ProviderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderUpsertOne{
		create: _c,
	}
}

type (
	// ProviderUpsertOne is the builder for "upsert"-ing
	//  one Provider node.
	ProviderUpsertOne struct {
		create *ProviderCreate
	}

	// ProviderUpsert is the "OnConflict" setter.
	ProviderUpsert struct {
		*sql.UpdateSet
	}
)

// SetFullName sets the "full_name" field.
func (u *ProviderUpsert) SetFullName(v string) *ProviderUpsert {
	u.Set(provider.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProviderUpsert) UpdateFullName() *ProviderUpsert {
	u.SetExcluded(provider.FieldFullName)
	return u
}

// SetEmail sets the "email" field.
func (u *ProviderUpsert) SetEmail(v string) *ProviderUpsert {
	u.Set(provider.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProviderUpsert) UpdateEmail() *ProviderUpsert {
	u.SetExcluded(provider.FieldEmail)
	return u
}

// SetPhone sets the "phone" field.
func (u *ProviderUpsert) SetPhone(v string) *ProviderUpsert {
	u.Set(provider.FieldPhone, v)
	return u
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProviderUpsert) UpdatePhone() *ProviderUpsert {
	u.SetExcluded(provider.FieldPhone)
	return u
}

// SetSessionPrice sets the "session_price" field.
func (u *ProviderUpsert) SetSessionPrice(v int64) *ProviderUpsert {
	u.Set(provider.FieldSessionPrice, v)
	return u
}

// UpdateSessionPrice sets the "session_price" field to the value that was provided on create.
func (u *ProviderUpsert) UpdateSessionPrice() *ProviderUpsert {
	u.SetExcluded(provider.FieldSessionPrice)
	return u
}

// AddSessionPrice adds v to the "session_price" field.
func (u *ProviderUpsert) AddSessionPrice(v int64) *ProviderUpsert {
	u.Add(provider.FieldSessionPrice, v)
	return u
}

// SetCurrency sets the "currency" field.
func (u *ProviderUpsert) SetCurrency(v string) *ProviderUpsert {
	u.Set(provider.FieldCurrency, v)
	return u
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ProviderUpsert) UpdateCurrency() *ProviderUpsert {
	u.SetExcluded(provider.FieldCurrency)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Provider.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(provider.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProviderUpsertOne) UpdateNewValues() *ProviderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(provider.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(provider.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Provider.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProviderUpsertOne) Ignore() *ProviderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderUpsertOne) DoNothing() *ProviderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderCreate.OnConflict
// documentation for more info.
func (u *ProviderUpsertOne) Update(set func(*ProviderUpsert)) *ProviderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderUpsert{UpdateSet: update})
	}))
	return u
}

// SetFullName sets the "full_name" field.
func (u *ProviderUpsertOne) SetFullName(v string) *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProviderUpsertOne) UpdateFullName() *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateFullName()
	})
}

// SetEmail sets the "email" field.
func (u *ProviderUpsertOne) SetEmail(v string) *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProviderUpsertOne) UpdateEmail() *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ProviderUpsertOne) SetPhone(v string) *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProviderUpsertOne) UpdatePhone() *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdatePhone()
	})
}

// SetSessionPrice sets the "session_price" field.
func (u *ProviderUpsertOne) SetSessionPrice(v int64) *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.SetSessionPrice(v)
	})
}

// AddSessionPrice adds v to the "session_price" field.
func (u *ProviderUpsertOne) AddSessionPrice(v int64) *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.AddSessionPrice(v)
	})
}

// UpdateSessionPrice sets the "session_price" field to the value that was provided on create.
func (u *ProviderUpsertOne) UpdateSessionPrice() *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateSessionPrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *ProviderUpsertOne) SetCurrency(v string) *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ProviderUpsertOne) UpdateCurrency() *ProviderUpsertOne {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateCurrency()
	})
}

// Exec executes the query.
func (u *ProviderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProviderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProviderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: ProviderUpsertOne.ID is not supported by MySQL driver. Use ProviderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProviderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProviderCreateBulk is the builder for creating many Provider entities in bulk.
type ProviderCreateBulk struct {
	config
	err      error
	builders []*ProviderCreate
	conflict []sql.ConflictOption
}

// Save creates the Provider entities in the database.
func (_c *ProviderCreateBulk) Save(ctx context.Context) ([]*Provider, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Provider, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProviderMutation)
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
func (_c *ProviderCreateBulk) SaveX(ctx context.Context) []*Provider {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProviderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProviderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Provider.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProviderUpsert) {
//			SetFullName(v+v).
//		}).
//		Exec(ctx)
func (_c *ProviderCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProviderUpsertBulk {
	_c.conflict = opts
	return &ProviderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Provider.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProviderCreateBulk) OnConflictColumns(columns ...string) *ProviderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProviderUpsertBulk{
		create: _c,
	}
}

// ProviderUpsertBulk is the builder for "upsert"-ing
// a bulk of Provider nodes.
type ProviderUpsertBulk struct {
	create *ProviderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Provider.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(provider.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ProviderUpsertBulk) UpdateNewValues() *ProviderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(provider.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(provider.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Provider.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProviderUpsertBulk) Ignore() *ProviderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProviderUpsertBulk) DoNothing() *ProviderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProviderCreateBulk.OnConflict
// documentation for more info.
func (u *ProviderUpsertBulk) Update(set func(*ProviderUpsert)) *ProviderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProviderUpsert{UpdateSet: update})
	}))
	return u
}

// SetFullName sets the "full_name" field.
func (u *ProviderUpsertBulk) SetFullName(v string) *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProviderUpsertBulk) UpdateFullName() *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateFullName()
	})
}

// SetEmail sets the "email" field.
func (u *ProviderUpsertBulk) SetEmail(v string) *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProviderUpsertBulk) UpdateEmail() *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateEmail()
	})
}

// SetPhone sets the "phone" field.
func (u *ProviderUpsertBulk) SetPhone(v string) *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.SetPhone(v)
	})
}

// UpdatePhone sets the "phone" field to the value that was provided on create.
func (u *ProviderUpsertBulk) UpdatePhone() *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdatePhone()
	})
}

// SetSessionPrice sets the "session_price" field.
func (u *ProviderUpsertBulk) SetSessionPrice(v int64) *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.SetSessionPrice(v)
	})
}

// AddSessionPrice adds v to the "session_price" field.
func (u *ProviderUpsertBulk) AddSessionPrice(v int64) *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.AddSessionPrice(v)
	})
}

// UpdateSessionPrice sets the "session_price" field to the value that was provided on create.
func (u *ProviderUpsertBulk) UpdateSessionPrice() *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateSessionPrice()
	})
}

// SetCurrency sets the "currency" field.
func (u *ProviderUpsertBulk) SetCurrency(v string) *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.SetCurrency(v)
	})
}

// UpdateCurrency sets the "currency" field to the value that was provided on create.
func (u *ProviderUpsertBulk) UpdateCurrency() *ProviderUpsertBulk {
	return u.Update(func(s *ProviderUpsert) {
		s.UpdateCurrency()
	})
}

// Exec executes the query.
func (u *ProviderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the ProviderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for ProviderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProviderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
