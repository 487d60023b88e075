// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
	"github.com/jasimarif/psychology-app/internal/repo/provider"
)

// ProviderUpdate is the builder for updating Provider entities.
type ProviderUpdate struct {
	config
	hooks    []Hook
	mutation *ProviderMutation
}

// Where appends a list predicates to the ProviderUpdate builder.
func (_u *ProviderUpdate) Where(ps ...predicate.Provider) *ProviderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProviderUpdate) SetFullName(v string) *ProviderUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableFullName(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProviderUpdate) SetEmail(v string) *ProviderUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableEmail(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProviderUpdate) SetPhone(v string) *ProviderUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillablePhone(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetSessionPrice sets the "session_price" field.
func (_u *ProviderUpdate) SetSessionPrice(v int64) *ProviderUpdate {
	_u.mutation.ResetSessionPrice()
	_u.mutation.SetSessionPrice(v)
	return _u
}

// SetNillableSessionPrice sets the "session_price" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableSessionPrice(v *int64) *ProviderUpdate {
	if v != nil {
		_u.SetSessionPrice(*v)
	}
	return _u
}

// AddSessionPrice adds value to the "session_price" field.
func (_u *ProviderUpdate) AddSessionPrice(v int64) *ProviderUpdate {
	_u.mutation.AddSessionPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ProviderUpdate) SetCurrency(v string) *ProviderUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ProviderUpdate) SetNillableCurrency(v *string) *ProviderUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// Mutation returns the ProviderMutation object of the builder.
func (_u *ProviderUpdate) Mutation() *ProviderMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProviderUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProviderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderUpdate) check() error {
	if v, ok := _u.mutation.SessionPrice(); ok {
		if err := provider.SessionPriceValidator(v); err != nil {
			return &ValidationError{Name: "session_price", err: fmt.Errorf(`repo: validator failed for field "Provider.session_price": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provider.Table, provider.Columns, sqlgraph.NewFieldSpec(provider.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(provider.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(provider.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(provider.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionPrice(); ok {
		_spec.SetField(provider.FieldSessionPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionPrice(); ok {
		_spec.AddField(provider.FieldSessionPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(provider.FieldCurrency, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProviderUpdateOne is the builder for updating a single Provider entity.
type ProviderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProviderMutation
}

// SetFullName sets the "full_name" field.
func (_u *ProviderUpdateOne) SetFullName(v string) *ProviderUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableFullName(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProviderUpdateOne) SetEmail(v string) *ProviderUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableEmail(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ProviderUpdateOne) SetPhone(v string) *ProviderUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillablePhone(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// SetSessionPrice sets the "session_price" field.
func (_u *ProviderUpdateOne) SetSessionPrice(v int64) *ProviderUpdateOne {
	_u.mutation.ResetSessionPrice()
	_u.mutation.SetSessionPrice(v)
	return _u
}

// SetNillableSessionPrice sets the "session_price" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableSessionPrice(v *int64) *ProviderUpdateOne {
	if v != nil {
		_u.SetSessionPrice(*v)
	}
	return _u
}

// AddSessionPrice adds value to the "session_price" field.
func (_u *ProviderUpdateOne) AddSessionPrice(v int64) *ProviderUpdateOne {
	_u.mutation.AddSessionPrice(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *ProviderUpdateOne) SetCurrency(v string) *ProviderUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *ProviderUpdateOne) SetNillableCurrency(v *string) *ProviderUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// Mutation returns the ProviderMutation object of the builder.
func (_u *ProviderUpdateOne) Mutation() *ProviderMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProviderUpdate builder.
func (_u *ProviderUpdateOne) Where(ps ...predicate.Provider) *ProviderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProviderUpdateOne) Select(field string, fields ...string) *ProviderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Provider entity.
func (_u *ProviderUpdateOne) Save(ctx context.Context) (*Provider, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProviderUpdateOne) SaveX(ctx context.Context) *Provider {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProviderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProviderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProviderUpdateOne) check() error {
	if v, ok := _u.mutation.SessionPrice(); ok {
		if err := provider.SessionPriceValidator(v); err != nil {
			return &ValidationError{Name: "session_price", err: fmt.Errorf(`repo: validator failed for field "Provider.session_price": %w`, err)}
		}
	}
	return nil
}

func (_u *ProviderUpdateOne) sqlSave(ctx context.Context) (_node *Provider, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(provider.Table, provider.Columns, sqlgraph.NewFieldSpec(provider.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Provider.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, provider.FieldID)
		for _, f := range fields {
			if !provider.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != provider.FieldID {
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
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(provider.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(provider.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(provider.FieldPhone, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionPrice(); ok {
		_spec.SetField(provider.FieldSessionPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionPrice(); ok {
		_spec.AddField(provider.FieldSessionPrice, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(provider.FieldCurrency, field.TypeString, value)
	}
	_node = &Provider{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{provider.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
