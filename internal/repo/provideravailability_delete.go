// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jasimarif/psychology-app/internal/repo/predicate"
	"github.com/jasimarif/psychology-app/internal/repo/provideravailability"
)

// ProviderAvailabilityDelete is the builder for deleting a ProviderAvailability entity.
type ProviderAvailabilityDelete struct {
	config
	hooks    []Hook
	mutation *ProviderAvailabilityMutation
}

// Where appends a list predicates to the ProviderAvailabilityDelete builder.
func (_d *ProviderAvailabilityDelete) Where(ps ...predicate.ProviderAvailability) *ProviderAvailabilityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ProviderAvailabilityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProviderAvailabilityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ProviderAvailabilityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(provideravailability.Table, sqlgraph.NewFieldSpec(provideravailability.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ProviderAvailabilityDeleteOne is the builder for deleting a single ProviderAvailability entity.
type ProviderAvailabilityDeleteOne struct {
	_d *ProviderAvailabilityDelete
}

// Where appends a list predicates to the ProviderAvailabilityDelete builder.
func (_d *ProviderAvailabilityDeleteOne) Where(ps ...predicate.ProviderAvailability) *ProviderAvailabilityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ProviderAvailabilityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{provideravailability.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ProviderAvailabilityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
