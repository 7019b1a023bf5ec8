// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/propertyunit"
)

// PropertyUnitDelete is the builder for deleting a PropertyUnit entity.
type PropertyUnitDelete struct {
	config
	hooks    []Hook
	mutation *PropertyUnitMutation
}

// Where appends a list predicates to the PropertyUnitDelete builder.
func (_d *PropertyUnitDelete) Where(ps ...predicate.PropertyUnit) *PropertyUnitDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PropertyUnitDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PropertyUnitDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PropertyUnitDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(propertyunit.Table, sqlgraph.NewFieldSpec(propertyunit.FieldID, field.TypeUUID))
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

// PropertyUnitDeleteOne is the builder for deleting a single PropertyUnit entity.
type PropertyUnitDeleteOne struct {
	_d *PropertyUnitDelete
}

// Where appends a list predicates to the PropertyUnitDelete builder.
func (_d *PropertyUnitDeleteOne) Where(ps ...predicate.PropertyUnit) *PropertyUnitDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PropertyUnitDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{propertyunit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PropertyUnitDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
