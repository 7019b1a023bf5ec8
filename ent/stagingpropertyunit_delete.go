// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/predicate"
	"uhc-registry.io/registry/ent/stagingpropertyunit"
)

// StagingPropertyUnitDelete is the builder for deleting a StagingPropertyUnit entity.
type StagingPropertyUnitDelete struct {
	config
	hooks    []Hook
	mutation *StagingPropertyUnitMutation
}

// Where appends a list predicates to the StagingPropertyUnitDelete builder.
func (_d *StagingPropertyUnitDelete) Where(ps ...predicate.StagingPropertyUnit) *StagingPropertyUnitDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *StagingPropertyUnitDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StagingPropertyUnitDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *StagingPropertyUnitDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(stagingpropertyunit.Table, sqlgraph.NewFieldSpec(stagingpropertyunit.FieldID, field.TypeUUID))
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

// StagingPropertyUnitDeleteOne is the builder for deleting a single StagingPropertyUnit entity.
type StagingPropertyUnitDeleteOne struct {
	_d *StagingPropertyUnitDelete
}

// Where appends a list predicates to the StagingPropertyUnitDelete builder.
func (_d *StagingPropertyUnitDeleteOne) Where(ps ...predicate.StagingPropertyUnit) *StagingPropertyUnitDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *StagingPropertyUnitDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{stagingpropertyunit.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *StagingPropertyUnitDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
