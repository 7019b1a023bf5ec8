// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/ent/predicate"
)

// ConflictResolutionDelete is the builder for deleting a ConflictResolution entity.
type ConflictResolutionDelete struct {
	config
	hooks    []Hook
	mutation *ConflictResolutionMutation
}

// Where appends a list predicates to the ConflictResolutionDelete builder.
func (_d *ConflictResolutionDelete) Where(ps ...predicate.ConflictResolution) *ConflictResolutionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ConflictResolutionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConflictResolutionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ConflictResolutionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(conflictresolution.Table, sqlgraph.NewFieldSpec(conflictresolution.FieldID, field.TypeUUID))
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

// ConflictResolutionDeleteOne is the builder for deleting a single ConflictResolution entity.
type ConflictResolutionDeleteOne struct {
	_d *ConflictResolutionDelete
}

// Where appends a list predicates to the ConflictResolutionDelete builder.
func (_d *ConflictResolutionDeleteOne) Where(ps ...predicate.ConflictResolution) *ConflictResolutionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ConflictResolutionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{conflictresolution.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ConflictResolutionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
