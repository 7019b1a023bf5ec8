// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/duplicatesuppression"
	"uhc-registry.io/registry/ent/predicate"
)

// DuplicateSuppressionDelete is the builder for deleting a DuplicateSuppression entity.
type DuplicateSuppressionDelete struct {
	config
	hooks    []Hook
	mutation *DuplicateSuppressionMutation
}

// Where appends a list predicates to the DuplicateSuppressionDelete builder.
func (_d *DuplicateSuppressionDelete) Where(ps ...predicate.DuplicateSuppression) *DuplicateSuppressionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DuplicateSuppressionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicateSuppressionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DuplicateSuppressionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(duplicatesuppression.Table, sqlgraph.NewFieldSpec(duplicatesuppression.FieldID, field.TypeUUID))
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

// DuplicateSuppressionDeleteOne is the builder for deleting a single DuplicateSuppression entity.
type DuplicateSuppressionDeleteOne struct {
	_d *DuplicateSuppressionDelete
}

// Where appends a list predicates to the DuplicateSuppressionDelete builder.
func (_d *DuplicateSuppressionDeleteOne) Where(ps ...predicate.DuplicateSuppression) *DuplicateSuppressionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DuplicateSuppressionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{duplicatesuppression.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicateSuppressionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
