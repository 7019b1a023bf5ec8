// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"uhc-registry.io/registry/ent/identifiersequence"
	"uhc-registry.io/registry/ent/predicate"
)

// IdentifierSequenceDelete is the builder for deleting a IdentifierSequence entity.
type IdentifierSequenceDelete struct {
	config
	hooks    []Hook
	mutation *IdentifierSequenceMutation
}

// Where appends a list predicates to the IdentifierSequenceDelete builder.
func (_d *IdentifierSequenceDelete) Where(ps ...predicate.IdentifierSequence) *IdentifierSequenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *IdentifierSequenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IdentifierSequenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *IdentifierSequenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(identifiersequence.Table, sqlgraph.NewFieldSpec(identifiersequence.FieldID, field.TypeString))
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

// IdentifierSequenceDeleteOne is the builder for deleting a single IdentifierSequence entity.
type IdentifierSequenceDeleteOne struct {
	_d *IdentifierSequenceDelete
}

// Where appends a list predicates to the IdentifierSequenceDelete builder.
func (_d *IdentifierSequenceDeleteOne) Where(ps ...predicate.IdentifierSequence) *IdentifierSequenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *IdentifierSequenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{identifiersequence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *IdentifierSequenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
